package contract

import (
	"context"
	"errors"
	"log/slog"

	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/dberr"
	"github.com/velkorra/chaldea/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListContracts(context context.Context) ([]*Contract, error) {
	return service.repo.ListContracts(context)
}

func (service *Service) GetContract(context context.Context, servantID, masterID int) (*Contract, error) {
	c, err := service.repo.GetContract(context, servantID, masterID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Contract")
		}
		return nil, err
	}
	return c, nil
}

func (service *Service) CreateContract(context context.Context, input CreateInput) (*Contract, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldMasterID, input.MasterID)
	validator.Positive(FieldServantID, input.ServantID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	c, err := service.repo.CreateContract(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("contract_created",
		slog.Int("master_id", c.MasterID),
		slog.Int("servant_id", c.ServantID),
	)
	return c, nil
}

// DeleteContract removes the pair. Deleting a pair that does not exist is a
// success, so clients can retry without special-casing the second call.
func (service *Service) DeleteContract(context context.Context, servantID, masterID int) error {
	if err := service.repo.DeleteContract(context, servantID, masterID); err != nil {
		return err
	}

	service.logger.Warn("contract_deleted",
		slog.Int("master_id", masterID),
		slog.Int("servant_id", servantID),
	)
	return nil
}
