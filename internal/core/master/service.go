package master

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

func (service *Service) ListMasters(context context.Context) ([]*Master, error) {
	return service.repo.ListMasters(context)
}

func (service *Service) GetMaster(context context.Context, id int) (*Master, error) {
	m, err := service.repo.GetMaster(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Master")
		}
		return nil, err
	}
	return m, nil
}

// CreateMaster registers a new master. A missing display name falls back to
// the nickname so list views never render an empty label.
func (service *Service) CreateMaster(context context.Context, m *Master) error {
	validator := &validate.Validator{}
	validator.Required(FieldNickname, m.Nickname).MaxLen(FieldNickname, m.Nickname, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	if m.DisplayName == "" {
		m.DisplayName = m.Nickname
	}

	if err := service.repo.CreateMaster(context, m); err != nil {
		return err
	}

	service.logger.Info("master_created",
		slog.Int("master_id", m.ID),
		slog.String("nickname", m.Nickname),
	)
	return nil
}

func (service *Service) UpdateMaster(context context.Context, id int, update Update) (*Master, error) {
	if update.IsEmpty() {
		return service.GetMaster(context, id)
	}

	validator := &validate.Validator{}
	if update.Nickname != nil {
		validator.Required(FieldNickname, *update.Nickname).MaxLen(FieldNickname, *update.Nickname, 100)
	}
	if update.Level != nil {
		validator.Positive(FieldLevel, *update.Level)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	m, err := service.repo.UpdateMaster(context, id, update)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Master")
		}
		return nil, err
	}

	service.logger.Info("master_updated", slog.Int("master_id", id))
	return m, nil
}

func (service *Service) DeleteMaster(context context.Context, id int) error {
	if err := service.repo.DeleteMaster(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Master")
		}
		return err
	}

	service.logger.Warn("master_deleted", slog.Int("master_id", id))
	return nil
}

// ActiveContractCount reports how many servants the master currently holds
// under an active contract.
func (service *Service) ActiveContractCount(context context.Context, masterID int) (int, error) {
	if _, err := service.GetMaster(context, masterID); err != nil {
		return 0, err
	}
	return service.repo.ActiveContractCount(context, masterID)
}
