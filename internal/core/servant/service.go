package servant

import (
	"context"
	"errors"
	"log/slog"

	"github.com/velkorra/chaldea/internal/core/skill"
	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/dberr"
	"github.com/velkorra/chaldea/internal/platform/validate"
)

type Service struct {
	repo    Repository
	reports ReportRepository
	logger  *slog.Logger
}

func NewService(repo Repository, reports ReportRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		reports: reports,
		logger:  logger,
	}
}

func (service *Service) ListServants(context context.Context) ([]*Servant, error) {
	return service.repo.ListServants(context)
}

func (service *Service) ListWithLocalizations(context context.Context) ([]*Servant, error) {
	return service.repo.ListWithLocalizations(context)
}

func (service *Service) GetServant(context context.Context, id int) (*Servant, error) {
	s, err := service.repo.GetServant(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Servant")
		}
		return nil, err
	}
	return s, nil
}

func (service *Service) CreateServant(context context.Context, s *Servant) error {
	if err := validateServantFields(s.Name, s.Class, s.Gender); err != nil {
		return err
	}

	if err := service.repo.CreateServant(context, s); err != nil {
		return err
	}

	service.logger.Info("servant_created",
		slog.Int("servant_id", s.ID),
		slog.String("name", s.Name),
		slog.String("class", s.Class),
	)
	return nil
}

func (service *Service) UpdateServant(context context.Context, id int, update Update) (*Servant, error) {
	if update.IsEmpty() {
		return service.GetServant(context, id)
	}

	validator := &validate.Validator{}
	if update.Name != nil {
		validator.Required(FieldName, *update.Name)
	}
	if update.Class != nil {
		validator.Required(FieldClass, *update.Class)
	}
	if update.Level != nil {
		validator.Range(FieldLevel, *update.Level, MinLevel, MaxLevel)
	}
	if update.AscensionLevel != nil {
		validator.Range(FieldAscension, *update.AscensionLevel, MinAscension, MaxAscension)
	}
	if update.Gender != nil && *update.Gender != "" {
		validator.OneOf(FieldGender, *update.Gender, GenderMale, GenderFemale, GenderNone)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	s, err := service.repo.UpdateServant(context, id, update)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Servant")
		}
		return nil, err
	}

	service.logger.Info("servant_updated", slog.Int("servant_id", id))
	return s, nil
}

func (service *Service) DeleteServant(context context.Context, id int) error {
	if err := service.repo.DeleteServant(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Servant")
		}
		return err
	}

	service.logger.Warn("servant_deleted", slog.Int("servant_id", id))
	return nil
}

func validateServantFields(name, class, gender string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 200)
	validator.Required(FieldClass, class)
	if gender != "" {
		validator.OneOf(FieldGender, gender, GenderMale, GenderFemale, GenderNone)
	}
	return validator.Err()
}

// # Skills

func (service *Service) ListServantSkills(context context.Context, servantID int) ([]*skill.Skill, error) {
	if _, err := service.GetServant(context, servantID); err != nil {
		return nil, err
	}
	return service.repo.ListServantSkills(context, servantID)
}

func (service *Service) AssignSkill(context context.Context, servantID, skillID int) error {
	if err := service.repo.AssignSkill(context, servantID, skillID); err != nil {
		return err
	}

	service.logger.Info("skill_assigned",
		slog.Int("servant_id", servantID),
		slog.Int("skill_id", skillID),
	)
	return nil
}

func (service *Service) UnassignSkill(context context.Context, servantID, skillID int) error {
	if err := service.repo.UnassignSkill(context, servantID, skillID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Skill assignment")
		}
		return err
	}

	service.logger.Info("skill_unassigned",
		slog.Int("servant_id", servantID),
		slog.Int("skill_id", skillID),
	)
	return nil
}

// # Noble phantasms

func (service *Service) ListPhantasms(context context.Context) ([]*NoblePhantasm, error) {
	return service.repo.ListPhantasms(context)
}

func (service *Service) GetPhantasm(context context.Context, servantID int) (*NoblePhantasm, error) {
	np, err := service.repo.GetPhantasm(context, servantID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Noble phantasm")
		}
		return nil, err
	}
	return np, nil
}

func (service *Service) CreatePhantasm(context context.Context, np *NoblePhantasm) error {
	validator := &validate.Validator{}
	validator.Positive("servant_id", np.ServantID)
	validator.Required(FieldName, np.Name)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreatePhantasm(context, np); err != nil {
		return err
	}

	service.logger.Info("phantasm_created", slog.Int("servant_id", np.ServantID))
	return nil
}

// UpdatePhantasm replaces the whole record, keyed by servant id.
func (service *Service) UpdatePhantasm(context context.Context, np *NoblePhantasm) error {
	validator := &validate.Validator{}
	validator.Positive("servant_id", np.ServantID)
	validator.Required(FieldName, np.Name)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdatePhantasm(context, np); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Noble phantasm")
		}
		return err
	}

	service.logger.Info("phantasm_updated", slog.Int("servant_id", np.ServantID))
	return nil
}

func (service *Service) DeletePhantasm(context context.Context, servantID int) error {
	if err := service.repo.DeletePhantasm(context, servantID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Noble phantasm")
		}
		return err
	}

	service.logger.Warn("phantasm_deleted", slog.Int("servant_id", servantID))
	return nil
}
