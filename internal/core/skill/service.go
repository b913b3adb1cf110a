package skill

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

func (service *Service) ListSkills(context context.Context) ([]*Skill, error) {
	return service.repo.ListSkills(context)
}

func (service *Service) GetSkill(context context.Context, id int) (*Skill, error) {
	s, err := service.repo.GetSkill(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Skill")
		}
		return nil, err
	}
	return s, nil
}

func (service *Service) CreateSkill(context context.Context, s *Skill) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, s.Name).MaxLen(FieldName, s.Name, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateSkill(context, s); err != nil {
		return err
	}

	service.logger.Info("skill_created", slog.Int("skill_id", s.ID), slog.String("name", s.Name))
	return nil
}

// UpdateSkill replaces the whole record; unlike servant updates there is no
// partial form of this operation.
func (service *Service) UpdateSkill(context context.Context, s *Skill) error {
	validator := &validate.Validator{}
	validator.Positive(FieldID, s.ID)
	validator.Required(FieldName, s.Name).MaxLen(FieldName, s.Name, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateSkill(context, s); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Skill")
		}
		return err
	}

	service.logger.Info("skill_updated", slog.Int("skill_id", s.ID))
	return nil
}

func (service *Service) DeleteSkill(context context.Context, id int) error {
	if err := service.repo.DeleteSkill(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Skill")
		}
		return err
	}

	service.logger.Warn("skill_deleted", slog.Int("skill_id", id))
	return nil
}

// SetIcon records the stored icon path for the skill.
func (service *Service) SetIcon(context context.Context, id int, path string) error {
	if err := service.repo.SetIcon(context, id, path); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Skill")
		}
		return err
	}

	service.logger.Info("skill_icon_set", slog.Int("skill_id", id), slog.String("path", path))
	return nil
}

// GetIcon returns the stored icon path, or NotFound when none was uploaded.
func (service *Service) GetIcon(context context.Context, id int) (string, error) {
	icon, err := service.repo.GetIcon(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return "", apperr.NotFound("Skill")
		}
		return "", err
	}
	if icon == "" {
		return "", apperr.NotFoundText("no icon")
	}
	return icon, nil
}
