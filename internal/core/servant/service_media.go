package servant

import (
	"context"
	"errors"
	"log/slog"

	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/dberr"
	"github.com/velkorra/chaldea/internal/platform/validate"
)

// AddPicture records the stored file path for a (servant, grade) slot.
// Re-uploading to an occupied slot overwrites it.
func (service *Service) AddPicture(context context.Context, servantID, grade int, path string) (*Picture, error) {
	if err := validateGrade(grade); err != nil {
		return nil, err
	}

	p, err := service.repo.AddPicture(context, servantID, grade, path)
	if err != nil {
		return nil, err
	}

	service.logger.Info("picture_added",
		slog.Int("servant_id", servantID),
		slog.Int("grade", grade),
		slog.String("path", path),
	)
	return p, nil
}

// GetPicture returns the stored file path for the slot.
func (service *Service) GetPicture(context context.Context, servantID, grade int) (string, error) {
	path, err := service.repo.GetPicture(context, servantID, grade)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return "", apperr.NotFoundText("no picture")
		}
		return "", err
	}
	return path, nil
}

// CreateWithPicture registers the servant and its first picture slot in a
// single transaction. savePicture writes the uploaded file once the new id
// is assigned and returns the stored path.
func (service *Service) CreateWithPicture(context context.Context, s *Servant, grade int, savePicture func(servantID int) (string, error)) (*Picture, error) {
	if err := validateServantFields(s.Name, s.Class, s.Gender); err != nil {
		return nil, err
	}
	if err := validateGrade(grade); err != nil {
		return nil, err
	}

	p, err := service.repo.CreateWithPicture(context, s, grade, savePicture)
	if err != nil {
		return nil, err
	}

	service.logger.Info("servant_created_with_picture",
		slog.Int("servant_id", s.ID),
		slog.Int("grade", grade),
	)
	return p, nil
}

func validateGrade(grade int) error {
	validator := &validate.Validator{}
	validator.Range(FieldGrade, grade, MinGrade, MaxGrade)
	return validator.Err()
}
