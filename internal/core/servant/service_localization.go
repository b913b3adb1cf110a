package servant

import (
	"context"
	"errors"
	"log/slog"

	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/dberr"
	"github.com/velkorra/chaldea/internal/platform/validate"
)

// GetLocalization resolves the text bundle for (servant, language). When the
// requested language has no row, the servant's first localization by
// ascending language code is served instead, so a servant with any text at
// all never comes back empty.
func (service *Service) GetLocalization(context context.Context, servantID int, language string) (*Localization, error) {
	loc, err := service.repo.GetLocalization(context, servantID, language)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}

	loc, err = service.repo.FirstLocalization(context, servantID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Localization")
		}
		return nil, err
	}
	return loc, nil
}

// GetName returns the localized display name, or "" with a NotFound error
// when the servant has no localization at all.
func (service *Service) GetName(context context.Context, servantID int, language string) (string, error) {
	loc, err := service.GetLocalization(context, servantID, language)
	if err != nil {
		return "", err
	}
	return loc.Name, nil
}

// SetLocalization creates or updates the (servant, language) bundle. Only
// non-empty input fields overwrite stored values: the endpoints accept plain
// form fields, and an empty field means "leave as is", never "blank out".
func (service *Service) SetLocalization(context context.Context, servantID int, language string, input LocalizationInput) (*Localization, error) {
	validator := &validate.Validator{}
	validator.Positive("servant_id", servantID)
	validator.Required("language", language)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	loc, err := service.repo.GetLocalization(context, servantID, language)
	if err != nil {
		if !errors.Is(err, dberr.ErrNotFound) {
			return nil, err
		}
		loc = &Localization{ServantID: servantID, Language: language}
	}

	loc.merge(input)

	if err := service.repo.UpsertLocalization(context, loc); err != nil {
		return nil, err
	}

	service.logger.Info("localization_set",
		slog.Int("servant_id", servantID),
		slog.String("language", language),
	)
	return loc, nil
}
