package servant

import (
	"context"

	"github.com/velkorra/chaldea/internal/core/skill"
)

// Repository is the persistence contract of the servant domain: the catalogue
// itself plus the satellite records hanging off it (localizations, pictures,
// skill links, noble phantasms).
type Repository interface {
	ListServants(context context.Context) ([]*Servant, error)
	// ListWithLocalizations returns every servant with its localization
	// bundles eager-loaded, ordered by id.
	ListWithLocalizations(context context.Context) ([]*Servant, error)
	// GetServant eager-loads the localizations of the servant.
	GetServant(context context.Context, id int) (*Servant, error)
	CreateServant(context context.Context, s *Servant) error
	// UpdateServant applies only the supplied fields and returns the
	// refreshed row.
	UpdateServant(context context.Context, id int, update Update) (*Servant, error)
	DeleteServant(context context.Context, id int) error

	// GetLocalization returns the exact (servant, language) row, or
	// dberr.ErrNotFound.
	GetLocalization(context context.Context, servantID int, language string) (*Localization, error)
	// FirstLocalization returns the servant's first localization by
	// ascending language code, the fallback when the requested language
	// is missing.
	FirstLocalization(context context.Context, servantID int) (*Localization, error)
	UpsertLocalization(context context.Context, loc *Localization) error

	// AddPicture fills the (servant, grade) slot; re-adding overwrites
	// the stored path.
	AddPicture(context context.Context, servantID, grade int, path string) (*Picture, error)
	GetPicture(context context.Context, servantID, grade int) (string, error)
	// CreateWithPicture inserts the servant and its grade slot in one
	// transaction. savePicture runs after the servant insert, when the id
	// is known, and returns the stored file path; its failure rolls the
	// whole creation back.
	CreateWithPicture(context context.Context, s *Servant, grade int, savePicture func(servantID int) (string, error)) (*Picture, error)

	ListServantSkills(context context.Context, servantID int) ([]*skill.Skill, error)
	AssignSkill(context context.Context, servantID, skillID int) error
	UnassignSkill(context context.Context, servantID, skillID int) error

	ListPhantasms(context context.Context) ([]*NoblePhantasm, error)
	GetPhantasm(context context.Context, servantID int) (*NoblePhantasm, error)
	CreatePhantasm(context context.Context, np *NoblePhantasm) error
	UpdatePhantasm(context context.Context, np *NoblePhantasm) error
	DeletePhantasm(context context.Context, servantID int) error
}

// ReportRepository serves the read-only analytical projections.
type ReportRepository interface {
	LevelStatistics(context context.Context) ([]*ClassLevelStats, error)
	SummonedServants(context context.Context) ([]*SummonedServant, error)
	FemaleDescriptions(context context.Context) ([]*FemaleDescription, error)
	TopServantsPerMaster(context context.Context) ([]*TopServant, error)
	AllLocalizations(context context.Context) ([]*LocalizedText, error)
}
