package servant

// Servant is a catalogued playable entity with its class, progression state
// and (optionally loaded) localized text bundles.
type Servant struct {
	ID             int    `json:"id"`
	Class          string `json:"class_name"`
	Name           string `json:"name"`
	AscensionLevel int    `json:"ascension_level"`
	Level          int    `json:"level"`
	State          string `json:"state"`
	Alignment      string `json:"alignment"`
	Gender         string `json:"gender"`

	// Localizations is populated only by operations whose contract says so
	// (Get, ListWithLocalizations); nil otherwise.
	Localizations []*Localization `json:"localizations,omitempty"`
}

// Update carries a partial update. Nil means "field not supplied"; a pointer
// to the zero value is an explicit assignment. This distinguishes an
// intentional blank-out from an omitted field.
type Update struct {
	Name           *string `json:"name"`
	Class          *string `json:"class_name"`
	AscensionLevel *int    `json:"ascension_level"`
	Level          *int    `json:"level"`
	State          *string `json:"state"`
	Alignment      *string `json:"alignment"`
	Gender         *string `json:"gender"`
}

// IsEmpty reports whether no field is supplied at all.
func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Class == nil && u.AscensionLevel == nil &&
		u.Level == nil && u.State == nil && u.Alignment == nil && u.Gender == nil
}

// Allowed enumerated values, mirrored by database check constraints.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderNone   = "none"

	StateAlive = "alive"
)

// Field names for validation messages.
const (
	FieldName      = "name"
	FieldClass     = "class_name"
	FieldAscension = "ascension_level"
	FieldLevel     = "level"
	FieldAlignment = "alignment"
	FieldGender    = "gender"
	FieldGrade     = "grade"
)

// Level bounds enforced by the servant_level_check constraint.
const (
	MinLevel     = 0
	MaxLevel     = 120
	MinAscension = 0
	MaxAscension = 4
	MinGrade     = 1
	MaxGrade     = 5
)
