package servant

// Localization is the per-language translated text bundle for a servant.
// At most one row exists per (servant, language) pair.
type Localization struct {
	ID              int    `json:"-"`
	ServantID       int    `json:"servant_id"`
	Language        string `json:"language"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	History         string `json:"history"`
	PrototypePerson string `json:"prototype_person"`
	Illustrator     string `json:"illustrator"`
	VoiceActor      string `json:"voice_actor"`
	Temper          string `json:"temper"`
	Intro           string `json:"intro"`
}

// LocalizationInput carries the writable localization fields of an upsert.
//
// Merge semantics are value-based, not presence-based: only NON-EMPTY fields
// overwrite the stored row, so an empty string can never blank out a
// previously set value. This is the documented contract of the localization
// endpoints (which accept plain form fields and therefore cannot express
// "absent" any other way).
type LocalizationInput struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	History         string `json:"history"`
	PrototypePerson string `json:"prototype_person"`
	Illustrator     string `json:"illustrator"`
	VoiceActor      string `json:"voice_actor"`
	Temper          string `json:"temper"`
	Intro           string `json:"intro"`
}

// merge copies every non-empty input field onto the localization.
func (loc *Localization) merge(input LocalizationInput) {
	if input.Name != "" {
		loc.Name = input.Name
	}
	if input.Description != "" {
		loc.Description = input.Description
	}
	if input.History != "" {
		loc.History = input.History
	}
	if input.PrototypePerson != "" {
		loc.PrototypePerson = input.PrototypePerson
	}
	if input.Illustrator != "" {
		loc.Illustrator = input.Illustrator
	}
	if input.VoiceActor != "" {
		loc.VoiceActor = input.VoiceActor
	}
	if input.Temper != "" {
		loc.Temper = input.Temper
	}
	if input.Intro != "" {
		loc.Intro = input.Intro
	}
}

// Picture is a stored image reference for one (servant, grade) slot.
type Picture struct {
	ServantID int    `json:"id"`
	Grade     int    `json:"grade"`
	Path      string `json:"image"`
}

// Fixed language codes used by the reporting queries.
const (
	LanguageEN = "en"
	LanguageRU = "ru"
)

// ReportLanguages is the allow-list of languages included in the
// localization projections.
var ReportLanguages = []string{LanguageRU, LanguageEN}
