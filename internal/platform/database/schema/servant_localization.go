package schema

// ServantLocalizationTable represents the 'servant_localization' table
type ServantLocalizationTable struct {
	Table           string
	ID              string
	ServantID       string
	Language        string
	Name            string
	Description     string
	History         string
	PrototypePerson string
	Illustrator     string
	VoiceActor      string
	Temper          string
	Intro           string
}

// ServantLocalization is the schema definition for servant_localization
var ServantLocalization = ServantLocalizationTable{
	Table:           "servant_localization",
	ID:              "id",
	ServantID:       "servant_id",
	Language:        "language",
	Name:            "name",
	Description:     "description",
	History:         "history",
	PrototypePerson: "prototype_person",
	Illustrator:     "illustrator",
	VoiceActor:      "voice_actor",
	Temper:          "temper",
	Intro:           "intro",
}
