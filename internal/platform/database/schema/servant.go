package schema

// ServantTable represents the 'servant' table
type ServantTable struct {
	Table          string
	ID             string
	Class          string
	Name           string
	AscensionLevel string
	Level          string
	State          string
	Alignment      string
	Gender         string
}

// Servant is the schema definition for servant
var Servant = ServantTable{
	Table:          "servant",
	ID:             "id",
	Class:          "class",
	Name:           "name",
	AscensionLevel: "ascension_level",
	Level:          "level",
	State:          "state",
	Alignment:      "alignment",
	Gender:         "gender",
}

func (t ServantTable) Columns() []string {
	return []string{
		t.ID, t.Class, t.Name, t.AscensionLevel, t.Level, t.State, t.Alignment, t.Gender,
	}
}
