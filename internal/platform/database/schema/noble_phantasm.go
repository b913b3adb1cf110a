package schema

// NoblePhantasmTable represents the 'noble_phantasm' table
type NoblePhantasmTable struct {
	Table          string
	ServantID      string
	Name           string
	Rank           string
	ActivationType string
	Description    string
}

// NoblePhantasm is the schema definition for noble_phantasm.
// Keyed by servant_id: a servant has at most one noble phantasm.
var NoblePhantasm = NoblePhantasmTable{
	Table:          "noble_phantasm",
	ServantID:      "servant_id",
	Name:           "name",
	Rank:           "rank",
	ActivationType: "activation_type",
	Description:    "description",
}
