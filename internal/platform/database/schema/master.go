package schema

// MasterTable represents the 'master' table
type MasterTable struct {
	Table        string
	ID           string
	Nickname     string
	DisplayName  string
	Level        string
	RegisteredAt string
}

// Master is the schema definition for master
var Master = MasterTable{
	Table:        "master",
	ID:           "id",
	Nickname:     "nickname",
	DisplayName:  "display_name",
	Level:        "level",
	RegisteredAt: "registered_at",
}

// Constraint names raised by PostgreSQL on master writes.
const (
	MasterNicknameKey = "master_nickname_key"
	MasterLevelCheck  = "master_level_check"
)
