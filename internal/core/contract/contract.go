package contract

import "time"

// Contract binds a servant to a master. The pair (master_id, servant_id) is
// the identity; a servant can hold at most one active contract at a time.
type Contract struct {
	MasterID      int        `json:"master_id"`
	ServantID     int        `json:"servant_id"`
	Status        string     `json:"status"`
	CommandSpells int        `json:"command_spells"`
	ContractedAt  time.Time  `json:"contracted_at"`
	EndedAt       *time.Time `json:"ended_at"`
}

// CreateInput is the JSON body for contract creation. Status, command spells
// and timestamps come from database defaults.
type CreateInput struct {
	MasterID  int `json:"master_id"`
	ServantID int `json:"servant_id"`
}

const (
	StatusActive = "active"
	StatusEnded  = "ended"
)

const (
	FieldMasterID  = "master_id"
	FieldServantID = "servant_id"
)
