package schema

// ContractTable represents the 'contract' table
type ContractTable struct {
	Table         string
	MasterID      string
	ServantID     string
	Status        string
	CommandSpells string
	ContractedAt  string
	EndedAt       string
}

// Contract is the schema definition for contract
var Contract = ContractTable{
	Table:         "contract",
	MasterID:      "master_id",
	ServantID:     "servant_id",
	Status:        "status",
	CommandSpells: "command_spells",
	ContractedAt:  "contracted_at",
	EndedAt:       "ended_at",
}

// Constraint names raised by PostgreSQL on contract writes. The foreign key
// names tell apart which side of the composite reference is missing.
const (
	ContractPKey          = "contract_pkey"
	ContractMasterIDFkey  = "contract_master_id_fkey"
	ContractServantIDFkey = "contract_servant_id_fkey"
)
