package schema

// ServantSkillTable represents the 'servant_skill' junction table
type ServantSkillTable struct {
	Table     string
	ServantID string
	SkillID   string
}

// ServantSkill is the schema definition for servant_skill
var ServantSkill = ServantSkillTable{
	Table:     "servant_skill",
	ServantID: "servant_id",
	SkillID:   "skill_id",
}
