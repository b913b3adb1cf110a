package schema

// SkillTable represents the 'skill' table
type SkillTable struct {
	Table         string
	ID            string
	SkillType     string
	Rank          string
	Name          string
	NameRu        string
	Description   string
	DescriptionRu string
	Icon          string
}

// Skill is the schema definition for skill
var Skill = SkillTable{
	Table:         "skill",
	ID:            "id",
	SkillType:     "skill_type",
	Rank:          "rank",
	Name:          "name",
	NameRu:        "name_ru",
	Description:   "description",
	DescriptionRu: "description_ru",
	Icon:          "icon",
}
