package skill

// Skill is a reusable ability record assignable to many servants.
// Name and description are carried inline in the two catalogue languages
// rather than through a localization table.
type Skill struct {
	ID            int    `json:"id"`
	SkillType     string `json:"skill_type"`
	Rank          string `json:"rank"`
	Name          string `json:"name"`
	NameRu        string `json:"name_ru"`
	Description   string `json:"description"`
	DescriptionRu string `json:"description_ru"`
	Icon          string `json:"icon,omitempty"`
}

// Field names for validation messages.
const (
	FieldID   = "id"
	FieldName = "name"
	FieldRank = "rank"
)
