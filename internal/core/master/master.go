package master

import "time"

// Master is an account holder who may be bound to servants via contracts.
type Master struct {
	ID           int       `json:"id"`
	Nickname     string    `json:"nickname"`
	DisplayName  string    `json:"display_name"`
	Level        int       `json:"level"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Update carries a partial update. Nil means "field not supplied"; a pointer
// to the zero value is an explicit assignment.
type Update struct {
	Nickname    *string `json:"nickname"`
	DisplayName *string `json:"display_name"`
	Level       *int    `json:"level"`
}

// IsEmpty reports whether no field is supplied at all.
func (u Update) IsEmpty() bool {
	return u.Nickname == nil && u.DisplayName == nil && u.Level == nil
}

// Field names for validation messages.
const (
	FieldNickname    = "nickname"
	FieldDisplayName = "display_name"
	FieldLevel       = "level"
)
