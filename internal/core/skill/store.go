package skill

import "context"

type Repository interface {
	ListSkills(context context.Context) ([]*Skill, error)
	GetSkill(context context.Context, id int) (*Skill, error)
	CreateSkill(context context.Context, s *Skill) error
	// UpdateSkill replaces every writable column (full-record update).
	UpdateSkill(context context.Context, s *Skill) error
	DeleteSkill(context context.Context, id int) error

	SetIcon(context context.Context, id int, path string) error
	GetIcon(context context.Context, id int) (string, error)
}
