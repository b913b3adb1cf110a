package skill_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkorra/chaldea/internal/core/skill"
	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/dberr"
)

type fakeRepository struct {
	skills map[int]*skill.Skill
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{skills: map[int]*skill.Skill{}, nextID: 1}
}

func (r *fakeRepository) ListSkills(_ context.Context) ([]*skill.Skill, error) {
	out := []*skill.Skill{}
	for _, s := range r.skills {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeRepository) GetSkill(_ context.Context, id int) (*skill.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeRepository) CreateSkill(_ context.Context, s *skill.Skill) error {
	s.ID = r.nextID
	r.nextID++
	copied := *s
	r.skills[s.ID] = &copied
	return nil
}

func (r *fakeRepository) UpdateSkill(_ context.Context, s *skill.Skill) error {
	if _, ok := r.skills[s.ID]; !ok {
		return dberr.ErrNotFound
	}
	copied := *s
	r.skills[s.ID] = &copied
	return nil
}

func (r *fakeRepository) DeleteSkill(_ context.Context, id int) error {
	if _, ok := r.skills[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.skills, id)
	return nil
}

func (r *fakeRepository) SetIcon(_ context.Context, id int, path string) error {
	s, ok := r.skills[id]
	if !ok {
		return dberr.ErrNotFound
	}
	s.Icon = path
	return nil
}

func (r *fakeRepository) GetIcon(_ context.Context, id int) (string, error) {
	s, ok := r.skills[id]
	if !ok {
		return "", dberr.ErrNotFound
	}
	return s.Icon, nil
}

func newService(repo skill.Repository) *skill.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return skill.NewService(repo, logger)
}

/*
TestUpdateSkill_FullRecord verifies that an update replaces every writable
field: values omitted by the caller are written as their zero value, not
kept.
*/
func TestUpdateSkill_FullRecord(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	s := &skill.Skill{Name: "Mana Burst", Rank: "A", Description: "Increases damage"}
	require.NoError(t, service.CreateSkill(context.Background(), s))

	err := service.UpdateSkill(context.Background(), &skill.Skill{ID: s.ID, Name: "Mana Burst (Flame)"})
	require.NoError(t, err)

	got, err := service.GetSkill(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mana Burst (Flame)", got.Name)
	assert.Equal(t, "", got.Rank)
	assert.Equal(t, "", got.Description)
}

/*
TestUpdateSkill_NotFound maps a missing id to NOT_FOUND.
*/
func TestUpdateSkill_NotFound(t *testing.T) {
	service := newService(newFakeRepository())

	err := service.UpdateSkill(context.Background(), &skill.Skill{ID: 42, Name: "Mana Burst"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Skill not found", ae.Message)
}

/*
TestCreateSkill_Validation requires a name.
*/
func TestCreateSkill_Validation(t *testing.T) {
	service := newService(newFakeRepository())

	err := service.CreateSkill(context.Background(), &skill.Skill{Rank: "B"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestGetIcon distinguishes "skill has no icon yet" from "skill does not
exist": both are 404s, but the former carries the documented message.
*/
func TestGetIcon(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	s := &skill.Skill{Name: "Mana Burst"}
	require.NoError(t, service.CreateSkill(context.Background(), s))

	_, err := service.GetIcon(context.Background(), s.ID)
	require.Error(t, err)
	assert.Equal(t, "no icon", apperr.As(err).Message)

	require.NoError(t, service.SetIcon(context.Background(), s.ID, "media/skills/skill_1_icon.png"))

	icon, err := service.GetIcon(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "media/skills/skill_1_icon.png", icon)
}

/*
TestMissingSkill_NotFound maps a missing id to "Skill not found" on every
operation that addresses a single skill, never the generic resource message.
*/
func TestMissingSkill_NotFound(t *testing.T) {
	service := newService(newFakeRepository())
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
	}{
		{"get", func() error { _, err := service.GetSkill(ctx, 42); return err }},
		{"delete", func() error { return service.DeleteSkill(ctx, 42) }},
		{"set icon", func() error { return service.SetIcon(ctx, 42, "media/skills/skill_42_icon.png") }},
		{"get icon", func() error { _, err := service.GetIcon(ctx, 42); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "NOT_FOUND", ae.Code)
			assert.Equal(t, "Skill not found", ae.Message)
		})
	}
}
