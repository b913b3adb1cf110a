package master_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkorra/chaldea/internal/core/master"
	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/dberr"
	"github.com/velkorra/chaldea/pkg/pointer"
)

// fakeRepository is an in-memory Repository backed by a map, with nickname
// uniqueness enforced the way the database would.
type fakeRepository struct {
	masters map[int]*master.Master
	nextID  int
	active  map[int]int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		masters: map[int]*master.Master{},
		nextID:  1,
		active:  map[int]int{},
	}
}

func (r *fakeRepository) ListMasters(_ context.Context) ([]*master.Master, error) {
	out := []*master.Master{}
	for _, m := range r.masters {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeRepository) GetMaster(_ context.Context, id int) (*master.Master, error) {
	m, ok := r.masters[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeRepository) CreateMaster(_ context.Context, m *master.Master) error {
	for _, existing := range r.masters {
		if existing.Nickname == m.Nickname {
			return apperr.Conflict("Master with this nickname already exists")
		}
	}
	m.ID = r.nextID
	if m.Level == 0 {
		m.Level = 1
	}
	r.nextID++
	copied := *m
	r.masters[m.ID] = &copied
	return nil
}

func (r *fakeRepository) UpdateMaster(_ context.Context, id int, update master.Update) (*master.Master, error) {
	m, ok := r.masters[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	if update.Nickname != nil {
		for otherID, existing := range r.masters {
			if otherID != id && existing.Nickname == *update.Nickname {
				return nil, apperr.Conflict("Master with this nickname already exists")
			}
		}
	}
	m.Nickname = pointer.Fallback(update.Nickname, m.Nickname)
	m.DisplayName = pointer.Fallback(update.DisplayName, m.DisplayName)
	m.Level = pointer.Fallback(update.Level, m.Level)
	copied := *m
	return &copied, nil
}

func (r *fakeRepository) DeleteMaster(_ context.Context, id int) error {
	if _, ok := r.masters[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.masters, id)
	return nil
}

func (r *fakeRepository) ActiveContractCount(_ context.Context, masterID int) (int, error) {
	return r.active[masterID], nil
}

func newService(repo master.Repository) *master.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return master.NewService(repo, logger)
}

/*
TestCreateMaster_DisplayNameDefault verifies that a missing display name
falls back to the nickname.
*/
func TestCreateMaster_DisplayNameDefault(t *testing.T) {
	service := newService(newFakeRepository())

	m := &master.Master{Nickname: "velk"}
	require.NoError(t, service.CreateMaster(context.Background(), m))

	assert.Equal(t, "velk", m.DisplayName)
	assert.NotZero(t, m.ID)
}

/*
TestCreateMaster_Validation covers the nickname rules and the duplicate
nickname conflict.
*/
func TestCreateMaster_Validation(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	require.NoError(t, service.CreateMaster(context.Background(), &master.Master{Nickname: "velk"}))

	tests := []struct {
		name     string
		nickname string
		wantCode string
	}{
		{"empty_nickname", "", "VALIDATION_ERROR"},
		{"duplicate_nickname", "velk", "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateMaster(context.Background(), &master.Master{Nickname: tt.nickname})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			if tt.wantCode == "CONFLICT" {
				assert.Equal(t, "Master with this nickname already exists", ae.Message)
			}
		})
	}
}

/*
TestUpdateMaster exercises partial updates: supplied fields change, absent
fields keep their value, and an empty update is a plain read.
*/
func TestUpdateMaster(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	m := &master.Master{Nickname: "velk", DisplayName: "Velkorra"}
	require.NoError(t, service.CreateMaster(context.Background(), m))

	updated, err := service.UpdateMaster(context.Background(), m.ID, master.Update{Level: pointer.To(30)})
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Level)
	assert.Equal(t, "velk", updated.Nickname)
	assert.Equal(t, "Velkorra", updated.DisplayName)

	// Empty update returns the current row untouched.
	same, err := service.UpdateMaster(context.Background(), m.ID, master.Update{})
	require.NoError(t, err)
	assert.Equal(t, updated, same)
}

/*
TestUpdateMaster_Errors checks the NotFound mapping and the positive level
rule for supplied fields.
*/
func TestUpdateMaster_Errors(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	m := &master.Master{Nickname: "velk"}
	require.NoError(t, service.CreateMaster(context.Background(), m))

	t.Run("missing_master", func(t *testing.T) {
		_, err := service.UpdateMaster(context.Background(), 999, master.Update{Level: pointer.To(5)})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "NOT_FOUND", ae.Code)
		assert.Equal(t, "Master not found", ae.Message)
	})

	t.Run("non_positive_level", func(t *testing.T) {
		_, err := service.UpdateMaster(context.Background(), m.ID, master.Update{Level: pointer.To(0)})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("empty_nickname", func(t *testing.T) {
		_, err := service.UpdateMaster(context.Background(), m.ID, master.Update{Nickname: pointer.To("")})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})
}

/*
TestDeleteMaster verifies deletion and the NotFound mapping for a second
delete of the same id.
*/
func TestDeleteMaster(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	m := &master.Master{Nickname: "velk"}
	require.NoError(t, service.CreateMaster(context.Background(), m))

	require.NoError(t, service.DeleteMaster(context.Background(), m.ID))

	err := service.DeleteMaster(context.Background(), m.ID)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestActiveContractCount checks the existence guard and the plain count path.
*/
func TestActiveContractCount(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	m := &master.Master{Nickname: "velk"}
	require.NoError(t, service.CreateMaster(context.Background(), m))
	repo.active[m.ID] = 2

	count, err := service.ActiveContractCount(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = service.ActiveContractCount(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
