package contract_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkorra/chaldea/internal/core/contract"
	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/dberr"
)

type pair struct{ masterID, servantID int }

// fakeRepository mimics the database rules: composite-key uniqueness, both
// foreign keys, and the single-active-contract trigger.
type fakeRepository struct {
	contracts map[pair]*contract.Contract
	masters   map[int]bool
	servants  map[int]bool
}

func newFakeRepository(masterIDs, servantIDs []int) *fakeRepository {
	r := &fakeRepository{
		contracts: map[pair]*contract.Contract{},
		masters:   map[int]bool{},
		servants:  map[int]bool{},
	}
	for _, id := range masterIDs {
		r.masters[id] = true
	}
	for _, id := range servantIDs {
		r.servants[id] = true
	}
	return r
}

func (r *fakeRepository) ListContracts(_ context.Context) ([]*contract.Contract, error) {
	out := []*contract.Contract{}
	for _, c := range r.contracts {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeRepository) GetContract(_ context.Context, servantID, masterID int) (*contract.Contract, error) {
	c, ok := r.contracts[pair{masterID, servantID}]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return c, nil
}

func (r *fakeRepository) CreateContract(_ context.Context, input contract.CreateInput) (*contract.Contract, error) {
	key := pair{input.MasterID, input.ServantID}
	if _, ok := r.contracts[key]; ok {
		return nil, apperr.Conflict("Contract already exists")
	}
	if !r.masters[input.MasterID] {
		return nil, apperr.ForeignKey("Master does not exist")
	}
	if !r.servants[input.ServantID] {
		return nil, apperr.ForeignKey("Servant does not exist")
	}
	for _, c := range r.contracts {
		if c.ServantID == input.ServantID && c.Status == contract.StatusActive {
			return nil, apperr.BusinessRule("Servant already has an active contract")
		}
	}
	c := &contract.Contract{
		MasterID:      input.MasterID,
		ServantID:     input.ServantID,
		Status:        contract.StatusActive,
		CommandSpells: 3,
		ContractedAt:  time.Now(),
	}
	r.contracts[key] = c
	return c, nil
}

func (r *fakeRepository) DeleteContract(_ context.Context, servantID, masterID int) error {
	delete(r.contracts, pair{masterID, servantID})
	return nil
}

func newService(repo contract.Repository) *contract.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return contract.NewService(repo, logger)
}

/*
TestCreateContract_Defaults checks that a fresh contract comes back active
with a full stock of command spells.
*/
func TestCreateContract_Defaults(t *testing.T) {
	service := newService(newFakeRepository([]int{1}, []int{10}))

	c, err := service.CreateContract(context.Background(), contract.CreateInput{MasterID: 1, ServantID: 10})
	require.NoError(t, err)

	assert.Equal(t, contract.StatusActive, c.Status)
	assert.Equal(t, 3, c.CommandSpells)
	assert.Nil(t, c.EndedAt)
}

/*
TestCreateContract_Errors covers the four distinct refusals: duplicate pair,
missing master, missing servant, and servant already bound elsewhere.
*/
func TestCreateContract_Errors(t *testing.T) {
	repo := newFakeRepository([]int{1, 2}, []int{10, 11})
	service := newService(repo)

	_, err := service.CreateContract(context.Background(), contract.CreateInput{MasterID: 1, ServantID: 10})
	require.NoError(t, err)

	tests := []struct {
		name        string
		input       contract.CreateInput
		wantCode    string
		wantMessage string
	}{
		{"duplicate_pair", contract.CreateInput{MasterID: 1, ServantID: 10}, "CONFLICT", "Contract already exists"},
		{"missing_master", contract.CreateInput{MasterID: 99, ServantID: 11}, "FK_VIOLATION", "Master does not exist"},
		{"missing_servant", contract.CreateInput{MasterID: 2, ServantID: 99}, "FK_VIOLATION", "Servant does not exist"},
		{"servant_already_bound", contract.CreateInput{MasterID: 2, ServantID: 10}, "BUSINESS_RULE", "Servant already has an active contract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateContract(context.Background(), tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantMessage, ae.Message)
		})
	}
}

/*
TestCreateContract_Validation rejects non-positive ids before any storage
round trip.
*/
func TestCreateContract_Validation(t *testing.T) {
	service := newService(newFakeRepository(nil, nil))

	_, err := service.CreateContract(context.Background(), contract.CreateInput{MasterID: 0, ServantID: -1})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, ae.Details, 2)
}

/*
TestDeleteContract_Idempotent verifies that deleting a missing pair succeeds.
*/
func TestDeleteContract_Idempotent(t *testing.T) {
	repo := newFakeRepository([]int{1}, []int{10})
	service := newService(repo)

	_, err := service.CreateContract(context.Background(), contract.CreateInput{MasterID: 1, ServantID: 10})
	require.NoError(t, err)

	require.NoError(t, service.DeleteContract(context.Background(), 10, 1))
	require.NoError(t, service.DeleteContract(context.Background(), 10, 1))

	_, err = service.GetContract(context.Background(), 10, 1)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
