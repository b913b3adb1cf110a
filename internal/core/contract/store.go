package contract

import "context"

type Repository interface {
	ListContracts(context context.Context) ([]*Contract, error)
	GetContract(context context.Context, servantID, masterID int) (*Contract, error)
	CreateContract(context context.Context, input CreateInput) (*Contract, error)
	// DeleteContract removes the pair if present. A missing pair is not an
	// error; the operation is idempotent.
	DeleteContract(context context.Context, servantID, masterID int) error
}
