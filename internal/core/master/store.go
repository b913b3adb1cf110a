package master

import "context"

type Repository interface {
	ListMasters(context context.Context) ([]*Master, error)
	GetMaster(context context.Context, id int) (*Master, error)
	CreateMaster(context context.Context, m *Master) error
	// UpdateMaster applies only the supplied fields and returns the
	// refreshed row.
	UpdateMaster(context context.Context, id int, update Update) (*Master, error)
	DeleteMaster(context context.Context, id int) error

	// ActiveContractCount counts this master's contracts with status 'active'.
	ActiveContractCount(context context.Context, masterID int) (int, error)
}
