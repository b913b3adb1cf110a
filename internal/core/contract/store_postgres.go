package contract

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/database/schema"
	"github.com/velkorra/chaldea/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListContracts(context context.Context) ([]*Contract, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC
	`,
		schema.Contract.MasterID, schema.Contract.ServantID, schema.Contract.Status,
		schema.Contract.CommandSpells, schema.Contract.ContractedAt, schema.Contract.EndedAt,
		schema.Contract.Table, schema.Contract.MasterID, schema.Contract.ServantID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contracts")
	}
	defer rows.Close()

	var contracts []*Contract
	for rows.Next() {
		c := &Contract{}
		err := rows.Scan(
			&c.MasterID, &c.ServantID, &c.Status,
			&c.CommandSpells, &c.ContractedAt, &c.EndedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_contract")
		}
		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

func (repository *PostgresRepository) GetContract(context context.Context, servantID, masterID int) (*Contract, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.Contract.MasterID, schema.Contract.ServantID, schema.Contract.Status,
		schema.Contract.CommandSpells, schema.Contract.ContractedAt, schema.Contract.EndedAt,
		schema.Contract.Table, schema.Contract.ServantID, schema.Contract.MasterID,
	)

	c := &Contract{}
	err := repository.db.QueryRow(context, query, servantID, masterID).Scan(
		&c.MasterID, &c.ServantID, &c.Status,
		&c.CommandSpells, &c.ContractedAt, &c.EndedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_contract")
	}

	return c, nil
}

// CreateContract inserts an active contract, mapping each of the four ways
// the database can refuse it to its own client-facing error.
func (repository *PostgresRepository) CreateContract(context context.Context, input CreateInput) (*Contract, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s, %s, %s, %s
	`,
		schema.Contract.Table, schema.Contract.MasterID, schema.Contract.ServantID,
		schema.Contract.MasterID, schema.Contract.ServantID, schema.Contract.Status,
		schema.Contract.CommandSpells, schema.Contract.ContractedAt, schema.Contract.EndedAt,
	)

	c := &Contract{}
	err := repository.db.QueryRow(context, query, input.MasterID, input.ServantID).Scan(
		&c.MasterID, &c.ServantID, &c.Status,
		&c.CommandSpells, &c.ContractedAt, &c.EndedAt,
	)
	if err != nil {
		switch {
		case dberr.IsUniqueViolation(err):
			return nil, apperr.Conflict("Contract already exists")
		case dberr.IsForeignKeyViolation(err) && dberr.ConstraintName(err) == schema.ContractMasterIDFkey:
			return nil, apperr.ForeignKey("Master does not exist")
		case dberr.IsForeignKeyViolation(err):
			return nil, apperr.ForeignKey("Servant does not exist")
		case dberr.IsRaisedException(err):
			return nil, apperr.BusinessRule("Servant already has an active contract")
		}
		return nil, dberr.Wrap(err, "create_contract")
	}

	return c, nil
}

func (repository *PostgresRepository) DeleteContract(context context.Context, servantID, masterID int) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1 AND %s = $2
	`,
		schema.Contract.Table, schema.Contract.ServantID, schema.Contract.MasterID,
	)

	if _, err := repository.db.Exec(context, query, servantID, masterID); err != nil {
		return dberr.Wrap(err, "delete_contract")
	}
	return nil
}
