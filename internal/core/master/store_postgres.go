package master

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

func (repository *PostgresRepository) ListMasters(context context.Context) ([]*Master, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Master.ID, schema.Master.Nickname, schema.Master.DisplayName,
		schema.Master.Level, schema.Master.RegisteredAt,
		schema.Master.Table, schema.Master.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_masters")
	}
	defer rows.Close()

	var masters []*Master
	for rows.Next() {
		m := &Master{}
		if err := rows.Scan(&m.ID, &m.Nickname, &m.DisplayName, &m.Level, &m.RegisteredAt); err != nil {
			return nil, dberr.Wrap(err, "scan_master")
		}
		masters = append(masters, m)
	}

	return masters, rows.Err()
}

func (repository *PostgresRepository) GetMaster(context context.Context, id int) (*Master, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Master.ID, schema.Master.Nickname, schema.Master.DisplayName,
		schema.Master.Level, schema.Master.RegisteredAt,
		schema.Master.Table, schema.Master.ID,
	)

	m := &Master{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&m.ID, &m.Nickname, &m.DisplayName, &m.Level, &m.RegisteredAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_master")
	}

	return m, nil
}

func (repository *PostgresRepository) CreateMaster(context context.Context, m *Master) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s
	`,
		schema.Master.Table, schema.Master.Nickname, schema.Master.DisplayName,
		schema.Master.ID, schema.Master.Level, schema.Master.RegisteredAt,
	)

	err := repository.db.QueryRow(context, query, m.Nickname, m.DisplayName).Scan(
		&m.ID, &m.Level, &m.RegisteredAt,
	)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Master with this nickname already exists")
		}
		return dberr.Wrap(err, "create_master")
	}

	return nil
}

func (repository *PostgresRepository) UpdateMaster(context context.Context, id int, update Update) (*Master, error) {
	// Build SET clauses only for the fields the caller supplied.
	set := []string{}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, column+" = $"+strconv.Itoa(len(args)))
	}

	if update.Nickname != nil {
		appendSet(schema.Master.Nickname, *update.Nickname)
	}
	if update.DisplayName != nil {
		appendSet(schema.Master.DisplayName, *update.DisplayName)
	}
	if update.Level != nil {
		appendSet(schema.Master.Level, *update.Level)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $1
		RETURNING %s, %s, COALESCE(%s, ''), %s, %s
	`,
		schema.Master.Table, strings.Join(set, ", "), schema.Master.ID,
		schema.Master.ID, schema.Master.Nickname, schema.Master.DisplayName,
		schema.Master.Level, schema.Master.RegisteredAt,
	)

	m := &Master{}
	err := repository.db.QueryRow(context, query, args...).Scan(
		&m.ID, &m.Nickname, &m.DisplayName, &m.Level, &m.RegisteredAt,
	)
	if err != nil {
		switch {
		case dberr.IsUniqueViolation(err):
			return nil, apperr.Conflict("Master with this nickname already exists")
		case dberr.IsCheckViolation(err) && dberr.ConstraintName(err) == schema.MasterLevelCheck:
			return nil, apperr.ValidationError("Level must be positive")
		}
		return nil, dberr.Wrap(err, "update_master")
	}

	return m, nil
}

func (repository *PostgresRepository) DeleteMaster(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Master.Table, schema.Master.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_master")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ActiveContractCount(context context.Context, masterID int) (int, error) {
	query := fmt.Sprintf(`
		SELECT count(*)
		FROM %s
		WHERE %s = $1 AND %s = 'active'
	`,
		schema.Contract.Table, schema.Contract.MasterID, schema.Contract.Status,
	)

	var count int
	if err := repository.db.QueryRow(context, query, masterID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_active_contracts")
	}

	return count, nil
}
