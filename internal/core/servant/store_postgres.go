package servant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velkorra/chaldea/internal/core/skill"
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

// servantSelect is the shared projection; nullable text columns are
// flattened to "".
func servantSelect() string {
	return fmt.Sprintf(
		`%s, %s, %s, %s, %s, %s, COALESCE(%s, ''), COALESCE(%s, '')`,
		schema.Servant.ID, schema.Servant.Class, schema.Servant.Name,
		schema.Servant.AscensionLevel, schema.Servant.Level, schema.Servant.State,
		schema.Servant.Alignment, schema.Servant.Gender,
	)
}

func scanServant(row interface{ Scan(...any) error }) (*Servant, error) {
	s := &Servant{}
	err := row.Scan(
		&s.ID, &s.Class, &s.Name,
		&s.AscensionLevel, &s.Level, &s.State,
		&s.Alignment, &s.Gender,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) ListServants(context context.Context) ([]*Servant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC
	`, servantSelect(), schema.Servant.Table, schema.Servant.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_servants")
	}
	defer rows.Close()

	var servants []*Servant
	for rows.Next() {
		s, err := scanServant(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_servant")
		}
		servants = append(servants, s)
	}

	return servants, rows.Err()
}

func (repository *PostgresRepository) ListWithLocalizations(context context.Context) ([]*Servant, error) {
	servants, err := repository.ListServants(context)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC
	`,
		localizationSelect(),
		schema.ServantLocalization.Table,
		schema.ServantLocalization.ServantID, schema.ServantLocalization.Language,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_localizations")
	}
	defer rows.Close()

	byServant := make(map[int]*Servant, len(servants))
	for _, s := range servants {
		s.Localizations = []*Localization{}
		byServant[s.ID] = s
	}

	for rows.Next() {
		loc, err := scanLocalization(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_localization")
		}
		if s, ok := byServant[loc.ServantID]; ok {
			s.Localizations = append(s.Localizations, loc)
		}
	}

	return servants, rows.Err()
}

func (repository *PostgresRepository) GetServant(context context.Context, id int) (*Servant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, servantSelect(), schema.Servant.Table, schema.Servant.ID)

	s, err := scanServant(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_servant")
	}

	locQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		localizationSelect(),
		schema.ServantLocalization.Table,
		schema.ServantLocalization.ServantID, schema.ServantLocalization.Language,
	)

	rows, err := repository.db.Query(context, locQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_servant_localizations")
	}
	defer rows.Close()

	s.Localizations = []*Localization{}
	for rows.Next() {
		loc, err := scanLocalization(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_localization")
		}
		s.Localizations = append(s.Localizations, loc)
	}

	return s, rows.Err()
}

func (repository *PostgresRepository) CreateServant(context context.Context, s *Servant) error {
	return repository.insertServant(context, repository.db, s)
}

// querier covers both the pool and an open transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (repository *PostgresRepository) insertServant(ctx context.Context, db querier, s *Servant) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		RETURNING %s, %s, %s, %s
	`,
		schema.Servant.Table,
		schema.Servant.Name, schema.Servant.Class, schema.Servant.Alignment, schema.Servant.Gender,
		schema.Servant.ID, schema.Servant.AscensionLevel, schema.Servant.Level, schema.Servant.State,
	)

	err := db.QueryRow(ctx, query, s.Name, s.Class, s.Alignment, s.Gender).Scan(
		&s.ID, &s.AscensionLevel, &s.Level, &s.State,
	)
	if err != nil {
		return dberr.Wrap(err, "create_servant")
	}
	return nil
}

func (repository *PostgresRepository) UpdateServant(context context.Context, id int, update Update) (*Servant, error) {
	set := []string{}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, column+" = $"+strconv.Itoa(len(args)))
	}

	if update.Name != nil {
		appendSet(schema.Servant.Name, *update.Name)
	}
	if update.Class != nil {
		appendSet(schema.Servant.Class, *update.Class)
	}
	if update.AscensionLevel != nil {
		appendSet(schema.Servant.AscensionLevel, *update.AscensionLevel)
	}
	if update.Level != nil {
		appendSet(schema.Servant.Level, *update.Level)
	}
	if update.State != nil {
		appendSet(schema.Servant.State, *update.State)
	}
	if update.Alignment != nil {
		appendSet(schema.Servant.Alignment, *update.Alignment)
	}
	if update.Gender != nil {
		appendSet(schema.Servant.Gender, *update.Gender)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Servant.Table, strings.Join(set, ", "), schema.Servant.ID,
		servantSelect(),
	)

	s, err := scanServant(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "update_servant")
	}

	return s, nil
}

func (repository *PostgresRepository) DeleteServant(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Servant.Table, schema.Servant.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_servant")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Localizations

func localizationSelect() string {
	t := schema.ServantLocalization
	return fmt.Sprintf(
		`%s, %s, %s, COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, '')`,
		t.ID, t.ServantID, t.Language,
		t.Name, t.Description, t.History, t.PrototypePerson,
		t.Illustrator, t.VoiceActor, t.Temper, t.Intro,
	)
}

func scanLocalization(row interface{ Scan(...any) error }) (*Localization, error) {
	loc := &Localization{}
	err := row.Scan(
		&loc.ID, &loc.ServantID, &loc.Language,
		&loc.Name, &loc.Description, &loc.History, &loc.PrototypePerson,
		&loc.Illustrator, &loc.VoiceActor, &loc.Temper, &loc.Intro,
	)
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func (repository *PostgresRepository) GetLocalization(context context.Context, servantID int, language string) (*Localization, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		localizationSelect(),
		schema.ServantLocalization.Table,
		schema.ServantLocalization.ServantID, schema.ServantLocalization.Language,
	)

	loc, err := scanLocalization(repository.db.QueryRow(context, query, servantID, language))
	if err != nil {
		return nil, dberr.Wrap(err, "get_localization")
	}
	return loc, nil
}

func (repository *PostgresRepository) FirstLocalization(context context.Context, servantID int) (*Localization, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
		LIMIT 1
	`,
		localizationSelect(),
		schema.ServantLocalization.Table,
		schema.ServantLocalization.ServantID, schema.ServantLocalization.Language,
	)

	loc, err := scanLocalization(repository.db.QueryRow(context, query, servantID))
	if err != nil {
		return nil, dberr.Wrap(err, "first_localization")
	}
	return loc, nil
}

func (repository *PostgresRepository) UpsertLocalization(context context.Context, loc *Localization) error {
	t := schema.ServantLocalization
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s
		RETURNING %s
	`,
		t.Table,
		t.ServantID, t.Language, t.Name, t.Description, t.History,
		t.PrototypePerson, t.Illustrator, t.VoiceActor, t.Temper, t.Intro,
		t.ServantID, t.Language,
		t.Name, t.Name, t.Description, t.Description, t.History, t.History,
		t.PrototypePerson, t.PrototypePerson, t.Illustrator, t.Illustrator,
		t.VoiceActor, t.VoiceActor, t.Temper, t.Temper, t.Intro, t.Intro,
		t.ID,
	)

	err := repository.db.QueryRow(context, query,
		loc.ServantID, loc.Language, loc.Name, loc.Description, loc.History,
		loc.PrototypePerson, loc.Illustrator, loc.VoiceActor, loc.Temper, loc.Intro,
	).Scan(&loc.ID)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.ForeignKey("Servant does not exist")
		}
		return dberr.Wrap(err, "upsert_localization")
	}
	return nil
}

// # Pictures

func (repository *PostgresRepository) AddPicture(context context.Context, servantID, grade int, path string) (*Picture, error) {
	return repository.insertPicture(context, repository.db, servantID, grade, path)
}

func (repository *PostgresRepository) insertPicture(ctx context.Context, db querier, servantID, grade int, path string) (*Picture, error) {
	t := schema.ServantPicture
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s, %s, %s
	`,
		t.Table, t.ServantID, t.Grade, t.Picture,
		t.ServantID, t.Grade, t.Picture, t.Picture,
		t.ServantID, t.Grade, t.Picture,
	)

	p := &Picture{}
	err := db.QueryRow(ctx, query, servantID, grade, path).Scan(&p.ServantID, &p.Grade, &p.Path)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return nil, apperr.ForeignKey("Servant does not exist")
		}
		return nil, dberr.Wrap(err, "add_picture")
	}
	return p, nil
}

func (repository *PostgresRepository) GetPicture(context context.Context, servantID, grade int) (string, error) {
	t := schema.ServantPicture
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`, t.Picture, t.Table, t.ServantID, t.Grade)

	var path string
	if err := repository.db.QueryRow(context, query, servantID, grade).Scan(&path); err != nil {
		return "", dberr.Wrap(err, "get_picture")
	}
	return path, nil
}

// CreateWithPicture runs both inserts in one transaction so a failed picture
// write never leaves a half-created servant behind. The file write happens
// between the two inserts, once the generated id is known; if the commit
// itself fails the orphan file is accepted.
func (repository *PostgresRepository) CreateWithPicture(context context.Context, s *Servant, grade int, savePicture func(servantID int) (string, error)) (*Picture, error) {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_create_with_picture")
	}
	defer tx.Rollback(context)

	if err := repository.insertServant(context, tx, s); err != nil {
		return nil, err
	}

	path, err := savePicture(s.ID)
	if err != nil {
		return nil, err
	}

	p, err := repository.insertPicture(context, tx, s.ID, grade, path)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_create_with_picture")
	}
	return p, nil
}

// # Skills

func (repository *PostgresRepository) ListServantSkills(context context.Context, servantID int) ([]*skill.Skill, error) {
	t := schema.Skill
	j := schema.ServantSkill
	query := fmt.Sprintf(`
		SELECT s.%s, COALESCE(s.%s, ''), COALESCE(s.%s, ''), s.%s, COALESCE(s.%s, ''),
		       COALESCE(s.%s, ''), COALESCE(s.%s, ''), COALESCE(s.%s, '')
		FROM %s s
		JOIN %s link ON link.%s = s.%s
		WHERE link.%s = $1
		ORDER BY s.%s ASC
	`,
		t.ID, t.SkillType, t.Rank, t.Name, t.NameRu,
		t.Description, t.DescriptionRu, t.Icon,
		t.Table,
		j.Table, j.SkillID, t.ID,
		j.ServantID,
		t.ID,
	)

	rows, err := repository.db.Query(context, query, servantID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_servant_skills")
	}
	defer rows.Close()

	var skills []*skill.Skill
	for rows.Next() {
		s := &skill.Skill{}
		err := rows.Scan(&s.ID, &s.SkillType, &s.Rank, &s.Name, &s.NameRu, &s.Description, &s.DescriptionRu, &s.Icon)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_servant_skill")
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

func (repository *PostgresRepository) AssignSkill(context context.Context, servantID, skillID int) error {
	j := schema.ServantSkill
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, $2)
	`, j.Table, j.ServantID, j.SkillID)

	if _, err := repository.db.Exec(context, query, servantID, skillID); err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Skill already assigned")
		}
		return dberr.Wrap(err, "assign_skill")
	}
	return nil
}

func (repository *PostgresRepository) UnassignSkill(context context.Context, servantID, skillID int) error {
	j := schema.ServantSkill
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1 AND %s = $2
	`, j.Table, j.ServantID, j.SkillID)

	cmd, err := repository.db.Exec(context, query, servantID, skillID)
	if err != nil {
		return dberr.Wrap(err, "unassign_skill")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Noble phantasms

func phantasmSelect() string {
	t := schema.NoblePhantasm
	return fmt.Sprintf(
		`%s, %s, COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, '')`,
		t.ServantID, t.Name, t.Rank, t.ActivationType, t.Description,
	)
}

func (repository *PostgresRepository) ListPhantasms(context context.Context) ([]*NoblePhantasm, error) {
	t := schema.NoblePhantasm
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC
	`, phantasmSelect(), t.Table, t.ServantID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_phantasms")
	}
	defer rows.Close()

	var phantasms []*NoblePhantasm
	for rows.Next() {
		np := &NoblePhantasm{}
		if err := rows.Scan(&np.ServantID, &np.Name, &np.Rank, &np.ActivationType, &np.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_phantasm")
		}
		phantasms = append(phantasms, np)
	}

	return phantasms, rows.Err()
}

func (repository *PostgresRepository) GetPhantasm(context context.Context, servantID int) (*NoblePhantasm, error) {
	t := schema.NoblePhantasm
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, phantasmSelect(), t.Table, t.ServantID)

	np := &NoblePhantasm{}
	err := repository.db.QueryRow(context, query, servantID).Scan(
		&np.ServantID, &np.Name, &np.Rank, &np.ActivationType, &np.Description,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_phantasm")
	}
	return np, nil
}

func (repository *PostgresRepository) CreatePhantasm(context context.Context, np *NoblePhantasm) error {
	t := schema.NoblePhantasm
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
	`,
		t.Table, t.ServantID, t.Name, t.Rank, t.ActivationType, t.Description,
	)

	_, err := repository.db.Exec(context, query,
		np.ServantID, np.Name, np.Rank, np.ActivationType, np.Description,
	)
	if err != nil {
		switch {
		case dberr.IsUniqueViolation(err):
			return apperr.Conflict("Noble phantasm already exists")
		case dberr.IsForeignKeyViolation(err):
			return apperr.ForeignKey("Servant does not exist")
		}
		return dberr.Wrap(err, "create_phantasm")
	}
	return nil
}

func (repository *PostgresRepository) UpdatePhantasm(context context.Context, np *NoblePhantasm) error {
	t := schema.NoblePhantasm
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NULLIF($3, ''), %s = NULLIF($4, ''), %s = NULLIF($5, '')
		WHERE %s = $1
	`,
		t.Table, t.Name, t.Rank, t.ActivationType, t.Description, t.ServantID,
	)

	cmd, err := repository.db.Exec(context, query,
		np.ServantID, np.Name, np.Rank, np.ActivationType, np.Description,
	)
	if err != nil {
		return dberr.Wrap(err, "update_phantasm")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeletePhantasm(context context.Context, servantID int) error {
	t := schema.NoblePhantasm
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ServantID)

	cmd, err := repository.db.Exec(context, query, servantID)
	if err != nil {
		return dberr.Wrap(err, "delete_phantasm")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
