package skill

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velkorra/chaldea/internal/platform/database/schema"
	"github.com/velkorra/chaldea/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListSkills(context context.Context) ([]*Skill, error) {
	query := fmt.Sprintf(`
		SELECT %s, COALESCE(%s, ''), COALESCE(%s, ''), %s, COALESCE(%s, ''),
		       COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, '')
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Skill.ID, schema.Skill.SkillType, schema.Skill.Rank, schema.Skill.Name,
		schema.Skill.NameRu, schema.Skill.Description, schema.Skill.DescriptionRu, schema.Skill.Icon,
		schema.Skill.Table, schema.Skill.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_skills")
	}
	defer rows.Close()

	var skills []*Skill
	for rows.Next() {
		s := &Skill{}
		if err := rows.Scan(&s.ID, &s.SkillType, &s.Rank, &s.Name, &s.NameRu, &s.Description, &s.DescriptionRu, &s.Icon); err != nil {
			return nil, dberr.Wrap(err, "scan_skill")
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

func (repository *PostgresRepository) GetSkill(context context.Context, id int) (*Skill, error) {
	query := fmt.Sprintf(`
		SELECT %s, COALESCE(%s, ''), COALESCE(%s, ''), %s, COALESCE(%s, ''),
		       COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, '')
		FROM %s
		WHERE %s = $1
	`,
		schema.Skill.ID, schema.Skill.SkillType, schema.Skill.Rank, schema.Skill.Name,
		schema.Skill.NameRu, schema.Skill.Description, schema.Skill.DescriptionRu, schema.Skill.Icon,
		schema.Skill.Table, schema.Skill.ID,
	)

	s := &Skill{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.SkillType, &s.Rank, &s.Name, &s.NameRu, &s.Description, &s.DescriptionRu, &s.Icon,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_skill")
	}

	return s, nil
}

func (repository *PostgresRepository) CreateSkill(context context.Context, s *Skill) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.Skill.Table, schema.Skill.SkillType, schema.Skill.Rank, schema.Skill.Name,
		schema.Skill.NameRu, schema.Skill.Description, schema.Skill.DescriptionRu,
		schema.Skill.ID,
	)

	err := repository.db.QueryRow(context, query,
		s.SkillType, s.Rank, s.Name, s.NameRu, s.Description, s.DescriptionRu,
	).Scan(&s.ID)
	return dberr.Wrap(err, "create_skill")
}

func (repository *PostgresRepository) UpdateSkill(context context.Context, s *Skill) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1
	`,
		schema.Skill.Table, schema.Skill.SkillType, schema.Skill.Rank, schema.Skill.Name,
		schema.Skill.NameRu, schema.Skill.Description, schema.Skill.DescriptionRu,
		schema.Skill.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		s.ID, s.SkillType, s.Rank, s.Name, s.NameRu, s.Description, s.DescriptionRu,
	)
	if err != nil {
		return dberr.Wrap(err, "update_skill")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteSkill(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Skill.Table, schema.Skill.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_skill")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetIcon(context context.Context, id int, path string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Skill.Table, schema.Skill.Icon, schema.Skill.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, path)
	if err != nil {
		return dberr.Wrap(err, "set_skill_icon")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) GetIcon(context context.Context, id int) (string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Skill.Icon, schema.Skill.Table, schema.Skill.ID,
	)

	var icon *string
	if err := repository.db.QueryRow(context, query, id).Scan(&icon); err != nil {
		return "", dberr.Wrap(err, "get_skill_icon")
	}
	if icon == nil {
		return "", nil
	}
	return *icon, nil
}
