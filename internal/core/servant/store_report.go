package servant

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velkorra/chaldea/internal/platform/database/schema"
	"github.com/velkorra/chaldea/internal/platform/dberr"
)

// PostgresReportRepository runs the analytical projections. Reads only.
type PostgresReportRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReportRepository(db *pgxpool.Pool) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func levelStatisticsQuery() string {
	return fmt.Sprintf(`
		SELECT %s, MAX(%s), MIN(%s), AVG(%s)::float8
		FROM %s
		GROUP BY %s
		ORDER BY %s ASC
	`,
		schema.Servant.Class, schema.Servant.Level, schema.Servant.Level, schema.Servant.Level,
		schema.Servant.Table,
		schema.Servant.Class, schema.Servant.Class,
	)
}

func (repository *PostgresReportRepository) LevelStatistics(context context.Context) ([]*ClassLevelStats, error) {
	rows, err := repository.db.Query(context, levelStatisticsQuery())
	if err != nil {
		return nil, dberr.Wrap(err, "level_statistics")
	}
	defer rows.Close()

	var stats []*ClassLevelStats
	for rows.Next() {
		row := &ClassLevelStats{}
		if err := rows.Scan(&row.ClassName, &row.MaxLevel, &row.MinLevel, &row.AvgLevel); err != nil {
			return nil, dberr.Wrap(err, "scan_level_statistics")
		}
		stats = append(stats, row)
	}

	return stats, rows.Err()
}

func summonedServantsQuery() string {
	return fmt.Sprintf(`
		SELECT s.%s, COALESCE(loc.%s, ''), m.%s
		FROM %s c
		JOIN %s s ON s.%s = c.%s
		JOIN %s m ON m.%s = c.%s
		LEFT JOIN %s loc ON loc.%s = s.%s AND loc.%s = $1
		WHERE c.%s = 'active'
		ORDER BY m.%s ASC, s.%s ASC
	`,
		schema.Servant.Name, schema.ServantLocalization.Name, schema.Master.Nickname,
		schema.Contract.Table,
		schema.Servant.Table, schema.Servant.ID, schema.Contract.ServantID,
		schema.Master.Table, schema.Master.ID, schema.Contract.MasterID,
		schema.ServantLocalization.Table, schema.ServantLocalization.ServantID, schema.Servant.ID,
		schema.ServantLocalization.Language,
		schema.Contract.Status,
		schema.Master.Nickname, schema.Servant.ID,
	)
}

// SummonedServants pairs each active contract with the master's nickname and
// the servant's Russian localized name.
func (repository *PostgresReportRepository) SummonedServants(context context.Context) ([]*SummonedServant, error) {
	rows, err := repository.db.Query(context, summonedServantsQuery(), LanguageRU)
	if err != nil {
		return nil, dberr.Wrap(err, "summoned_servants")
	}
	defer rows.Close()

	var out []*SummonedServant
	for rows.Next() {
		row := &SummonedServant{}
		if err := rows.Scan(&row.ServantName, &row.LocalizationName, &row.MasterNickname); err != nil {
			return nil, dberr.Wrap(err, "scan_summoned_servant")
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

func femaleDescriptionsQuery() string {
	return fmt.Sprintf(`
		SELECT s.%s, loc.%s, COALESCE(loc.%s, '')
		FROM %s s
		JOIN %s loc ON loc.%s = s.%s
		WHERE s.%s = 'female' AND loc.%s = ANY($1)
		ORDER BY s.%s ASC, loc.%s ASC
	`,
		schema.Servant.Name, schema.ServantLocalization.Language, schema.ServantLocalization.Description,
		schema.Servant.Table,
		schema.ServantLocalization.Table, schema.ServantLocalization.ServantID, schema.Servant.ID,
		schema.Servant.Gender, schema.ServantLocalization.Language,
		schema.Servant.ID, schema.ServantLocalization.Language,
	)
}

func (repository *PostgresReportRepository) FemaleDescriptions(context context.Context) ([]*FemaleDescription, error) {
	rows, err := repository.db.Query(context, femaleDescriptionsQuery(), ReportLanguages)
	if err != nil {
		return nil, dberr.Wrap(err, "female_descriptions")
	}
	defer rows.Close()

	var out []*FemaleDescription
	for rows.Next() {
		row := &FemaleDescription{}
		if err := rows.Scan(&row.ServantName, &row.Language, &row.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_female_description")
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// topServantsQuery ranks each master's servants by level and keeps the top
// three. Equal levels break the tie by ascending servant id, which makes the
// ranking stable. The displayed name prefers the English localization.
func topServantsQuery() string {
	return fmt.Sprintf(`
		SELECT nickname, servant_name, servant_level
		FROM (
			SELECT m.%s AS nickname,
			       COALESCE(loc.%s, s.%s) AS servant_name,
			       s.%s AS servant_level,
			       ROW_NUMBER() OVER (
			           PARTITION BY c.%s
			           ORDER BY s.%s DESC, s.%s ASC
			       ) AS rank
			FROM %s c
			JOIN %s s ON s.%s = c.%s
			JOIN %s m ON m.%s = c.%s
			LEFT JOIN %s loc ON loc.%s = s.%s AND loc.%s = $1
		) ranked
		WHERE rank <= 3
		ORDER BY nickname ASC, rank ASC
	`,
		schema.Master.Nickname,
		schema.ServantLocalization.Name, schema.Servant.Name,
		schema.Servant.Level,
		schema.Contract.MasterID,
		schema.Servant.Level, schema.Servant.ID,
		schema.Contract.Table,
		schema.Servant.Table, schema.Servant.ID, schema.Contract.ServantID,
		schema.Master.Table, schema.Master.ID, schema.Contract.MasterID,
		schema.ServantLocalization.Table, schema.ServantLocalization.ServantID, schema.Servant.ID,
		schema.ServantLocalization.Language,
	)
}

func (repository *PostgresReportRepository) TopServantsPerMaster(context context.Context) ([]*TopServant, error) {
	rows, err := repository.db.Query(context, topServantsQuery(), LanguageEN)
	if err != nil {
		return nil, dberr.Wrap(err, "top_servants_per_master")
	}
	defer rows.Close()

	var out []*TopServant
	for rows.Next() {
		row := &TopServant{}
		if err := rows.Scan(&row.MasterNickname, &row.ServantName, &row.ServantLevel); err != nil {
			return nil, dberr.Wrap(err, "scan_top_servant")
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

func allLocalizationsQuery() string {
	return fmt.Sprintf(`
		SELECT s.%s, loc.%s, COALESCE(loc.%s, ''), COALESCE(loc.%s, '')
		FROM %s s
		JOIN %s loc ON loc.%s = s.%s
		WHERE loc.%s = ANY($1)
		ORDER BY s.%s ASC, loc.%s ASC
	`,
		schema.Servant.Name, schema.ServantLocalization.Language,
		schema.ServantLocalization.Name, schema.ServantLocalization.Description,
		schema.Servant.Table,
		schema.ServantLocalization.Table, schema.ServantLocalization.ServantID, schema.Servant.ID,
		schema.ServantLocalization.Language,
		schema.Servant.ID, schema.ServantLocalization.Language,
	)
}

func (repository *PostgresReportRepository) AllLocalizations(context context.Context) ([]*LocalizedText, error) {
	rows, err := repository.db.Query(context, allLocalizationsQuery(), ReportLanguages)
	if err != nil {
		return nil, dberr.Wrap(err, "all_localizations")
	}
	defer rows.Close()

	var out []*LocalizedText
	for rows.Next() {
		row := &LocalizedText{}
		if err := rows.Scan(&row.ServantName, &row.LocalizationLanguage, &row.LocalizationName, &row.LocalizationDescription); err != nil {
			return nil, dberr.Wrap(err, "scan_localized_text")
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
