package servant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestTopServantsQuery pins the ranking contract: at most three rows per
master, ranked by level descending with ascending servant id as the
tie-break, and the English localization preferred for the displayed name.
A master whose servants hold levels 90, 80, 80 and 50 therefore yields
exactly three rows including both level-80 servants, in a stable order.
*/
func TestTopServantsQuery(t *testing.T) {
	query := topServantsQuery()

	assert.Contains(t, query, "ROW_NUMBER() OVER")
	assert.Contains(t, query, "PARTITION BY c.master_id")
	assert.Contains(t, query, "ORDER BY s.level DESC, s.id ASC")
	assert.Contains(t, query, "rank <= 3")
	assert.Contains(t, query, "COALESCE(loc.name, s.name)")
}

/*
TestReportQueries_Filters pins the row filters of the remaining
projections: summoned servants count only active contracts, the gender
report only female servants, and the localization projections only the
supported languages.
*/
func TestReportQueries_Filters(t *testing.T) {
	assert.Contains(t, summonedServantsQuery(), "WHERE c.status = 'active'")

	assert.Contains(t, femaleDescriptionsQuery(), "s.gender = 'female'")
	assert.Contains(t, femaleDescriptionsQuery(), "loc.language = ANY($1)")

	assert.Contains(t, allLocalizationsQuery(), "loc.language = ANY($1)")

	assert.Contains(t, levelStatisticsQuery(), "GROUP BY class")
	assert.Contains(t, levelStatisticsQuery(), "AVG(level)::float8")
}
