package servant_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkorra/chaldea/internal/core/servant"
)

// fakeReportRepository returns canned projection rows; the service adds no
// logic of its own on the read path, so the fixtures come back untouched.
type fakeReportRepository struct {
	levels        []*servant.ClassLevelStats
	summoned      []*servant.SummonedServant
	descriptions  []*servant.FemaleDescription
	top           []*servant.TopServant
	localizations []*servant.LocalizedText
	err           error
}

func (r *fakeReportRepository) LevelStatistics(_ context.Context) ([]*servant.ClassLevelStats, error) {
	return r.levels, r.err
}

func (r *fakeReportRepository) SummonedServants(_ context.Context) ([]*servant.SummonedServant, error) {
	return r.summoned, r.err
}

func (r *fakeReportRepository) FemaleDescriptions(_ context.Context) ([]*servant.FemaleDescription, error) {
	return r.descriptions, r.err
}

func (r *fakeReportRepository) TopServantsPerMaster(_ context.Context) ([]*servant.TopServant, error) {
	return r.top, r.err
}

func (r *fakeReportRepository) AllLocalizations(_ context.Context) ([]*servant.LocalizedText, error) {
	return r.localizations, r.err
}

func newReportService(reports servant.ReportRepository) *servant.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return servant.NewService(nil, reports, logger)
}

/*
TestTopServantsPerMaster_Mapping feeds the service the ranking a
[90, 80, 80, 50] roster produces: exactly three rows for the master, both
level-80 servants present, ordered by rank.
*/
func TestTopServantsPerMaster_Mapping(t *testing.T) {
	ranked := []*servant.TopServant{
		{MasterNickname: "rin", ServantName: "Artoria", ServantLevel: 90},
		{MasterNickname: "rin", ServantName: "Nero", ServantLevel: 80},
		{MasterNickname: "rin", ServantName: "Tamamo", ServantLevel: 80},
	}
	service := newReportService(&fakeReportRepository{top: ranked})

	got, err := service.TopServantsPerMaster(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, ranked, got)
	assert.Equal(t, 80, got[1].ServantLevel)
	assert.Equal(t, 80, got[2].ServantLevel)
}

/*
TestReports_PassThrough covers the remaining projections: rows come back
exactly as the repository produced them.
*/
func TestReports_PassThrough(t *testing.T) {
	reports := &fakeReportRepository{
		levels: []*servant.ClassLevelStats{
			{ClassName: "saber", MaxLevel: 90, MinLevel: 10, AvgLevel: 47.5},
		},
		summoned: []*servant.SummonedServant{
			{ServantName: "Artoria", LocalizationName: "Артория", MasterNickname: "rin"},
		},
		descriptions: []*servant.FemaleDescription{
			{ServantName: "Artoria", Language: "en", Description: "King of Knights"},
		},
		localizations: []*servant.LocalizedText{
			{ServantName: "Artoria", LocalizationLanguage: "en", LocalizationName: "Artoria"},
		},
	}
	service := newReportService(reports)
	ctx := context.Background()

	levels, err := service.LevelStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, reports.levels, levels)

	summoned, err := service.SummonedServants(ctx)
	require.NoError(t, err)
	assert.Equal(t, reports.summoned, summoned)

	descriptions, err := service.FemaleDescriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, reports.descriptions, descriptions)

	localizations, err := service.AllLocalizations(ctx)
	require.NoError(t, err)
	assert.Equal(t, reports.localizations, localizations)
}

/*
TestReports_Error propagates repository failures unchanged.
*/
func TestReports_Error(t *testing.T) {
	boom := errors.New("connection reset")
	service := newReportService(&fakeReportRepository{err: boom})
	ctx := context.Background()

	_, err := service.LevelStatistics(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = service.SummonedServants(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = service.FemaleDescriptions(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = service.TopServantsPerMaster(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = service.AllLocalizations(ctx)
	assert.ErrorIs(t, err, boom)
}
