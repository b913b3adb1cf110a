package servant

import "context"

// Reporting pass-throughs. The projections are shaped entirely in SQL; the
// service layer only exists so handlers never hold a repository directly.

func (service *Service) LevelStatistics(context context.Context) ([]*ClassLevelStats, error) {
	return service.reports.LevelStatistics(context)
}

func (service *Service) SummonedServants(context context.Context) ([]*SummonedServant, error) {
	return service.reports.SummonedServants(context)
}

func (service *Service) FemaleDescriptions(context context.Context) ([]*FemaleDescription, error) {
	return service.reports.FemaleDescriptions(context)
}

func (service *Service) TopServantsPerMaster(context context.Context) ([]*TopServant, error) {
	return service.reports.TopServantsPerMaster(context)
}

func (service *Service) AllLocalizations(context context.Context) ([]*LocalizedText, error) {
	return service.reports.AllLocalizations(context)
}
