package servant

// Read-only reporting projections. None of these mutate state; each maps
// one-to-one onto a reporting endpoint.

// ClassLevelStats is one row of the per-class level aggregate.
type ClassLevelStats struct {
	ClassName string  `json:"class_name"`
	MaxLevel  int     `json:"max_level"`
	MinLevel  int     `json:"min_level"`
	AvgLevel  float64 `json:"avg_level"`
}

// SummonedServant is one active contract pairing with its localized name.
type SummonedServant struct {
	ServantName      string `json:"servant_name"`
	LocalizationName string `json:"localization_name"`
	MasterNickname   string `json:"master_nickname"`
}

// FemaleDescription is one localized description row of the gender filter.
type FemaleDescription struct {
	ServantName string `json:"servant_name"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

// TopServant is one row of the top-3-per-master ranking.
type TopServant struct {
	MasterNickname string `json:"master_nickname"`
	ServantName    string `json:"servant_name"`
	ServantLevel   int    `json:"servant_level"`
}

// LocalizedText is one row of the bulk localization projection.
type LocalizedText struct {
	ServantName             string `json:"servant_name"`
	LocalizationLanguage    string `json:"localization_language"`
	LocalizationName        string `json:"localization_name"`
	LocalizationDescription string `json:"localization_description"`
}
