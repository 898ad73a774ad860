package analysis

// Settings contains the configurable business constants for report analysis
type Settings struct {
	// StaleDays is the holding time beyond which active inventory counts as stale (default: 90)
	StaleDays int
	// QuickFlipDays is the days-to-sell threshold for counting a sale as a quick flip (default: 14)
	QuickFlipDays int
	// JunkagieUnitEstimate is the flat potential revenue assigned per junkagie item (default: 5.0)
	JunkagieUnitEstimate float64
}

// DefaultSettings returns the default analysis configuration
func DefaultSettings() Settings {
	return Settings{
		StaleDays:            90,
		QuickFlipDays:        14,
		JunkagieUnitEstimate: 5.0,
	}
}
