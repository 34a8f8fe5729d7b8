package campaign

// Config holds configuration for the campaign code spreadsheet.
type Config struct {
	// Object is the storage key of the sheet (.xlsx or .csv).
	// A key ending in "/" selects the newest sheet under that prefix.
	Object string `mapstructure:"object" default:"campaign/codes.xlsx"`
	// Sheet is the worksheet to read from .xlsx files. Empty selects the first one.
	Sheet string `mapstructure:"sheet" default:""`
}
