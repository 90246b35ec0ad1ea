package types

// DatasetConfig holds settings for reading the movie CSV.
type DatasetConfig struct {
	// CSV is the path to the movie dataset (IMDB Top 1000 column layout).
	CSV string `json:"csv" yaml:"csv" mapstructure:"csv"`
}

// CatalogConfig holds settings for the SQLite movie catalog.
type CatalogConfig struct {
	// Dir is the directory that holds cinematch.db (default "catalog").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// OutputFormat selects how a ranking is presented.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// OutputConfig holds presentation settings for the rank command.
type OutputConfig struct {
	// Format selects the output format: table, json, or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Limit caps the number of displayed rows. Zero shows the full ranking;
	// it never affects what the ranker computes.
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console or json (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// AppConfig groups all settings loaded from file, environment, and flags.
type AppConfig struct {
	Dataset DatasetConfig `json:"dataset" yaml:"dataset" mapstructure:"dataset"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
