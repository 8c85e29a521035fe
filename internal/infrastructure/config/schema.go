package config

// Config represents the complete configuration for gridbrowser.
type Config struct {
	Grid       GridConfig       `mapstructure:"grid" yaml:"grid" toml:"grid" json:"grid"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Navigation NavigationConfig `mapstructure:"navigation" yaml:"navigation" toml:"navigation" json:"navigation"`
	Window     WindowConfig     `mapstructure:"window" yaml:"window" toml:"window" json:"window"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// GridConfig controls the layout created at startup and the URL new panes open.
type GridConfig struct {
	// InitialRows is the number of pane rows created at startup.
	InitialRows int `mapstructure:"initial_rows" yaml:"initial_rows" toml:"initial_rows" json:"initial_rows" jsonschema:"minimum=1,maximum=16,default=1"`
	// InitialColumns is the number of pane columns created at startup.
	InitialColumns int `mapstructure:"initial_columns" yaml:"initial_columns" toml:"initial_columns" json:"initial_columns" jsonschema:"minimum=1,maximum=16,default=1"`
	// DefaultURL is loaded by every newly created pane.
	DefaultURL string `mapstructure:"default_url" yaml:"default_url" toml:"default_url" json:"default_url" jsonschema:"default=http://www.apple.com"`
}

// AppearanceConfig controls the selected pane highlight.
type AppearanceConfig struct {
	// AccentColor is the border color of the selected pane (#rgb or #rrggbb).
	AccentColor string `mapstructure:"accent_color" yaml:"accent_color" toml:"accent_color" json:"accent_color" jsonschema:"pattern=^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$"`
	// BorderWidth is the border width of the selected pane in pixels.
	BorderWidth int `mapstructure:"border_width" yaml:"border_width" toml:"border_width" json:"border_width" jsonschema:"minimum=1,maximum=32,default=4"`
}

// NavigationConfig controls how address entry text is interpreted.
type NavigationConfig struct {
	// NormalizeInput prefixes bare domains such as "example.com" with https://.
	NormalizeInput bool `mapstructure:"normalize_input" yaml:"normalize_input" toml:"normalize_input" json:"normalize_input"`
}

// WindowConfig holds the main window geometry.
type WindowConfig struct {
	Width  int    `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=320"`
	Height int    `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=240"`
	Title  string `mapstructure:"title" yaml:"title" toml:"title" json:"title"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// EnableFileLog writes a JSON copy of every entry to LogDir.
	EnableFileLog bool `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/gridbrowser.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
}
