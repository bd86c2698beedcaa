package config

// Defaults.
const (
	DefaultHistoryLimit  = 25
	DefaultMaxInputBytes = 64 * 1024
	DefaultDebounceMs    = 500
	DefaultTheme         = "punk"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),

		History: HistoryConfig{
			Limit: DefaultHistoryLimit,
		},

		Input: InputConfig{
			MaxBytes: DefaultMaxInputBytes,
		},

		UI: UIConfig{
			DebounceMs: DefaultDebounceMs,
			Theme:      DefaultTheme,
		},
	}
}
