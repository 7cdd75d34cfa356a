// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Azure   AzureConfig   `mapstructure:"azure"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ReadTimeout     int `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// AzureConfig holds the Azure OpenAI connection settings.
type AzureConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Endpoint   string `mapstructure:"endpoint"`
	Deployment string `mapstructure:"deployment"`
	APIVersion string `mapstructure:"api_version"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
}

// Enabled reports whether the credentials allow model calls at all.
// A disabled configuration is not an error: the service starts and
// answers every turn with the model-unavailable notice instead.
func (a AzureConfig) Enabled() bool {
	return a.APIKey != "" && a.Endpoint != ""
}

// ChatConfig holds the per-turn generation defaults and limits.
type ChatConfig struct {
	DefaultMode        string  `mapstructure:"default_mode"`
	DefaultTemperature float64 `mapstructure:"default_temperature"`
	DefaultMaxTokens   int     `mapstructure:"default_max_tokens"`
	MaxTokensLimit     int     `mapstructure:"max_tokens_limit"`
	SessionTTL         int     `mapstructure:"session_ttl"` // milliseconds, 0 keeps sessions forever
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
