package config

// ConfigError is a custom error type for configuration errors
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownLevel   ConfigError = "unknown difficulty level"
	ErrInvalidProfile ConfigError = "invalid difficulty profile"
	ErrInvalidLeague  ConfigError = "invalid league"
)
