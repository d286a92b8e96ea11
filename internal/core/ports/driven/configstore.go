package driven

// ConfigStore provides persistent application configuration.
type ConfigStore interface {
	// Get retrieves a value by key, reporting whether it was set.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when unset.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when unset.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false when unset.
	GetBool(key string) bool

	// Set stores a value and persists it.
	Set(key string, value any) error
}
