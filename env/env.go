package env

import (
	"os"
)

// Get returns the value of an environment variable or a default value if it's not set.
func Get(key, defaultValue string) string {
	value := defaultValue
	if v, ok := os.LookupEnv(key); ok && v != "" {
		value = v
	}
	return value
}
