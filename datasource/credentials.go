package datasource

import (
	"errors"
	"os"
	"strings"
)

// ErrNoCredentials is returned when neither the key file nor the environment provides an API key
var ErrNoCredentials = errors.New("key not found")

// LoadAPIKey reads the API key from keyFile, falling back to the envVar environment variable
// when the file is missing or unreadable. Surrounding whitespace is trimmed from either
// source and an empty key counts as absent.
func LoadAPIKey(keyFile, envVar string) (string, error) {
	if keyFile != "" {
		if data, err := os.ReadFile(keyFile); err == nil {
			if key := strings.TrimSpace(string(data)); key != "" {
				return key, nil
			}
		}
	}

	if envVar != "" {
		if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
			return key, nil
		}
	}

	return "", ErrNoCredentials
}
