package bootstrap

import (
	"fmt"
	"strings"
)

// Sink writes a key/value pair into the process environment. os.Setenv
// satisfies this signature.
type Sink func(key, value string) error

// Key derives the environment variable key for a secret name by taking the
// substring after the first occurrence of prefix. If the prefix does not
// occur in the name, the name is returned unchanged; the store-side filter
// guarantees the prefix in normal operation, so this is a fallback only.
func Key(name, prefix string) string {
	if prefix == "" {
		return name
	}

	if idx := strings.Index(name, prefix); idx >= 0 {
		return name[idx+len(prefix):]
	}

	return name
}

// Merge writes each secret value into the environment sink under its derived
// key, overwriting existing values. It returns the mapping it wrote, keyed by
// derived key, so callers can log which variables were touched.
func Merge(values map[string]string, prefix string, set Sink) (map[string]string, error) {
	written := make(map[string]string, len(values))

	for name, value := range values {
		key := Key(name, prefix)

		if err := set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set environment variable %s: %w", key, err)
		}

		written[key] = value
	}

	return written, nil
}
