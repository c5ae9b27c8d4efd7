package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"gopkg.in/validator.v2"
)

// EnvVarFileMapping links a config value that can be provided either directly
// via an environment variable or indirectly via a *_FILE variable pointing at
// a file (e.g. a Docker secret). The file variant is loaded into FileValue by
// the env parser; ResolveFileMappings copies it over into EnvValue.
type EnvVarFileMapping struct {
	EnvName    string  // EnvName is the name of the direct environment variable, used in error messages
	EnvValue   *string // EnvValue points at the directly provided value
	FileValue  *string // FileValue points at the value read from the *_FILE variant
	AllowUnset bool    // AllowUnset permits both variants to be absent
}

// ParseConfigFromEnv parses the given config struct from environment
// variables, resolves file-based variable indirections and validates the
// result.
func ParseConfigFromEnv(cfg any, mappings *[]EnvVarFileMapping) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}

	if mappings != nil {
		if err := ResolveFileMappings(mappings); err != nil {
			return err
		}
	}

	return validator.Validate(cfg)
}

// ResolveFileMappings applies the file-based environment variable
// indirections. For each mapping exactly one of the two variants must be set
// unless AllowUnset is true.
func ResolveFileMappings(mappings *[]EnvVarFileMapping) error {
	for _, m := range *mappings {
		switch {
		case *m.FileValue != "" && *m.EnvValue != "":
			return fmt.Errorf("%w: %s or %s", ErrBothSecretsSet, m.EnvName, m.EnvName+"_FILE")
		case *m.FileValue != "":
			*m.EnvValue = *m.FileValue
		case *m.EnvValue == "" && !m.AllowUnset:
			return fmt.Errorf("%w: %s or %s", ErrBothSecretsNotSet, m.EnvName, m.EnvName+"_FILE")
		}
	}

	return nil
}
