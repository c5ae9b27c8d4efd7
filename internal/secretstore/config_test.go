package secretstore

import (
	"errors"
	"os"
	"path"
	"testing"

	"github.com/andrii-androshchuk/envseed/internal/config"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		keyFile     string
		expectedErr error
	}{
		{
			name: "valid config",
			envVars: map[string]string{
				"SECRET_PROVIDER_REGION":            "eu-central-1",
				"SECRET_PROVIDER_ACCESS_KEY_ID":     "AKIAEXAMPLE",
				"SECRET_PROVIDER_SECRET_ACCESS_KEY": "s3cret",
			},
		},
		{
			name: "secret key from file",
			envVars: map[string]string{
				"SECRET_PROVIDER_REGION":        "eu-central-1",
				"SECRET_PROVIDER_ACCESS_KEY_ID": "AKIAEXAMPLE",
			},
			keyFile: "s3cret-from-file",
		},
		{
			name: "both secret key variants set",
			envVars: map[string]string{
				"SECRET_PROVIDER_REGION":            "eu-central-1",
				"SECRET_PROVIDER_ACCESS_KEY_ID":     "AKIAEXAMPLE",
				"SECRET_PROVIDER_SECRET_ACCESS_KEY": "s3cret",
			},
			keyFile:     "s3cret-from-file",
			expectedErr: config.ErrBothSecretsSet,
		},
		{
			name: "missing secret key",
			envVars: map[string]string{
				"SECRET_PROVIDER_REGION":        "eu-central-1",
				"SECRET_PROVIDER_ACCESS_KEY_ID": "AKIAEXAMPLE",
			},
			expectedErr: config.ErrBothSecretsNotSet,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"SECRET_PROVIDER_REGION", "SECRET_PROVIDER_ACCESS_KEY_ID", "SECRET_PROVIDER_SECRET_ACCESS_KEY", "SECRET_PROVIDER_SECRET_ACCESS_KEY_FILE"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			wantKey := tt.envVars["SECRET_PROVIDER_SECRET_ACCESS_KEY"]

			if tt.keyFile != "" {
				keyFilePath := path.Join(t.TempDir(), "secret_access_key")
				if err := os.WriteFile(keyFilePath, []byte(tt.keyFile), 0o600); err != nil {
					t.Fatalf("failed to write key file: %v", err)
				}

				t.Setenv("SECRET_PROVIDER_SECRET_ACCESS_KEY_FILE", keyFilePath)

				if tt.expectedErr == nil {
					wantKey = tt.keyFile
				}
			}

			cfg, err := GetConfig()
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error to be '%v', got '%v'", tt.expectedErr, err)
			}

			if tt.expectedErr != nil {
				return
			}

			if cfg.Region != tt.envVars["SECRET_PROVIDER_REGION"] {
				t.Errorf("expected Region to be '%s', got '%s'", tt.envVars["SECRET_PROVIDER_REGION"], cfg.Region)
			}

			if cfg.SecretAccessKey != wantKey {
				t.Errorf("expected SecretAccessKey to be '%s', got '%s'", wantKey, cfg.SecretAccessKey)
			}
		})
	}
}
