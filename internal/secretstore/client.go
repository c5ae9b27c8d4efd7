// Package secretstore reads secret values from AWS Secrets Manager. It only
// lists and fetches; creating, rotating or deleting secrets is out of scope.
package secretstore

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

const PathDelimiter = "/"

// API captures the subset of the AWS Secrets Manager client used by the
// store. *secretsmanager.Client satisfies this interface.
type API interface {
	ListSecrets(ctx context.Context, params *secretsmanager.ListSecretsInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.ListSecretsOutput, error)
	BatchGetSecretValue(ctx context.Context, params *secretsmanager.BatchGetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.BatchGetSecretValueOutput, error)
}

// Store wraps the Secrets Manager client with the prefix-scoped listing and
// batched value retrieval the loading pipeline needs.
type Store struct {
	client API
}

// New constructs a Store on top of an existing client.
func New(client API) (*Store, error) {
	if client == nil {
		return nil, errors.New("secretstore: client is required")
	}

	return &Store{client: client}, nil
}

// NewFromConfig initializes a new Store with a Secrets Manager client built
// from the given configuration.
func NewFromConfig(ctx context.Context, cfg *Config) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return &Store{client: secretsmanager.NewFromConfig(awsCfg)}, nil
}

// Prefix builds the full secret name prefix for an environment. The trailing
// delimiter is part of the prefix so that stripping it from a full secret
// name yields a clean environment variable key.
func Prefix(base, environment string) string {
	return base + PathDelimiter + environment + PathDelimiter
}
