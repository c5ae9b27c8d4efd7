package secretstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// ListByPrefix returns the names of all secrets whose name begins with
// prefix, following the continuation token across pages until the store
// reports no further results. An empty match is not an error.
func (s *Store) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var names []string

	input := &secretsmanager.ListSecretsInput{
		Filters: []types.Filter{
			{
				Key:    types.FilterNameStringTypeName,
				Values: []string{prefix},
			},
		},
	}

	for {
		out, err := s.client.ListSecrets(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list secrets: %w", ErrStoreRequest, err)
		}

		for _, entry := range out.SecretList {
			if entry.Name == nil {
				continue
			}

			names = append(names, *entry.Name)
		}

		if aws.ToString(out.NextToken) == "" {
			break
		}

		input.NextToken = out.NextToken
	}

	return names, nil
}
