package secretstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// FetchValues retrieves the current values for the given secret names and
// returns them as a name to value mapping. The store paginates large batches
// internally; each page request carries the full name list plus the
// continuation token from the previous page. If the store returns the same
// name more than once, the last value wins.
func (s *Store) FetchValues(ctx context.Context, names []string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	if len(names) == 0 {
		return values, nil
	}

	input := &secretsmanager.BatchGetSecretValueInput{
		SecretIdList: names,
	}

	for {
		out, err := s.client.BatchGetSecretValue(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get secret value: %w", ErrStoreRequest, err)
		}

		// Per-secret errors in an otherwise successful page are fatal too;
		// partial application of values is not allowed.
		if len(out.Errors) > 0 {
			apiErr := out.Errors[0]

			return nil, fmt.Errorf("%w: failed to get secret value: %s: %s",
				ErrStoreRequest, aws.ToString(apiErr.SecretId), aws.ToString(apiErr.Message))
		}

		for _, entry := range out.SecretValues {
			if entry.Name == nil {
				continue
			}

			if entry.SecretString != nil {
				values[*entry.Name] = aws.ToString(entry.SecretString)
				continue
			}

			values[*entry.Name] = string(entry.SecretBinary)
		}

		if aws.ToString(out.NextToken) == "" {
			break
		}

		input.NextToken = out.NextToken
	}

	return values, nil
}
