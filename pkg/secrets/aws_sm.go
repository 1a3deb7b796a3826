package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// ManagerAPI captures the Secrets Manager operations the provider uses.
// Abstracting the SDK client keeps the pagination logic testable with fakes.
type ManagerAPI interface {
	ListSecrets(ctx context.Context, params *secretsmanager.ListSecretsInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.ListSecretsOutput, error)
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSecretsManagerProvider implements Provider using AWS Secrets Manager.
// One provider is scoped to one region for its whole lifetime.
type AWSSecretsManagerProvider struct {
	client ManagerAPI
}

// NewAWSProvider creates a new AWS Secrets Manager provider for the given
// region. Credentials come from the ambient SDK chain (env, shared config,
// instance profile).
func NewAWSProvider(ctx context.Context, region string) (Provider, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := secretsmanager.NewFromConfig(cfg)
	return &AWSSecretsManagerProvider{client: client}, nil
}

// ListSecrets returns the names of all secrets in the region.
// It paginates through all results automatically and preserves the order
// pages come back in.
func (p *AWSSecretsManagerProvider) ListSecrets(ctx context.Context) ([]string, error) {
	var names []string
	input := &secretsmanager.ListSecretsInput{
		MaxResults: aws.Int32(100),
	}

	paginator := secretsmanager.NewListSecretsPaginator(p.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list secrets: %w", err)
		}
		for _, entry := range page.SecretList {
			if entry.Name != nil {
				names = append(names, *entry.Name)
			}
		}
	}
	return names, nil
}

// GetSecretValue fetches the raw string value of a secret. The value is
// returned exactly as stored; JSON secrets are not decoded here.
func (p *AWSSecretsManagerProvider) GetSecretValue(ctx context.Context, name string) (string, error) {
	out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return "", &FetchError{Kind: KindNotFound, Name: name, Err: err}
		}
		return "", &FetchError{Kind: KindOther, Name: name, Err: err}
	}

	if out.SecretString == nil {
		return "", &FetchError{Kind: KindOther, Name: name, Err: errors.New("secret string is nil")}
	}
	return *out.SecretString, nil
}
