package secrets

import "context"

// Provider defines a generic secrets manager interface.
// Concrete implementations (AWS, GCP, etc.) can satisfy this.
type Provider interface {
	// ListSecrets returns the names of every secret visible in the
	// configured region, in the order the backend reports them.
	ListSecrets(ctx context.Context) ([]string, error)

	// GetSecretValue retrieves the raw string value of a secret by name.
	// Failures are reported as *FetchError.
	GetSecretValue(ctx context.Context, name string) (string, error)
}
