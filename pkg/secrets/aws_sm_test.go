package secrets

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The real SDK client must keep satisfying the narrowed interface.
var _ ManagerAPI = (*secretsmanager.Client)(nil)

// --- Fake Secrets Manager API ---

type fakeManagerAPI struct {
	pages      []*secretsmanager.ListSecretsOutput
	listErr    error
	listCalls  int
	listTokens []*string

	getOut   *secretsmanager.GetSecretValueOutput
	getErr   error
	getCalls int
	gotID    *string
}

func (f *fakeManagerAPI) ListSecrets(_ context.Context, params *secretsmanager.ListSecretsInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.ListSecretsOutput, error) {
	f.listCalls++
	f.listTokens = append(f.listTokens, params.NextToken)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.pages[f.listCalls-1], nil
}

func (f *fakeManagerAPI) GetSecretValue(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.getCalls++
	f.gotID = params.SecretId
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func entries(names ...string) []types.SecretListEntry {
	out := make([]types.SecretListEntry, 0, len(names))
	for _, n := range names {
		out = append(out, types.SecretListEntry{Name: aws.String(n)})
	}
	return out
}

// --- Tests ---

func TestListSecrets_SinglePage(t *testing.T) {
	fake := &fakeManagerAPI{
		pages: []*secretsmanager.ListSecretsOutput{
			{SecretList: entries("prod/db/password", "prod/api/key")},
		},
	}
	p := &AWSSecretsManagerProvider{client: fake}

	names, err := p.ListSecrets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"prod/db/password", "prod/api/key"}, names)
	assert.Equal(t, 1, fake.listCalls)
}

func TestListSecrets_PaginatesAllPages(t *testing.T) {
	fake := &fakeManagerAPI{
		pages: []*secretsmanager.ListSecretsOutput{
			{SecretList: entries("alpha", "bravo"), NextToken: aws.String("t1")},
			{SecretList: entries("charlie"), NextToken: aws.String("t2")},
			{SecretList: entries("delta")},
		},
	}
	p := &AWSSecretsManagerProvider{client: fake}

	names, err := p.ListSecrets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, names)
	assert.Equal(t, 3, fake.listCalls, "should follow NextToken until exhausted")

	require.Len(t, fake.listTokens, 3)
	assert.Nil(t, fake.listTokens[0])
	assert.Equal(t, "t1", aws.ToString(fake.listTokens[1]))
	assert.Equal(t, "t2", aws.ToString(fake.listTokens[2]))
}

func TestListSecrets_SkipsEntriesWithoutName(t *testing.T) {
	fake := &fakeManagerAPI{
		pages: []*secretsmanager.ListSecretsOutput{
			{SecretList: []types.SecretListEntry{
				{Name: aws.String("alpha")},
				{Name: nil},
				{Name: aws.String("bravo")},
			}},
		},
	}
	p := &AWSSecretsManagerProvider{client: fake}

	names, err := p.ListSecrets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo"}, names)
}

func TestListSecrets_EmptyRegion(t *testing.T) {
	fake := &fakeManagerAPI{
		pages: []*secretsmanager.ListSecretsOutput{{}},
	}
	p := &AWSSecretsManagerProvider{client: fake}

	names, err := p.ListSecrets(context.Background())

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListSecrets_APIError(t *testing.T) {
	fake := &fakeManagerAPI{
		listErr: fmt.Errorf("aws: access denied"),
	}
	p := &AWSSecretsManagerProvider{client: fake}

	names, err := p.ListSecrets(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list secrets")
	assert.Contains(t, err.Error(), "access denied")
	assert.Nil(t, names)
}

func TestGetSecretValue_ReturnsRawString(t *testing.T) {
	raw := `{"username":"svc","password":"hunter2"}`
	fake := &fakeManagerAPI{
		getOut: &secretsmanager.GetSecretValueOutput{SecretString: aws.String(raw)},
	}
	p := &AWSSecretsManagerProvider{client: fake}

	value, err := p.GetSecretValue(context.Background(), "prod/db/password")

	require.NoError(t, err)
	assert.Equal(t, raw, value, "value must come back exactly as stored")
	assert.Equal(t, "prod/db/password", aws.ToString(fake.gotID))
	assert.Equal(t, 1, fake.getCalls)
}

func TestGetSecretValue_NotFound(t *testing.T) {
	fake := &fakeManagerAPI{
		getErr: &types.ResourceNotFoundException{
			Message: aws.String("Secrets Manager can't find the specified secret."),
		},
	}
	p := &AWSSecretsManagerProvider{client: fake}

	_, err := p.GetSecretValue(context.Background(), "missing")

	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindNotFound, fe.Kind)
	assert.Equal(t, "missing", fe.Name)
}

func TestGetSecretValue_OtherError(t *testing.T) {
	fake := &fakeManagerAPI{
		getErr: errors.New("aws: throttled"),
	}
	p := &AWSSecretsManagerProvider{client: fake}

	_, err := p.GetSecretValue(context.Background(), "prod/api/key")

	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindOther, fe.Kind)
	assert.Contains(t, fe.Error(), "throttled")
}

func TestGetSecretValue_NilSecretString(t *testing.T) {
	// Binary-only secrets have no SecretString.
	fake := &fakeManagerAPI{
		getOut: &secretsmanager.GetSecretValueOutput{},
	}
	p := &AWSSecretsManagerProvider{client: fake}

	_, err := p.GetSecretValue(context.Background(), "binary-secret")

	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindOther, fe.Kind)
	assert.Contains(t, err.Error(), "secret string is nil")
}

func TestFetchError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	fe := &FetchError{Kind: KindOther, Name: "x", Err: inner}

	assert.ErrorIs(t, fe, inner)
	assert.Contains(t, fe.Error(), "failed to fetch secret [x]")
}
