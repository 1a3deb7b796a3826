package picker

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/ui"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/pkg/secrets"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/pkg/utils"
)

// ProviderFactory builds a region-scoped secrets provider once the region
// is known. The region can come from configuration or from the operator,
// so the provider cannot exist before the flow starts.
type ProviderFactory func(ctx context.Context, region string) (secrets.Provider, error)

// Sink delivers a fetched secret to its destination.
type Sink interface {
	Deliver(name, value string) error
}

// Flow drives one interactive fetch: resolve the region, list the secrets,
// let the operator pick one, fetch it and hand it to the sink.
type Flow struct {
	logger      *zap.Logger
	region      string // from configuration; empty asks the operator
	prompter    *ui.Prompter
	newProvider ProviderFactory
	sink        Sink
	out         io.Writer
}

// NewFlow wires a Flow. prompter and out must belong to the same
// interactive session the sink uses.
func NewFlow(logger *zap.Logger, region string, prompter *ui.Prompter, newProvider ProviderFactory, sink Sink, out io.Writer) *Flow {
	return &Flow{
		logger:      logger,
		region:      region,
		prompter:    prompter,
		newProvider: newProvider,
		sink:        sink,
		out:         out,
	}
}

// Run executes the whole dialogue. A fetch failure is reported to the
// operator and ends the run cleanly with a nil error; every other failure
// is returned to the caller.
func (f *Flow) Run(ctx context.Context) error {
	region, err := f.resolveRegion()
	if err != nil {
		return err
	}

	provider, err := f.newProvider(ctx, region)
	if err != nil {
		return fmt.Errorf("failed to create AWS Secrets Manager provider: %w", err)
	}

	names, err := provider.ListSecrets(ctx)
	if err != nil {
		f.logger.Warn("aws.secret_list_failed",
			zap.String("region", region),
			zap.Error(err))
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no secrets found in region %q", region)
	}
	f.logger.Info("aws.secrets_listed",
		zap.String("region", region),
		zap.Int("count", len(names)),
	)

	fmt.Fprintln(f.out, "Available Secrets:")
	for i, name := range names {
		fmt.Fprintf(f.out, "%d. %s\n", i+1, name)
	}

	answer, err := f.prompter.Ask("Enter the number of the secret you want to fetch: ")
	if err != nil {
		return err
	}
	idx, err := ParseSelection(answer, len(names))
	if err != nil {
		return err
	}
	name := names[idx]

	value, err := provider.GetSecretValue(ctx, name)
	if err != nil {
		f.fail(name, err)
		return nil
	}
	f.logger.Debug("aws.secret_fetched",
		zap.String("secret", name),
		zap.String("preview", utils.MaskSecret(value)),
		zap.Int("bytes", len(value)),
	)

	return f.sink.Deliver(name, value)
}

// resolveRegion prefers the configured region and falls back to asking.
// The entered value is used as-is; AWS reports unusable regions itself.
func (f *Flow) resolveRegion() (string, error) {
	if f.region != "" {
		return f.region, nil
	}
	return f.prompter.Ask("Enter the Region Name: ")
}

// fail reports a fetch failure to the operator. Nothing is delivered and
// the run ends normally afterwards.
func (f *Flow) fail(name string, err error) {
	f.logger.Warn("aws.secret_fetch_failed",
		zap.String("secret", name),
		zap.Error(err))

	var fe *secrets.FetchError
	if errors.As(err, &fe) && fe.Kind == secrets.KindNotFound {
		color.New(color.FgRed).Fprintf(f.out, "ERROR: Secret '%s' not found.\n", name)
	} else {
		detail := err
		if errors.As(err, &fe) && fe.Err != nil {
			detail = fe.Err
		}
		color.New(color.FgRed).Fprintf(f.out, "ERROR: An error occurred while fetching secret '%s': %v\n", name, detail)
	}
	fmt.Fprintln(f.out, "Exiting program.")
}
