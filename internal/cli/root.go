package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/config"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/output"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/picker"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/ui"
)

// Dependencies carries everything the root command needs injected, so the
// whole dialogue can run against fakes in tests.
type Dependencies struct {
	Version     string
	Cfg         *config.Config
	Logger      *zap.Logger
	In          io.Reader
	Out         io.Writer
	Screen      output.Clearer
	NewProvider picker.ProviderFactory
}

// NewRootCommand creates the root command. There are no subcommands; the
// tool does exactly one thing.
func NewRootCommand(deps Dependencies) *cobra.Command {
	var outputPath string

	rootCmd := &cobra.Command{
		Use:   "aws-secrets-manager-fetcher",
		Short: "Interactively fetch secrets from AWS Secrets Manager",
		Long: `Lists the secrets visible in an AWS region, lets you pick one from a
numbered menu and either prints its value (pretty-printed when it is
JSON) or stores it verbatim in a file.

The region comes from AWS_DEFAULT_REGION when set; otherwise you are
asked for it. Credentials come from the usual AWS SDK chain.`,
		Version:      deps.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompter := ui.NewPrompter(deps.In, deps.Out)
			sink := output.NewSink(deps.Logger, deps.Out, prompter, deps.Screen, outputPath)
			flow := picker.NewFlow(deps.Logger, deps.Cfg.Region, prompter, deps.NewProvider, sink, deps.Out)
			return flow.Run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the secret value to this file instead of displaying it")

	return rootCmd
}
