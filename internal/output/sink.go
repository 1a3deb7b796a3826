package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/fsx"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/ui"
)

// Clearer wipes the interactive terminal once a shown secret has been
// acknowledged.
type Clearer interface {
	Clear() error
}

// Sink delivers a fetched secret value to its destination: a file when an
// output path was given, the terminal otherwise. Terminal delivery ends
// with a press-enter acknowledgement and a screen clear so the value does
// not stay visible.
type Sink struct {
	logger   *zap.Logger
	out      io.Writer
	prompter *ui.Prompter
	screen   Clearer
	path     string // destination file; empty selects display mode
}

// NewSink wires a Sink. prompter must share its reader with the rest of
// the interactive session.
func NewSink(logger *zap.Logger, out io.Writer, prompter *ui.Prompter, screen Clearer, path string) *Sink {
	return &Sink{
		logger:   logger,
		out:      out,
		prompter: prompter,
		screen:   screen,
		path:     path,
	}
}

// Deliver writes or displays the secret value.
func (s *Sink) Deliver(name, value string) error {
	if s.path != "" {
		return s.write(name, value)
	}
	return s.display(name, value)
}

func (s *Sink) write(name, value string) error {
	if err := fsx.AtomicWriteFile(s.path, []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to store secret in %s: %w", s.path, err)
	}

	s.logger.Info("output.secret_stored",
		zap.String("secret", name),
		zap.String("path", s.path),
	)
	color.New(color.FgGreen).Fprintf(s.out, "Secret value fetched and stored in %s successfully.\n", s.path)
	return nil
}

func (s *Sink) display(name, value string) error {
	s.logger.Debug("output.secret_displayed", zap.String("secret", name))

	fmt.Fprintln(s.out, "\nFetched Secret Value:")
	fmt.Fprintln(s.out, formatValue(value))

	if _, err := s.prompter.Ask("\nPress Enter to clear the screen..."); err != nil {
		return err
	}
	if err := s.screen.Clear(); err != nil {
		// a missing clear binary is not fatal
		s.logger.Warn("output.screen_clear_failed", zap.Error(err))
	}
	return nil
}
