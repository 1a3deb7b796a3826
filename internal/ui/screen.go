package ui

import (
	"io"
	"os/exec"
	"runtime"
)

// Screen clears the attached terminal after a displayed secret has been
// acknowledged, so the value does not linger in the scrollback.
type Screen struct {
	out  io.Writer
	goos string
	run  func(cmd *exec.Cmd) error
}

// NewScreen builds a Screen that writes the platform clear sequence to out.
func NewScreen(out io.Writer) *Screen {
	return &Screen{
		out:  out,
		goos: runtime.GOOS,
		run:  func(cmd *exec.Cmd) error { return cmd.Run() },
	}
}

// Clear shells out to the platform clear command with its output attached
// to the interactive stream.
func (s *Screen) Clear() error {
	var cmd *exec.Cmd
	if s.goos == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = s.out
	return s.run(cmd)
}
