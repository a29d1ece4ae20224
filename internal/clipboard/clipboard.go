// Package clipboard copies text to the host clipboard with a fallback
// chain: platform clipboard API, then an external copy command fed
// through a transient temp file, then a terminal prompt of last resort
// so the value is never silently lost.
package clipboard

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Service copies text to the clipboard.
type Service struct {
	logger *slog.Logger
	prompt io.Writer // last-resort output, normally stderr

	// seams for the fallback chain, replaced in tests
	apiAvailable bool
	writeAll     func(string) error
	command      func(string) error
}

// New creates a Service.
func New(logger *slog.Logger) *Service {
	s := &Service{logger: logger, prompt: os.Stderr}
	s.apiAvailable = !clipboard.Unsupported
	s.writeAll = clipboard.WriteAll
	s.command = s.copyViaCommand
	return s
}

// Copy puts text on the clipboard. It returns nil once any mechanism
// in the chain has delivered the text to the user, including the
// final prompt.
func (s *Service) Copy(text string) error {
	if s.apiAvailable {
		err := s.writeAll(text)
		if err == nil {
			return nil
		}
		s.logger.Warn("clipboard API write failed", "error", err)
	}

	if err := s.command(text); err != nil {
		s.logger.Warn("clipboard command fallback failed", "error", err)
	} else {
		return nil
	}

	// Last resort: show the text so it can be copied by hand.
	if _, err := fmt.Fprintf(s.prompt, "Kopieren: %s\n", text); err != nil {
		return fmt.Errorf("clipboard fallbacks exhausted: %w", err)
	}
	return nil
}

// copyViaCommand pipes the text into the platform copy command through
// a transient temp file. The file is created, filled, consumed and
// removed within this call, on success and failure alike.
func (s *Service) copyViaCommand(text string) error {
	name, args, err := copyCommand()
	if err != nil {
		return err
	}

	f, err := os.CreateTemp("", "tankview-copy-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind temp file: %w", err)
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = f
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %v (%s)", name, err, out)
	}
	return nil
}

// copyCommand picks the copy tool for the current platform.
func copyCommand() (string, []string, error) {
	candidates := [][]string{}
	switch runtime.GOOS {
	case "darwin":
		candidates = append(candidates, []string{"pbcopy"})
	case "windows":
		candidates = append(candidates, []string{"clip"})
	default:
		candidates = append(candidates,
			[]string{"wl-copy"},
			[]string{"xclip", "-selection", "clipboard"},
			[]string{"xsel", "--clipboard", "--input"},
		)
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return c[0], c[1:], nil
		}
	}
	return "", nil, fmt.Errorf("no copy command available")
}
