// Package metronome plays the click that marks each chord change.
package metronome

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"go.uber.org/zap"
)

// Modes accepted in configuration.
const (
	ModeBell    = "bell"
	ModeCommand = "command"
	ModeOff     = "off"
)

// Clicker plays one click. Click never blocks on the sound finishing.
type Clicker interface {
	Click()
}

// Config selects how clicks are produced.
type Config struct {
	// Mode is one of "bell", "command" or "off".
	Mode string

	// Command is the player invocation for ModeCommand, e.g.
	// ["aplay", "-q", "click.wav"].
	Command []string
}

// New builds the Clicker described by cfg. The returned io.Closer waits for
// outstanding clicks and must be closed on shutdown.
func New(cfg Config, log *zap.Logger) (Clicker, io.Closer, error) {
	switch cfg.Mode {
	case ModeBell, "":
		return NewBell(os.Stderr, log), nopCloser{}, nil
	case ModeCommand:
		c, err := NewCommand(cfg.Command, log)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	case ModeOff:
		return Nop{}, nopCloser{}, nil
	}
	return nil, nil, fmt.Errorf("unknown metronome mode %q", cfg.Mode)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Nop discards clicks.
type Nop struct{}

func (Nop) Click() {}

// Func adapts a function to Clicker.
type Func func()

func (f Func) Click() { f() }

// Bell rings the terminal bell.
type Bell struct {
	w   io.Writer
	log *zap.Logger
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer, log *zap.Logger) *Bell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bell{w: w, log: log}
}

func (b *Bell) Click() {
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		b.log.Warn("metronome bell failed", zap.Error(err))
	}
}

// Command runs an external audio player per click.
type Command struct {
	name string
	args []string
	log  *zap.Logger
	wg   sync.WaitGroup
}

// NewCommand creates a Command clicker from an argv slice.
func NewCommand(argv []string, log *zap.Logger) (*Command, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, errors.New("metronome command is empty")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Command{name: argv[0], args: argv[1:], log: log}, nil
}

// Click starts the player and returns without waiting for it. The process
// is reaped in the background.
func (c *Command) Click() {
	cmd := exec.Command(c.name, c.args...)
	if err := cmd.Start(); err != nil {
		c.log.Warn("metronome command failed to start", zap.String("command", c.name), zap.Error(err))
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := cmd.Wait(); err != nil {
			c.log.Debug("metronome command exited", zap.String("command", c.name), zap.Error(err))
		}
	}()
}

// Close waits for running players to exit.
func (c *Command) Close() error {
	c.wg.Wait()
	return nil
}
