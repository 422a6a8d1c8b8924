package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/taigrr/colorhash"
	"go.uber.org/zap"

	"github.com/dendrascience/vshell/uptime"
	"github.com/dendrascience/vshell/vfs"
)

// Config identifies the user shown in the prompt.
type Config struct {
	User     string
	Hostname string
}

// Option configures a [Shell].
type Option func(*Shell)

// WithInput sets the input. It defaults to [os.Stdin].
func WithInput(r io.Reader) Option {
	return func(s *Shell) {
		s.input = bufio.NewReader(r)
	}
}

// WithOutput sets the output. It defaults to [os.Stdout].
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.output = w
	}
}

// WithClock sets the clock used by the uptime command.
func WithClock(clock uptime.Clock) Option {
	return func(s *Shell) {
		s.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Shell) {
		if log != nil {
			s.log = log
		}
	}
}

// WithColor enables the colored prompt.
func WithColor(enabled bool) Option {
	return func(s *Shell) {
		s.color = enabled
	}
}

// Shell reads command lines and executes them against a navigator.
type Shell struct {
	cfg      Config
	nav      *vfs.Navigator
	input    *bufio.Reader
	readErr  error
	output   io.Writer
	clock    uptime.Clock
	log      *zap.Logger
	color    bool
	commands map[string]command
}

// New creates a new [Shell].
func New(cfg Config, nav *vfs.Navigator, opts ...Option) *Shell {
	s := &Shell{
		cfg:    cfg,
		nav:    nav,
		input:  bufio.NewReader(os.Stdin),
		output: os.Stdout,
		clock:  uptime.HostClock{},
		log:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With(zap.String("session", uuid.NewString()))
	s.commands = commands()

	return s
}

// Prompt returns the prompt for the current directory.
func (s *Shell) Prompt() string {
	identity := s.cfg.User + "@" + s.cfg.Hostname
	if s.color {
		identity = colorize(identity, s.cfg.Hostname)
	}

	return fmt.Sprintf("%s:%s$ ", identity, s.nav.DisplayPath())
}

// Run prompts for and executes commands until "exit" is run or the input
// ends. Empty lines prompt again.
func (s *Shell) Run() error {
	s.log.Info("shell started",
		zap.String("user", s.cfg.User),
		zap.String("hostname", s.cfg.Hostname),
	)

	for {
		fmt.Fprint(s.output, s.Prompt())

		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.output)
			return s.inputErr()
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if !s.Exec(line) {
			break
		}
	}

	s.log.Info("shell stopped")

	return nil
}

// Exec executes a single command line. It returns false if the loop should
// end.
func (s *Shell) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	name, args := fields[0], fields[1:]

	s.log.Debug("exec",
		zap.String("command", name),
		zap.Strings("args", args),
		zap.Stringer("cwd", s.nav.Cwd()),
	)

	cmd, exists := s.commands[name]
	if !exists {
		s.printf("%s: command not found\n", name)
		return true
	}

	return cmd(s, args)
}

// readLine returns the next line without its line ending. Lines have no
// length limit. A final line without newline is returned as well.
func (s *Shell) readLine() (string, bool) {
	line, err := s.input.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.readErr = err
		}

		if line == "" {
			return "", false
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, true
}

func (s *Shell) inputErr() error {
	if s.readErr != nil {
		return fmt.Errorf("read input: %w", s.readErr)
	}

	s.log.Info("end of input")

	return nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.output, format, args...)
}

func (s *Shell) println(args ...any) {
	fmt.Fprintln(s.output, args...)
}

// printErr prints a command error on one line.
func (s *Shell) printErr(err error) {
	s.log.Debug("command failed", zap.Error(err))
	s.println(err)
}

// colorize wraps text in an ANSI 256-color escape chosen from key.
func colorize(text, key string) string {
	code := colorhash.HashString(key)
	if code < 0 {
		code = -code
	}

	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code%216+16, text)
}
