package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/todo-cli/todo/internal/store"
)

// Exit codes
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitInternal = 10
)

// Run executes args against the process stdout and stderr and returns the exit code.
func Run(args []string) int {
	return Execute(args, os.Stdout, os.Stderr)
}

// Execute runs one command against the backing file and writes the result
// to stdout. Diagnostics go to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)
	st := newStyles(stdout)

	cmd := ParseCommand(args)
	if cmd == CommandHelp {
		printHelp(stdout, st)
		return ExitOK
	}

	cfg, cfgPath, err := store.LoadConfig()
	if err != nil {
		logger.Error("invalid config", "err", err)
		return ExitUsage
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	if cfgPath != "" {
		logger.Debug("config loaded", "path", cfgPath)
	}

	s := store.Open(cfg)
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("unlock failed", "path", s.Path(), "err", err)
		}
	}()

	tasks, err := s.Load()
	if err != nil {
		logger.Error("load failed", "path", s.Path(), "err", err)
		return ExitInternal
	}
	logger.Debug("tasks loaded", "path", s.Path(), "count", len(tasks))

	rest := args[min(1, len(args)):]
	switch cmd {
	case CommandAdd:
		tasks = store.Add(tasks, strings.Join(rest, " "))
	case CommandDone:
		tasks = store.SetCompletion(tasks, parseIndex(rest), true)
	case CommandUndo:
		tasks = store.SetCompletion(tasks, parseIndex(rest), false)
	case CommandDelete:
		tasks = store.DeleteAt(tasks, parseIndex(rest))
	}

	if cmd.Mutates() {
		if err := s.Save(tasks); err != nil {
			logger.Error("save failed", "path", s.Path(), "err", err)
			return ExitInternal
		}
		logger.Debug("tasks saved", "command", cmd, "count", len(tasks))
	}

	renderList(stdout, st, s.Style(), tasks)
	return ExitOK
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  log.WarnLevel,
		Prefix: "todo",
	})
}
