package cli

import (
	"math"
	"strconv"
)

// Command is the closed set of things one invocation can do.
type Command int

const (
	CommandHelp Command = iota
	CommandList
	CommandAdd
	CommandDone
	CommandUndo
	CommandDelete
)

var commandNames = map[string]Command{
	"list":   CommandList,
	"add":    CommandAdd,
	"done":   CommandDone,
	"undo":   CommandUndo,
	"delete": CommandDelete,
	"del":    CommandDelete,
}

// ParseCommand resolves the first argument. No argument means list;
// anything unrecognised means help.
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandList
	}
	if cmd, ok := commandNames[args[0]]; ok {
		return cmd
	}
	return CommandHelp
}

func (c Command) String() string {
	switch c {
	case CommandList:
		return "list"
	case CommandAdd:
		return "add"
	case CommandDone:
		return "done"
	case CommandUndo:
		return "undo"
	case CommandDelete:
		return "delete"
	default:
		return "help"
	}
}

// Mutates reports whether the command rewrites the backing file.
func (c Command) Mutates() bool {
	switch c {
	case CommandAdd, CommandDone, CommandUndo, CommandDelete:
		return true
	}
	return false
}

// parseIndex reads the index argument of done, undo and delete.
// A missing or unparseable argument means 0, as does a value past the
// uint64 range. Values that fit uint64 but not int clamp to math.MaxInt so
// they stay out of range.
func parseIndex(args []string) int {
	if len(args) == 0 {
		return 0
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0
	}
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
