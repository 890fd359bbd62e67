package store

import (
	"fmt"
	"strings"
)

// Style selects the literal checkbox prefixes used on disk.
type Style string

const (
	StyleSpaced  Style = "spaced"  // "- [ ] " / "- [x] "
	StyleCompact Style = "compact" // "- [] " / "- [x] "
)

const donePrefix = "- [x] "

// Task is one todo item. It has no identifier; its position in the list is its address.
type Task struct {
	Content   string
	Completed bool
}

func (s Style) openPrefix() string {
	if s == StyleCompact {
		return "- [] "
	}
	return "- [ ] "
}

func (s Style) valid() bool {
	return s == StyleSpaced || s == StyleCompact
}

func parseStyle(v string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", string(StyleSpaced):
		return StyleSpaced, nil
	case string(StyleCompact):
		return StyleCompact, nil
	default:
		return "", fmt.Errorf("%w: unknown style %q", ErrInvalid, v)
	}
}

// EncodeLine renders t as a single checkbox line.
func (s Style) EncodeLine(t Task) string {
	if t.Completed {
		return donePrefix + t.Content
	}
	return s.openPrefix() + t.Content
}

// DecodeLine parses a single checkbox line. Lines without a recognised
// prefix return ok=false.
func (s Style) DecodeLine(line string) (Task, bool) {
	line = strings.TrimSuffix(line, "\r")
	if content, ok := strings.CutPrefix(line, s.openPrefix()); ok {
		return Task{Content: content}, true
	}
	if content, ok := strings.CutPrefix(line, donePrefix); ok {
		return Task{Content: content, Completed: true}, true
	}
	return Task{}, false
}

// Decode splits text into lines and keeps every line that decodes, in file order.
func (s Style) Decode(text string) []Task {
	var tasks []Task
	for _, line := range strings.Split(text, "\n") {
		if t, ok := s.DecodeLine(line); ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Encode joins the encoded lines with newlines. There is no trailing newline.
func (s Style) Encode(tasks []Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, s.EncodeLine(t))
	}
	return strings.Join(lines, "\n")
}

// String renders t in the default style.
func (t Task) String() string {
	return StyleSpaced.EncodeLine(t)
}
