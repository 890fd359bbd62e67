package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/todo-cli/todo/internal/store"
)

var (
	primaryColor = lipgloss.Color("109")
	accentColor  = lipgloss.Color("171")
	mutedColor   = lipgloss.Color("239")
)

// styles are bound to one writer so colour is only emitted to terminals.
type styles struct {
	index lipgloss.Style
	title lipgloss.Style
	key   lipgloss.Style
	muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		index: r.NewStyle().Foreground(mutedColor),
		title: r.NewStyle().Bold(true).Foreground(accentColor),
		key:   r.NewStyle().Bold(true).Foreground(primaryColor),
		muted: r.NewStyle().Foreground(mutedColor),
	}
}

// renderList writes one "<index> <line>" row per task. Nothing is written for an empty list.
func renderList(w io.Writer, st styles, style store.Style, tasks []store.Task) {
	for i, t := range tasks {
		fmt.Fprintf(w, "%s %s\n", st.index.Render(strconv.Itoa(i)), style.EncodeLine(t))
	}
}

func printHelp(w io.Writer, st styles) {
	fmt.Fprintln(w, st.title.Render("todo")+" "+st.muted.Render("- a checkbox task list in a text file"))
	fmt.Fprintln(w, "Try add, done, delete or undo")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	rows := [][2]string{
		{"todo [list]", "show tasks with their index"},
		{"todo add <text...>", "append a task"},
		{"todo done <index>", "mark a task complete"},
		{"todo undo <index>", "mark a task incomplete"},
		{"todo delete <index>", "remove a task (alias: del)"},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-22s %s\n", row[0], st.muted.Render(row[1]))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s overrides the file, %s the config path.\n", st.key.Render(store.EnvFile), st.key.Render(store.EnvConfig))
}
