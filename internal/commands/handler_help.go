package commands

import (
	"context"
	"sort"
	"strings"

	"github.com/pixil98/go-codex/internal/display"
)

func newHelpCommand(h *Handler) *Command {
	return &Command{
		Name:    "help",
		Aliases: []string{"?"},
		Usage:   "help [command]",
		Summary: "Show available commands.",
		Run: func(ctx context.Context, args []string) (string, error) {
			if len(args) > 0 {
				return h.showCommand(args[0])
			}
			return h.listCommands(), nil
		},
	}
}

// listCommands renders every registered command sorted by name.
func (h *Handler) listCommands() string {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		cmd := h.commands[name]
		rows = append(rows, []string{cmd.Usage, cmd.Summary})
	}

	table := display.Table([]string{"Command", "Description"}, rows)
	return "Available commands:\n" + display.Indent(table, 2)
}

// showCommand renders detailed help for one command.
func (h *Handler) showCommand(name string) (string, error) {
	cmd := h.lookup(name)
	if cmd == nil {
		return "", NewUserError("Command %q is unknown.", name)
	}

	lines := []string{
		"Usage: " + cmd.Usage,
		"  " + cmd.Summary,
	}
	if len(cmd.Aliases) > 0 {
		lines = append(lines, "  Aliases: "+strings.Join(cmd.Aliases, ", "))
	}

	return strings.Join(lines, "\n"), nil
}
