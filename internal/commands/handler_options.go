package commands

import (
	"context"
	"strings"

	"github.com/pixil98/go-codex/internal/codex"
)

func newGroupsCommand() *Command {
	return &Command{
		Name:    "groups",
		Usage:   "groups",
		Summary: "List the damage groups durability filters accept.",
		Run: func(ctx context.Context, args []string) (string, error) {
			return "Damage groups: " + joinTokens(codex.Groups()), nil
		},
	}
}

func newWhichCommand() *Command {
	return &Command{
		Name:    "which",
		Usage:   "which",
		Summary: "List the side selectors durability filters accept.",
		Run: func(ctx context.Context, args []string) (string, error) {
			return "Sides: " + joinTokens(codex.WhichOptions()), nil
		},
	}
}

func newOrdersCommand() *Command {
	return &Command{
		Name:    "orders",
		Usage:   "orders",
		Summary: "List the sort tokens durability accepts.",
		Run: func(ctx context.Context, args []string) (string, error) {
			return "Sort tokens (use with durability order=<token>):\n  " +
				joinTokens(codex.OrderOptions()), nil
		},
	}
}

func joinTokens[T ~string](vals []T) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ", ")
}
