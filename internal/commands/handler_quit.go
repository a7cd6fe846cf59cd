package commands

import (
	"context"
)

func newQuitCommand() *Command {
	return &Command{
		Name:    "quit",
		Aliases: []string{"exit", "q"},
		Usage:   "quit",
		Summary: "Close the session.",
		Quit:    true,
		Run: func(ctx context.Context, args []string) (string, error) {
			return "Happy surviving!", nil
		},
	}
}
