package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-codex/internal/display"
)

const itemTemplate = `{{ .Name }}{{ if .Category }} [{{ .Category }}]{{ end }} (id {{ .Id }})`

func newItemCommand(eng Engine) *Command {
	return &Command{
		Name:    "item",
		Aliases: []string{"info"},
		Usage:   "item <item name or id>",
		Summary: "Look up an item in the catalog.",
		Run: func(ctx context.Context, args []string) (string, error) {
			name := strings.Join(args, " ")
			if name == "" {
				return "", NewUserError("Which item? Usage: item <item name or id>")
			}

			id, ok := eng.ResolveItem(name)
			if !ok {
				return "", NewUserError("No item found matching %q.", name)
			}
			info := eng.GetItemInfo(id)
			if info == nil {
				return "", NewUserError("No item found matching %q.", name)
			}

			header, err := ExpandTemplate(itemTemplate, struct {
				Name     string
				Category string
				Id       string
			}{
				Name:     info.Name,
				Category: info.Category,
				Id:       string(id),
			})
			if err != nil {
				return "", fmt.Errorf("rendering item details: %w", err)
			}

			if info.Description == "" {
				return header, nil
			}
			return header + "\n" + display.Wrap(info.Description), nil
		},
	}
}
