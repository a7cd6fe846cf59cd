package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-codex/internal/display"
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/storage"
)

const craftTemplate = `Crafting {{ .Name }}:
  Workbench:  {{ .Workbench }}
  Craft time: {{ duration .Seconds }}
  Yields:     {{ .Amount }}`

func newCraftCommand(eng Engine) *Command {
	return &Command{
		Name:    "craft",
		Aliases: []string{"c"},
		Usage:   "craft <item name or id>",
		Summary: "Show what an item costs to craft.",
		Run: func(ctx context.Context, args []string) (string, error) {
			name := strings.Join(args, " ")
			if name == "" {
				return "", NewUserError("What do you want to craft? Usage: craft <item name or id>")
			}

			details := eng.GetCraftDetails(name)
			if details == nil {
				return "", NewUserError("No crafting recipe found for %q.", name)
			}

			header, err := ExpandTemplate(craftTemplate, struct {
				Name      string
				Workbench string
				Seconds   float64
				Amount    int
			}{
				Name:      subjectLabel(details.Id, details.Info),
				Workbench: workbenchLabel(details.Recipe.Workbench),
				Seconds:   details.Recipe.Seconds,
				Amount:    details.Recipe.Amount,
			})
			if err != nil {
				return "", fmt.Errorf("rendering craft details: %w", err)
			}

			rows := make([][]string, 0, len(details.Recipe.Ingredients))
			for _, ing := range details.Recipe.Ingredients {
				rows = append(rows, []string{
					display.Num(ing.Amount),
					itemLabel(eng, ing.ItemId),
				})
			}

			table := display.Table([]string{"Amount", "Item"}, rows)
			return header + "\n\nIngredients:\n" + display.Indent(table, 2), nil
		},
	}
}

// itemLabel names an item for output, falling back to the raw id when
// the catalog has no record.
func itemLabel(eng Engine, id storage.Identifier) string {
	if info := eng.GetItemInfo(id); info != nil {
		return info.Name
	}
	return string(id)
}

// subjectLabel names a resolved detail subject.
func subjectLabel(id storage.Identifier, info *items.Item) string {
	if info != nil {
		return info.Name
	}
	return string(id)
}

func workbenchLabel(level int) string {
	if level == 0 {
		return "none"
	}
	return fmt.Sprintf("level %d", level)
}
