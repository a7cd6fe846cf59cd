package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-codex/internal/display"
)

const recycleTemplate = `Recycling {{ .Name }} returns (at {{ .Efficiency }} efficiency):`

func newRecycleCommand(eng Engine) *Command {
	return &Command{
		Name:    "recycle",
		Aliases: []string{"rec"},
		Usage:   "recycle <item name or id>",
		Summary: "Show what an item breaks down into.",
		Run: func(ctx context.Context, args []string) (string, error) {
			name := strings.Join(args, " ")
			if name == "" {
				return "", NewUserError("What do you want to recycle? Usage: recycle <item name or id>")
			}

			details := eng.GetRecycleDetails(name)
			if details == nil {
				return "", NewUserError("No recycle data found for %q.", name)
			}

			header, err := ExpandTemplate(recycleTemplate, struct {
				Name       string
				Efficiency string
			}{
				Name:       subjectLabel(details.Id, details.Info),
				Efficiency: display.Percent(details.Yield.Efficiency),
			})
			if err != nil {
				return "", fmt.Errorf("rendering recycle details: %w", err)
			}

			rows := make([][]string, 0, len(details.Yield.Outputs))
			for _, out := range details.Yield.Outputs {
				rows = append(rows, []string{
					display.Num(out.Amount * details.Yield.Efficiency),
					itemLabel(eng, out.ItemId),
				})
			}

			table := display.Table([]string{"Amount", "Item"}, rows)
			return header + "\n" + display.Indent(table, 2), nil
		},
	}
}
