package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-codex/internal/codex"
	"github.com/pixil98/go-codex/internal/display"
)

const durabilityUsage = "durability <name> [group=<group>] [which=<side>] [order=<token>]"

func newDurabilityCommand(eng Engine) *Command {
	return &Command{
		Name:    "durability",
		Aliases: []string{"dur", "break"},
		Usage:   durabilityUsage,
		Summary: "Show how to break a structure, deployable, or item.",
		Run: func(ctx context.Context, args []string) (string, error) {
			name, query, err := parseDurabilityArgs(args)
			if err != nil {
				return "", err
			}

			details := eng.GetDurabilityDetails(name, query)
			if details == nil {
				return "", NewUserError("No durability data found for %q.", name)
			}

			header := fmt.Sprintf("Breaking %s (%s):", display.Title(details.Subject()), namespaceLabel(details.Namespace))
			if len(details.Entries) == 0 {
				return header + "\n  No entries match those filters.", nil
			}

			rows := make([][]string, 0, len(details.Entries))
			for _, e := range details.Entries {
				rows = append(rows, []string{
					e.Tool,
					string(e.Group),
					string(e.Which),
					display.Num(e.Quantity),
					display.Duration(e.Seconds),
					costCell(e.Fuel),
					costCell(e.Sulfur),
				})
			}

			table := display.Table(
				[]string{"Tool", "Group", "Which", "Qty", "Time", "Fuel", "Sulfur"},
				rows,
			)
			return header + "\n" + display.Indent(table, 2), nil
		},
	}
}

// parseDurabilityArgs splits an argument list into the subject name
// and its key=value options. Option order doesn't matter and the name
// may span multiple words.
func parseDurabilityArgs(args []string) (string, codex.Query, error) {
	var nameParts []string
	var query codex.Query

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			nameParts = append(nameParts, arg)
			continue
		}

		switch strings.ToLower(key) {
		case "group":
			if _, ok := codex.ParseGroup(value); !ok {
				return "", codex.Query{}, NewUserError("%q isn't a damage group. Try 'groups'.", value)
			}
			query.Group = value
		case "which":
			if _, ok := codex.ParseWhich(value); !ok {
				return "", codex.Query{}, NewUserError("%q isn't a side. Sides are hard, soft, and both.", value)
			}
			query.Which = value
		case "order", "orderby":
			query.OrderBy = value
		default:
			return "", codex.Query{}, NewUserError("Unknown option %q. Usage: %s", key, durabilityUsage)
		}
	}

	if len(nameParts) == 0 {
		return "", codex.Query{}, NewUserError("What do you want to break? Usage: %s", durabilityUsage)
	}

	return strings.Join(nameParts, " "), query, nil
}

func namespaceLabel(ns codex.Namespace) string {
	switch ns {
	case codex.NamespaceBuildingBlocks:
		return "building block"
	case codex.NamespaceOther:
		return "deployable"
	default:
		return "item"
	}
}

func costCell(v float64) string {
	if v == 0 {
		return "-"
	}
	return display.Num(v)
}
