package commands

import (
	"context"
	"fmt"
	"strings"
)

const researchTemplate = `Researching {{ .Name }}:
  Scrap:     {{ .Scrap }}
  Workbench: {{ .Workbench }}`

func newResearchCommand(eng Engine) *Command {
	return &Command{
		Name:    "research",
		Aliases: []string{"res"},
		Usage:   "research <item name or id>",
		Summary: "Show what unlocking an item's blueprint costs.",
		Run: func(ctx context.Context, args []string) (string, error) {
			name := strings.Join(args, " ")
			if name == "" {
				return "", NewUserError("What do you want to research? Usage: research <item name or id>")
			}

			details := eng.GetResearchDetails(name)
			if details == nil {
				return "", NewUserError("No research data found for %q.", name)
			}

			out, err := ExpandTemplate(researchTemplate, struct {
				Name      string
				Scrap     int
				Workbench string
			}{
				Name:      subjectLabel(details.Id, details.Info),
				Scrap:     details.Cost.Scrap,
				Workbench: workbenchLabel(details.Cost.Workbench),
			})
			if err != nil {
				return "", fmt.Errorf("rendering research details: %w", err)
			}

			return out, nil
		},
	}
}
