package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-codex/internal/codex"
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/storage"
)

// Engine is the query surface the command handlers consume.
type Engine interface {
	GetCraftDetails(nameOrId string) *codex.CraftDetails
	GetResearchDetails(nameOrId string) *codex.ResearchDetails
	GetRecycleDetails(nameOrId string) *codex.RecycleDetails
	GetDurabilityDetails(nameOrId string, q codex.Query) *codex.DurabilityDetails
	ResolveItem(nameOrId string) (storage.Identifier, bool)
	GetItemInfo(id storage.Identifier) *items.Item
}

// CommandFunc executes one console command and returns the text to
// show the player.
type CommandFunc func(ctx context.Context, args []string) (string, error)

// Command pairs a handler with the metadata help prints for it.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Summary string
	Run     CommandFunc

	// Quit marks commands that end the session after running.
	Quit bool
}

func (c *Command) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("command name not set")
	}
	if c.Run == nil {
		return fmt.Errorf("command %q has no handler", c.Name)
	}
	if c.Usage == "" {
		return fmt.Errorf("command %q has no usage line", c.Name)
	}
	return nil
}

// Response is the outcome of one executed line.
type Response struct {
	Text string

	// Quit tells the session to disconnect after showing Text.
	Quit bool
}

// Handler owns the command registry and dispatches input lines.
type Handler struct {
	commands map[string]*Command
	aliases  map[string]string
}

// NewHandler builds the registry over a query engine. The command set
// is fixed at construction.
func NewHandler(eng Engine) (*Handler, error) {
	h := &Handler{
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
	}

	cmds := []*Command{
		newCraftCommand(eng),
		newResearchCommand(eng),
		newRecycleCommand(eng),
		newDurabilityCommand(eng),
		newItemCommand(eng),
		newGroupsCommand(),
		newWhichCommand(),
		newOrdersCommand(),
		newQuitCommand(),
	}
	cmds = append(cmds, newHelpCommand(h))

	for _, cmd := range cmds {
		if err := h.register(cmd); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func (h *Handler) register(cmd *Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	name := strings.ToLower(cmd.Name)
	if _, exists := h.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	h.commands[name] = cmd

	for _, alias := range cmd.Aliases {
		alias = strings.ToLower(alias)
		if _, exists := h.aliases[alias]; exists {
			return fmt.Errorf("alias %q already registered", alias)
		}
		h.aliases[alias] = name
	}

	return nil
}

// lookup finds a command by name or alias.
func (h *Handler) lookup(word string) *Command {
	word = strings.ToLower(word)
	if name, ok := h.aliases[word]; ok {
		word = name
	}
	return h.commands[word]
}

// Exec runs one input line. A *UserError return carries text for the
// player; any other error is a real failure the caller should log.
func (h *Handler) Exec(ctx context.Context, line string) (*Response, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return &Response{}, nil
	}

	cmd := h.lookup(fields[0])
	if cmd == nil {
		return nil, NewUserError("Unknown command %q. Type 'help' for a list.", fields[0])
	}

	text, err := cmd.Run(ctx, fields[1:])
	if err != nil {
		return nil, err
	}

	return &Response{Text: text, Quit: cmd.Quit}, nil
}
