package codex

import (
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/search"
	"github.com/pixil98/go-codex/internal/storage"
)

// NameSearcher matches free-form input against one namespace's name
// set, returning the canonical stored name.
type NameSearcher interface {
	Search(query string) (string, bool)
}

// ItemResolver is the catalog capability the engine consumes: mapping
// names or ids to catalog ids, and ids to item records.
type ItemResolver interface {
	Resolve(nameOrId string) (storage.Identifier, bool)
	Get(id storage.Identifier) *items.Item
}

// Codex answers queries over the loaded reference datasets. All fields
// are fixed at construction, so one Codex serves concurrent callers
// without locking.
type Codex struct {
	dict    *Dictionary
	catalog ItemResolver
	other   NameSearcher
	blocks  NameSearcher
}

type CodexOpt func(*Codex)

// WithOtherIndex replaces the matcher for the "other" namespace.
func WithOtherIndex(s NameSearcher) CodexOpt {
	return func(c *Codex) {
		c.other = s
	}
}

// WithBlockIndex replaces the matcher for the building-block namespace.
func WithBlockIndex(s NameSearcher) CodexOpt {
	return func(c *Codex) {
		c.blocks = s
	}
}

// nameMatchFloor is the minimum similarity the name-keyed namespace
// probes accept. Without it a prefix admission like "wood" against
// "wooden-barricade" would absorb queries whose exact key lives in a
// lower-priority namespace.
const nameMatchFloor = 0.5

// New builds an engine over the given datasets. The two name indexes
// come from the durability key sets and never change afterwards.
func New(dict *Dictionary, catalog ItemResolver, opts ...CodexOpt) *Codex {
	c := &Codex{
		dict:    dict,
		catalog: catalog,
		other:   search.NewIndex(storeNames(dict.DurabilityOther), search.WithMinScore(nameMatchFloor)),
		blocks:  search.NewIndex(storeNames(dict.DurabilityBlocks), search.WithMinScore(nameMatchFloor)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func storeNames(store storage.Storer[*DurabilitySet]) []string {
	ids := store.Ids()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}

// Query narrows and orders the entries a durability lookup returns.
// Zero values leave the corresponding dimension alone.
type Query struct {
	// Group keeps only entries with a matching damage-source category
	Group string `json:"group,omitempty"`

	// Which keeps only entries for the given side
	Which string `json:"which,omitempty"`

	// OrderBy names one of the recognized sort tokens
	OrderBy string `json:"order_by,omitempty"`
}

// filters parses the group/which constraints. ok is false when a
// provided value falls outside its enumeration, which fails the whole
// lookup rather than silently widening it.
func (q Query) filters() (Group, Which, bool) {
	var group Group
	var which Which

	if q.Group != "" {
		g, ok := ParseGroup(q.Group)
		if !ok {
			return "", "", false
		}
		group = g
	}
	if q.Which != "" {
		w, ok := ParseWhich(q.Which)
		if !ok {
			return "", "", false
		}
		which = w
	}

	return group, which, true
}
