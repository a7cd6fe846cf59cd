package codex

import (
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/storage"
)

// DurabilityDetails describes what it takes to break a resolved
// subject. Info is set only for the items namespace; name-keyed
// namespaces carry their canonical name in Key.
type DurabilityDetails struct {
	Namespace Namespace          `json:"namespace"`
	Key       storage.Identifier `json:"key"`
	Info      *items.Item        `json:"info,omitempty"`
	Entries   []DurabilityEntry  `json:"entries"`
}

// Subject returns the display name of the resolved subject.
func (d *DurabilityDetails) Subject() string {
	if d.Info != nil {
		return d.Info.Name
	}
	return string(d.Key)
}

// GetDurabilityDetails resolves a free-form subject across the three
// namespaces and returns its filtered, ordered entries. The namespaces
// are probed in fixed priority: "other" deployables win over building
// blocks, which win over catalog items; the first index to match
// decides. Nil means the subject didn't resolve, the resolved id has
// no durability data, or the query named an unknown group/which value.
func (c *Codex) GetDurabilityDetails(nameOrId string, q Query) *DurabilityDetails {
	group, which, ok := q.filters()
	if !ok {
		return nil
	}
	order := Order(q.OrderBy)

	if name, found := c.other.Search(nameOrId); found {
		return c.durabilityByName(NamespaceOther, c.dict.DurabilityOther, name, group, which, order)
	}
	if name, found := c.blocks.Search(nameOrId); found {
		return c.durabilityByName(NamespaceBuildingBlocks, c.dict.DurabilityBlocks, name, group, which, order)
	}
	if id, found := c.catalog.Resolve(nameOrId); found {
		return c.durabilityById(id, group, which, order)
	}

	return nil
}

func (c *Codex) durabilityByName(ns Namespace, store storage.Storer[*DurabilitySet], name string, group Group, which Which, order Order) *DurabilityDetails {
	key := storage.Identifier(name)
	set := store.Get(key)
	if set == nil {
		return nil
	}

	return &DurabilityDetails{
		Namespace: ns,
		Key:       key,
		Entries:   SortEntries(FilterEntries(set.Entries, group, which), order),
	}
}

func (c *Codex) durabilityById(id storage.Identifier, group Group, which Which, order Order) *DurabilityDetails {
	set := c.dict.DurabilityItems.Get(id)
	if set == nil {
		return nil
	}

	return &DurabilityDetails{
		Namespace: NamespaceItems,
		Key:       id,
		Info:      c.catalog.Get(id),
		Entries:   SortEntries(FilterEntries(set.Entries, group, which), order),
	}
}
