package codex

import (
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/storage"
)

// CraftDetails pairs a crafting recipe with the catalog entry it
// belongs to.
type CraftDetails struct {
	Id     storage.Identifier `json:"id"`
	Info   *items.Item        `json:"info,omitempty"`
	Recipe *CraftRecipe       `json:"recipe"`
}

// ResearchDetails pairs a research cost with its catalog entry.
type ResearchDetails struct {
	Id   storage.Identifier `json:"id"`
	Info *items.Item        `json:"info,omitempty"`
	Cost *ResearchCost      `json:"cost"`
}

// RecycleDetails pairs a recycle yield with its catalog entry.
type RecycleDetails struct {
	Id    storage.Identifier `json:"id"`
	Info  *items.Item        `json:"info,omitempty"`
	Yield *RecycleYield      `json:"yield"`
}

// GetCraftDetails looks up the crafting recipe for an item given by id
// or (possibly misspelled) name. Nil means the input didn't resolve or
// the item isn't craftable.
func (c *Codex) GetCraftDetails(nameOrId string) *CraftDetails {
	id, ok := c.catalog.Resolve(nameOrId)
	if !ok {
		return nil
	}
	return c.craftById(id)
}

func (c *Codex) craftById(id storage.Identifier) *CraftDetails {
	recipe := c.dict.Craft.Get(id)
	if recipe == nil {
		return nil
	}
	return &CraftDetails{Id: id, Info: c.catalog.Get(id), Recipe: recipe}
}

// GetResearchDetails looks up the research cost for an item given by
// id or name. Nil means the input didn't resolve or the item can't be
// researched.
func (c *Codex) GetResearchDetails(nameOrId string) *ResearchDetails {
	id, ok := c.catalog.Resolve(nameOrId)
	if !ok {
		return nil
	}
	return c.researchById(id)
}

func (c *Codex) researchById(id storage.Identifier) *ResearchDetails {
	cost := c.dict.Research.Get(id)
	if cost == nil {
		return nil
	}
	return &ResearchDetails{Id: id, Info: c.catalog.Get(id), Cost: cost}
}

// GetRecycleDetails looks up the recycle yield for an item given by id
// or name. Nil means the input didn't resolve or the item can't be
// recycled.
func (c *Codex) GetRecycleDetails(nameOrId string) *RecycleDetails {
	id, ok := c.catalog.Resolve(nameOrId)
	if !ok {
		return nil
	}
	return c.recycleById(id)
}

func (c *Codex) recycleById(id storage.Identifier) *RecycleDetails {
	yield := c.dict.Recycle.Get(id)
	if yield == nil {
		return nil
	}
	return &RecycleDetails{Id: id, Info: c.catalog.Get(id), Yield: yield}
}

// ResolveItem maps an id or name to a catalog id.
func (c *Codex) ResolveItem(nameOrId string) (storage.Identifier, bool) {
	return c.catalog.Resolve(nameOrId)
}

// GetItemInfo returns the catalog record for an id, or nil when the id
// is unknown.
func (c *Codex) GetItemInfo(id storage.Identifier) *items.Item {
	return c.catalog.Get(id)
}
