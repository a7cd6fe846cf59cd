package codex

import (
	"fmt"

	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/storage"
	"github.com/pixil98/go-errors"
)

// Dictionary holds all reference dataset stores. It provides a single
// value that can be handed to the engine so every query reads the same
// snapshot.
type Dictionary struct {
	Items    storage.Storer[*items.Item]
	Craft    storage.Storer[*CraftRecipe]
	Research storage.Storer[*ResearchCost]
	Recycle  storage.Storer[*RecycleYield]

	// Durability is split across three key-spaces: catalog ids for
	// items, names for building blocks and other deployables.
	DurabilityItems  storage.Storer[*DurabilitySet]
	DurabilityBlocks storage.Storer[*DurabilitySet]
	DurabilityOther  storage.Storer[*DurabilitySet]
}

// Resolve checks cross-dataset references after load. Craft, research,
// recycle, and item durability records must be keyed by catalog ids,
// and every ingredient or output must name a known item.
func (d *Dictionary) Resolve() error {
	el := errors.NewErrorList()

	for id, recipe := range d.Craft.GetAll() {
		if d.Items.Get(id) == nil {
			el.Add(fmt.Errorf("craft %s: not in item catalog", id))
		}
		for _, ing := range recipe.Ingredients {
			if d.Items.Get(ing.ItemId) == nil {
				el.Add(fmt.Errorf("craft %s: unknown ingredient %s", id, ing.ItemId))
			}
		}
	}

	for id := range d.Research.GetAll() {
		if d.Items.Get(id) == nil {
			el.Add(fmt.Errorf("research %s: not in item catalog", id))
		}
	}

	for id, yield := range d.Recycle.GetAll() {
		if d.Items.Get(id) == nil {
			el.Add(fmt.Errorf("recycle %s: not in item catalog", id))
		}
		for _, out := range yield.Outputs {
			if d.Items.Get(out.ItemId) == nil {
				el.Add(fmt.Errorf("recycle %s: unknown output %s", id, out.ItemId))
			}
		}
	}

	for id := range d.DurabilityItems.GetAll() {
		if d.Items.Get(id) == nil {
			el.Add(fmt.Errorf("durability %s: not in item catalog", id))
		}
	}

	return el.Err()
}
