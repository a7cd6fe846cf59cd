package stats

import (
	"github.com/pixil98/go-codex/internal/codex"
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/storage"
)

// Queries is the engine surface being counted.
type Queries interface {
	GetCraftDetails(nameOrId string) *codex.CraftDetails
	GetResearchDetails(nameOrId string) *codex.ResearchDetails
	GetRecycleDetails(nameOrId string) *codex.RecycleDetails
	GetDurabilityDetails(nameOrId string, q codex.Query) *codex.DurabilityDetails
	ResolveItem(nameOrId string) (storage.Identifier, bool)
	GetItemInfo(id storage.Identifier) *items.Item
}

// Engine decorates a query engine with per-dataset counting. Catalog
// lookups and option listings aren't dataset queries and don't count.
type Engine struct {
	inner   Queries
	counter *Counter
}

func NewEngine(inner Queries, counter *Counter) *Engine {
	return &Engine{
		inner:   inner,
		counter: counter,
	}
}

func (e *Engine) GetCraftDetails(nameOrId string) *codex.CraftDetails {
	e.counter.Count(DatasetCraft)
	return e.inner.GetCraftDetails(nameOrId)
}

func (e *Engine) GetResearchDetails(nameOrId string) *codex.ResearchDetails {
	e.counter.Count(DatasetResearch)
	return e.inner.GetResearchDetails(nameOrId)
}

func (e *Engine) GetRecycleDetails(nameOrId string) *codex.RecycleDetails {
	e.counter.Count(DatasetRecycle)
	return e.inner.GetRecycleDetails(nameOrId)
}

func (e *Engine) GetDurabilityDetails(nameOrId string, q codex.Query) *codex.DurabilityDetails {
	e.counter.Count(DatasetDurability)
	return e.inner.GetDurabilityDetails(nameOrId, q)
}

func (e *Engine) ResolveItem(nameOrId string) (storage.Identifier, bool) {
	return e.inner.ResolveItem(nameOrId)
}

func (e *Engine) GetItemInfo(id storage.Identifier) *items.Item {
	return e.inner.GetItemInfo(id)
}
