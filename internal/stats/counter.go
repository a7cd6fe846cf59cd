package stats

import "sync/atomic"

// Dataset names one queryable dataset.
type Dataset string

const (
	DatasetCraft      Dataset = "craft"
	DatasetResearch   Dataset = "research"
	DatasetRecycle    Dataset = "recycle"
	DatasetDurability Dataset = "durability"
)

// Counter tracks served queries per dataset. Safe for concurrent use.
type Counter struct {
	craft      atomic.Uint64
	research   atomic.Uint64
	recycle    atomic.Uint64
	durability atomic.Uint64
}

// Count records one served query. Unknown datasets are ignored.
func (c *Counter) Count(d Dataset) {
	switch d {
	case DatasetCraft:
		c.craft.Add(1)
	case DatasetResearch:
		c.research.Add(1)
	case DatasetRecycle:
		c.recycle.Add(1)
	case DatasetDurability:
		c.durability.Add(1)
	}
}

// Snapshot returns the current totals.
func (c *Counter) Snapshot() Snapshot {
	return Snapshot{
		Craft:      c.craft.Load(),
		Research:   c.research.Load(),
		Recycle:    c.recycle.Load(),
		Durability: c.durability.Load(),
	}
}

// Snapshot is a point-in-time view of the query totals.
type Snapshot struct {
	Craft      uint64 `json:"craft"`
	Research   uint64 `json:"research"`
	Recycle    uint64 `json:"recycle"`
	Durability uint64 `json:"durability"`
}

// Total sums the datasets.
func (s Snapshot) Total() uint64 {
	return s.Craft + s.Research + s.Recycle + s.Durability
}
