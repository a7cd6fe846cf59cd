package codex

import "sort"

// FilterEntries returns the entries matching the given constraints,
// preserving input order. Zero-valued constraints match everything.
// The result is always a fresh slice so stored datasets are never
// reordered by a later sort.
func FilterEntries(entries []DurabilityEntry, group Group, which Which) []DurabilityEntry {
	out := make([]DurabilityEntry, 0, len(entries))
	for _, e := range entries {
		if group != "" && e.Group != group {
			continue
		}
		if which != "" && e.Which != which {
			continue
		}
		out = append(out, e)
	}
	return out
}

type ordering struct {
	key       func(e DurabilityEntry) float64
	highFirst bool
}

// orderings maps every recognized sort token to its field and
// direction. Tokens outside this table leave the slice untouched.
var orderings = map[Order]ordering{
	OrderQuantityHighFirst: {key: entryQuantity, highFirst: true},
	OrderQuantityLowFirst:  {key: entryQuantity},
	OrderTimeHighFirst:     {key: entrySeconds, highFirst: true},
	OrderTimeLowFirst:      {key: entrySeconds},
	OrderFuelHighFirst:     {key: entryFuel, highFirst: true},
	OrderFuelLowFirst:      {key: entryFuel},
	OrderSulfurHighFirst:   {key: entrySulfur, highFirst: true},
	OrderSulfurLowFirst:    {key: entrySulfur},
}

func entryQuantity(e DurabilityEntry) float64 { return e.Quantity }
func entrySeconds(e DurabilityEntry) float64  { return e.Seconds }
func entryFuel(e DurabilityEntry) float64     { return e.Fuel }
func entrySulfur(e DurabilityEntry) float64   { return e.Sulfur }

// SortEntries orders entries in place by the given token and returns
// the same slice. Ties keep their relative order; unrecognized tokens
// are a no-op.
func SortEntries(entries []DurabilityEntry, order Order) []DurabilityEntry {
	o, ok := orderings[order]
	if !ok {
		return entries
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if o.highFirst {
			return o.key(entries[i]) > o.key(entries[j])
		}
		return o.key(entries[i]) < o.key(entries[j])
	})
	return entries
}
