package items

import (
	"github.com/pixil98/go-codex/internal/search"
	"github.com/pixil98/go-codex/internal/storage"
)

// Index resolves free-form player input to catalog ids. Input may be
// an exact item id or an item name; ids are checked first since the
// numeric id space never overlaps display names.
type Index struct {
	store  storage.Storer[*Item]
	names  *search.Index
	byName map[string]storage.Identifier
}

func NewIndex(store storage.Storer[*Item]) *Index {
	names := make([]string, 0, store.Len())
	byName := make(map[string]storage.Identifier, store.Len())

	// Ids come back sorted, so when two records share a display name
	// the lowest id wins every run.
	for _, id := range store.Ids() {
		name := store.Get(id).Name
		if _, ok := byName[name]; ok {
			continue
		}
		byName[name] = id
		names = append(names, name)
	}

	return &Index{
		store:  store,
		names:  search.NewIndex(names),
		byName: byName,
	}
}

// Resolve maps an id or name to the catalog id it denotes. The boolean
// is false when neither interpretation finds an entry.
func (ix *Index) Resolve(nameOrId string) (storage.Identifier, bool) {
	id := storage.Identifier(nameOrId)
	if ix.store.Get(id) != nil {
		return id, true
	}

	name, ok := ix.names.Search(nameOrId)
	if !ok {
		return "", false
	}
	return ix.byName[name], true
}

// Get returns the catalog entry for an id, or nil when the id is
// unknown.
func (ix *Index) Get(id storage.Identifier) *Item {
	return ix.store.Get(id)
}
