package items

import (
	"sort"
	"testing"

	"github.com/pixil98/go-codex/internal/storage"
	"github.com/pixil98/go-testutil"
)

// mapStore implements storage.Storer[*Item] for testing
type mapStore struct {
	records map[storage.Identifier]*Item
}

func (m *mapStore) Get(id storage.Identifier) *Item {
	return m.records[id]
}

func (m *mapStore) GetAll() map[storage.Identifier]*Item {
	out := make(map[storage.Identifier]*Item, len(m.records))
	for k, v := range m.records {
		out[k] = v
	}
	return out
}

func (m *mapStore) Ids() []storage.Identifier {
	ids := make([]storage.Identifier, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *mapStore) Len() int {
	return len(m.records)
}

func testCatalog() *mapStore {
	return &mapStore{records: map[storage.Identifier]*Item{
		"1545779598": {Name: "Sheet Metal Door", Category: "construction"},
		"69511070":   {Name: "Wood", Category: "resource"},
		"317398316":  {Name: "High Quality Metal", Category: "resource"},
	}}
}

func TestIndex_Resolve(t *testing.T) {
	tests := map[string]struct {
		input    string
		expId    storage.Identifier
		expFound bool
	}{
		"exact id": {
			input:    "1545779598",
			expId:    "1545779598",
			expFound: true,
		},
		"exact name": {
			input:    "Wood",
			expId:    "69511070",
			expFound: true,
		},
		"lowercased name": {
			input:    "sheet metal door",
			expId:    "1545779598",
			expFound: true,
		},
		"fuzzy name": {
			input:    "sheet metal dor",
			expId:    "1545779598",
			expFound: true,
		},
		"unknown numeric id": {
			input:    "12345",
			expId:    "",
			expFound: false,
		},
		"unknown name": {
			input:    "zzzznonexistent",
			expId:    "",
			expFound: false,
		},
		"empty input": {
			input:    "",
			expId:    "",
			expFound: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ix := NewIndex(testCatalog())

			id, found := ix.Resolve(tt.input)

			testutil.AssertEqual(t, "found", found, tt.expFound)
			testutil.AssertEqual(t, "id", id, tt.expId)
		})
	}
}

func TestIndex_Get(t *testing.T) {
	ix := NewIndex(testCatalog())

	testutil.AssertEqual(t, "known", ix.Get("69511070").Name, "Wood")
	if got := ix.Get("99999"); got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}
