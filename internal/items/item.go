package items

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Item defines one catalog entry loaded from asset files. Entries are
// keyed by the game's numeric item id (e.g., "1545779598").
type Item struct {
	// Name is the full display name (e.g., "Sheet Metal Door")
	Name string `json:"name"`

	// ShortName is the compact name used in table output
	ShortName string `json:"short_name"`

	// Description is shown by the item command
	Description string `json:"description"`

	// Category groups items for display (e.g., "weapon", "construction")
	Category string `json:"category"`
}

// Validate satisfies storage.ValidatingSpec
func (i *Item) Validate() error {
	el := errors.NewErrorList()
	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	return el.Err()
}
