package codex

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-codex/internal/storage"
	"github.com/pixil98/go-errors"
)

// Namespace identifies which key-space a durability subject resolved
// in. Building blocks and "other" deployables are keyed by name; items
// are keyed by catalog id.
type Namespace string

const (
	NamespaceOther          Namespace = "other"
	NamespaceBuildingBlocks Namespace = "buildingBlocks"
	NamespaceItems          Namespace = "items"
)

// Group categorizes the damage source of a durability entry.
type Group string

const (
	GroupExplosive Group = "explosive"
	GroupMelee     Group = "melee"
	GroupThrow     Group = "throw"
	GroupGuns      Group = "guns"
	GroupTorpedo   Group = "torpedo"
	GroupTurret    Group = "turret"
)

// Groups returns every damage-source category, in display order.
func Groups() []Group {
	return []Group{
		GroupExplosive,
		GroupMelee,
		GroupThrow,
		GroupGuns,
		GroupTorpedo,
		GroupTurret,
	}
}

func (g Group) Valid() bool {
	switch g {
	case GroupExplosive, GroupMelee, GroupThrow, GroupGuns, GroupTorpedo, GroupTurret:
		return true
	default:
		return false
	}
}

// ParseGroup returns the canonical Group for a user-supplied value.
func ParseGroup(s string) (Group, bool) {
	g := Group(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", false
	}
	return g, true
}

// Which selects the side of a subject an entry applies to: the hard
// (reinforced) side, the soft side, or both.
type Which string

const (
	WhichHard Which = "hard"
	WhichSoft Which = "soft"
	WhichBoth Which = "both"
)

// WhichOptions returns every side selector, in display order.
func WhichOptions() []Which {
	return []Which{WhichHard, WhichSoft, WhichBoth}
}

func (w Which) Valid() bool {
	switch w {
	case WhichHard, WhichSoft, WhichBoth:
		return true
	default:
		return false
	}
}

// ParseWhich returns the canonical Which for a user-supplied value.
func ParseWhich(s string) (Which, bool) {
	w := Which(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", false
	}
	return w, true
}

// Order names a sort over durability entries. Tokens outside the
// recognized set are ignored rather than rejected.
type Order string

const (
	OrderQuantityHighFirst Order = "quantityHighFirst"
	OrderQuantityLowFirst  Order = "quantityLowFirst"
	OrderTimeHighFirst     Order = "timeHighFirst"
	OrderTimeLowFirst      Order = "timeLowFirst"
	OrderFuelHighFirst     Order = "fuelHighFirst"
	OrderFuelLowFirst      Order = "fuelLowFirst"
	OrderSulfurHighFirst   Order = "sulfurHighFirst"
	OrderSulfurLowFirst    Order = "sulfurLowFirst"
)

// OrderOptions returns every recognized sort token, in display order.
func OrderOptions() []Order {
	return []Order{
		OrderQuantityHighFirst,
		OrderQuantityLowFirst,
		OrderTimeHighFirst,
		OrderTimeLowFirst,
		OrderFuelHighFirst,
		OrderFuelLowFirst,
		OrderSulfurHighFirst,
		OrderSulfurLowFirst,
	}
}

// ItemAmount references a quantity of a catalog item, used for both
// recipe inputs and recycle outputs. Amounts may be fractional on the
// output side.
type ItemAmount struct {
	ItemId storage.Identifier `json:"item_id"`
	Amount float64            `json:"amount"`
}

func (a *ItemAmount) Validate() error {
	el := errors.NewErrorList()
	if a.ItemId == "" {
		el.Add(fmt.Errorf("item id is required"))
	}
	if a.Amount <= 0 {
		el.Add(fmt.Errorf("amount must be positive"))
	}
	return el.Err()
}

// CraftRecipe defines what it takes to craft one batch of an item.
type CraftRecipe struct {
	// Ingredients are consumed per crafting run
	Ingredients []ItemAmount `json:"ingredients"`

	// Seconds is the crafting time for one run
	Seconds float64 `json:"seconds"`

	// Amount is the number of items produced per run
	Amount int `json:"amount"`

	// Workbench is the required workbench level (0 for none)
	Workbench int `json:"workbench"`
}

// Validate satisfies storage.ValidatingSpec
func (r *CraftRecipe) Validate() error {
	el := errors.NewErrorList()
	if len(r.Ingredients) < 1 {
		el.Add(fmt.Errorf("recipe needs at least one ingredient"))
	}
	for i := range r.Ingredients {
		if err := r.Ingredients[i].Validate(); err != nil {
			el.Add(fmt.Errorf("ingredient %d: %w", i, err))
		}
	}
	if r.Seconds < 0 {
		el.Add(fmt.Errorf("seconds cannot be negative"))
	}
	if r.Amount < 1 {
		el.Add(fmt.Errorf("amount must be at least 1"))
	}
	if r.Workbench < 0 || r.Workbench > 3 {
		el.Add(fmt.Errorf("workbench level %d is invalid", r.Workbench))
	}
	return el.Err()
}

// ResearchCost defines what unlocking an item's blueprint costs.
type ResearchCost struct {
	// Scrap is the amount spent at a research table
	Scrap int `json:"scrap"`

	// Workbench is the level needed to tech-tree the item (0 for none)
	Workbench int `json:"workbench"`
}

// Validate satisfies storage.ValidatingSpec
func (r *ResearchCost) Validate() error {
	el := errors.NewErrorList()
	if r.Scrap < 1 {
		el.Add(fmt.Errorf("scrap cost must be at least 1"))
	}
	if r.Workbench < 0 || r.Workbench > 3 {
		el.Add(fmt.Errorf("workbench level %d is invalid", r.Workbench))
	}
	return el.Err()
}

// RecycleYield defines what breaking an item down returns.
type RecycleYield struct {
	// Outputs are the materials returned at full efficiency
	Outputs []ItemAmount `json:"outputs"`

	// Efficiency scales outputs (e.g., 0.6 at a regular recycler)
	Efficiency float64 `json:"efficiency"`
}

// Validate satisfies storage.ValidatingSpec
func (y *RecycleYield) Validate() error {
	el := errors.NewErrorList()
	if len(y.Outputs) < 1 {
		el.Add(fmt.Errorf("yield needs at least one output"))
	}
	for i := range y.Outputs {
		if err := y.Outputs[i].Validate(); err != nil {
			el.Add(fmt.Errorf("output %d: %w", i, err))
		}
	}
	if y.Efficiency <= 0 || y.Efficiency > 1 {
		el.Add(fmt.Errorf("efficiency %v is out of range", y.Efficiency))
	}
	return el.Err()
}

// DurabilityEntry records one way of breaking a subject: the tool or
// weapon, which side it works on, and what it costs.
type DurabilityEntry struct {
	// Tool is the display name of the weapon or tool
	Tool string `json:"tool"`

	Group Group `json:"group"`
	Which Which `json:"which"`

	// Quantity is how many uses of the tool are needed
	Quantity float64 `json:"quantity"`

	// Seconds is the time to destroy the subject this way
	Seconds float64 `json:"seconds"`

	// Fuel and Sulfur are the aggregate material costs
	Fuel   float64 `json:"fuel"`
	Sulfur float64 `json:"sulfur"`
}

func (e *DurabilityEntry) Validate() error {
	el := errors.NewErrorList()
	if e.Tool == "" {
		el.Add(fmt.Errorf("tool is required"))
	}
	if !e.Group.Valid() {
		el.Add(fmt.Errorf("group %q is invalid", e.Group))
	}
	if !e.Which.Valid() {
		el.Add(fmt.Errorf("which %q is invalid", e.Which))
	}
	if e.Quantity <= 0 {
		el.Add(fmt.Errorf("quantity must be positive"))
	}
	if e.Seconds < 0 || e.Fuel < 0 || e.Sulfur < 0 {
		el.Add(fmt.Errorf("costs cannot be negative"))
	}
	return el.Err()
}

// DurabilitySet is the list-valued durability record for one subject.
// Multiple entries usually share a parent: one per viable tool.
type DurabilitySet struct {
	Entries []DurabilityEntry `json:"entries"`
}

// Validate satisfies storage.ValidatingSpec
func (s *DurabilitySet) Validate() error {
	el := errors.NewErrorList()
	if len(s.Entries) < 1 {
		el.Add(fmt.Errorf("durability set needs at least one entry"))
	}
	for i := range s.Entries {
		if err := s.Entries[i].Validate(); err != nil {
			el.Add(fmt.Errorf("entry %d: %w", i, err))
		}
	}
	return el.Err()
}
