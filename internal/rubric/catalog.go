// Package rubric holds the nursing-necessity item catalog and the pure
// scoring engine that turns per-item responses into A/B/C subtotals and a
// severity verdict.
package rubric

import "fmt"

// Category is the aggregation bucket of an item.
type Category string

const (
	CategoryA Category = "A" // monitoring and treatment, presence/absence
	CategoryB Category = "B" // patient condition, leveled, optionally assistance-gated
	CategoryC Category = "C" // surgical and medical procedures, presence/absence
)

// InputType describes how an item is answered.
type InputType string

const (
	InputBinary  InputType = "binary"
	InputLeveled InputType = "leveled"
)

// LevelOption is one ordinal choice of a leveled item. Value is the raw score
// contributed before any assistance multiplier.
type LevelOption struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ItemDefinition is one row of the assessment form.
type ItemDefinition struct {
	ID            string        `json:"id"`
	Label         string        `json:"label"`
	Category      Category      `json:"category"`
	Points        int           `json:"points"`
	Input         InputType     `json:"input"`
	Options       []LevelOption `json:"options,omitempty"`
	HasAssistance bool          `json:"has_assistance"`
}

// Catalog is the immutable, ordered item definition table. It is constructed
// once and passed by reference; declaration order is the display and
// iteration order.
type Catalog struct {
	items []ItemDefinition
	byID  map[string]int
}

// NewCatalog validates the item set and builds a catalog. Leveled items must
// declare options, assistance gating is only defined for category B, and ids
// must be unique.
func NewCatalog(items []ItemDefinition) (*Catalog, error) {
	byID := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %d: id is required", i)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("item %q: duplicate id", it.ID)
		}
		switch it.Category {
		case CategoryA, CategoryB, CategoryC:
		default:
			return nil, fmt.Errorf("item %q: unknown category %q", it.ID, it.Category)
		}
		if it.Input == InputLeveled && len(it.Options) == 0 {
			return nil, fmt.Errorf("item %q: leveled item declares no options", it.ID)
		}
		if it.HasAssistance && it.Category != CategoryB {
			return nil, fmt.Errorf("item %q: assistance gating is only defined for category B", it.ID)
		}
		byID[it.ID] = i
	}
	cp := make([]ItemDefinition, len(items))
	copy(cp, items)
	return &Catalog{items: cp, byID: byID}, nil
}

// Item looks up a definition by id.
func (c *Catalog) Item(id string) (ItemDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ItemDefinition{}, false
	}
	return c.items[i], true
}

// Items returns all definitions in declaration order.
func (c *Catalog) Items() []ItemDefinition {
	out := make([]ItemDefinition, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory returns the definitions of one category, preserving declaration
// order.
func (c *Catalog) ByCategory(cat Category) []ItemDefinition {
	var out []ItemDefinition
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

func (c *Catalog) Len() int { return len(c.items) }
