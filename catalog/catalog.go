package catalog

import "fmt"

// key is the composite (type id, LDraw color) lookup key.
type key struct {
	typeID string
	color  int
}

// Catalog is an immutable part catalog.
// The zero value is an empty catalog that resolves nothing.
type Catalog struct {
	entries []Entry
	byColor map[key]int    // first entry for (type, color)
	byType  map[string]int // first entry for type, any color
}

// New builds a Catalog from entries, preserving their order.
// When several entries share a key, the first one wins.
//
// Errors: ErrEmptyTypeID, ErrNegativeDimension (wrapped with the entry index).
// Complexity: O(N) time and memory.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byColor: make(map[key]int, len(entries)),
		byType:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("New: entry %d: %w", i, err)
		}
		idx := len(c.entries)
		c.entries = append(c.entries, e)
		if _, ok := c.byType[e.TypeID]; !ok {
			c.byType[e.TypeID] = idx
		}
		if e.Color == nil {
			continue
		}
		k := key{typeID: e.TypeID, color: *e.Color}
		if _, ok := c.byColor[k]; !ok {
			c.byColor[k] = idx
		}
	}

	return c, nil
}

// Lookup resolves (typeID, color): an exact color match first, otherwise the
// first entry of the same type regardless of its color.
func (c *Catalog) Lookup(typeID string, color int) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	if idx, ok := c.byColor[key{typeID: typeID, color: color}]; ok {
		return c.entries[idx], true
	}
	if idx, ok := c.byType[typeID]; ok {
		return c.entries[idx], true
	}

	return Entry{}, false
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}

// Entries returns a copy of all entries in load order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}
