package catalog

import "sort"

// MislabeledTypeID is appended to every palette: the upstream palette lists
// the cargo container under the wrong id.
const MislabeledTypeID = "4345b"

// ValidTypeSet is the immutable set of recognized part type ids.
type ValidTypeSet struct {
	ids map[string]struct{}
}

// NewValidTypeSet builds a set from ids plus MislabeledTypeID.
// Empty ids are ignored.
func NewValidTypeSet(ids ...string) ValidTypeSet {
	s := ValidTypeSet{ids: make(map[string]struct{}, len(ids)+1)}
	for _, id := range ids {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	s.ids[MislabeledTypeID] = struct{}{}

	return s
}

// Contains reports whether typeID is recognized.
func (s ValidTypeSet) Contains(typeID string) bool {
	_, ok := s.ids[typeID]

	return ok
}

// Len returns the number of recognized ids.
func (s ValidTypeSet) Len() int { return len(s.ids) }

// IDs returns the recognized ids in ascending order.
func (s ValidTypeSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
