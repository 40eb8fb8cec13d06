package textutil

// OrderedSet is a string set that keeps insertion order.
// The zero value is ready to use.
type OrderedSet struct {
	seen  map[string]struct{}
	items []string
}

// NewOrderedSet returns a set holding items in first-seen order.
func NewOrderedSet(items ...string) *OrderedSet {
	s := &OrderedSet{}
	s.Add(items...)
	return s
}

// Add inserts items not already present and reports how many were new.
func (s *OrderedSet) Add(items ...string) int {
	if s.seen == nil {
		s.seen = make(map[string]struct{}, len(items))
	}
	added := 0
	for _, it := range items {
		if _, ok := s.seen[it]; ok {
			continue
		}
		s.seen[it] = struct{}{}
		s.items = append(s.items, it)
		added++
	}
	return added
}

// Contains reports whether item is in the set.
func (s *OrderedSet) Contains(item string) bool {
	_, ok := s.seen[item]
	return ok
}

// Len returns the number of items.
func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in insertion order. It never returns nil.
func (s *OrderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
