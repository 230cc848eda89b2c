package glimpse

type setEntry[K comparable, V any] struct {
	id    K
	value V
	live  bool
}

// OrderedSet is an insertion-ordered collection keyed by an identity derived
// from each value. Iteration order is insertion order, which the pane tree
// uses directly as paint and hit-test z-order (later = in front).
//
// Re-adding a value whose id is already present replaces the stored value and
// keeps its original position.
//
// Removal leaves a tombstone that is compacted lazily on the next positional
// access, so Add, Remove and ValueFor are amortized O(1).
type OrderedSet[K comparable, V any] struct {
	idFn    func(V) K
	entries []setEntry[K, V]
	index   map[K]int
	holes   int
}

// NewOrderedSet creates an empty set using idFn to derive identities.
func NewOrderedSet[K comparable, V any](idFn func(V) K) *OrderedSet[K, V] {
	return &OrderedSet[K, V]{
		idFn:  idFn,
		index: make(map[K]int),
	}
}

// Len returns the number of values.
func (s *OrderedSet[K, V]) Len() int {
	return len(s.entries) - s.holes
}

// Add appends v, or replaces the value with the same id in place.
func (s *OrderedSet[K, V]) Add(v V) {
	id := s.idFn(v)
	if i, ok := s.index[id]; ok {
		s.entries[i].value = v
		return
	}
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, setEntry[K, V]{id: id, value: v, live: true})
}

// RemoveValue removes the entry whose id matches v's. No-op if absent.
func (s *OrderedSet[K, V]) RemoveValue(v V) {
	s.RemoveID(s.idFn(v))
}

// RemoveID removes the entry with the given id. No-op if absent.
func (s *OrderedSet[K, V]) RemoveID(id K) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	var zero V
	s.entries[i].value = zero
	s.entries[i].live = false
	s.holes++
	if i == len(s.entries)-1 {
		s.entries = s.entries[:i]
		s.holes--
	}
}

// Has reports whether an entry with id exists.
func (s *OrderedSet[K, V]) Has(id K) bool {
	_, ok := s.index[id]
	return ok
}

// ValueFor returns the value with the given id.
func (s *OrderedSet[K, V]) ValueFor(id K) (V, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero V
		return zero, false
	}
	return s.entries[i].value, true
}

// IndexOf returns the position of id, or -1.
func (s *OrderedSet[K, V]) IndexOf(id K) int {
	if _, ok := s.index[id]; !ok {
		return -1
	}
	s.compact()
	return s.index[id]
}

// ValueAt returns the value at position i in insertion order.
// Panics if i is out of range.
func (s *OrderedSet[K, V]) ValueAt(i int) V {
	s.compact()
	return s.entries[i].value
}

// IDAt returns the id at position i.
func (s *OrderedSet[K, V]) IDAt(i int) K {
	s.compact()
	return s.entries[i].id
}

// RetainIDs removes every entry whose id is not in keep. Survivors keep their
// relative order.
func (s *OrderedSet[K, V]) RetainIDs(keep []K) {
	want := make(map[K]struct{}, len(keep))
	for _, id := range keep {
		want[id] = struct{}{}
	}
	s.retain(want)
}

// RetainValues removes every entry whose id does not match one of keep.
func (s *OrderedSet[K, V]) RetainValues(keep []V) {
	want := make(map[K]struct{}, len(keep))
	for _, v := range keep {
		want[s.idFn(v)] = struct{}{}
	}
	s.retain(want)
}

func (s *OrderedSet[K, V]) retain(want map[K]struct{}) {
	out := s.entries[:0]
	for _, e := range s.entries {
		if !e.live {
			continue
		}
		if _, ok := want[e.id]; !ok {
			delete(s.index, e.id)
			continue
		}
		s.index[e.id] = len(out)
		out = append(out, e)
	}
	clear(s.entries[len(out):])
	s.entries = out
	s.holes = 0
}

// Clear removes every entry.
func (s *OrderedSet[K, V]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	clear(s.index)
	s.holes = 0
}

// ToSlice returns the values in insertion order as a new slice.
func (s *OrderedSet[K, V]) ToSlice() []V {
	out := make([]V, 0, s.Len())
	for _, e := range s.entries {
		if e.live {
			out = append(out, e.value)
		}
	}
	return out
}

// ForEach calls fn for each value in insertion order.
// fn must not modify the set.
func (s *OrderedSet[K, V]) ForEach(fn func(V)) {
	for _, e := range s.entries {
		if e.live {
			fn(e.value)
		}
	}
}

// compact squeezes out tombstones and reindexes.
func (s *OrderedSet[K, V]) compact() {
	if s.holes == 0 {
		return
	}
	out := s.entries[:0]
	for _, e := range s.entries {
		if e.live {
			s.index[e.id] = len(out)
			out = append(out, e)
		}
	}
	clear(s.entries[len(out):])
	s.entries = out
	s.holes = 0
}
