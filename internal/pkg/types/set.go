package types

// Set is a generic hash set for comparable types.
//
// It is mutable: Add and AddMissing modify the set in place. A Set is not safe
// for concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set holding the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether value is in the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// AddMissing inserts values and returns the ones that were not in the set
// before the call, in input order. A value repeated in the input is returned
// once.
func (s Set[T]) AddMissing(values ...T) []T {
	added := make([]T, 0, len(values))
	for _, val := range values {
		if s.Has(val) {
			continue
		}

		s[val] = struct{}{}
		added = append(added, val)
	}

	return added
}
