package dim

import "sort"

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Del removes x from s.
func (s StringSet) Del(x string) {
	delete(s, x)
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Join adds all elements of t to s.
func (s StringSet) Join(t StringSet) {
	for x := range t {
		s[x] = struct{}{}
	}
}

func (s StringSet) Elements() []string {
	elems := make([]string, len(s))
	i := 0
	for x := range s {
		elems[i] = x
		i++
	}
	sort.Strings(elems)
	return elems
}
