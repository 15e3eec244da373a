package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// claim identifies one input asking for one output name.
type claim struct {
	input, name string
}

// CollisionResolver hands out output file names for one run. A name belongs
// to the first input that claims it; later inputs asking for the same name
// get "<stem> - dupN<ext>". Asking again for the same name returns the same
// answer. Not safe for concurrent use.
type CollisionResolver struct {
	owners   map[string]string // output name → input path that owns it
	assigned map[claim]string  // earlier answers
	counters map[string]int    // requested name → next dup counter
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		assigned: make(map[claim]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the output name for input.
func (cr *CollisionResolver) Resolve(input, name string) string {
	key := claim{input: input, name: name}
	if got, ok := cr.assigned[key]; ok {
		return got
	}
	got := cr.next(input, name)
	cr.owners[got] = input
	cr.assigned[key] = got
	return got
}

// next picks name itself when free, else the lowest free dup variant at or
// above the counter for name.
func (cr *CollisionResolver) next(input, name string) string {
	if owner, ok := cr.owners[name]; !ok || owner == input {
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	n := max(cr.counters[name], 1)
	for {
		candidate := fmt.Sprintf("%s - dup%d%s", stem, n, ext)
		if owner, ok := cr.owners[candidate]; !ok || owner == input {
			cr.counters[name] = n + 1
			return candidate
		}
		n++
	}
}
