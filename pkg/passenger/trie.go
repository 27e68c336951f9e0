package passenger

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type trieNode struct {
	children map[rune]*trieNode
	names    map[string]struct{} // every name that passes through this node
}

func newTrieNode() *trieNode {
	return &trieNode{
		children: make(map[rune]*trieNode),
		names:    make(map[string]struct{}),
	}
}

// Registry indexes passenger names for prefix search. Names are stored capitalized: first letter upper
// case, the rest lower case.
type Registry struct {
	root  *trieNode
	upper cases.Caser
	lower cases.Caser
}

func NewRegistry() *Registry {
	return &Registry{
		root:  newTrieNode(),
		upper: cases.Upper(language.Und),
		lower: cases.Lower(language.Und),
	}
}

// Normalize capitalizes name: "jOHN" -> "John".
func (r *Registry) Normalize(name string) string {
	if name == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(name)
	return r.upper.String(name[:size]) + r.lower.String(name[size:])
}

func (r *Registry) AddPassenger(name string) {
	name = r.Normalize(name)
	if name == "" {
		return
	}

	current := r.root
	current.names[name] = struct{}{}
	for _, c := range name {
		next, ok := current.children[c]
		if !ok {
			next = newTrieNode()
			current.children[c] = next
		}
		current = next
		current.names[name] = struct{}{}
	}
}

func (r *Registry) AddPassengers(names []string) {
	for _, name := range names {
		r.AddPassenger(name)
	}
}

// SearchForPassengers returns the sorted names starting with prefix, compared after normalization.
// An empty prefix returns every passenger.
func (r *Registry) SearchForPassengers(prefix string) []string {
	prefix = r.Normalize(prefix)

	current := r.root
	for _, c := range prefix {
		next, ok := current.children[c]
		if !ok {
			return []string{}
		}
		current = next
	}

	result := make([]string, 0, len(current.names))
	for name := range current.names {
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}

func (r *Registry) Size() int {
	return len(r.root.names)
}
