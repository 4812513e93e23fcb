package anchor

import "strconv"

// Registry hands out unique identifiers for one document build.
// The first request for a base returns the base itself, later requests
// return base-2, base-3 and so on. An identifier is never issued twice,
// even when a literal name already ends in a numeric suffix.
//
// Registry is not safe for concurrent use; each build owns its own.
type Registry struct {
	counts map[string]int
	issued map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counts: make(map[string]int),
		issued: make(map[string]struct{}),
	}
}

// Allocate returns the next free identifier for base.
func (r *Registry) Allocate(base string) string {
	n := r.counts[base] + 1
	id := suffixed(base, n)
	for r.has(id) {
		n++
		id = suffixed(base, n)
	}
	r.counts[base] = n
	r.issued[id] = struct{}{}
	return id
}

// Chapter allocates the identifier of a chapter.
func (r *Registry) Chapter(name string) string {
	return r.Allocate(ChapterBase(name))
}

// Section allocates the identifier of a section within chapter.
func (r *Registry) Section(chapter, section string) string {
	return r.Allocate(SectionBase(chapter, section))
}

// Len returns the number of identifiers issued so far.
func (r *Registry) Len() int {
	return len(r.issued)
}

func (r *Registry) has(id string) bool {
	_, ok := r.issued[id]
	return ok
}

func suffixed(base string, n int) string {
	if n == 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
