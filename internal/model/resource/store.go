package resource

import "strings"

// Store exposes library retrieval for HTTP handlers.
type Store interface {
	List() []Resource
	FindByID(id int) (Resource, bool)
	Search(term, category string) []Resource
}

// MemoryStore implements Store with an in-memory slice, suitable for MVP.
type MemoryStore struct {
	items []Resource
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied resources.
func NewMemoryStore(items []Resource) *MemoryStore {
	return &MemoryStore{items: append([]Resource(nil), items...)}
}

// List returns the full library.
func (s *MemoryStore) List() []Resource {
	return append([]Resource(nil), s.items...)
}

// FindByID looks up a resource by identifier.
func (s *MemoryStore) FindByID(id int) (Resource, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Resource{}, false
}

// Search filters the library by a case-insensitive term over title and
// description and an optional category. Empty term and "All" (or empty)
// category match everything.
func (s *MemoryStore) Search(term, category string) []Resource {
	term = strings.ToLower(strings.TrimSpace(term))
	matches := make([]Resource, 0, len(s.items))
	for _, item := range s.items {
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(item.Title), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) {
			continue
		}
		matches = append(matches, item)
	}
	return matches
}

// Categories lists the filter chips shown above the library.
func Categories() []string {
	return []string{"All", "Anxiety Relief", "Academic Wellness", "Sleep & Recovery", "Personal Growth"}
}

// Languages lists the languages resources are available in.
func Languages() []string {
	return []string{"All", "Hindi", "English", "Tamil"}
}
