// Package taxonomy indexes the three-level service hierarchy used to
// match lead requests against vendor service listings.
package taxonomy

import (
	"strings"
	"sync"
)

// Level classifies where a service name sits in the hierarchy.
type Level int

const (
	LevelUnknown Level = iota
	LevelCategory
	LevelSubcategory
	LevelLeaf
)

func (l Level) String() string {
	switch l {
	case LevelCategory:
		return "category"
	case LevelSubcategory:
		return "subcategory"
	case LevelLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

type subEntry struct {
	canonical string
	category  string
}

type leafEntry struct {
	canonical   string
	category    string
	subcategory string
}

// Taxonomy provides case-insensitive lookups over the service hierarchy.
// All lookups accept raw user input; names are normalized internally.
type Taxonomy struct {
	categories map[string][]string

	catIndex  map[string]string
	subIndex  map[string]subEntry
	leafIndex map[string]leafEntry
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
)

// Default returns the shared taxonomy built from the services data dictionary.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTax = New(serviceCategories, leafServices)
	})
	return defaultTax
}

// New builds a taxonomy from a category->subcategories map and a
// category->subcategory->leaves map.
func New(categories map[string][]string, leaves map[string]map[string][]string) *Taxonomy {
	t := &Taxonomy{
		categories: categories,
		catIndex:   make(map[string]string, len(categories)),
		subIndex:   make(map[string]subEntry),
		leafIndex:  make(map[string]leafEntry),
	}
	for category, subs := range categories {
		t.catIndex[Normalize(category)] = category
		for _, sub := range subs {
			t.subIndex[Normalize(sub)] = subEntry{canonical: sub, category: category}
		}
	}
	for category, subs := range leaves {
		for sub, leafNames := range subs {
			for _, leaf := range leafNames {
				t.leafIndex[Normalize(leaf)] = leafEntry{
					canonical:   leaf,
					category:    category,
					subcategory: sub,
				}
			}
		}
	}
	return t
}

// Normalize lowercases, trims, and collapses interior whitespace.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Equal reports whether two service names refer to the same entry after
// normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// LevelOf classifies a service name. Category wins over subcategory and
// subcategory over leaf when a name appears at multiple levels.
func (t *Taxonomy) LevelOf(name string) Level {
	norm := Normalize(name)
	if _, ok := t.catIndex[norm]; ok {
		return LevelCategory
	}
	if _, ok := t.subIndex[norm]; ok {
		return LevelSubcategory
	}
	if _, ok := t.leafIndex[norm]; ok {
		return LevelLeaf
	}
	return LevelUnknown
}

func (t *Taxonomy) IsCategory(name string) bool {
	_, ok := t.catIndex[Normalize(name)]
	return ok
}

func (t *Taxonomy) IsSubcategory(name string) bool {
	_, ok := t.subIndex[Normalize(name)]
	return ok
}

func (t *Taxonomy) IsLeaf(name string) bool {
	_, ok := t.leafIndex[Normalize(name)]
	return ok
}

// Categories returns the canonical level 1 category names.
func (t *Taxonomy) Categories() []string {
	out := make([]string, 0, len(t.categories))
	for category := range t.categories {
		out = append(out, category)
	}
	return out
}

// Subcategories returns the canonical children of a category.
func (t *Taxonomy) Subcategories(category string) []string {
	canonical, ok := t.catIndex[Normalize(category)]
	if !ok {
		return nil
	}
	return t.categories[canonical]
}

// CategoryOf resolves the parent category of a subcategory.
func (t *Taxonomy) CategoryOf(subcategory string) (string, bool) {
	entry, ok := t.subIndex[Normalize(subcategory)]
	if !ok {
		return "", false
	}
	return entry.category, true
}

// LeafParent resolves the category and subcategory a leaf service
// belongs to.
func (t *Taxonomy) LeafParent(leaf string) (category, subcategory string, ok bool) {
	entry, found := t.leafIndex[Normalize(leaf)]
	if !found {
		return "", "", false
	}
	return entry.category, entry.subcategory, true
}

// Canonical returns the dictionary spelling of a service name together
// with its level.
func (t *Taxonomy) Canonical(name string) (string, Level, bool) {
	norm := Normalize(name)
	if canonical, ok := t.catIndex[norm]; ok {
		return canonical, LevelCategory, true
	}
	if entry, ok := t.subIndex[norm]; ok {
		return entry.canonical, LevelSubcategory, true
	}
	if entry, ok := t.leafIndex[norm]; ok {
		return entry.canonical, LevelLeaf, true
	}
	return "", LevelUnknown, false
}
