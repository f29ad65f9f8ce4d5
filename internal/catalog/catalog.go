// Package catalog holds the in-memory catalog collections and the pure
// mutations applied to them. Nothing here performs I/O; persistence and
// serialization of concurrent callers belong to the service layer.
package catalog

import (
	"golang.org/x/text/cases"

	"github.com/tbourn/go-soft-portal/internal/domain"
)

// Catalog is the full application state: software entries plus the five flat
// taxonomy sets. The zero value is an empty catalog.
type Catalog struct {
	Software     []domain.Software `json:"softwareList" yaml:"softwareList"`
	Categories   []string          `json:"categories"   yaml:"categories"`
	Authors      []string          `json:"authors"      yaml:"authors"`
	Platforms    []string          `json:"platforms"    yaml:"platforms"`
	Licenses     []string          `json:"licenses"     yaml:"licenses"`
	Requirements []string          `json:"requirements" yaml:"requirements"`
}

var folder = cases.Fold()

// Fold returns the Unicode case-folded form of s.
func Fold(s string) string { return folder.String(s) }

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool { return Fold(a) == Fold(b) }

// Clone returns a deep copy; mutating the copy never affects c.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Categories:   cloneStrings(c.Categories),
		Authors:      cloneStrings(c.Authors),
		Platforms:    cloneStrings(c.Platforms),
		Licenses:     cloneStrings(c.Licenses),
		Requirements: cloneStrings(c.Requirements),
	}
	if c.Software != nil {
		out.Software = make([]domain.Software, len(c.Software))
		for i, s := range c.Software {
			out.Software[i] = s.Clone()
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

// Find returns a copy of the entry with the given id.
func (c *Catalog) Find(id string) (domain.Software, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.Software[i].Clone(), true
	}
	return domain.Software{}, false
}

// FindBySlug returns a copy of the first entry whose slug equals slug.
func (c *Catalog) FindBySlug(slug string) (domain.Software, bool) {
	if slug == "" {
		return domain.Software{}, false
	}
	for _, s := range c.Software {
		if s.Slug == slug {
			return s.Clone(), true
		}
	}
	return domain.Software{}, false
}

// Lookup resolves ref as an id first and as a slug second.
func (c *Catalog) Lookup(ref string) (domain.Software, bool) {
	if s, ok := c.Find(ref); ok {
		return s, true
	}
	return c.FindBySlug(ref)
}

func (c *Catalog) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.Software {
		if c.Software[i].ID == id {
			return i
		}
	}
	return -1
}

// UpsertSoftware replaces the entry with the same id in place, or appends it
// when the id is new. An empty id is rejected. A missing slug is derived from
// the name, and the rating is re-derived whenever the entry carries reviews.
func (c *Catalog) UpsertSoftware(entry domain.Software) bool {
	if entry.ID == "" {
		return false
	}
	entry = entry.Clone()
	if entry.Slug == "" {
		entry.Slug = domain.Slugify(entry.Name)
	}
	if avg, ok := domain.AverageRating(entry.Reviews); ok {
		entry.Rating = avg
	}
	if i := c.indexOf(entry.ID); i >= 0 {
		c.Software[i] = entry
		return true
	}
	c.Software = append(c.Software, entry)
	return true
}

// DeleteSoftware removes the entry with the given id. It reports false when
// no such entry exists.
func (c *Catalog) DeleteSoftware(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.Software = append(c.Software[:i:i], c.Software[i+1:]...)
	return true
}

// AddCategory appends name unless a case-insensitive duplicate exists.
func (c *Catalog) AddCategory(name string) bool {
	return addUnique(&c.Categories, name)
}

// AddAuthor appends name unless a case-insensitive duplicate exists.
func (c *Catalog) AddAuthor(name string) bool {
	return addUnique(&c.Authors, name)
}

func addUnique(set *[]string, name string) bool {
	if name == "" {
		return false
	}
	for _, existing := range *set {
		if EqualFold(existing, name) {
			return false
		}
	}
	*set = append(*set, name)
	return true
}

// DeleteCategory removes name from the category set and moves every entry in
// that category to Uncategorized. It returns the number of reassigned entries.
// Matching is exact, as category values on entries are copied verbatim.
func (c *Catalog) DeleteCategory(name string) int {
	kept := c.Categories[:0:0]
	for _, cat := range c.Categories {
		if cat != name {
			kept = append(kept, cat)
		}
	}
	c.Categories = kept

	moved := 0
	for i := range c.Software {
		if c.Software[i].Category == name {
			c.Software[i].Category = domain.CategoryUncategorized
			moved++
		}
	}
	return moved
}

// HasCategory reports whether name is in the category set, ignoring case.
func (c *Catalog) HasCategory(name string) bool {
	for _, cat := range c.Categories {
		if EqualFold(cat, name) {
			return true
		}
	}
	return false
}
