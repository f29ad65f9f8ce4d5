// Package seed provides the catalog's built-in defaults and an optional YAML
// seed file that replaces them.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tbourn/go-soft-portal/internal/catalog"
	"github.com/tbourn/go-soft-portal/internal/domain"
)

// ErrInvalidSeed is returned when a seed file parses but violates catalog
// invariants.
var ErrInvalidSeed = errors.New("invalid seed")

// Source produces the catalog used on first start and after a reset.
type Source func() (*catalog.Catalog, error)

// Builtin is a Source returning Default.
func Builtin() (*catalog.Catalog, error) { return Default(), nil }

// FromFile returns a Source that reads path on every call, so edits are
// picked up by the next reset.
func FromFile(path string) Source {
	return func() (*catalog.Catalog, error) { return LoadFile(path) }
}

// Default returns a fresh copy of the built-in catalog.
func Default() *catalog.Catalog {
	return &catalog.Catalog{
		Software: []domain.Software{
			{
				ID:                  "1",
				Name:                "Code-Pilot",
				Slug:                "code-pilot",
				Logo:                "CodePilotIcon",
				Screenshots:         []string{},
				Category:            "Developer Tools",
				Description:         "AI-powered code completion and suggestion tool for developers.",
				DetailedDescription: "Code-Pilot is an advanced AI assistant designed to streamline your coding workflow. It provides intelligent, context-aware code completions, suggests best practices, and helps you write cleaner, more efficient code faster than ever before. Integrated directly into your favorite IDE, Code-Pilot understands your project's context to offer relevant suggestions, from simple variable names to complex function implementations.",
				Rating:              4.8,
				Version:             "2.1.0",
				Reviews: []domain.Review{
					{ID: "r1", Author: "Jane Doe", Rating: 5, Comment: "Absolutely indispensable for my daily work!", Date: "2023-10-26"},
					{ID: "r2", Author: "John Smith", Rating: 4, Comment: "Great tool, though sometimes the suggestions are a bit off.", Date: "2023-10-22"},
				},
				Downloads:    150234,
				Size:         120,
				Unit:         domain.UnitMB,
				DownloadURL:  "#",
				Author:       "DevGenius Inc.",
				Platform:     "Cross-Platform",
				License:      "Subscription",
				Requirements: "64-bit Processor",
				IsFeatured:   true,
			},
			{
				ID:                  "2",
				Name:                "Firewall Pro X",
				Slug:                "firewall-pro-x",
				Logo:                "FirewallIcon",
				Screenshots:         []string{},
				Category:            "Security",
				Description:         "Advanced network security and threat protection for your system.",
				DetailedDescription: "Firewall Pro X offers comprehensive, next-generation protection against all forms of cyber threats. It actively monitors your network traffic, blocking malicious connections, preventing intrusions, and safeguarding your private data from hackers and malware. With its intuitive interface, you can easily configure security rules and monitor activity in real-time.",
				Rating:              4.5,
				Version:             "5.3.2",
				Reviews: []domain.Review{
					{ID: "r3", Author: "Alex Johnson", Rating: 5, Comment: "The best firewall I have ever used. Simple and powerful.", Date: "2023-09-15"},
				},
				Downloads:    520100,
				Size:         85,
				Unit:         domain.UnitMB,
				DownloadURL:  "#",
				Author:       "SecureSys",
				Platform:     "Windows",
				License:      "Proprietary",
				Requirements: "Windows 10+",
				IsSponsored:  true,
			},
		},
		Categories:   []string{"Productivity", "Developer Tools", "Security", "Design", "Utilities", domain.CategoryUncategorized},
		Authors:      []string{"DevGenius Inc.", "SecureSys", "CreativeMinds LLC"},
		Platforms:    []string{"Windows", "macOS", "Linux", "Cross-Platform"},
		Licenses:     []string{"Freeware", "Proprietary", "Open Source (MIT)", "Subscription"},
		Requirements: []string{"Windows 10+", "macOS 11+", "64-bit Processor"},
	}
}

// LoadFile reads a YAML seed from path. See Decode.
func LoadFile(path string) (*catalog.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	c, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML seed. Collections missing from the document keep
// their built-in defaults; a collection present but empty stays empty.
// Entries must have unique, non-empty ids, and missing slugs are derived.
func Decode(r io.Reader) (*catalog.Catalog, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func validate(c *catalog.Catalog) error {
	seen := make(map[string]struct{}, len(c.Software))
	for i := range c.Software {
		s := &c.Software[i]
		if s.ID == "" {
			return fmt.Errorf("%w: software[%d] has no id", ErrInvalidSeed, i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate software id %q", ErrInvalidSeed, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Unit != "" && !s.Unit.Valid() {
			return fmt.Errorf("%w: software %q has unit %q", ErrInvalidSeed, s.ID, s.Unit)
		}
		if s.Slug == "" {
			s.Slug = domain.Slugify(s.Name)
		}
		if s.Screenshots == nil {
			s.Screenshots = []string{}
		}
	}
	for _, set := range []struct {
		name string
		vals []string
	}{{"categories", c.Categories}, {"authors", c.Authors}} {
		folded := make(map[string]struct{}, len(set.vals))
		for _, v := range set.vals {
			k := catalog.Fold(v)
			if _, dup := folded[k]; dup {
				return fmt.Errorf("%w: duplicate %s entry %q", ErrInvalidSeed, set.name, v)
			}
			folded[k] = struct{}{}
		}
	}
	return nil
}
