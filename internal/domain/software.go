// Package domain defines the catalog entities shared by every layer: software
// entries, their reviews, and the flat taxonomy sets (categories, authors,
// platforms, licenses, requirements). Field names serialize verbatim (camelCase)
// because the same shape is written to the persisted slots and returned by the
// HTTP API.
package domain

import (
	"math"
)

// Sentinel category values.
const (
	// CategoryAll is the pseudo-category that disables category filtering.
	CategoryAll = "all"
	// CategoryUncategorized receives entries whose category was deleted.
	CategoryUncategorized = "Uncategorized"
)

// Unit is the size unit of a downloadable artifact.
type Unit string

// Supported size units.
const (
	UnitKB Unit = "KB"
	UnitMB Unit = "MB"
	UnitGB Unit = "GB"
)

// Valid reports whether u is one of KB, MB or GB.
func (u Unit) Valid() bool {
	switch u {
	case UnitKB, UnitMB, UnitGB:
		return true
	}
	return false
}

// Review is a single user rating of a software entry. Reviews are append-only;
// insertion order is chronological.
//
// Fields:
//   - ID: generated when the review is submitted.
//   - Author: free text.
//   - Rating: integer in [1,5].
//   - Comment: free text.
//   - Date: calendar date of creation (YYYY-MM-DD, UTC).
type Review struct {
	ID      string `json:"id"      yaml:"id"`
	Author  string `json:"author"  yaml:"author"`
	Rating  int    `json:"rating"  yaml:"rating"`
	Comment string `json:"comment" yaml:"comment"`
	Date    string `json:"date"    yaml:"date"`
}

// ReviewInput is the user-supplied part of a Review; ID and Date are assigned
// by the aggregator.
type ReviewInput struct {
	Author  string `json:"author"  binding:"required,min=1,max=120" example:"Jane Doe"`
	Rating  int    `json:"rating"  binding:"required,min=1,max=5"   example:"5"`
	Comment string `json:"comment" binding:"max=4000"               example:"Indispensable."`
}

// Software is a single cataloged item.
//
// Category, Author, Platform, License and Requirements are plain strings that
// reference the corresponding taxonomy sets; they are not validated against
// those sets on write.
type Software struct {
	ID                  string   `json:"id"                  yaml:"id"`
	Name                string   `json:"name"                yaml:"name"`
	Slug                string   `json:"slug"                yaml:"slug"`
	Logo                string   `json:"logo"                yaml:"logo"`
	Screenshots         []string `json:"screenshots"         yaml:"screenshots"`
	Category            string   `json:"category"            yaml:"category"`
	Description         string   `json:"description"         yaml:"description"`
	DetailedDescription string   `json:"detailedDescription" yaml:"detailedDescription"`
	Rating              float64  `json:"rating"              yaml:"rating"`
	Version             string   `json:"version"             yaml:"version"`
	Reviews             []Review `json:"reviews"             yaml:"reviews"`
	Downloads           int64    `json:"downloads"           yaml:"downloads"`
	Size                float64  `json:"size"                yaml:"size"`
	Unit                Unit     `json:"unit"                yaml:"unit"`
	DownloadURL         string   `json:"downloadUrl"         yaml:"downloadUrl"`
	BuyURL              string   `json:"buyUrl,omitempty"    yaml:"buyUrl,omitempty"`
	Author              string   `json:"author"              yaml:"author"`
	Platform            string   `json:"platform"            yaml:"platform"`
	License             string   `json:"license"             yaml:"license"`
	Requirements        string   `json:"requirements"        yaml:"requirements"`
	IsFeatured          bool     `json:"isFeatured,omitempty"  yaml:"isFeatured,omitempty"`
	IsSponsored         bool     `json:"isSponsored,omitempty" yaml:"isSponsored,omitempty"`
}

// Clone returns a deep copy of s; the slices of the copy never alias s.
func (s Software) Clone() Software {
	out := s
	if s.Screenshots != nil {
		out.Screenshots = append([]string(nil), s.Screenshots...)
	}
	if s.Reviews != nil {
		out.Reviews = append([]Review(nil), s.Reviews...)
	}
	return out
}

// AverageRating returns the mean of the review ratings rounded to one decimal
// place. ok is false when there are no reviews.
func AverageRating(reviews []Review) (avg float64, ok bool) {
	if len(reviews) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return RoundRating(float64(sum) / float64(len(reviews))), true
}

// RoundRating rounds v to one decimal place, halves away from zero.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}
