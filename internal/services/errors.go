// Package services defines the business logic for the software catalog.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

var (
	// ErrSoftwareNotFound indicates that no entry matches the given id or slug.
	ErrSoftwareNotFound = errors.New("software not found")

	// ErrInvalidSoftware is returned when a submitted entry fails validation
	// (empty name, unknown unit, negative size or downloads, rating out of range).
	ErrInvalidSoftware = errors.New("invalid software entry")

	// ErrInvalidReview is returned when a review has no author or a rating
	// outside 1..5.
	ErrInvalidReview = errors.New("invalid review")

	// ErrEmptyName is returned when a category or author name is blank.
	ErrEmptyName = errors.New("name is empty")

	// ErrCategoryExists is returned when a category already exists, ignoring case.
	ErrCategoryExists = errors.New("category already exists")

	// ErrAuthorExists is returned when an author already exists, ignoring case.
	ErrAuthorExists = errors.New("author already exists")

	// ErrCategoryNotFound is returned when deleting a category that is not in
	// the set.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrNoMedia is returned when a media upload carries no files.
	ErrNoMedia = errors.New("no media files")

	// ErrPersist wraps a failed write to the slot store. The in-memory catalog
	// has been rolled back when it is returned.
	ErrPersist = errors.New("persist failed")
)
