package domain

import (
	"regexp"
	"strings"
)

var (
	slugSpaceRE   = regexp.MustCompile(`\s+`)
	slugInvalidRE = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives the URL-safe form of a software name: lower-cased, runs of
// whitespace become a single '-', and anything outside [a-z0-9-] is dropped.
//
//	Slugify("Firewall Pro X") // "firewall-pro-x"
//	Slugify("C++ Studio 2")   // "c-studio-2"
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugSpaceRE.ReplaceAllString(s, "-")
	return slugInvalidRE.ReplaceAllString(s, "")
}
