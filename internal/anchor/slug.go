// Package anchor allocates URL-fragment-safe identifiers for chapters and
// sections of a document.
//
// Identifiers are derived from names with Slug and made unique within one
// document build by a Registry. A Registry is never shared between builds,
// so identical inputs always produce identical identifiers.
package anchor

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"github.com/gosimple/unidecode"
)

// Fallback is the slug used when a name has no usable characters.
const Fallback = "x"

// Identifier prefixes.
const (
	ChapterPrefix = "ch-"
	SectionPrefix = "sec-"
)

// letterSubs spells out the letters whose plain ASCII form would lose
// information. Everything else goes through unidecode, so symbols such as
// "&" or "@" stay symbols and become separators.
var letterSubs = map[rune]string{
	'ä': "ae",
	'ö': "oe",
	'ü': "ue",
	'ß': "ss",
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a human-readable name to a lowercase ASCII token made of
// [a-z0-9] runs joined by single hyphens. It never returns an empty string.
//
//	Slug("Hällo Wörld!") == "haello-woerld"
//	Slug("Q&A")          == "q-a"
//	Slug("###")          == "x"
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return Fallback
	}
	s = unidecode.Unidecode(slug.SubstituteRune(s, letterSubs))
	s = strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if s == "" {
		return Fallback
	}
	return s
}

// ChapterBase returns the base identifier of a chapter before disambiguation.
func ChapterBase(chapter string) string {
	return ChapterPrefix + Slug(chapter)
}

// SectionBase returns the base identifier of a section before disambiguation.
// The chapter name is part of the key so equal section names in different
// chapters do not collide.
func SectionBase(chapter, section string) string {
	return SectionPrefix + Slug(chapter+"-"+section)
}
