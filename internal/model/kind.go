package model

import "strings"

// Kind is the content type of an Item.
type Kind int

// Content kinds. KindText is the zero value and the fallback for any
// unrecognized type, so a misspelled type still renders as readable prose.
const (
	KindText Kind = iota
	KindCode
	KindNote
	KindImage
	KindMarkdown
)

var kindNames = map[Kind]string{
	KindText:     "text",
	KindCode:     "code",
	KindNote:     "note",
	KindImage:    "image",
	KindMarkdown: "markdown",
}

// ParseKind maps a type token to a Kind. It is total: unknown tokens
// yield KindText.
func ParseKind(token string) Kind {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "code":
		return KindCode
	case "note":
		return KindNote
	case "image":
		return KindImage
	case "markdown", "md":
		return KindMarkdown
	default:
		return KindText
	}
}

// String returns the canonical type token of k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindText]
}
