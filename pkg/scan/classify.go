package scan

import "github.com/mattn/go-runewidth"

// Class is the delay class of a rune, derived from its display width.
type Class int

const (
	// Plain identifies runes occupying one display column, like most Latin
	// letters, digits and symbols.
	Plain Class = iota
	// Wide identifies runes occupying two display columns, like most CJK
	// ideographs.
	Wide
	// Control identifies runes that do not advance the cursor on their own,
	// like newlines and tabs.
	Control
)

func (c Class) String() string {
	switch c {
	case Plain:
		return "plain"
	case Wide:
		return "wide"
	case Control:
		return "control"
	default:
		return "bad class"
	}
}

// Width lookups resolve ambiguous-width runes to their East Asian context
// width, matching how CJK-aware terminals render them.
var cjkWidth = &runewidth.Condition{EastAsianWidth: true}

// ClassOf returns the delay class of r. It is pure: the same rune always
// yields the same class.
func ClassOf(r rune) Class {
	switch cjkWidth.RuneWidth(r) {
	case 0:
		return Control
	case 2:
		return Wide
	default:
		return Plain
	}
}
