package pauses

import "strings"

// Style names a pause-duration profile.
type Style int

const (
	StyleAudiobook Style = iota
	StyleYouTube
	StyleAd
	StyleDramatic
)

// Boundary classifies a scan position for duration lookup.
type Boundary int

const (
	boundaryNone Boundary = iota
	BoundaryComma
	BoundarySemicolon
	BoundaryColon
	BoundaryEmdash
	BoundarySentenceEnd
	BoundaryParagraph
)

// dramaticScale derives the dramatic profile from the audiobook one.
const dramaticScale = 1.35

type baseTable map[Boundary]float64

var basePauses = map[Style]baseTable{
	StyleAudiobook: {
		BoundaryComma:       0.16,
		BoundarySemicolon:   0.32,
		BoundaryColon:       0.36,
		BoundaryEmdash:      0.24,
		BoundarySentenceEnd: 0.55,
		BoundaryParagraph:   1.15,
	},
	StyleYouTube: {
		BoundaryComma:       0.12,
		BoundarySemicolon:   0.22,
		BoundaryColon:       0.24,
		BoundaryEmdash:      0.18,
		BoundarySentenceEnd: 0.38,
		BoundaryParagraph:   0.80,
	},
	StyleAd: {
		BoundaryComma:       0.07,
		BoundarySemicolon:   0.14,
		BoundaryColon:       0.16,
		BoundaryEmdash:      0.12,
		BoundarySentenceEnd: 0.26,
		BoundaryParagraph:   0.55,
	},
}

func (s Style) String() string {
	switch s {
	case StyleYouTube:
		return "youtube"
	case StyleAd:
		return "ad"
	case StyleDramatic:
		return "dramatic"
	default:
		return "audiobook"
	}
}

// ParseStyle maps a style name to its Style; unknown names fall back to
// audiobook, matching the forgiving behavior callers rely on.
func ParseStyle(name string) Style {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "youtube":
		return StyleYouTube
	case "ad":
		return StyleAd
	case "dramatic":
		return StyleDramatic
	default:
		return StyleAudiobook
	}
}

// Styles lists every known style in display order.
func Styles() []Style {
	return []Style{StyleAudiobook, StyleYouTube, StyleAd, StyleDramatic}
}

// base returns the per-boundary durations for the style. Dramatic is not an
// independent table; it scales the audiobook values.
func (s Style) base() baseTable {
	if s == StyleDramatic {
		derived := make(baseTable, len(basePauses[StyleAudiobook]))
		for k, v := range basePauses[StyleAudiobook] {
			derived[k] = v * dramaticScale
		}
		return derived
	}
	if table, ok := basePauses[s]; ok {
		return table
	}
	return basePauses[StyleAudiobook]
}

// BaseDuration exposes the style's base pause for a boundary kind, mainly for
// display in the CLI styles listing.
func (s Style) BaseDuration(b Boundary) float64 {
	return s.base()[b]
}

// sentenceEndMarkerBump is the discourse-marker bonus applied after a
// sentence-end boundary. The mid-sentence bump is flat across styles.
func (s Style) sentenceEndMarkerBump() float64 {
	switch s {
	case StyleYouTube:
		return 0.07
	case StyleAd:
		return 0.04
	default:
		return 0.10
	}
}

func (b Boundary) String() string {
	switch b {
	case BoundaryComma:
		return "comma"
	case BoundarySemicolon:
		return "semicolon"
	case BoundaryColon:
		return "colon"
	case BoundaryEmdash:
		return "emdash"
	case BoundarySentenceEnd:
		return "sentence_end"
	case BoundaryParagraph:
		return "paragraph"
	default:
		return "none"
	}
}

// BoundaryKinds lists the classifiable boundaries in display order.
func BoundaryKinds() []Boundary {
	return []Boundary{
		BoundaryComma, BoundarySemicolon, BoundaryColon,
		BoundaryEmdash, BoundarySentenceEnd, BoundaryParagraph,
	}
}
