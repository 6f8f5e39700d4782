package enums

import "strings"

type SwipeKind string

const (
	SwipeKindLike      SwipeKind = "LIKE"
	SwipeKindSuperLike SwipeKind = "SUPERLIKE"
	SwipeKindPass      SwipeKind = "PASS"
)

// NormalizeSwipeKind maps client spellings ("like", "Super_Like") onto
// the canonical kind values.
func NormalizeSwipeKind(input string) (SwipeKind, bool) {
	value := strings.ToUpper(strings.TrimSpace(input))
	value = strings.ReplaceAll(value, "_", "")
	switch SwipeKind(value) {
	case SwipeKindLike, SwipeKindSuperLike, SwipeKindPass:
		return SwipeKind(value), true
	default:
		return "", false
	}
}

// FormsMatch reports whether the kind can create a match and therefore
// whether undoing it must also clear the match row.
func (k SwipeKind) FormsMatch() bool {
	return k == SwipeKindLike || k == SwipeKindSuperLike
}
