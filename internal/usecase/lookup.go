package usecase

import "errors"

// Tag errors distinguishing why a unique lookup failed.
var (
	errNoMatch        = errors.New("no match")
	errAmbiguousMatch = errors.New("ambiguous match")
)

// findFirst returns the first item satisfying match. Duplicates are
// tolerated; the first match wins.
func findFirst[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// findUnique returns the single item satisfying match. Zero matches fail with
// errNoMatch, more than one with errAmbiguousMatch.
func findUnique[T any](items []T, match func(T) bool) (T, error) {
	var found T
	hits := 0
	for _, item := range items {
		if match(item) {
			found = item
			hits++
		}
	}
	switch hits {
	case 0:
		var zero T
		return zero, errNoMatch
	case 1:
		return found, nil
	default:
		var zero T
		return zero, errAmbiguousMatch
	}
}
