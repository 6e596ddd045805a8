package graphql

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func assertRejected(t *testing.T, query string, want RejectionReason) {
	t.Helper()

	err := Validate(query)
	if err == nil {
		t.Fatalf("Validate(%q): expected rejection %s, got nil", query, want)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate(%q): expected *ValidationError, got %T", query, err)
	}
	if verr.Reason != want {
		t.Fatalf("Validate(%q): reason = %s, want %s", query, verr.Reason, want)
	}
}

func TestValidateAcceptsWellFormedQuery(t *testing.T) {
	query := `{ jobs(filter: { location: "London" }) { title salary } }`
	if err := Validate(query); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsUnbalancedBraces(t *testing.T) {
	cases := []string{
		"{ jobs { title }",
		"jobs { title } }",
		"{{ jobs(limit: 10) { title } }",
		"}",
	}
	for _, query := range cases {
		assertRejected(t, query, ReasonUnbalancedBraces)
	}
}

func TestValidateRejectsShortOrEmptyQueries(t *testing.T) {
	cases := []string{
		"",
		"   \t\n  ",
		"{jobs}",
		"  { jobs } ", // 8 chars trimmed
		"{ ééééé }",   // 9 characters even though 14 bytes
	}
	for _, query := range cases {
		assertRejected(t, query, ReasonTooShortOrEmpty)
	}
}

func TestValidateRejectsDisallowedCharacters(t *testing.T) {
	for _, c := range disallowedChars {
		query := "{ jobs" + string(c) + "(limit: 10) { title } }"
		assertRejected(t, query, ReasonInvalidCharacters)
	}
}

func TestValidateBraceCheckWinsOverLength(t *testing.T) {
	// Both conditions hold; brace balance is checked first.
	assertRejected(t, "{", ReasonUnbalancedBraces)
}

func TestValidateCharacterScanRunsLast(t *testing.T) {
	// Balanced and long enough, but carries a directive marker.
	assertRejected(t, `{ jobs @include(if: true) { title } }`, ReasonInvalidCharacters)
}

func TestValidateAcceptsExactMinimumLength(t *testing.T) {
	query := "{ jobs {}}"
	if utf8.RuneCountInString(strings.TrimSpace(query)) != minQueryLength {
		t.Fatalf("fixture drifted: %d runes", utf8.RuneCountInString(strings.TrimSpace(query)))
	}
	if err := Validate(query); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateCountsCharactersNotBytes(t *testing.T) {
	// 10 characters, 16 bytes; must clear the minimum-length check.
	query := "{ éééééé }"
	if utf8.RuneCountInString(query) != minQueryLength {
		t.Fatalf("fixture drifted: %d runes", utf8.RuneCountInString(query))
	}
	if err := Validate(query); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
