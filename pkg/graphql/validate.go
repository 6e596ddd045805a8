package graphql

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RejectionReason classifies why a query failed validation
type RejectionReason string

const (
	ReasonUnbalancedBraces  RejectionReason = "unbalanced_braces"
	ReasonTooShortOrEmpty   RejectionReason = "too_short_or_empty"
	ReasonInvalidCharacters RejectionReason = "invalid_characters"
)

// minQueryLength is the smallest trimmed query the validator accepts
const minQueryLength = 10

// disallowedChars rejects characters that never belong in the field
// selections the agent is expected to emit. Note this also excludes
// `@` directives; kept as-is to match the agent's prompt contract.
const disallowedChars = "<>!@#$%^&*"

// ValidationError reports a rejected query with its reason
type ValidationError struct {
	Reason RejectionReason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonUnbalancedBraces:
		return "invalid GraphQL query: unbalanced braces"
	case ReasonTooShortOrEmpty:
		return "invalid GraphQL query: query is empty or too short"
	case ReasonInvalidCharacters:
		return "invalid GraphQL query: contains invalid characters"
	default:
		return fmt.Sprintf("invalid GraphQL query: %s", string(e.Reason))
	}
}

// Validate applies shallow syntactic checks to a candidate query before it
// is sent anywhere. It is not a GraphQL parser: it exists to catch obviously
// malformed agent output without spending a network round trip. Checks run
// cheapest-first and stop at the first failure.
func Validate(query string) error {
	if strings.Count(query, "{") != strings.Count(query, "}") {
		return &ValidationError{Reason: ReasonUnbalancedBraces}
	}

	if trimmed := strings.TrimSpace(query); utf8.RuneCountInString(trimmed) < minQueryLength {
		return &ValidationError{Reason: ReasonTooShortOrEmpty}
	}

	if strings.ContainsAny(query, disallowedChars) {
		return &ValidationError{Reason: ReasonInvalidCharacters}
	}

	return nil
}
