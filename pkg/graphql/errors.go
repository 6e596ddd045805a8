package graphql

import "fmt"

// TransportError reports a failed network exchange: a request that never
// completed, or a non-2xx HTTP status. Status is zero when the request did
// not reach the server.
type TransportError struct {
	Status int
	Body   string
	cause  error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("graphql: API error (%d): %s", e.Status, e.Body)
	}
	return fmt.Sprintf("graphql: request failed: %v", e.cause)
}

func (e *TransportError) Unwrap() error {
	return e.cause
}

// MalformedResponseError reports a 2xx response whose body is not valid JSON
type MalformedResponseError struct {
	cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("graphql: decode response: %v", e.cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.cause
}
