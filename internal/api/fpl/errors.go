package fpl

import (
	"errors"
	"fmt"
)

// UserMessage is the text shown to users for any fetch failure. The detail
// stays in the logs.
const UserMessage = "Could not load data from the Fantasy Premier League API. Please try again."

type Kind int

const (
	KindTransport Kind = iota
	KindStatus
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

type FetchError struct {
	Kind   Kind
	Path   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("GET %s: unexpected status code: %d", e.Path, e.Status)
	case KindDecode:
		return fmt.Sprintf("GET %s: error decoding response: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("GET %s: error making request: %v", e.Path, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) UserMessage() string {
	return UserMessage
}

// IsFetchError reports whether err carries a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
