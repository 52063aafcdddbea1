package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure at the boundary so callers never have to
// pattern-match error text. Conflict covers referential and uniqueness
// violations, Forbidden covers auth and row policy rejections.
type Kind int

const (
	KindUnknown Kind = iota
	KindConflict
	KindForbidden
	KindNotFound
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Op      string
	Table   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("gateway: %s %s: %s: %s", e.Op, e.Table, e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the classification from any error in the chain;
// KindUnknown when the error did not come from the gateway.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}
