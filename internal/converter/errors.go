package converter

import "fmt"

// Kind classifies a fatal conversion error.
type Kind int

const (
	KindDiscovery Kind = iota + 1
	KindRead
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindDiscovery:
		return "discovery"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by Converter.Run for every fatal failure.
type Error struct {
	Kind Kind
	Err  error
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
