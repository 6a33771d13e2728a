package routing

import "errors"

type PathStatus uint8

const (
	StatusReachable PathStatus = iota
	StatusBlocked
	StatusUnreachable
)

func (s PathStatus) String() string {
	switch s {
	case StatusReachable:
		return "reachable"
	case StatusBlocked:
		return "blocked"
	default:
		return "unreachable"
	}
}

var (
	ErrNegativeWeight = errors.New("routing graph has a negative edge weight")
	ErrGraphMismatch  = errors.New("routing graph and zone set sizes differ")
)
