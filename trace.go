package saes

import "fmt"

// Op identifies an elementary round operation.
type Op int

// Round operations, in the order they first appear during encryption.
const (
	OpAddRoundKey Op = iota
	OpSubNibbles
	OpShiftRow
	OpMixColumns
	OpInvSubNibbles
	OpInvMixColumns
)

func (op Op) String() string {
	switch op {
	case OpAddRoundKey:
		return "AddRoundKey"
	case OpSubNibbles:
		return "SubNibbles"
	case OpShiftRow:
		return "ShiftRow"
	case OpMixColumns:
		return "MixColumns"
	case OpInvSubNibbles:
		return "InvSubNibbles"
	case OpInvMixColumns:
		return "InvMixColumns"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Stage locates a step in the pipeline. Round 0 is the initial AddRoundKey.
type Stage struct {
	Round int
	Op    Op
}

func (s Stage) String() string {
	return fmt.Sprintf("round %d %s", s.Round, s.Op)
}

// A Tracer observes the state after each step of EncryptTrace or DecryptTrace.
type Tracer func(stage Stage, state uint16)

func (tr Tracer) emit(round int, op Op, state uint16) {
	if tr != nil {
		tr(Stage{Round: round, Op: op}, state)
	}
}
