package kernel

import (
	"fmt"
	"strings"
)

// Op selects the elementwise binary function.
type Op int

const (
	// OpAdd computes a + b.
	OpAdd Op = iota + 1
	// OpMultiply computes a * b.
	OpMultiply
)

// Ops lists every supported operation in reporting order.
var Ops = []Op{OpAdd, OpMultiply}

// Valid reports whether op is a recognized operation.
func (op Op) Valid() bool {
	return op == OpAdd || op == OpMultiply
}

// String returns the lowercase name used on the command line.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMultiply:
		return "multiply"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Eval applies op to a single pair. It is the reference every backend
// must match bit for bit. Invalid ops yield NaN.
func (op Op) Eval(a, b float32) float32 {
	switch op {
	case OpAdd:
		return a + b
	case OpMultiply:
		return a * b
	default:
		return nan32()
	}
}

// ParseOp converts a name ("add", "multiply" or "mul") to an Op.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add":
		return OpAdd, nil
	case "multiply", "mul":
		return OpMultiply, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperation, s)
	}
}

// ParseOps parses a list of names, rejecting duplicates.
func ParseOps(names []string) ([]Op, error) {
	ops := make([]Op, 0, len(names))
	seen := make(map[Op]bool, len(names))
	for _, name := range names {
		op, err := ParseOp(name)
		if err != nil {
			return nil, err
		}
		if seen[op] {
			return nil, fmt.Errorf("kernel: operation %q listed twice", op)
		}
		seen[op] = true
		ops = append(ops, op)
	}
	return ops, nil
}
