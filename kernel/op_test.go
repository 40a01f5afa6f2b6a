package kernel

import (
	"errors"
	"math"
	"testing"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		in      string
		want    Op
		wantErr bool
	}{
		{"add", OpAdd, false},
		{"ADD", OpAdd, false},
		{" multiply ", OpMultiply, false},
		{"mul", OpMultiply, false},
		{"sub", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOp(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOperation) {
					t.Fatalf("ParseOp(%q) error = %v, want ErrInvalidOperation", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOp(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseOp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOps(t *testing.T) {
	ops, err := ParseOps([]string{"add", "mul"})
	if err != nil {
		t.Fatalf("ParseOps: %v", err)
	}
	if len(ops) != 2 || ops[0] != OpAdd || ops[1] != OpMultiply {
		t.Fatalf("ParseOps = %v", ops)
	}

	if _, err := ParseOps([]string{"add", "add"}); err == nil {
		t.Fatal("expected error for duplicate op")
	}
	if _, err := ParseOps([]string{"add", "div"}); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestOpStringAndValid(t *testing.T) {
	if OpAdd.String() != "add" || OpMultiply.String() != "multiply" {
		t.Fatalf("unexpected names: %s %s", OpAdd, OpMultiply)
	}
	if Op(0).Valid() || Op(9).Valid() {
		t.Fatal("zero and out-of-range ops must be invalid")
	}
	if got := Op(9).String(); got != "Op(9)" {
		t.Fatalf("Op(9).String() = %q", got)
	}
}

func TestOpEval(t *testing.T) {
	if got := OpAdd.Eval(1, 1); got != 2 {
		t.Fatalf("add(1,1) = %v", got)
	}
	if got := OpMultiply.Eval(1, 1); got != 1 {
		t.Fatalf("mul(1,1) = %v", got)
	}
	if got := Op(0).Eval(1, 1); !math.IsNaN(float64(got)) {
		t.Fatalf("invalid op Eval = %v, want NaN", got)
	}

	inf := float32(math.Inf(1))
	if got := OpAdd.Eval(inf, 1); !math.IsInf(float64(got), 1) {
		t.Fatalf("inf+1 = %v, want +Inf", got)
	}
}
