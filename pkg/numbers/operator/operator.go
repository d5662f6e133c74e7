// Package operator provides the four arithmetic operators of the
// numbers game together with their applicability rules. The rules both
// enforce the game (no negative or fractional intermediates) and
// suppress redundant branches: commutative operators accept only the
// left >= right operand ordering, and operations whose result would be
// a no-op (x - 0, x ÷ 1, divisor 1) are rejected outright.
package operator

import (
	"github.com/joatca/numbers-solver/pkg/numbers"
)

// Operator implementations apply one arithmetic operation to a pair of
// Values. Apply is pure: it never mutates its operands and has no side
// effects. A false return means the operator is not applicable to the
// pair, which is a normal filtered branch, not an error.
type Operator interface {
	Symbol() numbers.Symbol
	Apply(left, right numbers.Value, label numbers.Label) (numbers.Value, bool)
}

var _ Operator = &AddOperator{}
var _ Operator = &SubOperator{}
var _ Operator = &MulOperator{}
var _ Operator = &DivOperator{}

type AddOperator struct{}

func (o *AddOperator) Symbol() numbers.Symbol {
	return numbers.OpAdd
}

func (o *AddOperator) Apply(left, right numbers.Value, label numbers.Label) (numbers.Value, bool) {
	if left.Magnitude < right.Magnitude {
		return numbers.Value{}, false
	}
	return numbers.Value{Magnitude: left.Magnitude + right.Magnitude, Label: label}, true
}

// Add returns the addition operator. Addition is commutative, so it
// applies only when left >= right; the search tries both orderings of
// every pair, and exactly one of them succeeds.
func Add() Operator {
	return &AddOperator{}
}

type SubOperator struct{}

func (o *SubOperator) Symbol() numbers.Symbol {
	return numbers.OpSub
}

func (o *SubOperator) Apply(left, right numbers.Value, label numbers.Label) (numbers.Value, bool) {
	if left.Magnitude <= right.Magnitude {
		return numbers.Value{}, false
	}
	difference := left.Magnitude - right.Magnitude
	// a result equal to the subtrahend never advances the puzzle
	if difference == right.Magnitude {
		return numbers.Value{}, false
	}
	return numbers.Value{Magnitude: difference, Label: label}, true
}

// Sub returns the subtraction operator. It requires left > right, which
// keeps every intermediate result a positive integer.
func Sub() Operator {
	return &SubOperator{}
}

type MulOperator struct{}

func (o *MulOperator) Symbol() numbers.Symbol {
	return numbers.OpMul
}

func (o *MulOperator) Apply(left, right numbers.Value, label numbers.Label) (numbers.Value, bool) {
	if left.Magnitude <= 1 || right.Magnitude <= 1 || left.Magnitude < right.Magnitude {
		return numbers.Value{}, false
	}
	return numbers.Value{Magnitude: left.Magnitude * right.Magnitude, Label: label}, true
}

// Mul returns the multiplication operator. Multiplication by 1 is a
// no-op and is rejected; as for Add, only the left >= right ordering
// applies.
func Mul() Operator {
	return &MulOperator{}
}

type DivOperator struct{}

func (o *DivOperator) Symbol() numbers.Symbol {
	return numbers.OpDiv
}

func (o *DivOperator) Apply(left, right numbers.Value, label numbers.Label) (numbers.Value, bool) {
	if right.Magnitude <= 1 || left.Magnitude%right.Magnitude != 0 {
		return numbers.Value{}, false
	}
	return numbers.Value{Magnitude: left.Magnitude / right.Magnitude, Label: label}, true
}

// Div returns the division operator. Division must be exact and the
// divisor must exceed 1.
func Div() Operator {
	return &DivOperator{}
}

// All returns the four operators in their canonical order (+, −, ×, ÷).
// The order is fixed: it determines the order in which the search
// explores branches and therefore which of several equally ranked
// solutions is emitted first.
func All() []Operator {
	return []Operator{Add(), Sub(), Mul(), Div()}
}
