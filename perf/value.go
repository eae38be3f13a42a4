// perf/value.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"fmt"

	"github.com/mstrasser/rwyperf/math"
	"golang.org/x/exp/constraints"
)

// Kind discriminates the variants of a Value. Beyond plain and
// uncertainty-carrying numeric results there are five terminal states; a
// computation that cannot produce a trustworthy number resolves to exactly
// one of them, never to a nil or an error.
type Kind int

const (
	KindValue Kind = iota
	KindUncertain
	KindInvalid       // malformed or contradictory input
	KindNotAvailable  // no applicable model for the configuration
	KindNotAuthorized // calculation blocked, e.g. missing required data
	KindOffscaleHigh  // inputs above the validated range of the model
	KindOffscaleLow   // inputs below the validated range
)

func (k Kind) String() string {
	return [...]string{"value", "value±σ", "invalid", "not available",
		"not authorized", "offscale high", "offscale low"}[k]
}

// IsTerminal reports whether the kind is one of the five non-value states.
func (k Kind) IsTerminal() bool {
	return k != KindValue && k != KindUncertain
}

// terminalRank orders the terminal kinds for short-circuiting; higher wins.
func terminalRank(k Kind) int {
	switch k {
	case KindInvalid:
		return 5
	case KindNotAuthorized:
		return 4
	case KindNotAvailable:
		return 3
	case KindOffscaleHigh:
		return 2
	case KindOffscaleLow:
		return 1
	default:
		return 0
	}
}

// Value represents a computed quantity: a definite number, a number with a
// one-sigma uncertainty, or a terminal state. The zero Value is a definite
// zero.
type Value[T constraints.Float] struct {
	kind     Kind
	v, sigma T
}

func Of[T constraints.Float](v T) Value[T] {
	return Value[T]{kind: KindValue, v: v}
}

func OfUncertain[T constraints.Float](v, sigma T) Value[T] {
	return Value[T]{kind: KindUncertain, v: v, sigma: sigma}
}

// MakeTerminal returns a Value in the given terminal state; it panics if
// the kind is not terminal.
func MakeTerminal[T constraints.Float](k Kind) Value[T] {
	if !k.IsTerminal() {
		panic("MakeTerminal called with non-terminal kind " + k.String())
	}
	return Value[T]{kind: k}
}

func MakeInvalid[T constraints.Float]() Value[T]       { return Value[T]{kind: KindInvalid} }
func MakeNotAvailable[T constraints.Float]() Value[T]  { return Value[T]{kind: KindNotAvailable} }
func MakeNotAuthorized[T constraints.Float]() Value[T] { return Value[T]{kind: KindNotAuthorized} }
func MakeOffscaleHigh[T constraints.Float]() Value[T]  { return Value[T]{kind: KindOffscaleHigh} }
func MakeOffscaleLow[T constraints.Float]() Value[T]   { return Value[T]{kind: KindOffscaleLow} }

func (val Value[T]) Kind() Kind { return val.kind }

// Get returns the central value; ok is false for terminal states.
func (val Value[T]) Get() (T, bool) {
	return val.v, !val.kind.IsTerminal()
}

// Uncertainty returns the one-sigma uncertainty; ok is false unless the
// value actually carries one.
func (val Value[T]) Uncertainty() (T, bool) {
	return val.sigma, val.kind == KindUncertain
}

func (val Value[T]) IsTerminal() bool { return val.kind.IsTerminal() }

// combineTerminal resolves two operands where at least one is terminal: the
// highest-priority terminal state wins, and when both operands are in that
// state the first operand is returned.
func combineTerminal[T constraints.Float](a, b Value[T]) (Value[T], bool) {
	ra, rb := terminalRank(a.kind), terminalRank(b.kind)
	if ra == 0 && rb == 0 {
		return Value[T]{}, false
	}
	if ra >= rb {
		return a, true
	}
	return b, true
}

// Map transforms the definite payload of a Value. It must not be called on
// an uncertainty-carrying Value: a unary transform cannot know how to
// propagate uncertainty through an arbitrary function, so doing so is a
// programmer error and panics. Use MapUncertain instead. Terminal states
// pass through unchanged.
func Map[T, U constraints.Float](val Value[T], f func(T) U) Value[U] {
	switch val.kind {
	case KindValue:
		return Of(f(val.v))
	case KindUncertain:
		panic("Map called on uncertainty-carrying Value; use MapUncertain")
	default:
		return Value[U]{kind: val.kind}
	}
}

// MapUncertain transforms the payload together with its optional
// uncertainty. f receives the central value, the uncertainty, and whether
// the uncertainty is present; it must return a transformed uncertainty
// whenever one was present — dropping it is a programmer error and panics.
// Terminal states pass through unchanged.
func MapUncertain[T, U constraints.Float](val Value[T], f func(v T, sigma T, has bool) (U, U, bool)) Value[U] {
	if val.kind.IsTerminal() {
		return Value[U]{kind: val.kind}
	}
	has := val.kind == KindUncertain
	v, sigma, hasOut := f(val.v, val.sigma, has)
	if has && !hasOut {
		panic("MapUncertain dropped uncertainty that was present")
	}
	if hasOut {
		return OfUncertain(v, sigma)
	}
	return Of(v)
}

// FlatMap chains a Value-producing function. Uncertainty on the input is
// dropped; re-deriving it is delegated to f. Terminal states pass through
// unchanged.
func FlatMap[T, U constraints.Float](val Value[T], f func(T) Value[U]) Value[U] {
	if val.kind.IsTerminal() {
		return Value[U]{kind: val.kind}
	}
	return f(val.v)
}

// Mul multiplies two Values. When both carry uncertainty it propagates in
// quadrature using relative uncertainties; multiplying by a definite value
// scales the uncertainty along with the value.
func (val Value[T]) Mul(o Value[T]) Value[T] {
	if t, ok := combineTerminal(val, o); ok {
		return t
	}
	p := val.v * o.v
	switch {
	case val.kind == KindUncertain && o.kind == KindUncertain:
		// sqrt((σ1 v2)² + (σ2 v1)²) == sqrt((σ1/v1)² + (σ2/v2)²)·v1·v2,
		// but stays finite when a central value is zero.
		sigma := T(math.Sqrt(float32(math.Sqr(val.sigma*o.v) + math.Sqr(o.sigma*val.v))))
		return OfUncertain(p, sigma)
	case val.kind == KindUncertain:
		return OfUncertain(p, val.sigma*math.Abs(o.v))
	case o.kind == KindUncertain:
		return OfUncertain(p, o.sigma*math.Abs(val.v))
	default:
		return Of(p)
	}
}

// Scale multiplies by a definite scalar; the uncertainty scales by |s|.
func (val Value[T]) Scale(s T) Value[T] {
	if val.kind.IsTerminal() {
		return val
	}
	if val.kind == KindUncertain {
		return OfUncertain(val.v*s, val.sigma*math.Abs(s))
	}
	return Of(val.v * s)
}

// Add sums two Values; uncertainties add in quadrature.
func (val Value[T]) Add(o Value[T]) Value[T] {
	if t, ok := combineTerminal(val, o); ok {
		return t
	}
	s := val.v + o.v
	if val.kind == KindUncertain || o.kind == KindUncertain {
		var s1, s2 T
		if val.kind == KindUncertain {
			s1 = val.sigma
		}
		if o.kind == KindUncertain {
			s2 = o.sigma
		}
		return OfUncertain(s, T(math.Sqrt(float32(s1*s1+s2*s2))))
	}
	return Of(s)
}

// Offset adds a definite delta to the central value, leaving any
// uncertainty unchanged.
func (val Value[T]) Offset(d T) Value[T] {
	if val.kind.IsTerminal() {
		return val
	}
	val.v += d
	return val
}

// WithinConfidence reports whether x lies within z(level) sigma of the
// central value, where z(0.68)=1.0, z(0.95)=1.96 and z(0.99)=2.58; levels
// between breakpoints snap to the nearest lower one. A definite value
// matches only exactly; terminal states never match.
func (val Value[T]) WithinConfidence(x T, level float32) bool {
	switch val.kind {
	case KindValue:
		return x == val.v
	case KindUncertain:
		var z T
		switch {
		case level >= 0.99:
			z = 2.58
		case level >= 0.95:
			z = 1.96
		default:
			z = 1.0
		}
		return math.Abs(x-val.v) <= z*val.sigma
	default:
		return false
	}
}

func (val Value[T]) String() string {
	switch val.kind {
	case KindValue:
		return fmt.Sprintf("%.1f", float64(val.v))
	case KindUncertain:
		return fmt.Sprintf("%.1f±%.1f", float64(val.v), float64(val.sigma))
	default:
		return val.kind.String()
	}
}
