package flex

import (
	"fmt"
	"math"

	"github.com/Joshua7054/FlexLayout/internal/core/geom"
)

// Undefined is the sentinel for "no value". It is NaN, so it must only be
// tested with FloatIsUndefined, never compared directly.
var Undefined = math.NaN()

// Value is a styled length: a number paired with the unit it is expressed in.
type Value struct {
	Value float64
	Unit  Unit
}

// ValueUndefined is the absent value: an undefined number with no unit.
var ValueUndefined = Value{Value: Undefined, Unit: UnitUndefined}

// ValueAuto resolves from context (content size, or zero for margins).
var ValueAuto = Value{Value: Undefined, Unit: UnitAuto}

// ValueZero is zero points.
var ValueZero = Value{Value: 0, Unit: UnitPoint}

// Point builds an absolute length value.
func Point(v float64) Value {
	return Value{Value: v, Unit: UnitPoint}
}

// Percent builds a length value relative to the containing size.
func Percent(v float64) Value {
	return Value{Value: v, Unit: UnitPercent}
}

// FloatIsUndefined reports whether f carries the Undefined sentinel.
func FloatIsUndefined(f float64) bool {
	return math.IsNaN(f)
}

// ValueEqual compares two values treating a pair of undefined numbers as
// equal and comparing defined numbers within tolerance.
func ValueEqual(a, b Value) bool {
	if a.Unit != b.Unit {
		return false
	}
	if a.Unit == UnitUndefined || (math.IsNaN(a.Value) && math.IsNaN(b.Value)) {
		return true
	}
	return math.Abs(a.Value-b.Value) < geom.Epsilon
}

// String renders the value the way stylesheets spell it.
func (v Value) String() string {
	switch v.Unit {
	case UnitUndefined:
		return "undefined"
	case UnitAuto:
		return "auto"
	case UnitPercent:
		return fmt.Sprintf("%g%%", v.Value)
	}
	return fmt.Sprintf("%gpx", v.Value)
}

// resolveValue resolves v against the containing size. Undefined and auto
// values resolve to the Undefined sentinel.
func resolveValue(v Value, parentSize float64) float64 {
	switch v.Unit {
	case UnitPoint:
		return v.Value
	case UnitPercent:
		return v.Value * parentSize / 100
	}
	return Undefined
}

// resolveValueMargin is resolveValue with auto margins collapsing to zero.
func resolveValueMargin(v Value, parentSize float64) float64 {
	if v.Unit == UnitAuto {
		return 0
	}
	return resolveValue(v, parentSize)
}
