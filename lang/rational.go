package lang

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrZeroDenominator is returned when a rational would have a zero denominator.
var ErrZeroDenominator = errors.New("division by zero")

// NewRational builds the canonical value of num/den: the sign is carried by
// the numerator, the fraction is reduced by the gcd, and an integral result
// collapses to a plain Number.
func NewRational(num, den int64) (Value, error) {
	if den == 0 {
		return Value{}, ErrZeroDenominator
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Number(float64(num) / float64(den)), nil
	}
	if den < 0 {
		num, den = -num, -den
	}
	if den == 1 || num%den == 0 {
		return Number(float64(num / den)), nil
	}
	g := GCD(num, den)
	return Value{Type: TypeRational, payload: &Rational{Num: num / g, Den: den / g}}, nil
}

// maxDecimalScale limits how many decimal places RationalFromFloats shifts
// before giving up on an exact result.
const maxDecimalScale = 15

// RationalFromFloats builds up/down from two floating operands. Integral
// operands go straight to NewRational; decimal fractions are scaled by a
// power of ten first. Operands that cannot be made integral yield the
// floating quotient.
func RationalFromFloats(up, down float64) (Value, error) {
	if down == 0 {
		return Value{}, ErrZeroDenominator
	}
	if isIntegral(up) && isIntegral(down) {
		return NewRational(int64(up), int64(down))
	}
	places := decimalPlaces(up)
	if p := decimalPlaces(down); p > places {
		places = p
	}
	if places <= maxDecimalScale {
		scale := math.Pow10(places)
		n, d := math.Round(up*scale), math.Round(down*scale)
		if isIntegral(n) && isIntegral(d) && d != 0 {
			return NewRational(int64(n), int64(d))
		}
	}
	return Number(up / down), nil
}

func decimalPlaces(f float64) int {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return maxDecimalScale + 1
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// fraction returns the exact num/den form of a Rational or a Number. A
// decimal Number is scaled by a power of ten; NaN, infinities and values
// with more than maxDecimalScale places have no exact form.
func fraction(v Value) (int64, int64, bool) {
	switch v.Type {
	case TypeRational:
		r := v.Rat()
		return r.Num, r.Den, true
	case TypeNumber:
		f := v.Num()
		if isIntegral(f) {
			return int64(f), 1, true
		}
		places := decimalPlaces(f)
		if places > maxDecimalScale {
			return 0, 0, false
		}
		scale := math.Pow10(places)
		if n := math.Round(f * scale); isIntegral(n) {
			return int64(n), int64(scale), true
		}
	}
	return 0, 0, false
}

// Add returns a+b. Two Numbers add as floats; any combination involving a
// Rational is computed exactly over the lcm of the denominators, falling
// back to floats only when an operand has no exact form or int64 overflows.
func Add(a, b Value) (Value, error) {
	if err := numericOperands("+", a, b); err != nil {
		return Value{}, err
	}
	if a.Type == TypeNumber && b.Type == TypeNumber {
		return Number(a.Num() + b.Num()), nil
	}
	an, ad, aok := fraction(a)
	bn, bd, bok := fraction(b)
	if aok && bok {
		if v, ok := addFractions(an, ad, bn, bd); ok {
			return v, nil
		}
	}
	return floatResult(a, b, func(x, y float64) float64 { return x + y }), nil
}

func addFractions(an, ad, bn, bd int64) (Value, bool) {
	den, ok := lcmChecked(ad, bd)
	if !ok || den <= 0 {
		return Value{}, false
	}
	left, ok := mulChecked(den/ad, an)
	if !ok {
		return Value{}, false
	}
	right, ok := mulChecked(den/bd, bn)
	if !ok {
		return Value{}, false
	}
	up, ok := addChecked(left, right)
	if !ok {
		return Value{}, false
	}
	v, err := NewRational(up, den)
	return v, err == nil
}

// Neg returns -v.
func Neg(v Value) (Value, error) {
	switch v.Type {
	case TypeNumber:
		return Number(-v.Num()), nil
	case TypeRational:
		r := v.Rat()
		return NewRational(-r.Num, r.Den)
	}
	return Value{}, TypeError("-", "number", v)
}

// Sub returns a-b.
func Sub(a, b Value) (Value, error) {
	nb, err := Neg(b)
	if err != nil {
		return Value{}, err
	}
	return Add(a, nb)
}

// Mul returns a*b, exact when a Rational is involved.
func Mul(a, b Value) (Value, error) {
	if err := numericOperands("*", a, b); err != nil {
		return Value{}, err
	}
	if a.Type == TypeNumber && b.Type == TypeNumber {
		return Number(a.Num() * b.Num()), nil
	}
	an, ad, aok := fraction(a)
	bn, bd, bok := fraction(b)
	if aok && bok {
		up, ok1 := mulChecked(an, bn)
		down, ok2 := mulChecked(ad, bd)
		if ok1 && ok2 {
			return NewRational(up, down)
		}
	}
	return floatResult(a, b, func(x, y float64) float64 { return x * y }), nil
}

// Reciprocal returns 1/v. A Number n becomes the rational 1/n; a Rational
// swaps numerator and denominator.
func Reciprocal(v Value) (Value, error) {
	switch v.Type {
	case TypeNumber:
		inv, err := RationalFromFloats(1, v.Num())
		if err != nil {
			return Value{}, WrapEvalError("/", err, v)
		}
		return inv, nil
	case TypeRational:
		r := v.Rat()
		return NewRational(r.Den, r.Num)
	}
	return Value{}, TypeError("/", "number", v)
}

// Div returns a/b computed as a * (1/b).
func Div(a, b Value) (Value, error) {
	if err := numericOperands("/", a, b); err != nil {
		return Value{}, err
	}
	inv, err := Reciprocal(b)
	if err != nil {
		return Value{}, err
	}
	return Mul(a, inv)
}

func numericOperands(op string, a, b Value) error {
	if !a.IsNumeric() {
		return TypeError(op, "number", a)
	}
	if !b.IsNumeric() {
		return TypeError(op, "number", b)
	}
	return nil
}

func floatResult(a, b Value, op func(x, y float64) float64) Value {
	x, _ := a.Float()
	y, _ := b.Float()
	return Number(op(x, y))
}
