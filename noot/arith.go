package noot

import "math"

// The arithmetic operators share one dispatch table: int op int stays
// exact, any real operand promotes the whole operation to real, and every
// other pairing is a type panic naming both operand kinds.

// Add returns a + b.
func (rt *Runtime) Add(a, b NVal) NVal {
	switch a.Type {
	case NInt:
		switch b.Type {
		case NInt:
			return Int(a.Int + b.Int)
		case NReal:
			return Real(float64(a.Int) + b.Real)
		}
	case NReal:
		switch b.Type {
		case NInt:
			return Real(a.Real + float64(b.Int))
		case NReal:
			return Real(a.Real + b.Real)
		}
	}
	rt.binaryTypePanic("Attempted to add incompatible types %s and %s", a.Type, b.Type)
	return Nil()
}

// Sub returns a - b.
func (rt *Runtime) Sub(a, b NVal) NVal {
	switch a.Type {
	case NInt:
		switch b.Type {
		case NInt:
			return Int(a.Int - b.Int)
		case NReal:
			return Real(float64(a.Int) - b.Real)
		}
	case NReal:
		switch b.Type {
		case NInt:
			return Real(a.Real - float64(b.Int))
		case NReal:
			return Real(a.Real - b.Real)
		}
	}
	rt.binaryTypePanic("Attempted to subtract incompatible types %s and %s", a.Type, b.Type)
	return Nil()
}

// Mul returns a * b.
func (rt *Runtime) Mul(a, b NVal) NVal {
	switch a.Type {
	case NInt:
		switch b.Type {
		case NInt:
			return Int(a.Int * b.Int)
		case NReal:
			return Real(float64(a.Int) * b.Real)
		}
	case NReal:
		switch b.Type {
		case NInt:
			return Real(a.Real * float64(b.Int))
		case NReal:
			return Real(a.Real * b.Real)
		}
	}
	rt.binaryTypePanic("Attempted to multiply incompatible types %s and %s", a.Type, b.Type)
	return Nil()
}

// Div returns a / b.  Integer division truncates toward zero; a zero
// integer divisor is a panic.
func (rt *Runtime) Div(a, b NVal) NVal {
	switch a.Type {
	case NInt:
		switch b.Type {
		case NInt:
			if b.Int == 0 {
				rt.fatal("integer division by zero")
				return Nil()
			}
			return Int(a.Int / b.Int)
		case NReal:
			return Real(float64(a.Int) / b.Real)
		}
	case NReal:
		switch b.Type {
		case NInt:
			return Real(a.Real / float64(b.Int))
		case NReal:
			return Real(a.Real / b.Real)
		}
	}
	rt.binaryTypePanic("Attempted to divide incompatible types %s and %s", a.Type, b.Type)
	return Nil()
}

// Rem returns the remainder of a / b.  Both operands integer yields the
// truncating integer remainder; otherwise the floating remainder is used,
// whose sign follows the dividend.  Neither is a floor modulo.
func (rt *Runtime) Rem(a, b NVal) NVal {
	switch a.Type {
	case NInt:
		switch b.Type {
		case NInt:
			if b.Int == 0 {
				rt.fatal("integer division by zero")
				return Nil()
			}
			return Int(a.Int % b.Int)
		case NReal:
			return Real(math.Mod(float64(a.Int), b.Real))
		}
	case NReal:
		switch b.Type {
		case NInt:
			return Real(math.Mod(a.Real, float64(b.Int)))
		case NReal:
			return Real(math.Mod(a.Real, b.Real))
		}
	}
	rt.binaryTypePanic("Attempted to divide incompatible types %s and %s", a.Type, b.Type)
	return Nil()
}

// Neg returns the negation of a numeric value.
func (rt *Runtime) Neg(v NVal) NVal {
	switch v.Type {
	case NInt:
		return Int(-v.Int)
	case NReal:
		return Real(-v.Real)
	}
	rt.unaryTypePanic("Attempted to negate %s", v.Type)
	return Nil()
}
