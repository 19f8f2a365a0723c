package noot_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaikalii/noot/noot"
)

func TestArithPromotion(t *testing.T) {
	rt := noot.New()
	ops := []struct {
		name string
		op   noot.BinOp
	}{
		{"add", rt.Add},
		{"sub", rt.Sub},
		{"mul", rt.Mul},
		{"div", rt.Div},
		{"rem", rt.Rem},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			assert.Equal(t, noot.NInt, op.op(noot.Int(7), noot.Int(2)).Type)
			assert.Equal(t, noot.NReal, op.op(noot.Int(7), noot.Real(2)).Type)
			assert.Equal(t, noot.NReal, op.op(noot.Real(7), noot.Int(2)).Type)
			assert.Equal(t, noot.NReal, op.op(noot.Real(7), noot.Real(2)).Type)
		})
	}
}

func TestArithInt(t *testing.T) {
	rt := noot.New()
	assert.Equal(t, noot.Int(5), rt.Add(noot.Int(2), noot.Int(3)))
	assert.Equal(t, noot.Int(-1), rt.Sub(noot.Int(2), noot.Int(3)))
	assert.Equal(t, noot.Int(6), rt.Mul(noot.Int(2), noot.Int(3)))

	// integer division and remainder truncate toward zero
	assert.Equal(t, noot.Int(3), rt.Div(noot.Int(7), noot.Int(2)))
	assert.Equal(t, noot.Int(-3), rt.Div(noot.Int(-7), noot.Int(2)))
	assert.Equal(t, noot.Int(1), rt.Rem(noot.Int(7), noot.Int(2)))
	assert.Equal(t, noot.Int(-1), rt.Rem(noot.Int(-7), noot.Int(2)))
}

func TestArithReal(t *testing.T) {
	rt := noot.New()
	assert.Equal(t, noot.Real(5.5), rt.Add(noot.Int(2), noot.Real(3.5)))
	assert.Equal(t, noot.Real(5.5), rt.Add(noot.Real(2.5), noot.Int(3)))
	assert.Equal(t, noot.Real(3.5), rt.Div(noot.Int(7), noot.Real(2)))

	// the floating remainder's sign follows the dividend, unlike a floor
	// modulo
	assert.Equal(t, noot.Real(-1.5), rt.Rem(noot.Real(-5.5), noot.Int(2)))
	assert.Equal(t, noot.Real(1.5), rt.Rem(noot.Real(5.5), noot.Int(-2)))
	assert.Equal(t, noot.Real(0.5), rt.Rem(noot.Real(2.5), noot.Real(1)))
}

// Promotion commutes with the operator for add, sub, and mul.
func TestArithPromotionCommutes(t *testing.T) {
	rt := noot.New()
	for _, x := range []int64{-3, 0, 7, 1 << 40} {
		for _, y := range []float64{-2.5, 0.25, 1000} {
			a, b := noot.Int(x), noot.Real(y)
			assert.Equal(t, rt.Add(noot.Real(float64(x)), b), rt.Add(a, b))
			assert.Equal(t, rt.Sub(noot.Real(float64(x)), b), rt.Sub(a, b))
			assert.Equal(t, rt.Mul(noot.Real(float64(x)), b), rt.Mul(a, b))
		}
	}
}

func TestArithTypePanic(t *testing.T) {
	out := runFatal(t, func(rt *noot.Runtime) {
		rt.Add(noot.Int(1), noot.String("2"))
	})
	assert.Contains(t, out, "Attempted to add incompatible types int and string")

	out = runFatal(t, func(rt *noot.Runtime) {
		rt.Sub(noot.Nil(), noot.Nil())
	})
	assert.Contains(t, out, "Attempted to subtract incompatible types nil and nil")

	out = runFatal(t, func(rt *noot.Runtime) {
		rt.Mul(noot.True(), noot.Int(2))
	})
	assert.Contains(t, out, "Attempted to multiply incompatible types bool and int")

	out = runFatal(t, func(rt *noot.Runtime) {
		rt.Div(noot.ListOf(), noot.Real(1))
	})
	assert.Contains(t, out, "Attempted to divide incompatible types list and real")

	out = runFatal(t, func(rt *noot.Runtime) {
		rt.Rem(noot.Int(1), noot.Error(noot.Nil()))
	})
	assert.Contains(t, out, "Attempted to divide incompatible types int and error")
}

func TestDivByZero(t *testing.T) {
	out := runFatal(t, func(rt *noot.Runtime) {
		rt.Div(noot.Int(1), noot.Int(0))
	})
	assert.Contains(t, out, "integer division by zero")

	out = runFatal(t, func(rt *noot.Runtime) {
		rt.Rem(noot.Int(1), noot.Int(0))
	})
	assert.Contains(t, out, "integer division by zero")

	// real division by zero follows IEEE semantics instead
	rt := noot.New()
	v := rt.Div(noot.Real(1), noot.Real(0))
	require.Equal(t, noot.NReal, v.Type)
	assert.True(t, math.IsInf(v.Real, 1))
}

func TestNeg(t *testing.T) {
	rt := noot.New()
	assert.Equal(t, noot.Int(-3), rt.Neg(noot.Int(3)))
	assert.Equal(t, noot.Real(2.5), rt.Neg(noot.Real(-2.5)))

	out := runFatal(t, func(rt *noot.Runtime) {
		rt.Neg(noot.String("x"))
	})
	assert.Contains(t, out, "Attempted to negate string")
}
