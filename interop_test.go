package vec

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func TestVector2_F64(t *testing.T) {
	v := V(3.25, -4)
	a := v.F64()
	if a != (f64.Vec2{3.25, -4}) {
		t.Errorf("%v.F64() = %v, want [3.25 -4]", v, a)
	}
	if back := FromF64(a); back != v {
		t.Errorf("FromF64(%v) = %v, want %v", a, back, v)
	}
}

func TestVector2_Fixed(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector2
		expect fixed.Point26_6
	}{
		{"integral", V(3, 4), fixed.P(3, 4)},
		{"half", V(1.5, -2.5), fixed.Point26_6{X: 96, Y: -160}},
		{"rounds to nearest 1/64", V(0.01, 0.009), fixed.Point26_6{X: 1, Y: 1}},
		{"rounds down", V(0.007, -0.007), fixed.Point26_6{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Fixed(); got != tt.expect {
				t.Errorf("%v.Fixed() = %v, want %v", tt.v, got, tt.expect)
			}
		})
	}
}

func TestVector2_FixedSaturates(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector2
		expect fixed.Point26_6
	}{
		{"above range", V(1e12, 0), fixed.Point26_6{X: math.MaxInt32, Y: 0}},
		{"below range", V(0, -1e12), fixed.Point26_6{X: 0, Y: math.MinInt32}},
		{"infinite", V(math.Inf(1), math.Inf(-1)), fixed.Point26_6{X: math.MaxInt32, Y: math.MinInt32}},
		{"nan", V(math.NaN(), 2), fixed.Point26_6{X: 0, Y: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Fixed(); got != tt.expect {
				t.Errorf("%v.Fixed() = %v, want %v", tt.v, got, tt.expect)
			}
		})
	}
}

func TestFromFixed(t *testing.T) {
	tests := []struct {
		p      fixed.Point26_6
		expect Vector2
	}{
		{fixed.P(3, 4), V(3, 4)},
		{fixed.Point26_6{X: 96, Y: -160}, V(1.5, -2.5)},
		{fixed.Point26_6{X: 1, Y: -1}, V(1.0/64, -1.0/64)},
	}

	for _, tt := range tests {
		if got := FromFixed(tt.p); got != tt.expect {
			t.Errorf("FromFixed(%v) = %v, want %v", tt.p, got, tt.expect)
		}
		if back := FromFixed(tt.p).Fixed(); back != tt.p {
			t.Errorf("FromFixed(%v).Fixed() = %v, want round trip", tt.p, back)
		}
	}
}
