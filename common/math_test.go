package common

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-5, 5, 0.5, 0},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.t); got != c.want {
			t.Errorf("Lerp(%f, %f, %f) = %f, want %f", c.a, c.b, c.t, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Fatalf("Normalize(3, 4) = (%f, %f)", x, y)
	}

	x, y = Normalize(0, 0)
	if x != 0 || y != 0 {
		t.Fatalf("Normalize(0, 0) must stay zero, got (%f, %f)", x, y)
	}
}
