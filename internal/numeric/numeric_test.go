package numeric

import (
	"testing"
)

func TestCapabilitySet(t *testing.T) {
	if Zero[int]() != 0 || Zero[float64]() != 0 {
		t.Errorf("Zero() is not the additive identity")
	}
	if got := Add(2, 3); got != 5 {
		t.Errorf("Add(2, 3) = %d, want 5", got)
	}
	if got := Sub(2.5, 1.0); got != 1.5 {
		t.Errorf("Sub(2.5, 1.0) = %v, want 1.5", got)
	}
	if got := Mul(int64(4), 3); got != 12 {
		t.Errorf("Mul(4, 3) = %d, want 12", got)
	}
	if got := Div(9.0, 2.0); got != 4.5 {
		t.Errorf("Div(9, 2) = %v, want 4.5", got)
	}
	if got := Sum(1, 2, 3, 4); got != 10 {
		t.Errorf("Sum(1..4) = %d, want 10", got)
	}
	if got := Sum[float64](); got != 0 {
		t.Errorf("Sum() = %v, want 0", got)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-3, -1},
		{0, 0},
		{0.25, 1},
	}
	for _, tt := range tests {
		if got := Sign(tt.in); got != tt.want {
			t.Errorf("Sign(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestVec(t *testing.T) {
	a := Vec{1, -2, 3}
	b := Vec{4, 5, -6}

	if got := a.Add(b); got != (Vec{5, 3, -3}) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != (Vec{-3, -7, 9}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Scale(2); got != (Vec{2, -4, 6}) {
		t.Errorf("Scale() = %v", got)
	}
	if got := a.Div(2); got != (Vec{0.5, -1, 1.5}) {
		t.Errorf("Div() = %v", got)
	}
	if got := a.Abs(); got != (Vec{1, 2, 3}) {
		t.Errorf("Abs() = %v", got)
	}
	if got := a.Min(b); got != (Vec{1, -2, -6}) {
		t.Errorf("Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec{4, 5, 3}) {
		t.Errorf("Max() = %v", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 0.5); got != (Vec{2.5, 1.5, -1.5}) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := (Vec{3, 4, 12}).Norm(2); got != 5 {
		t.Errorf("Norm(2) = %v, want 5", got)
	}
	if got := (Vec{3, 4, 12}).Norm(3); got != 13 {
		t.Errorf("Norm(3) = %v, want 13", got)
	}
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != (Vec{}) {
		t.Errorf("Mean(nil) = %v, want zero", got)
	}
	got := Mean([]Vec{{0, 0}, {2, 4}, {4, 8}})
	if got != (Vec{2, 4, 0}) {
		t.Errorf("Mean() = %v, want [2 4 0]", got)
	}
}
