package decimal

import (
	"math"
	"testing"
)

func TestPercentOf(t *testing.T) {
	p, ok := PercentOf(617, 1234)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got := p.String(); got != "50.00%" {
		t.Fatalf("PercentOf(617, 1234) = %s", got)
	}

	p, ok = PercentOf(600, 1234)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got := p.Round(2).Float64(); got != 48.62 {
		t.Fatalf("rounded = %v, want 48.62", got)
	}
}

func TestPercentOfUndefined(t *testing.T) {
	cases := []struct{ part, whole float64 }{
		{1, 0},
		{math.NaN(), 1},
		{1, math.Inf(1)},
	}
	for _, c := range cases {
		if _, ok := PercentOf(c.part, c.whole); ok {
			t.Fatalf("PercentOf(%v, %v) should not be defined", c.part, c.whole)
		}
	}
}

func TestNewPercentString(t *testing.T) {
	if got := NewPercent(12.3456).String(); got != "12.35%" {
		t.Fatalf("String() = %s", got)
	}
	if got := NewPercent(0).Round(2).String(); got != "0.00%" {
		t.Fatalf("String() = %s", got)
	}
}
