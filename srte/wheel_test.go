package srte

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWheel_Roll(t *testing.T) {
	w := NewWheel(4)
	w.SetWeight(1, 1)
	w.SetWeight(3, 3)

	testCases := []struct {
		roll float64
		want int
	}{
		{0, 1},
		{0.24, 1},
		{0.25, 3},
		{0.99, 3},
	}

	for _, tc := range testCases {
		if got := w.Roll(tc.roll); got != tc.want {
			t.Errorf("Roll(%f): want %d, got %d", tc.roll, tc.want, got)
		}
	}
}

func TestWheel_Roll_noWeight(t *testing.T) {
	w := NewWheel(3)

	if got := w.Roll(0.5); got != -1 {
		t.Errorf("Roll(): want -1, got %d", got)
	}
	if got := NewWheel(0).Roll(0.5); got != -1 {
		t.Errorf("Roll() on empty wheel: want -1, got %d", got)
	}
}

func TestWheel_Roll_outOfRange(t *testing.T) {
	testCases := []struct {
		roll float64
		want string
	}{
		{1, "srte: roll must be a random number in [0, 1), got: 1.000000"},
		{-0.5, "srte: roll must be a random number in [0, 1), got: -0.500000"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.roll), func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Roll(%f): want panic", tc.roll)
				}
				if got := fmt.Sprint(r); got != tc.want {
					t.Errorf("Roll(%f): want panic %q, got %q", tc.roll, tc.want, got)
				}
			}()
			w := NewWheel(1)
			w.SetWeight(0, 1)
			w.Roll(tc.roll)
		})
	}
}

func TestWheel_Reset(t *testing.T) {
	w := NewWheel(2)
	w.SetWeight(0, 10)

	for _, n := range []int{5, 1, 3} {
		w.Reset(n)
		if got := w.Len(); got != n {
			t.Errorf("Len(): want %d, got %d", n, got)
		}
		if got := w.TotalWeight(); got != float64(n) {
			t.Errorf("TotalWeight(): want %d, got %f", n, got)
		}
	}
}

func TestWheel_Sample(t *testing.T) {
	testCases := []struct {
		desc string
		n    int
		k    int
		want int
	}{
		{"partial sample", 10, 4, 4},
		{"full sample", 5, 5, 5},
		{"sample larger than population", 3, 10, 3},
		{"single element", 1, 1, 1},
		{"no element", 0, 3, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			w := NewWheel(0)
			rng := rand.New(rand.NewSource(42))

			got := w.Sample(rng, tc.n, tc.k, nil)

			if len(got) != tc.want {
				t.Fatalf("Sample(): want %d elements, got %v", tc.want, got)
			}
			sorted := slices.Clone(got)
			slices.Sort(sorted)
			if len(slices.Compact(sorted)) != len(got) {
				t.Errorf("Sample(): elements are not distinct: %v", got)
			}
			for _, e := range got {
				if e < 0 || tc.n <= e {
					t.Errorf("Sample(): element %d out of range [0, %d)", e, tc.n)
				}
			}
		})
	}
}

func TestWheel_Sample_deterministic(t *testing.T) {
	w := NewWheel(0)
	first := w.Sample(rand.New(rand.NewSource(7)), 20, 6, nil)
	second := w.Sample(rand.New(rand.NewSource(7)), 20, 6, nil)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Sample(): mismatch between identical seeds (-first +second):\n%s", diff)
	}
}

func TestWheel_Sample_uniform(t *testing.T) {
	const n, runs = 4, 20000
	counts := make([]int, n)
	w := NewWheel(0)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < runs; i++ {
		for _, e := range w.Sample(rng, n, 1, nil) {
			counts[e]++
		}
	}

	for e, c := range counts {
		if c < runs/n*9/10 || runs/n*11/10 < c {
			t.Errorf("element %d drawn %d times out of %d, want about %d", e, c, runs, runs/n)
		}
	}
}
