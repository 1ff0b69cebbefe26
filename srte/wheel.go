package srte

import (
	"fmt"
	"math/rand"
)

// Wheel is a roulette wheel over elements 0..n-1 where the likelihood of
// rolling an element is proportional to its weight.
type Wheel struct {
	n int
	// sumWeights represents a complete tree with n leaves. The root of the
	// tree is at index 1. The left child of a node at index i is at i*2, and
	// the right child at i*2+1. The weight of a parent is the sum of its
	// children's weights.
	sumWeights []float64
}

// NewWheel returns a wheel of n elements, all with weight 0.
func NewWheel(n int) *Wheel {
	w := &Wheel{}
	w.resize(n)
	return w
}

func (w *Wheel) resize(n int) {
	w.n = n
	size := max(n*2, 2)
	if cap(w.sumWeights) < size {
		w.sumWeights = make([]float64, size)
		return
	}
	w.sumWeights = w.sumWeights[:size]
	for i := range w.sumWeights {
		w.sumWeights[i] = 0
	}
}

// Reset resizes the wheel to n elements and gives weight 1 to each of them.
func (w *Wheel) Reset(n int) {
	w.resize(n)
	if n == 0 {
		return
	}
	for i := n; i < 2*n; i++ {
		w.sumWeights[i] = 1
	}
	for p := n - 1; p > 0; p-- {
		w.sumWeights[p] = w.sumWeights[p*2] + w.sumWeights[p*2+1]
	}
}

// Len returns the number of elements of the wheel.
func (w *Wheel) Len() int {
	return w.n
}

func (w *Wheel) SetWeight(elem int, weight float64) {
	i := w.n + elem
	w.sumWeights[i] = weight
	for p := i / 2; p > 0; p = p / 2 {
		l := p * 2
		r := l + 1
		w.sumWeights[p] = w.sumWeights[l] + w.sumWeights[r]
	}
}

func (w *Wheel) TotalWeight() float64 {
	if w.n == 0 {
		return 0
	}
	return w.sumWeights[1]
}

// Roll selects an element accordingly to the random number roll in [0, 1).
// It returns -1 if all elements have weight 0.
func (w *Wheel) Roll(roll float64) int {
	if roll < 0 || 1 <= roll {
		panic(fmt.Sprintf("srte: roll must be a random number in [0, 1), got: %f", roll))
	}
	if w.TotalWeight() == 0 {
		return -1
	}

	x := roll * w.sumWeights[1]
	i := 1
	for i < w.n {
		l := i * 2
		r := l + 1
		if x < w.sumWeights[l] {
			i = l
		} else {
			i = r
			x -= w.sumWeights[l]
		}
	}
	return i - w.n
}

// Sample draws k distinct elements uniformly at random among n elements and
// appends them to dst in the order they were drawn. All n elements are drawn
// if k >= n. The wheel is reset to n elements.
func (w *Wheel) Sample(rng *rand.Rand, n int, k int, dst []int) []int {
	w.Reset(n)
	k = min(k, n)
	for i := 0; i < k; i++ {
		elem := w.Roll(rng.Float64())
		w.SetWeight(elem, 0)
		dst = append(dst, elem)
	}
	return dst
}
