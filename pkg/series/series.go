// Package series provides lazy, finite numeric sequences of (x, y) points used
// to hand plot data to external renderers. A Series is defined by its length
// and a pure point function, so it can be iterated any number of times, read
// at arbitrary indices for partial plots, or materialized once.
package series

import (
	"fmt"
	"iter"
)

// Point is one (x, y) sample.
type Point struct {
	X float64
	Y float64
}

// Series is a named, finite, restartable sequence of points.
type Series struct {
	name string
	n    int
	at   func(i int) Point
}

// New builds a series of n points whose i-th point is at(i). The function must
// be pure; it is called again on every access.
func New(name string, n int, at func(i int) Point) Series {
	if n < 0 {
		n = 0
	}

	return Series{name: name, n: n, at: at}
}

// Linear builds n evenly spaced points on the segment from → to, endpoints
// included exactly.
func Linear(name string, from, to Point, n int) Series {
	return New(name, n, func(i int) Point {
		switch {
		case i == 0:
			return from
		case i == n-1:
			return to
		}
		t := float64(i) / float64(n-1)

		return Point{X: from.X + t*(to.X-from.X), Y: from.Y + t*(to.Y-from.Y)}
	})
}

// Name returns the series label.
func (s Series) Name() string { return s.name }

// Len returns the number of points.
func (s Series) Len() int { return s.n }

// At returns the i-th point. It panics when i is out of range.
func (s Series) At(i int) Point {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("series %q: index %d out of range [0, %d)", s.name, i, s.n))
	}

	return s.at(i)
}

// All iterates the points in order with their index.
func (s Series) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := range s.n {
			if !yield(i, s.at(i)) {
				return
			}
		}
	}
}

// Points materializes the series.
func (s Series) Points() []Point {
	out := make([]Point, 0, s.n)
	for _, p := range s.All() {
		out = append(out, p)
	}

	return out
}

// Range returns the series restricted to points [from, to).
func (s Series) Range(from, to int) Series {
	from = max(0, from)
	to = min(s.n, to)
	if to < from {
		to = from
	}

	return New(s.name, to-from, func(i int) Point { return s.at(from + i) })
}

// Map returns a series with f applied to every point.
func (s Series) Map(f func(Point) Point) Series {
	return New(s.name, s.n, func(i int) Point { return f(s.at(i)) })
}
