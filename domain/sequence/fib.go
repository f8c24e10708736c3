// Package sequence computes linear recurrences with a memo table.
package sequence

import (
	"fmt"
	"math/big"

	"lightcurve/internal/errors"
)

// Fibonacci memoizes F(1) = F(2) = 1, F(k) = F(k-1) + F(k-2).
// A Fibonacci value is not safe for concurrent use.
type Fibonacci struct {
	known []*big.Int
}

// NewFibonacci creates an empty memo
func NewFibonacci() *Fibonacci {
	return &Fibonacci{known: []*big.Int{nil}}
}

// Term returns F(n). Every term up to n is computed at most once.
func (f *Fibonacci) Term(n int) (*big.Int, error) {
	if n < 1 {
		return nil, errors.InvalidInput(fmt.Sprintf("fibonacci index must be positive, got %d", n))
	}
	for len(f.known) <= n {
		f.known = append(f.known, nil)
	}
	return new(big.Int).Set(f.memoize(n)), nil
}

func (f *Fibonacci) memoize(k int) *big.Int {
	if f.known[k] != nil {
		return f.known[k]
	}
	if k == 1 || k == 2 {
		f.known[k] = big.NewInt(1)
	} else {
		f.known[k] = new(big.Int).Add(f.memoize(k-1), f.memoize(k-2))
	}
	return f.known[k]
}

// Fib returns F(n) using a fresh memo
func Fib(n int) (*big.Int, error) {
	return NewFibonacci().Term(n)
}
