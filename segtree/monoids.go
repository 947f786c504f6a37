package segtree

import (
	"math"

	"github.com/shopspring/decimal"
)

// Min folds to the smallest element; the identity is +Inf.
func Min() Monoid[float64] {
	return Monoid[float64]{
		Identity: math.Inf(1),
		Combine:  math.Min,
	}
}

// Max folds to the largest element; the identity is -Inf.
func Max() Monoid[float64] {
	return Monoid[float64]{
		Identity: math.Inf(-1),
		Combine:  math.Max,
	}
}

func Sum[T Number]() Monoid[T] {
	return Monoid[T]{
		Identity: 0,
		Combine:  func(a, b T) T { return a + b },
	}
}

func Product[T Number]() Monoid[T] {
	return Monoid[T]{
		Identity: 1,
		Combine:  func(a, b T) T { return a * b },
	}
}

// DecimalSum adds exact decimals, e.g. quantities or notional amounts.
func DecimalSum() Monoid[decimal.Decimal] {
	return Monoid[decimal.Decimal]{
		Identity: decimal.Zero,
		Combine:  decimal.Decimal.Add,
	}
}

func DecimalProduct() Monoid[decimal.Decimal] {
	return Monoid[decimal.Decimal]{
		Identity: decimal.NewFromInt(1),
		Combine:  decimal.Decimal.Mul,
	}
}

func NewMin(values []float64) *Tree[float64] {
	return New(Min(), values)
}

func NewMax(values []float64) *Tree[float64] {
	return New(Max(), values)
}

func NewSum[T Number](values []T) *Tree[T] {
	return New(Sum[T](), values)
}

func NewProduct[T Number](values []T) *Tree[T] {
	return New(Product[T](), values)
}
