// Package mathx holds small generic integer helpers shared by the solvers.
package mathx

import "golang.org/x/exp/constraints"

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) = 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of a and b; LCM with 0 is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// LCMAll folds LCM over xs. It returns 1 for no values.
func LCMAll[T constraints.Integer](xs ...T) T {
	var acc T = 1
	for _, x := range xs {
		acc = LCM(acc, x)
	}
	return acc
}

// Sum adds up xs.
func Sum[T constraints.Integer | constraints.Float](xs ...T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}
