package numerology

import (
	"strconv"
	"strings"
)

// Reduction records one run of the reduction loop. Chain holds the input
// followed by every digit sum computed; the last element is the result.
type Reduction struct {
	Chain []int
}

// Input returns the value the reduction started from.
func (r Reduction) Input() int {
	if len(r.Chain) == 0 {
		return 0
	}
	return r.Chain[0]
}

// Result returns the value the reduction stopped at.
func (r Reduction) Result() int {
	if len(r.Chain) == 0 {
		return 0
	}
	return r.Chain[len(r.Chain)-1]
}

// String renders the chain as "1990 → 19 → 10 → 1".
func (r Reduction) String() string {
	parts := make([]string, len(r.Chain))
	for i, v := range r.Chain {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " → ")
}

// IsMaster reports whether n is one of the master numbers 11, 22 or 33.
func IsMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// Reduce sums the decimal digits of n until the value is below 10.
//
// With keepMaster set, the loop stops as soon as the running value is 11, 22
// or 33; that check comes before the magnitude check, so Reduce(29, true) is
// 11 and Reduce(11, false) is 2. Values below 10 are returned unchanged.
func Reduce(n int, keepMaster bool) int {
	return ReduceTrace(n, keepMaster).Result()
}

// ReduceTrace runs the same loop as Reduce and records every step.
func ReduceTrace(n int, keepMaster bool) Reduction {
	chain := []int{n}
	for {
		if keepMaster && IsMaster(n) {
			break
		}
		if n < 10 {
			break
		}
		n = digitSum(n)
		chain = append(chain, n)
	}
	return Reduction{Chain: chain}
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
