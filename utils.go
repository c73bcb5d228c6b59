package hashtable

import "math"

// IsPrime reports whether v is prime, using trial division by odd numbers
// up to the integer square root.
func IsPrime(v int) bool {
	if v < 2 {
		return false
	}
	if v < 4 {
		return true
	}
	if v%2 == 0 {
		return false
	}

	limit := int(math.Sqrt(float64(v)))
	for limit*limit > v {
		limit--
	}
	for (limit+1)*(limit+1) <= v {
		limit++
	}

	for d := 3; d <= limit; d += 2 {
		if v%d == 0 {
			return false
		}
	}

	return true
}

// Returns the smallest prime greater than or equal to `v`.
// Values below 2 yield 2.
func NextPrime(v int) int {
	for !IsPrime(v) {
		v++
	}

	return v
}
