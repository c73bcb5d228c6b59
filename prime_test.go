package hashtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name string
		v    int
		want bool
	}{
		{"negative", -7, false},
		{"zero", 0, false},
		{"one", 1, false},
		{"two", 2, true},
		{"three", 3, true},
		{"four", 4, false},
		{"nine", 9, false},
		{"square of prime", 49, false},
		{"default base size", 53, true},
		{"after first grow", 107, true},
		{"even", 106, false},
		{"large prime", 1_000_003, true},
		{"large square", 1_000_003 * 1_000_003, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsPrime(tt.v))
		})
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		name string
		v    int
		want int
	}{
		{"negative", -10, 2},
		{"zero", 0, 2},
		{"one", 1, 2},
		{"two", 2, 2},
		{"already prime", 53, 53},
		{"doubled default", 106, 107},
		{"doubled twice", 212, 223},
		{"halved", 26, 29},
		{"thousand", 1000, 1009},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPrime(tt.v)

			require.Equal(t, tt.want, got)
			require.True(t, IsPrime(got))
		})
	}
}

func TestNextPrime_MatchesSieve(t *testing.T) {
	const limit = 10_000

	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	for v := 2; v <= limit; v++ {
		require.Equalf(t, !composite[v], IsPrime(v), "IsPrime(%d)", v)
	}
}
