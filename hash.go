package hashtable

import "math/bits"

const (
	// Both primes are larger than any rune value a key is expected to carry.
	DefaultPrime1 = 5003
	DefaultPrime2 = 5281
)

// polynomialHash returns sum(prime^(n-1-i) * text[i]) mod m over the runes of text.
// Every multiply-add is reduced through a 128-bit intermediate, so the result
// never wraps regardless of key length or modulus.
func polynomialHash(text string, prime, m uint64) uint64 {
	var h uint64
	for _, r := range text {
		hi, lo := bits.Mul64(h, prime)
		lo, carry := bits.Add64(lo, uint64(r), 0)
		h = bits.Rem64(hi+carry, lo, m)
	}

	return h
}

// probe returns the slot index of the given attempt for text.
//
// The step is hashB+1 reduced into [1, capacity-1]: for hashB == capacity-1
// a plain hashB+1 would be 0 mod capacity and the sequence would never leave
// its first slot. With a prime capacity any step in that range is coprime with
// it, so attempts 0..capacity-1 visit every index exactly once.
func probe(text string, capacity, attempt uint64, p1, p2 uint64) uint64 {
	hashA := polynomialHash(text, p1, capacity)
	if capacity < 2 {
		return hashA
	}

	hashB := polynomialHash(text, p2, capacity)
	step := 1 + hashB%(capacity-1)

	hi, lo := bits.Mul64(attempt%capacity, step)
	lo, carry := bits.Add64(lo, hashA, 0)

	return bits.Rem64(hi+carry, lo, capacity)
}

// probeSeq caches both hashes of a key so a walk over the slots does not
// rehash the key on every attempt. It yields the same indices as probe.
type probeSeq struct {
	capacity uint64
	index    uint64
	step     uint64
}

func makeProbeSeq(text string, capacity, p1, p2 uint64) probeSeq {
	s := probeSeq{
		capacity: capacity,
		index:    polynomialHash(text, p1, capacity),
	}
	if capacity > 1 {
		s.step = 1 + polynomialHash(text, p2, capacity)%(capacity-1)
	}

	return s
}

func (s *probeSeq) next() {
	// index and step are both below capacity, so the sum cannot wrap.
	s.index = (s.index + s.step) % s.capacity
}
