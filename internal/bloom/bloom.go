package bloom

import (
	"math"

	"github.com/spaolacci/murmur3"
)

// Filter is a bloom filter over m bits probed k times per key. The k
// positions are derived from the two halves of one 128-bit murmur3 hash.
type Filter struct {
	m    uint64
	k    uint64
	n    uint64
	keys []uint64
}

func New(m, k uint64) *Filter {
	if m < 64 {
		m = 64
	}
	if k < 1 {
		k = 1
	}
	return &Filter{
		m:    m,
		k:    k,
		keys: make([]uint64, (m+63)/64),
	}
}

// NewWithEstimates sizes a filter for n keys at false positive rate p.
func NewWithEstimates(n uint64, p float64) *Filter {
	if n == 0 {
		n = 1
	}
	m := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	k := math.Round(m / float64(n) * math.Ln2)
	return New(uint64(m), uint64(k))
}

func (f *Filter) locations(b []byte) []uint64 {
	h1, h2 := murmur3.Sum128(b)
	locs := make([]uint64, f.k)
	for i := uint64(0); i < f.k; i++ {
		locs[i] = (h1 + i*h2) % f.m
	}
	return locs
}

func (f *Filter) Add(b []byte) {
	for _, l := range f.locations(b) {
		f.keys[l/64] |= 1 << (l % 64)
	}
	f.n++
}

func (f *Filter) AddString(s string) {
	f.Add([]byte(s))
}

// Test reports whether b may have been added. False means it never was.
func (f *Filter) Test(b []byte) bool {
	for _, l := range f.locations(b) {
		if f.keys[l/64]&(1<<(l%64)) == 0 {
			return false
		}
	}
	return true
}

func (f *Filter) TestString(s string) bool {
	return f.Test([]byte(s))
}

// KeySize is the number of keys added so far.
func (f *Filter) KeySize() uint64 {
	return f.n
}

func (f *Filter) Cap() uint64 {
	return f.m
}
