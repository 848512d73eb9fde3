package catalog

import (
	"math/rand/v2"
)

// Picker draws artworks uniformly at random, never the same one twice in a row
type Picker struct {
	cat  *Catalog
	rng  *rand.Rand
	last int
}

// NewPicker creates a picker over cat; a nil rng seeds a fresh generator
func NewPicker(cat *Catalog, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{
		cat:  cat,
		rng:  rng,
		last: -1,
	}
}

// Pick returns the next artwork, redrawing while it matches the previous pick.
// Reports false on an empty catalog. A single-artwork catalog always returns that artwork
func (p *Picker) Pick() (Artwork, bool) {
	n := p.cat.Len()
	switch n {
	case 0:
		return Artwork{}, false
	case 1:
		p.last = 0
		return p.cat.At(0), true
	}

	i := p.rng.IntN(n)
	for i == p.last {
		i = p.rng.IntN(n)
	}
	p.last = i
	return p.cat.At(i), true
}

// Last returns the previous pick, false before the first one
func (p *Picker) Last() (Artwork, bool) {
	if p.last < 0 {
		return Artwork{}, false
	}
	return p.cat.At(p.last), true
}
