package mesh

import "math"

// Deterministic hash noise. Sampling keys off absolute coordinates rather
// than RNG walking, so any sub-region of the field is stable regardless of
// evaluation order. No use of math/rand anywhere in this package.

// hash32 mixes a 32-bit input into a well-distributed output
// (Murmur finalizer-style avalanching).
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// hash2 returns a stable hash for 2D integer coordinates plus seed.
// Large odd constants decorrelate the axes.
func hash2(seed uint32, x, z int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(z) * 0x85ebca6b
	return hash32(h)
}

// cellValue maps a lattice point to [0,1).
func cellValue(seed uint32, x, z int32) float64 {
	return float64(hash2(seed, x, z)) / float64(math.MaxUint32)
}

// noise2 is smoothed value noise in [0,1): lattice hashes blended with a
// smoothstep-weighted bilinear interpolation.
func noise2(seed uint32, x, z float64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	fx := x - x0
	fz := z - z0

	ix := int32(x0)
	iz := int32(z0)

	v00 := cellValue(seed, ix, iz)
	v10 := cellValue(seed, ix+1, iz)
	v01 := cellValue(seed, ix, iz+1)
	v11 := cellValue(seed, ix+1, iz+1)

	sx := fx * fx * (3 - 2*fx)
	sz := fz * fz * (3 - 2*fz)

	top := v00 + (v10-v00)*sx
	bot := v01 + (v11-v01)*sx
	return top + (bot-top)*sz
}

// glacierSeed derives the noise seed from the glacier identifier's first
// character, matching how the height fields are keyed per glacier.
func glacierSeed(id string) uint32 {
	if id == "" {
		return 0x51ac1e00
	}
	return hash32(uint32(id[0]))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
