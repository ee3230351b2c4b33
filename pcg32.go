// Copyright 2026 The pcg32 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pcg32 implements the PCG32 random number generator as defined in
//
//	PCG: A Family of Simple Fast Space-Efficient Statistically Good
//	Algorithms for Random Number Generation
//	Melissa E. O'Neill, Harvey Mudd College
//	http://www.pcg-random.org/pdf/toms-oneill-pcg-family-v1.02.pdf
//
// The generator here is the congruential generator PCG XSH RR 64/32
// as found in the software available at http://www.pcg-random.org/:
// 64 bits of internal state permuted down to 32-bit outputs. It is
// small, fast, and statistically strong, but it is not a source of
// cryptographic randomness.
package pcg32

import "math/bits"

// multiplier is the fixed 64-bit multiplier of the underlying linear
// congruential generator.
const multiplier = 6364136223846793005

// A Generator holds the state of a single PCG32 stream. It is a plain
// value: copying a Generator yields an independent generator that will
// produce the same future sequence as the original.
//
// The zero Generator is unseeded and does not satisfy the generator's
// stream invariant; use New or Default.
//
// A Generator is not safe for concurrent use. Callers that share one
// across goroutines must synchronize, or give each goroutine its own
// copy.
type Generator struct {
	state uint64
	inc   uint64
}

// New returns a Generator initialized with two 64-bit seeds. The
// arguments specify the starting state and the output sequence,
// respectively. Any values are accepted; the most significant bit of
// initseq is ignored, and generators seeded with the same initstate
// but different output sequences produce unrelated streams.
func New(initstate, initseq uint64) Generator {
	// Equivalent to seeding a zero-state generator with inc, stepping,
	// adding initstate, and stepping again, as pcg32_srandom_r does.
	inc := initseq<<1 | 1
	return Generator{
		state: (inc+initstate)*multiplier + inc,
		inc:   inc,
	}
}

// Default returns the default-seeded Generator, PCG32_INITIALIZER of
// the official library.
func Default() Generator {
	return Generator{
		state: 0x853c49e6748fea9b,
		inc:   0xda3e39cb94b95bdb,
	}
}

// Uint32 advances the generator one step and returns a pseudorandom,
// uniformly distributed 32-bit unsigned integer.
func (g *Generator) Uint32() uint32 {
	oldstate := g.state
	g.state = oldstate*multiplier + g.inc

	// Output permutation on the previous state: xorshift folds the
	// high bits down, then the top 5 bits pick a right rotation.
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	return bits.RotateLeft32(xorshifted, -int(oldstate>>59))
}
