// Package rng provides the seeded pseudo-random stream used to fill new grids.
// The seed-to-output mapping is part of the program's compatibility contract:
// a given seed must always produce the same board, so the generator is a plain
// ChaCha keystream with 8 rounds rather than anything from math/rand.
package rng

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Rounds is the number of ChaCha rounds applied per block.
	Rounds = 8

	blockWords = 16
	keyWords   = 8
)

// PCG32 constants used to expand a 64-bit seed into a 256-bit key.
const (
	pcgMul = 6364136223846793005
	pcgInc = 11634580027462260723
)

// ChaCha is a deterministic keystream generator.
// Output words are consumed in block order, block counter starting at zero,
// stream (nonce) fixed at zero.
type ChaCha struct {
	key     [keyWords]uint32
	counter uint64
	buf     [blockWords]uint32
	idx     int
}

// New creates a generator whose key is derived from seed.
func New(seed uint64) *ChaCha {
	return NewFromKey(ExpandSeed(seed))
}

// NewFromKey creates a generator from a raw 32-byte key.
func NewFromKey(key [32]byte) *ChaCha {
	c := &ChaCha{idx: blockWords}
	for i := range c.key {
		c.key[i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	return c
}

// ExpandSeed turns a 64-bit seed into a 32-byte key by running a PCG32
// generator and writing each 32-bit output little-endian.
func ExpandSeed(state uint64) [32]byte {
	var key [32]byte
	for i := 0; i < len(key); i += 4 {
		state = state*pcgMul + pcgInc
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		binary.LittleEndian.PutUint32(key[i:], bits.RotateLeft32(xorshifted, -rot))
	}
	return key
}

// Uint32 returns the next keystream word.
func (c *ChaCha) Uint32() uint32 {
	if c.idx >= blockWords {
		c.refill()
	}
	w := c.buf[c.idx]
	c.idx++
	return w
}

// Bool returns true when the most significant bit of the next word is set.
// Low bits of weak generators tend to carry patterns, so the sign bit is used.
func (c *ChaCha) Bool() bool {
	return int32(c.Uint32()) < 0
}

// refill computes the next block and advances the counter.
func (c *ChaCha) refill() {
	block(&c.buf, &c.key, c.counter)
	c.counter++
	c.idx = 0
}

// block writes one ChaCha block for the given counter into out.
func block(out *[blockWords]uint32, key *[keyWords]uint32, counter uint64) {
	// "expand 32-byte k"
	in := [blockWords]uint32{
		0x61707865, 0x3320646e, 0x79622d32, 0x6b206574,
		key[0], key[1], key[2], key[3],
		key[4], key[5], key[6], key[7],
		uint32(counter), uint32(counter >> 32), 0, 0,
	}

	x := in
	for i := 0; i < Rounds; i += 2 {
		// Column round
		quarterRound(&x, 0, 4, 8, 12)
		quarterRound(&x, 1, 5, 9, 13)
		quarterRound(&x, 2, 6, 10, 14)
		quarterRound(&x, 3, 7, 11, 15)
		// Diagonal round
		quarterRound(&x, 0, 5, 10, 15)
		quarterRound(&x, 1, 6, 11, 12)
		quarterRound(&x, 2, 7, 8, 13)
		quarterRound(&x, 3, 4, 9, 14)
	}

	for i := range out {
		out[i] = x[i] + in[i]
	}
}

func quarterRound(x *[blockWords]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 16)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 12)
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 8)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 7)
}
