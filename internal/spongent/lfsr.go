package spongent

// rotl8 rotates an 8-bit value left by n bits.
func rotl8(v byte, n uint) byte {
	return (v << n) | (v >> (8 - n))
}

// StepLFSR160 updates the mask-generator LFSR for W=160, in place, per
// section 2.3.2 of the Elephant specification and
// _examples/original_source/include/aead.hpp. x must be 20 bytes.
func StepLFSR160(x []byte) {
	tmp := rotl8(x[0], 3) ^ (x[3] << 7) ^ (x[13] >> 7)
	copy(x, x[1:])
	x[len(x)-1] = tmp
}

// StepLFSR176 updates the mask-generator LFSR for W=176, in place, per
// section 2.4.2 of the Elephant specification and
// _examples/original_source/include/aead.hpp. x must be 22 bytes.
func StepLFSR176(x []byte) {
	tmp := rotl8(x[0], 1) ^ (x[3] << 7) ^ (x[19] >> 7)
	copy(x, x[1:])
	x[len(x)-1] = tmp
}
