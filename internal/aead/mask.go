// Package aead implements the parameter-set-agnostic core of the Elephant
// AEAD construction (section 4.2-4.4 of the specification): the
// LFSR-driven mask generator, the padded block extractor, and the
// encrypt/decrypt composition that every one of Dumbo, Jumbo and Delirium
// plugs a permutation and an LFSR step function into.
package aead

// Variant selects which of the three next_mask algebraic forms (section
// 4.2) to use. Named by role (AD/keystream/ciphertext) rather than by the
// b∈{0,1,2} numbering the specification uses, to keep call sites readable.
type Variant int

const (
	VariantAD         Variant = 0
	VariantKeystream  Variant = 1
	VariantCiphertext Variant = 2
)

// xorInto XORs src into dst, which must be at least as long as src.
func xorInto(dst, src []byte) {
	for i := range src {
		dst[i] ^= src[i]
	}
}

// nextMask advances the mask-generator LFSR state prevH by one step and
// derives the functional mask f for the given variant, per the
// next_mask(prev_h, b) algorithm in section 4.2:
//
//	new_h = step_lfsr(prev_h)
//	b=0: f = new_h
//	b=1: f = new_h XOR prev_h
//	b=2: t = new_h XOR prev_h; f = step_lfsr(t) XOR t
func nextMask(stepLFSR func([]byte), prevH []byte, variant Variant) (newH, f []byte) {
	newH = append([]byte(nil), prevH...)
	stepLFSR(newH)

	switch variant {
	case VariantAD:
		f = append([]byte(nil), newH...)
	case VariantKeystream:
		f = append([]byte(nil), newH...)
		xorInto(f, prevH)
	case VariantCiphertext:
		t := append([]byte(nil), newH...)
		xorInto(t, prevH)
		tBefore := append([]byte(nil), t...)
		stepLFSR(t)
		xorInto(t, tBefore)
		f = t
	}
	return newH, f
}
