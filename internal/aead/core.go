package aead

import "crypto/subtle"

// KeySize and NonceSize are identical across all three Elephant parameter
// sets (section 4.4).
const (
	KeySize   = 16
	NonceSize = 12
)

// Params monomorphises the generic Elephant composition over one of the
// three underlying permutations: Width is the permutation state size in
// bytes, TagLen the authentication tag size in bytes, Permute the
// keyless permutation, and StepLFSR the mask-generator LFSR update for
// that state width. This is the Go realisation of the Design Notes'
// "generic skeleton parameterised by width, round count, and
// permutation" — three concrete Params values (one per parameter set)
// stand in for what a templated language would monomorphise at compile
// time.
type Params struct {
	Width    int
	TagLen   int
	Permute  func(state []byte)
	StepLFSR func(state []byte)
}

func (p Params) seed(key []byte) []byte {
	padded := make([]byte, p.Width)
	copy(padded, key)
	p.Permute(padded)
	return padded
}

// keystreamXOR XORs the Elephant masked-permutation keystream into dst,
// where src is the data being transformed (plaintext on encrypt,
// ciphertext on decrypt — the operation is its own inverse), per the
// encryption procedure of section 4.4 step 2.
func (p Params) keystreamXOR(seed, nonce, src, dst []byte) {
	m := len(src)
	blocks := m / p.Width
	if m%p.Width != 0 {
		blocks++
	}

	prevH := seed
	for i := 0; i < blocks; i++ {
		newH, f := nextMask(p.StepLFSR, prevH, VariantKeystream)
		prevH = newH

		x := make([]byte, p.Width)
		copy(x, nonce)
		xorInto(x, f)
		p.Permute(x)
		xorInto(x, f)

		off := i * p.Width
		n := p.Width
		if remain := m - off; remain < n {
			n = remain
		}
		for j := 0; j < n; j++ {
			dst[off+j] = src[off+j] ^ x[j]
		}
	}
}

// computeMAC computes the Elephant authentication tag over (nonce, ad,
// ciphertext) per section 4.4 steps 3-5. The AD-MAC and CT-MAC chains
// each restart independently from seed, as the specification requires.
func (p Params) computeMAC(seed, nonce, ad, ciphertext []byte) []byte {
	acc := extractBlock(nonce, ad, p.Width, 0)

	adBlocks := numBlocks(len(nonce)+len(ad)+1, p.Width)
	prevH := seed
	for i := 1; i < adBlocks; i++ {
		newH, f := nextMask(p.StepLFSR, prevH, VariantAD)
		prevH = newH

		b := extractBlock(nonce, ad, p.Width, i)
		xorInto(b, f)
		p.Permute(b)
		xorInto(b, f)
		xorInto(acc, b)
	}

	ctBlocks := numBlocks(len(ciphertext)+1, p.Width)
	prevH = seed
	for i := 0; i < ctBlocks; i++ {
		newH, f := nextMask(p.StepLFSR, prevH, VariantCiphertext)
		prevH = newH

		b := extractBlock(nil, ciphertext, p.Width, i)
		xorInto(b, f)
		p.Permute(b)
		xorInto(b, f)
		xorInto(acc, b)
	}

	xorInto(acc, seed)
	p.Permute(acc)
	xorInto(acc, seed)

	return acc[:p.TagLen]
}

// Encrypt implements algorithm 1 of the Elephant specification (section
// 4.4): it produces len(plaintext) bytes of ciphertext and a p.TagLen-byte
// authentication tag over (key, nonce, ad, ciphertext).
func (p Params) Encrypt(key, nonce, ad, plaintext []byte) (ciphertext, tag []byte) {
	seed := p.seed(key)

	ciphertext = make([]byte, len(plaintext))
	p.keystreamXOR(seed, nonce, plaintext, ciphertext)

	tag = p.computeMAC(seed, nonce, ad, ciphertext)
	return ciphertext, tag
}

// Decrypt implements algorithm 2 of the Elephant specification. It always
// returns a len(ciphertext)-byte plaintext buffer; when authentication
// fails, that buffer is all-zero and ok is false. Tag comparison uses
// crypto/subtle.ConstantTimeCompare, which is the standard library's
// constant-time, non-short-circuiting byte comparison — the Go-idiomatic
// equivalent of the OR-reduction over XORed bytes the specification
// describes.
func (p Params) Decrypt(key, nonce, tag, ad, ciphertext []byte) (plaintext []byte, ok bool) {
	seed := p.seed(key)

	plaintext = make([]byte, len(ciphertext))
	p.keystreamXOR(seed, nonce, ciphertext, plaintext)

	computed := p.computeMAC(seed, nonce, ad, ciphertext)
	ok = subtle.ConstantTimeCompare(tag, computed) == 1

	if !ok {
		for i := range plaintext {
			plaintext[i] = 0
		}
	}
	return plaintext, ok
}
