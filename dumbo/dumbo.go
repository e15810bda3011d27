// Package dumbo implements the Dumbo parameter set of the Elephant
// authenticated encryption with associated data scheme: Spongent-π[160]
// (80 rounds) as the underlying permutation and a 64-bit authentication
// tag, per section 4.4 of the specification.
//
// Dumbo satisfies crypto/cipher.AEAD, the same shape every AEAD in the Go
// ecosystem exposes (see golang.org/x/crypto/chacha20poly1305, and the
// grain package this one is structurally grounded on).
package dumbo

import (
	"crypto/cipher"
	"errors"
	"strconv"

	"github.com/Redeaux-Corporation/elephant/internal/aead"
	"github.com/Redeaux-Corporation/elephant/internal/spongent"
)

const (
	// KeySize is the required key length in bytes.
	KeySize = aead.KeySize
	// NonceSize is the required nonce length in bytes. Nonces MUST NOT
	// repeat under the same key.
	NonceSize = aead.NonceSize
	// TagSize is the authentication tag length in bytes.
	TagSize = 8

	stateWidth = 20 // 160 bits
)

var errOpen = errors.New("dumbo: message authentication failed")

var params = aead.Params{
	Width:    stateWidth,
	TagLen:   TagSize,
	Permute:  spongent.Permute160,
	StepLFSR: spongent.StepLFSR160,
}

type dumbo struct {
	key [KeySize]byte
}

var _ cipher.AEAD = (*dumbo)(nil)

// New returns a Dumbo AEAD using the given 128-bit key.
func New(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, errors.New("dumbo: bad key length")
	}
	d := &dumbo{}
	copy(d.key[:], key)
	return d, nil
}

func (d *dumbo) NonceSize() int { return NonceSize }

func (d *dumbo) Overhead() int { return TagSize }

// Seal encrypts and authenticates plaintext, authenticates additionalData,
// and appends the result to dst, returning the updated slice. nonce must
// be NonceSize bytes and must never repeat for a given key.
func (d *dumbo) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("dumbo: incorrect nonce length: " + strconv.Itoa(len(nonce)))
	}

	ciphertext, tag := params.Encrypt(d.key[:], nonce, additionalData, plaintext)

	ret, out := sliceForAppend(dst, len(ciphertext)+TagSize)
	copy(out, ciphertext)
	copy(out[len(ciphertext):], tag)
	return ret
}

// Open decrypts and authenticates ciphertext, authenticates
// additionalData, and, if successful, appends the plaintext to dst. When
// authentication fails, Open returns errOpen and dst is left untouched.
func (d *dumbo) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("dumbo: incorrect nonce length: " + strconv.Itoa(len(nonce)))
	}
	if len(ciphertext) < TagSize {
		return nil, errOpen
	}

	ct := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]

	plaintext, ok := params.Decrypt(d.key[:], nonce, tag, additionalData, ct)
	if !ok {
		return nil, errOpen
	}

	ret, out := sliceForAppend(dst, len(plaintext))
	copy(out, plaintext)
	return ret, nil
}

// sliceForAppend extends, and returns, a buffer of size dst[:len(dst)+n]
// such that the returned slice shares the same backing array whenever dst
// has enough capacity. This is the same pattern used throughout
// golang.org/x/crypto's AEAD implementations and grain.(*state).Seal.
func sliceForAppend(dst []byte, n int) (head, tail []byte) {
	total := len(dst) + n
	if cap(dst) >= total {
		head = dst[:total]
	} else {
		head = make([]byte, total)
		copy(head, dst)
	}
	tail = head[len(dst):]
	return head, tail
}
