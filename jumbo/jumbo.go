// Package jumbo implements the Jumbo parameter set of the Elephant
// authenticated encryption with associated data scheme: Spongent-π[176]
// (90 rounds) as the underlying permutation and a 64-bit authentication
// tag, per section 4.4 of the specification.
package jumbo

import (
	"crypto/cipher"
	"errors"
	"strconv"

	"github.com/Redeaux-Corporation/elephant/internal/aead"
	"github.com/Redeaux-Corporation/elephant/internal/spongent"
)

const (
	KeySize   = aead.KeySize
	NonceSize = aead.NonceSize
	TagSize   = 8

	stateWidth = 22 // 176 bits
)

var errOpen = errors.New("jumbo: message authentication failed")

var params = aead.Params{
	Width:    stateWidth,
	TagLen:   TagSize,
	Permute:  spongent.Permute176,
	StepLFSR: spongent.StepLFSR176,
}

type jumbo struct {
	key [KeySize]byte
}

var _ cipher.AEAD = (*jumbo)(nil)

// New returns a Jumbo AEAD using the given 128-bit key.
func New(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, errors.New("jumbo: bad key length")
	}
	j := &jumbo{}
	copy(j.key[:], key)
	return j, nil
}

func (j *jumbo) NonceSize() int { return NonceSize }

func (j *jumbo) Overhead() int { return TagSize }

func (j *jumbo) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("jumbo: incorrect nonce length: " + strconv.Itoa(len(nonce)))
	}

	ciphertext, tag := params.Encrypt(j.key[:], nonce, additionalData, plaintext)

	ret, out := sliceForAppend(dst, len(ciphertext)+TagSize)
	copy(out, ciphertext)
	copy(out[len(ciphertext):], tag)
	return ret
}

func (j *jumbo) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("jumbo: incorrect nonce length: " + strconv.Itoa(len(nonce)))
	}
	if len(ciphertext) < TagSize {
		return nil, errOpen
	}

	ct := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]

	plaintext, ok := params.Decrypt(j.key[:], nonce, tag, additionalData, ct)
	if !ok {
		return nil, errOpen
	}

	ret, out := sliceForAppend(dst, len(plaintext))
	copy(out, plaintext)
	return ret, nil
}

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
