// Package delirium implements the Delirium parameter set of the Elephant
// authenticated encryption with associated data scheme: Keccak-f[200]
// (18 rounds) as the underlying permutation and a 128-bit authentication
// tag, per section 4.4 of the specification.
package delirium

import (
	"crypto/cipher"
	"errors"
	"strconv"

	"github.com/Redeaux-Corporation/elephant/internal/aead"
	"github.com/Redeaux-Corporation/elephant/internal/keccak200"
)

const (
	KeySize   = aead.KeySize
	NonceSize = aead.NonceSize
	TagSize   = 16

	stateWidth = 25 // 200 bits
)

var errOpen = errors.New("delirium: message authentication failed")

var params = aead.Params{
	Width:    stateWidth,
	TagLen:   TagSize,
	Permute:  keccak200.Permute,
	StepLFSR: keccak200.StepLFSR,
}

type delirium struct {
	key [KeySize]byte
}

var _ cipher.AEAD = (*delirium)(nil)

// New returns a Delirium AEAD using the given 128-bit key.
func New(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, errors.New("delirium: bad key length")
	}
	d := &delirium{}
	copy(d.key[:], key)
	return d, nil
}

func (d *delirium) NonceSize() int { return NonceSize }

func (d *delirium) Overhead() int { return TagSize }

func (d *delirium) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("delirium: incorrect nonce length: " + strconv.Itoa(len(nonce)))
	}

	ciphertext, tag := params.Encrypt(d.key[:], nonce, additionalData, plaintext)

	ret, out := sliceForAppend(dst, len(ciphertext)+TagSize)
	copy(out, ciphertext)
	copy(out[len(ciphertext):], tag)
	return ret
}

func (d *delirium) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("delirium: incorrect nonce length: " + strconv.Itoa(len(nonce)))
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
