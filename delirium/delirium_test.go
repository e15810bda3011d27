package delirium

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, KeySize)
	nonce := bytes.Repeat([]byte{0xcd}, NonceSize)
	ad := []byte("header data")
	pt := []byte("Delirium uses Keccak-f[200] with eighteen rounds and a 128-bit tag")

	d, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sealed := d.Seal(nil, nonce, pt, ad)
	if len(sealed) != len(pt)+TagSize {
		t.Fatalf("sealed length = %d, want %d", len(sealed), len(pt)+TagSize)
	}

	opened, err := d.Open(nil, nonce, sealed, ad)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, pt) {
		t.Fatalf("round trip mismatch:\n got: %x\nwant: %x", opened, pt)
	}
}

func TestEmptyInputCorners(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	d, _ := New(key)

	cases := []struct {
		name   string
		ad, pt []byte
	}{
		{"both empty", nil, nil},
		{"ad only", []byte("ad"), nil},
		{"pt only", nil, []byte("pt")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sealed := d.Seal(nil, nonce, c.pt, c.ad)
			opened, err := d.Open(nil, nonce, sealed, c.ad)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if !bytes.Equal(opened, c.pt) && len(opened)+len(c.pt) != 0 {
				t.Fatalf("plaintext mismatch: got %x want %x", opened, c.pt)
			}
		})
	}
}

func TestTagSensitivity(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, KeySize)
	nonce := bytes.Repeat([]byte{0x02}, NonceSize)
	ad := []byte("authenticated header")
	pt := []byte("a plaintext long enough to span several 25-byte Keccak-f[200] blocks of state")

	d, _ := New(key)
	sealed := d.Seal(nil, nonce, pt, ad)

	for trial := 0; trial < 8; trial++ {
		bitPos := trial * 13 % (len(sealed) * 8)
		tampered := append([]byte(nil), sealed...)
		tampered[bitPos/8] ^= 1 << uint(bitPos%8)

		if _, err := d.Open(nil, nonce, tampered, ad); err == nil {
			t.Fatalf("trial %d: Open accepted a tampered ciphertext/tag (bit %d flipped)", trial, bitPos)
		}
	}
}

func TestZeroisationOnFailure(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	pt := []byte("sensitive plaintext that must not leak on auth failure")

	d, _ := New(key)
	sealed := d.Seal(nil, nonce, pt, nil)
	sealed[len(sealed)-1] ^= 0xff

	opened, err := d.Open(nil, nonce, sealed, nil)
	if err == nil {
		t.Fatal("expected authentication failure")
	}
	if opened != nil {
		t.Fatalf("expected nil plaintext on failure, got %x", opened)
	}
}

func TestBadKeyLength(t *testing.T) {
	if _, err := New(make([]byte, KeySize-1)); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestBadNonceLengthPanics(t *testing.T) {
	d, _ := New(make([]byte, KeySize))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for wrong nonce length")
		}
	}()
	d.Seal(nil, make([]byte, NonceSize-1), []byte("x"), nil)
}

func BenchmarkSeal(b *testing.B) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	ad := make([]byte, 16)
	pt := make([]byte, 1024)
	d, _ := New(key)

	b.SetBytes(int64(len(pt)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Seal(nil, nonce, pt, ad)
	}
}

func BenchmarkOpen(b *testing.B) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	ad := make([]byte, 16)
	pt := make([]byte, 1024)
	d, _ := New(key)
	sealed := d.Seal(nil, nonce, pt, ad)

	b.SetBytes(int64(len(pt)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := d.Open(nil, nonce, sealed, ad); err != nil {
			b.Fatalf("Open: %v", err)
		}
	}
}
