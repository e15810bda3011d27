package spongent

// piTable160 and piTable176 hold the bit-permutation layer π_W for each
// state width, computed once at package init time from the formula in
// section 4.1.1 of the specification rather than hand-transcribed, per the
// Design Notes' "tables vs on-the-fly" guidance (here the table IS the
// auditable artifact: anyone can re-derive it from buildPiTable).
var (
	piTable160 = buildPiTable(160, 40)
	piTable176 = buildPiTable(176, 44)
)

// buildPiTable computes the Spongent π_W bit-permutation: bit i moves to
// bit (i*mul) mod (n-1), except the final bit which is a fixed point.
func buildPiTable(n, mul int) []int {
	table := make([]int, n)
	for i := 0; i < n-1; i++ {
		table[i] = (i * mul) % (n - 1)
	}
	table[n-1] = n - 1
	return table
}

// getBit reads bit i (0 = most significant bit of state[0]) from state.
func getBit(state []byte, i int) byte {
	return (state[i/8] >> uint(7-i%8)) & 1
}

// setBit sets bit i of state to v (0 or 1).
func setBit(state []byte, i int, v byte) {
	mask := byte(1) << uint(7-i%8)
	if v != 0 {
		state[i/8] |= mask
	} else {
		state[i/8] &^= mask
	}
}

// applyPiLayer permutes the bits of state according to table: the bit at
// position i moves to position table[i].
func applyPiLayer(state []byte, table []int) {
	n := len(state) * 8
	out := make([]byte, len(state))
	for i := 0; i < n; i++ {
		if getBit(state, i) != 0 {
			setBit(out, table[i], 1)
		}
	}
	copy(state, out)
}

// permute runs the Spongent-π[W] round function (add round constant,
// S-box, π bit-permutation) for the given round count, per section 4.1.1
// of the specification.
func permute(state []byte, rounds int, lCounter, revLCounter []byte, piTable []int) {
	last := len(state) - 1
	for r := 0; r < rounds; r++ {
		state[0] ^= lCounter[r]
		state[last] ^= revLCounter[r]

		for i := range state {
			state[i] = sbox[state[i]]
		}

		applyPiLayer(state, piTable)
	}
}

// Permute160 applies the 80-round Spongent-π[160] permutation in place.
// state must be exactly 20 bytes (160 bits).
func Permute160(state []byte) {
	permute(state, 80, lCounter160[:], revLCounter160[:], piTable160)
}

// Permute176 applies the 90-round Spongent-π[176] permutation in place.
// state must be exactly 22 bytes (176 bits).
func Permute176(state []byte) {
	permute(state, 90, lCounter176[:], revLCounter176[:], piTable176)
}
