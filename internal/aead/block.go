package aead

// numBlocks returns ceil(totalLen / width).
func numBlocks(totalLen, width int) int {
	return (totalLen + width - 1) / width
}

// extractBlock materialises block index `index` of the logical stream
// prefix ∥ main ∥ 0x01 ∥ zero-pad, per the padded block extractor of
// section 4.3. For the AD stream, prefix is the nonce; for the ciphertext
// stream, prefix is empty.
func extractBlock(prefix, main []byte, width, index int) []byte {
	out := make([]byte, width)
	total := len(prefix) + len(main)
	start := index * width

	for i := 0; i < width; i++ {
		pos := start + i
		switch {
		case pos < len(prefix):
			out[i] = prefix[pos]
		case pos < total:
			out[i] = main[pos-len(prefix)]
		case pos == total:
			out[i] = 0x01
		default:
			// zero padding; out[i] is already zero.
		}
	}
	return out
}
