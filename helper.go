package userop

// wordSize is the EVM machine word size in bytes.
const wordSize = 32

// padLen returns len(b) rounded up to the next multiple of 32.
func padLen(b []byte) int {
	return (len(b) + wordSize - 1) &^ (wordSize - 1)
}
