package polarstrip

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest returns the BLAKE3 hash of the canvas size and pixel bytes.
// Two canvases with equal digests are pixel-identical.
func (c *Canvas) Digest() [32]byte {
	h := blake3.New()
	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(c.size))
	_, _ = h.Write(size[:])
	_, _ = h.Write(c.img.Pix)

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// DigestHex returns Digest as a lowercase hex string.
func (c *Canvas) DigestHex() string {
	sum := c.Digest()
	return hex.EncodeToString(sum[:])
}
