package codec

import (
	"encoding/base64"

	"github.com/klauspost/compress/zstd"
)

var enc, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
var dec, _ = zstd.NewReader(nil)

// Compress zstd-compresses b.
func Compress(b []byte) []byte {
	return enc.EncodeAll(b, make([]byte, 0, len(b)))
}

// Decompress reverses Compress.
func Decompress(b []byte) ([]byte, error) {
	return dec.DecodeAll(b, nil)
}

// EncodeBlob base64-url encodes binary data so it can be kept in a string store.
func EncodeBlob(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeBlob reverses EncodeBlob.
func DecodeBlob(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
