package bits

import "errors"

// ErrMalformedVarint is returned by DecodeVarintZigZag when a varint
// continues past the end of the supplied slice, or would require more than
// 10 continuation bytes (i.e. overflow a 64-bit value). Callers at the
// container layer translate this into the closed MalformedResidualBlock
// error kind.
var ErrMalformedVarint = errors.New("bits: malformed varint")

// maxVarintBytes is the maximum number of continuation bytes needed to
// encode a 64-bit unsigned value (ceil(64/7)).
const maxVarintBytes = 10

// EncodeVarintZigZag ZigZag-maps z and appends it to dst as a sequence of
// 7-bit little-endian continuation groups: the most significant bit of
// every byte but the last is set to 1.
func EncodeVarintZigZag(dst []byte, z int64) []byte {
	u := EncodeZigZag(z)
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// DecodeVarintZigZag decodes a single ZigZag-encoded varint from the front
// of buf and returns the decoded value along with the number of bytes
// consumed. It fails with ErrMalformedVarint if the varint continues past
// the end of buf, or would exceed 10 bytes.
func DecodeVarintZigZag(buf []byte) (z int64, n int, err error) {
	var u uint64
	for n = 0; n < maxVarintBytes; n++ {
		if n >= len(buf) {
			return 0, 0, ErrMalformedVarint
		}
		b := buf[n]
		u |= uint64(b&0x7F) << (7 * uint(n))
		if b&0x80 == 0 {
			return DecodeZigZag(u), n + 1, nil
		}
	}
	return 0, 0, ErrMalformedVarint
}
