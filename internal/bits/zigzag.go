// Package bits implements the low-level integer codecs used by the
// container's residual section: ZigZag mapping of signed to unsigned
// 64-bit integers, and a 7-bit continuation-byte varint built on top of it.
package bits

// DecodeZigZag decodes a ZigZag encoded integer and returns it.
//
// Examples of ZigZag encoded values on the left and decoded values on the
// right:
//
//	0 =>  0
//	1 => -1
//	2 =>  1
//	3 => -2
//	4 =>  2
//	5 => -3
//	6 =>  3
//
// ref: https://developers.google.com/protocol-buffers/docs/encoding
func DecodeZigZag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// EncodeZigZag maps z to a nonnegative integer such that small magnitudes
// map to small codes.
//
// Examples of integer input on the left and corresponding ZigZag encoded
// values on the right:
//
//	 0 => 0
//	-1 => 1
//	 1 => 2
//	-2 => 3
//	 2 => 4
//	-3 => 5
//	 3 => 6
//
// ref: https://developers.google.com/protocol-buffers/docs/encoding
func EncodeZigZag(z int64) uint64 {
	return uint64(z<<1) ^ uint64(z>>63)
}
