// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package va

// FourCC is a backend pixel layout tag packed little-endian, so the first
// character lives in the lowest byte (VA_FOURCC).
type FourCC uint32

// MakeFourCC packs four characters into a FourCC.
func MakeFourCC(a, b, c, d byte) FourCC {
	return FourCC(a) | FourCC(b)<<8 | FourCC(c)<<16 | FourCC(d)<<24
}

// Layouts understood by libva.
const (
	FourCCNV12 FourCC = 'N' | 'V'<<8 | '1'<<16 | '2'<<24
	FourCCYV12 FourCC = 'Y' | 'V'<<8 | '1'<<16 | '2'<<24
	FourCCI420 FourCC = 'I' | '4'<<8 | '2'<<16 | '0'<<24
	FourCCIYUV FourCC = 'I' | 'Y'<<8 | 'U'<<16 | 'V'<<24
	FourCCUYVY FourCC = 'U' | 'Y'<<8 | 'V'<<16 | 'Y'<<24
	FourCCYUY2 FourCC = 'Y' | 'U'<<8 | 'Y'<<16 | '2'<<24
	FourCCRGBA FourCC = 'R' | 'G'<<8 | 'B'<<16 | 'A'<<24
	FourCCRGBX FourCC = 'R' | 'G'<<8 | 'B'<<16 | 'X'<<24
	FourCCBGRA FourCC = 'B' | 'G'<<8 | 'R'<<16 | 'A'<<24
	FourCCBGRX FourCC = 'B' | 'G'<<8 | 'R'<<16 | 'X'<<24
	FourCCARGB FourCC = 'A' | 'R'<<8 | 'G'<<16 | 'B'<<24
	FourCCP010 FourCC = 'P' | '0'<<8 | '1'<<16 | '0'<<24
)

// String returns the four characters of the tag (VA_STR_FOURCC).
// Non-printable bytes are rendered as '.'.
func (f FourCC) String() string {
	var b [4]byte
	for i := range b {
		c := byte(f >> (8 * i))
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		b[i] = c
	}
	return string(b[:])
}
