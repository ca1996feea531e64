// Package challenge holds the primitives shared by the exploit service and the
// authoring tools: the single-byte XOR transform and the MD5 digest.
//
// Every digest the game ships with was produced as
//
//	Digest(Transform(plaintext, XorKey))
//
// so both sides must agree on XorKey or no submission can ever match.
package challenge

import (
	"crypto/md5"
	"encoding/hex"
	"unicode/utf16"
)

// XorKey is the fixed key applied to every submission before hashing.
const XorKey byte = 77

// Transform XORs each UTF-16 code unit of s with key.
//
// Operating on UTF-16 units (not UTF-8 bytes) matches the browser tooling that
// generated the reference digests. For valid UTF-8 input the result is always
// valid and Transform(Transform(s, k), k) == s. Invalid UTF-8 bytes decode to
// U+FFFD first and therefore do not round-trip.
func Transform(s string, key byte) string {
	units := utf16.Encode([]rune(s))
	for i := range units {
		units[i] ^= uint16(key)
	}
	return string(utf16.Decode(units))
}

// Digest returns the MD5 of the UTF-8 bytes of s as 32 lowercase hex characters.
func Digest(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// TransformDigest is Digest(Transform(s, XorKey)).
func TransformDigest(s string) string {
	return Digest(Transform(s, XorKey))
}
