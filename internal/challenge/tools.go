package challenge

import (
	"strings"
	"unicode/utf16"
)

// Artifact is everything an author needs to publish a new challenge variant.
type Artifact struct {
	Plaintext   string
	Transformed string
	Units       []uint16
	Digest      string
}

// Generate derives the challenge artifact for plaintext.
func Generate(plaintext string) Artifact {
	x := Transform(plaintext, XorKey)
	return Artifact{
		Plaintext:   plaintext,
		Transformed: x,
		Units:       utf16.Encode([]rune(x)),
		Digest:      Digest(x),
	}
}

// Flag is the reward token conventionally paired with plaintext.
func (a Artifact) Flag() string {
	return "flag{" + a.Plaintext + "}"
}

// Verify recomputes the digest from the plaintext and compares.
func (a Artifact) Verify() bool {
	return TransformDigest(a.Plaintext) == a.Digest
}

// Intercepted is a named digest found in the game's hash database.
type Intercepted struct {
	Name   string
	Digest string
}

// Finding records a candidate phrase that reproduces an intercepted digest.
type Finding struct {
	Hash   Intercepted
	Phrase string
	Found  bool
}

// KnownPhrases are the meeting places the analysis tool tries by default.
var KnownPhrases = []string{
	"RANDOM PHRASE ONE",
	"MEETING AT LIBRARY",
	"BY THE MAIN GATE",
	"COFFEE SHOP CORNER",
	"IN FRONT OF FOUNTAIN",
}

// InterceptedHashes mirrors hashes.txt in the console file system.
// Only Hash-Echo is real; the rest are decoys.
var InterceptedHashes = []Intercepted{
	{Name: "Hash-Alpha", Digest: "de73807b41656e73eb3938c56872167d"},
	{Name: "Hash-Beta", Digest: "9fda2b69d18ca58393fd0c6c63fa6c9b"},
	{Name: "Hash-Gamma", Digest: "633d5b9956e790957a51f32f480d822b"},
	{Name: "Hash-Delta", Digest: "2ce9906047c7286fd9ba7d6cdcd3e21b"},
	{Name: "Hash-Echo", Digest: "458f27e0d23c8113c52ab652dff24e6e"},
}

// Analyze tests every phrase against every hash and returns one finding per
// hash, in input order. The first matching phrase wins.
func Analyze(hashes []Intercepted, phrases []string) []Finding {
	findings := make([]Finding, 0, len(hashes))
	for _, h := range hashes {
		f := Finding{Hash: h}
		for _, p := range phrases {
			if strings.EqualFold(TransformDigest(p), h.Digest) {
				f.Phrase = p
				f.Found = true
				break
			}
		}
		findings = append(findings, f)
	}
	return findings
}
