// Package validator checks a player's guessed plaintext against the target
// digest and releases the reward token on a match.
package validator

import (
	"log"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/jredh-dev/missionexploit/internal/challenge"
)

// User-visible messages. They never include the target digest or the reward.
const (
	MsgInvalidInput = "invalid input."
	MsgSuccess      = "success"
	MsgIncorrect    = "incorrect plaintext, try again."
)

// Result is the outcome of a single validation attempt.
type Result struct {
	OK        bool
	Reward    string // set only when OK
	Message   string
	AttemptID uuid.UUID // zero for invalid input
}

// Validator compares submissions against an immutable target digest.
// It keeps no state between calls and is safe for concurrent use.
type Validator struct {
	target string
	reward string
	key    byte
}

// New creates a Validator for targetDigest (hex, any case) and reward.
func New(targetDigest, reward string) *Validator {
	return &Validator{
		target: strings.ToLower(strings.TrimSpace(targetDigest)),
		reward: reward,
		key:    challenge.XorKey,
	}
}

// Validate trims the submission, XORs it with the key, hashes the result and
// compares it to the target. The plaintext itself is matched exactly: no case
// folding, no normalization.
func (v *Validator) Validate(submission string) Result {
	plaintext := Trim(submission)
	if plaintext == "" {
		return Result{Message: MsgInvalidInput}
	}

	id := uuid.New()
	xored := challenge.Transform(plaintext, v.key)
	digest := challenge.Digest(xored)
	match := strings.EqualFold(digest, v.target)

	log.Printf("submit: id=%s plaintext=%q xor=%q digest=%s target=%s match=%v",
		id, plaintext, xored, digest, v.target, match)

	if !match {
		return Result{Message: MsgIncorrect, AttemptID: id}
	}
	return Result{OK: true, Reward: v.reward, Message: MsgSuccess, AttemptID: id}
}

// Trim strips leading and trailing whitespace using the ECMAScript definition:
// Unicode White_Space plus U+FEFF, minus U+0085.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
