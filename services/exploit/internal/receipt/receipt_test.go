package receipt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIssueAndVerify(t *testing.T) {
	s := New("test-key", "mission-exploit", time.Hour)
	id := uuid.New()

	tok, err := s.Issue(id, "458f27e0d23c8113c52ab652dff24e6e")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if strings.Count(tok, ".") != 2 {
		t.Fatalf("expected a compact JWT, got %q", tok)
	}

	claims, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != id.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, id)
	}
	if claims.Challenge != "458f27e0d23c8113c52ab652dff24e6e" {
		t.Errorf("Challenge = %q", claims.Challenge)
	}
}

func TestVerifyRejects(t *testing.T) {
	s := New("test-key", "mission-exploit", time.Hour)
	tok, err := s.Issue(uuid.New(), "x")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name string
		svc  *Service
		tok  string
	}{
		{"wrong key", New("other-key", "mission-exploit", time.Hour), tok},
		{"wrong issuer", New("test-key", "someone-else", time.Hour), tok},
		{"garbage", s, "not.a.jwt"},
		{"tampered", s, tok[:len(tok)-2] + "xx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.svc.Verify(tt.tok); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestVerifyExpired(t *testing.T) {
	s := New("test-key", "mission-exploit", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := s.Issue(uuid.New(), "x")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := s.Verify(tok); err == nil {
		t.Fatal("expected expired receipt to be rejected")
	}
}

func TestDisabled(t *testing.T) {
	s := New("", "mission-exploit", time.Hour)
	if s.Enabled() {
		t.Fatal("Enabled = true with empty key")
	}
	if _, err := s.Issue(uuid.New(), "x"); !errors.Is(err, ErrDisabled) {
		t.Errorf("Issue err = %v, want ErrDisabled", err)
	}
	if _, err := s.Verify("x.y.z"); !errors.Is(err, ErrDisabled) {
		t.Errorf("Verify err = %v, want ErrDisabled", err)
	}

	var nilSvc *Service
	if nilSvc.Enabled() {
		t.Error("nil service should be disabled")
	}
}
