package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateGitHubSignature(t *testing.T) {
	const secret = "test-secret"
	body := []byte(`{"ref":"refs/heads/main"}`)
	v := NewSecurityValidator(SecurityConfig{Secret: secret, RateLimitPerMin: 60})

	t.Run("Valid Signature", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(body, sign(secret, body)); err != nil {
			t.Errorf("expected valid signature, got %v", err)
		}
	})

	t.Run("Missing Signature", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(body, ""); err == nil {
			t.Errorf("expected error for missing signature")
		}
	})

	t.Run("Wrong Prefix", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(body, "sha1=abcdef"); err == nil {
			t.Errorf("expected error for sha1 signature")
		}
	})

	t.Run("Malformed Hex", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(body, "sha256=not-hex"); err == nil {
			t.Errorf("expected error for malformed hex")
		}
	})

	t.Run("Truncated Digest", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(body, "sha256=abcd"); err == nil {
			t.Errorf("expected error for short digest")
		}
	})

	t.Run("Mutated Body", func(t *testing.T) {
		sig := sign(secret, body)
		for i := range body {
			mutated := append([]byte(nil), body...)
			mutated[i] ^= 0x01
			if err := v.ValidateGitHubSignature(mutated, sig); err == nil {
				t.Fatalf("expected failure for body mutated at byte %d", i)
			}
		}
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(body, sign("other-secret", body)); err == nil {
			t.Errorf("expected failure for signature from different secret")
		}
	})

	t.Run("Unconfigured Secret", func(t *testing.T) {
		empty := NewSecurityValidator(SecurityConfig{Secret: "", RateLimitPerMin: 60})
		if err := empty.ValidateGitHubSignature(body, sign("", body)); err == nil {
			t.Errorf("expected error when secret is not configured")
		}
	})
}

func TestCheckRateLimit(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: "s", RateLimitPerMin: 10})

	// Burst of 1: first request passes, immediate second is throttled.
	if err := v.CheckRateLimit("github"); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}
	if err := v.CheckRateLimit("github"); err == nil {
		t.Errorf("expected rate limit after burst exhausted")
	}
	// Independent sources are limited separately.
	if err := v.CheckRateLimit("other"); err != nil {
		t.Errorf("independent source should pass: %v", err)
	}
}
