package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recipe-catalog/internal/service/auth"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestCodec_roundTrip(t *testing.T) {
	codec := auth.NewCodec(testSecret, time.Hour)

	for _, subject := range []string{"7", "42", "someone@example.com"} {
		token, err := codec.Encode(subject)
		if err != nil {
			t.Fatalf("Encode(%q) err=%v", subject, err)
		}

		got, err := codec.Decode(token)
		if err != nil {
			t.Fatalf("Decode err=%v", err)
		}
		if got != subject {
			t.Errorf("Decode = %q, want %q", got, subject)
		}
	}
}

func TestCodec_expired(t *testing.T) {
	// Issue at a frozen instant, decode two hours later.
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := auth.NewCodecWithClock(testSecret, time.Hour, func() time.Time { return issued })

	token, err := codec.Encode("7")
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}

	later := auth.NewCodecWithClock(testSecret, time.Hour, func() time.Time {
		return issued.Add(2 * time.Hour)
	})
	if _, err := later.Decode(token); !errors.Is(err, auth.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestCodec_expiryBeatsSignature(t *testing.T) {
	// A validly signed but expired token must fail as expired, not pass.
	issued := time.Now().Add(-3 * time.Hour)
	codec := auth.NewCodecWithClock(testSecret, time.Hour, func() time.Time { return issued })

	token, err := codec.Encode("7")
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}

	fresh := auth.NewCodec(testSecret, time.Hour)
	if _, err := fresh.Decode(token); !errors.Is(err, auth.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestCodec_tamperedSignature(t *testing.T) {
	codec := auth.NewCodec(testSecret, time.Hour)

	token, err := codec.Encode("7")
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}

	// Flip one character of the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := codec.Decode(tampered); !errors.Is(err, auth.ErrTokenMalformed) {
		t.Fatalf("want ErrTokenMalformed, got %v", err)
	}
}

func TestCodec_wrongSecret(t *testing.T) {
	codec := auth.NewCodec(testSecret, time.Hour)
	other := auth.NewCodec([]byte("another-secret-another-secret-32"), time.Hour)

	token, err := codec.Encode("7")
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}
	if _, err := other.Decode(token); !errors.Is(err, auth.ErrTokenMalformed) {
		t.Fatalf("want ErrTokenMalformed, got %v", err)
	}
}

func TestCodec_garbage(t *testing.T) {
	codec := auth.NewCodec(testSecret, time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Decode(tok); !errors.Is(err, auth.ErrTokenMalformed) {
			t.Errorf("Decode(%q): want ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestCodec_missingSubject(t *testing.T) {
	// Build a well-signed token with no sub claim at all.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := raw.SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign err=%v", err)
	}

	codec := auth.NewCodec(testSecret, time.Hour)
	if _, err := codec.Decode(signed); !errors.Is(err, auth.ErrTokenMissingSubject) {
		t.Fatalf("want ErrTokenMissingSubject, got %v", err)
	}
}

func TestCodec_rejectsUnexpectedAlgorithm(t *testing.T) {
	// alg=none tokens must never be accepted regardless of claims.
	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign err=%v", err)
	}

	codec := auth.NewCodec(testSecret, time.Hour)
	if _, err := codec.Decode(signed); !errors.Is(err, auth.ErrTokenMalformed) {
		t.Fatalf("want ErrTokenMalformed, got %v", err)
	}
}
