package sessioncookie

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestCodec(t *testing.T, opts ...Option) *Codec {
	t.Helper()
	codec, err := NewCodec([]byte("test-secret"), opts...)
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	return codec
}

func TestNewCodecRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewCodec(nil); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	value, err := codec.Encode("  ws-1 ")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := codec.Decode(value)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "ws-1" {
		t.Fatalf("session id = %q, want %q", got, "ws-1")
	}
	if _, err := codec.Encode(" "); err == nil {
		t.Fatal("expected error for blank session id")
	}
}

func TestDecodeRejectsTamperedAndForeignTokens(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	value, err := codec.Encode("ws-1")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	other, err := NewCodec([]byte("other-secret"))
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	for name, candidate := range map[string]string{
		"empty":          "",
		"garbage":        "not-a-jwt",
		"tampered":       value + "x",
		"foreign secret": mustEncode(t, other, "ws-1"),
	} {
		if _, err := codec.Decode(candidate); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: Decode() error = %v, want ErrInvalid", name, err)
		}
	}
}

func TestDecodeRejectsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	issuing := newTestCodec(t, WithTTL(time.Hour), WithClock(func() time.Time { return now }))
	value := mustEncode(t, issuing, "ws-1")

	later := newTestCodec(t, WithClock(func() time.Time { return now.Add(2 * time.Hour) }))
	if _, err := later.Decode(value); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Decode() error = %v, want ErrInvalid", err)
	}
}

func TestWriteAndRead(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	secureRR := httptest.NewRecorder()
	if err := codec.Write(secureRR, httptest.NewRequest(http.MethodGet, "https://devtinder.test", nil), "ws-1"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	cookie, err := http.ParseSetCookie(secureRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Name || !cookie.Secure || !cookie.HttpOnly {
		t.Fatalf("cookie = %+v", cookie)
	}

	req := httptest.NewRequest(http.MethodGet, "http://devtinder.test", nil)
	if _, ok := codec.Read(req); ok {
		t.Fatal("expected missing cookie")
	}
	req.AddCookie(&http.Cookie{Name: Name, Value: cookie.Value})
	got, ok := codec.Read(req)
	if !ok || got != "ws-1" {
		t.Fatalf("Read() = %q, %v", got, ok)
	}
	if _, ok := codec.Read(nil); ok {
		t.Fatal("expected nil request to have no session")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	rr := httptest.NewRecorder()
	codec.Clear(rr, httptest.NewRequest(http.MethodGet, "http://devtinder.test", nil))
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Name || cookie.MaxAge != -1 {
		t.Fatalf("cookie = %+v", cookie)
	}
	codec.Clear(nil, nil)
}

func mustEncode(t *testing.T, codec *Codec, sessionID string) string {
	t.Helper()
	value, err := codec.Encode(sessionID)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return value
}
