package session

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec([]byte("test-signing-key"), time.Hour)

	value, err := codec.Encode("session-123")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	sid, err := codec.Decode(value)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sid != "session-123" {
		t.Fatalf("sid = %q", sid)
	}
}

func TestDecodeRejectsTamperedValue(t *testing.T) {
	codec := NewCodec([]byte("test-signing-key"), time.Hour)

	value, err := codec.Encode("session-123")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	tampered := value[:len(value)-2] + "xx"
	if _, err := codec.Decode(tampered); err == nil {
		t.Fatal("tampered cookie must not verify")
	}
}

func TestDecodeRejectsForeignKey(t *testing.T) {
	value, err := NewCodec([]byte("key-one"), time.Hour).Encode("session-123")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := NewCodec([]byte("key-two"), time.Hour).Decode(value); err == nil {
		t.Fatal("cookie signed with another key must not verify")
	}
}

func TestDecodeRejectsExpiredValue(t *testing.T) {
	codec := NewCodec([]byte("test-signing-key"), time.Hour)
	codec.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	value, err := codec.Encode("session-123")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := NewCodec([]byte("test-signing-key"), time.Hour).Decode(value); err == nil {
		t.Fatal("expired cookie must not verify")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	codec := NewCodec([]byte("test-signing-key"), time.Hour)
	for _, value := range []string{"", "not-a-token", strings.Repeat("a", 100)} {
		if _, err := codec.Decode(value); err == nil {
			t.Fatalf("value %q must not verify", value)
		}
	}
}

func TestCookieAttributes(t *testing.T) {
	codec := NewCodec([]byte("test-signing-key"), time.Hour)

	cookie := codec.Cookie("value")
	if cookie.Name != CookieName {
		t.Errorf("name = %q", cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be http-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Error("cookie must be same-site lax")
	}
	if cookie.Path != "/" {
		t.Errorf("path = %q", cookie.Path)
	}
	if cookie.MaxAge != 3600 {
		t.Errorf("max-age = %d", cookie.MaxAge)
	}

	expired := codec.ExpiredCookie()
	if expired.MaxAge >= 0 {
		t.Errorf("expired cookie max-age = %d", expired.MaxAge)
	}
	if expired.Value != "" {
		t.Error("expired cookie must clear the value")
	}
}
