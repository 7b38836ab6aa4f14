package cryptox

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt-16byt")

	k1 := DeriveKey(password, salt)
	k2 := DeriveKey(password, salt)

	if !bytes.Equal(k1, k2) {
		t.Fatal("expected same key for same password+salt")
	}
	if len(k1) != int(defaultKeyLen) {
		t.Fatalf("expected %d-byte key, got %d", defaultKeyLen, len(k1))
	}
}

func TestDeriveKey_DifferentSalt(t *testing.T) {
	password := []byte("secret-password")
	if bytes.Equal(DeriveKey(password, []byte("salt-a")), DeriveKey(password, []byte("salt-b"))) {
		t.Fatal("expected different keys for different salts")
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	encoded := HashPassword([]byte("correct horse"))

	if !strings.HasPrefix(encoded, "argon2id$v=19$m=65536,t=1,p=4$") {
		t.Fatalf("unexpected encoding: %s", encoded)
	}
	if strings.Contains(encoded, "correct horse") {
		t.Fatal("plain password leaked into the hash")
	}

	ok, err := VerifyPassword(encoded, []byte("correct horse"))
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = VerifyPassword(encoded, []byte("wrong horse"))
	if err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a := HashPassword([]byte("pw"))
	b := HashPassword([]byte("pw"))
	if a == b {
		t.Fatal("two hashes of the same password must not be identical")
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5",
		"argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
		"argon2id$v=19$garbage$c2FsdA$a2V5",
		"argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
		"argon2id$v=19$m=65536,t=1,p=4$c2FsdA$",
	}
	for _, c := range cases {
		if _, err := VerifyPassword(c, []byte("pw")); !errors.Is(err, ErrMalformedHash) {
			t.Fatalf("%q: want ErrMalformedHash, got %v", c, err)
		}
	}
}
