package utils

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("changethis")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hashed == "changethis" {
		t.Fatal("hash must differ from the plain password")
	}
	if !CheckPassword(hashed, "changethis") {
		t.Error("expected password to match its hash")
	}
	if CheckPassword(hashed, "wrong") {
		t.Error("expected wrong password not to match")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("same")
	h2, _ := HashPassword("same")
	if h1 == h2 {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := HashPassword(string(long)); err == nil {
		t.Error("expected error for password longer than 72 bytes")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "x") {
		t.Error("expected false for malformed hash")
	}
}
