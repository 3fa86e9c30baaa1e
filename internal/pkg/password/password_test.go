package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct-horse")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("hash equals plaintext")
	}
	if !Verify("correct-horse", hash) {
		t.Error("correct password refused")
	}
	if Verify("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}

func TestHashToken(t *testing.T) {
	a := HashToken("refresh-token")
	b := HashToken("refresh-token")
	if a != b {
		t.Error("token hashing not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if a == HashToken("other-token") {
		t.Error("distinct tokens collide")
	}
}
