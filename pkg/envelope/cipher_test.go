package envelope

import (
	"errors"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	cases := []string{
		"",
		"a",
		"social security number 078-05-1120",
		"exactly sixteen b",
		"日本語のテキストと émojis 🔑 mixed in",
		string(make([]byte, 4096)),
	}

	for _, plaintext := range cases {
		field, err := Encrypt(kp.Public(), []byte(plaintext))
		if err != nil {
			t.Fatalf("encrypt failed for %q: %v", plaintext, err)
		}

		decrypted, err := kp.Decrypt(field)
		if err != nil {
			t.Fatalf("decrypt failed for %q: %v", plaintext, err)
		}

		if string(decrypted) != plaintext {
			t.Errorf("round trip mismatch: got %q, want %q", decrypted, plaintext)
		}
	}
}

func TestEncryptIsRandomized(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	plaintext := []byte("the same value twice")

	first, err := Encrypt(kp.Public(), plaintext)
	if err != nil {
		t.Fatalf("first encrypt failed: %v", err)
	}

	second, err := Encrypt(kp.Public(), plaintext)
	if err != nil {
		t.Fatalf("second encrypt failed: %v", err)
	}

	if first.Ciphertext == second.Ciphertext {
		t.Error("two encryptions of the same plaintext produced identical ciphertext")
	}
	if first.IV == second.IV {
		t.Error("two encryptions of the same plaintext produced identical IV")
	}
	if first.WrappedKey == second.WrappedKey {
		t.Error("two encryptions of the same plaintext produced identical wrapped key")
	}
}

func TestDecryptWithWrongKeypairFails(t *testing.T) {
	alice, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}
	bob, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	field, err := Encrypt(alice.Public(), []byte("for alice only"))
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	_, err = bob.Decrypt(field)
	if !errors.Is(err, ErrDecryptionFailure) {
		t.Errorf("expected ErrDecryptionFailure, got %v", err)
	}
}

func TestDecryptTamperedFieldFails(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	field, err := Encrypt(kp.Public(), []byte("tamper with me"))
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	tampered := []Field{
		{Ciphertext: "!!not base64!!", WrappedKey: field.WrappedKey, IV: field.IV},
		{Ciphertext: field.Ciphertext, WrappedKey: "!!not base64!!", IV: field.IV},
		{Ciphertext: field.Ciphertext, WrappedKey: field.WrappedKey, IV: "!!not base64!!"},
		{Ciphertext: field.Ciphertext, WrappedKey: field.IV, IV: field.IV},
		{},
	}

	for i, f := range tampered {
		if _, err := kp.Decrypt(f); !errors.Is(err, ErrDecryptionFailure) {
			t.Errorf("case %d: expected ErrDecryptionFailure, got %v", i, err)
		}
	}
}

func TestPkcs7PadUnpad(t *testing.T) {
	for size := 0; size < 48; size++ {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}

		padded := pkcs7Pad(data, 16)
		if len(padded)%16 != 0 {
			t.Fatalf("size %d: padded length %d not a multiple of 16", size, len(padded))
		}

		unpadded, err := pkcs7Unpad(padded, 16)
		if err != nil {
			t.Fatalf("size %d: unpad failed: %v", size, err)
		}

		if len(unpadded) != size {
			t.Errorf("size %d: unpadded length %d", size, len(unpadded))
		}
	}
}

func TestPkcs7UnpadRejectsBadPadding(t *testing.T) {
	bad := [][]byte{
		nil,
		make([]byte, 15),
		append(make([]byte, 15), 0),
		append(make([]byte, 15), 17),
	}

	for i, data := range bad {
		if _, err := pkcs7Unpad(data, 16); err == nil {
			t.Errorf("case %d: expected unpad error", i)
		}
	}
}

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a) != 32 || len(b) != 32 {
		t.Fatal("expected 32 bytes")
	}

	if string(a) == string(b) {
		t.Error("two random draws produced identical bytes")
	}
}
