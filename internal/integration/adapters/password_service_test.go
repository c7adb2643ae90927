// Package adapters implements adapter interfaces from the application layer.
package adapters

import "testing"

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("expected hash to differ from the plain password")
	}

	if err := svc.VerifyPassword(hash, "correct horse battery"); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}
	if err := svc.VerifyPassword(hash, "wrong password"); err == nil {
		t.Error("expected wrong password to be rejected")
	}
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	svc := NewPasswordService()

	if err := svc.ValidatePasswordStrength("short"); err == nil {
		t.Error("expected short password to be rejected")
	}
	if err := svc.ValidatePasswordStrength("longenough"); err != nil {
		t.Errorf("expected 10-char password to pass, got %v", err)
	}
}
