package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("admin-uid-1", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.FirebaseUID != "admin-uid-1" {
		t.Errorf("FirebaseUID = %q, want admin-uid-1", claims.FirebaseUID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT("uid", "user@example.com", "buyer")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateJWT(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateJWT("uid", "user@example.com", "buyer"); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}
	if _, err := ValidateJWT("whatever"); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}
}
