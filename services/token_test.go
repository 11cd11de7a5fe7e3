package services

import (
	"strings"
	"testing"

	apperrors "workzen/errors"

	"github.com/dgrijalva/jwt-go"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 7, Role: "EMPLOYEE"}, 5)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, role, err := GetUserIDFromToken(token)
	if err != nil {
		t.Fatalf("GetUserIDFromToken: %v", err)
	}
	if id != 7 || role != "EMPLOYEE" {
		t.Errorf("claims = (%d, %q), want (7, EMPLOYEE)", id, role)
	}
}

func TestTokenForgedSignatureRejected(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 1, Role: "ADMIN"}, 5)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parts := strings.Split(token, ".")
	forged := parts[0] + "." + parts[1] + ".not-a-signature"

	_, _, err = GetUserIDFromToken(forged)
	if err == nil {
		t.Fatal("token with a forged signature was accepted")
	}
	if !apperrors.IsAppError(err) {
		t.Fatalf("expected an AppError, got %T: %v", err, err)
	}
	if code := apperrors.GetAppError(err).Code; code != apperrors.ErrCodeInvalidToken {
		t.Errorf("error code = %s, want %s", code, apperrors.ErrCodeInvalidToken)
	}
}

func TestTokenTamperedPayloadRejected(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 42, Role: "EMPLOYEE"}, 5)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Splice in a payload claiming ADMIN while keeping the original signature.
	parts := strings.Split(token, ".")
	payload := jwt.EncodeSegment([]byte(`{"userinfo":{"userid":42,"role":"ADMIN"}}`))
	tampered := parts[0] + "." + payload + "." + parts[2]

	if _, _, err := GetUserIDFromToken(tampered); err == nil {
		t.Fatal("token with a tampered payload was accepted")
	}
}

func TestTokenExpiredRejected(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 3, Role: "EMPLOYEE"}, -5)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, _, err := GetUserIDFromToken(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}
