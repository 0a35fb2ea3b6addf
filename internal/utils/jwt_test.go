// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmarks/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	email := "user@example.com"
	duration := 15 * time.Minute
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, email, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Fatal("expected non-nil jwt.Token object")
	}
	if token.UserID != userID || token.Email != email {
		t.Errorf("expected user %d/%s, got %d/%s", userID, email, token.UserID, token.Email)
	}

	claims, ok := token.Token.Claims.(*models.Claims)
	if !ok {
		t.Fatal("could not cast claims to models.Claims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if claims.Email != email {
		t.Errorf("expected email claim %s, got %s", email, claims.Email)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != duration {
		t.Errorf("expected lifetime %s, got %s", duration, got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, "a@b.c", tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, userID, "vlad@gmail.com", 5*time.Minute, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
	if parsedToken.Email != "vlad@gmail.com" {
		t.Errorf("expected email claim, got %q", parsedToken.Email)
	}
	if id, err := parsedToken.GetUserID(); err != nil || id != userID {
		t.Errorf("GetUserID() = %d, %v", id, err)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", 1, "a@b.c", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", 1, "a@b.c", -time.Minute, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", 1, "a@b.c", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestValidateAndParseJWTToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := &models.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(unsigned, "key", "iss"); err == nil {
		t.Error("expected error for unsigned token, got nil")
	}
}

func TestValidateAndParseJWTToken_NonNumericSubject(t *testing.T) {
	claims := &models.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected error for non numeric subject, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "extra spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got token %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
