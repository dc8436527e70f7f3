package util

import (
	"strings"
	"testing"
	"time"

	"adaptive_learning_backend/internal/model"
)

// Logout writes the revocation key and AuthMiddleware reads it back, so the
// key derivation has to stay stable and live here where both sides import it.
func TestRevokedTokenKey(t *testing.T) {
	key := RevokedTokenKey("abc.def.ghi")
	if key != "revoked_token:abc.def.ghi" {
		t.Errorf("RevokedTokenKey() = %q", key)
	}
	if !strings.HasPrefix(key, "revoked_token:") {
		t.Errorf("key %q lost its prefix", key)
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 42},
		Email:     "siswa@sekolah.local",
		Role:      model.Siswa,
	}

	token, err := GenerateJWT(user, "test-secret-test-secret-test-secr", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT(): %v", err)
	}

	claims, err := ParseJWT(token, "test-secret-test-secret-test-secr")
	if err != nil {
		t.Fatalf("ParseJWT(): %v", err)
	}
	if claims.UserID != 42 || claims.Role != model.Siswa || claims.Email != user.Email {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Errorf("token expiry not set in the future: %v", claims.ExpiresAt)
	}

	if _, err := ParseJWT(token, "wrong-secret"); err == nil {
		t.Error("ParseJWT accepted a token signed with another secret")
	}
}
