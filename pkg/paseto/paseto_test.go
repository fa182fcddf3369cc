package pasetotoken

import (
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

const (
	testIssuer   = "idp.govently.local"
	testAudience = "govently_backend"
)

// mintLocal builds a token the way the identity provider would; this
// package only ever verifies.
func mintLocal(t *testing.T, keys Keys, userID uuid.UUID, typ string, expiresAt time.Time) string {
	t.Helper()

	now := time.Now()
	tok := paseto.NewToken()
	tok.SetIssuer(testIssuer)
	tok.SetAudience(testAudience)
	tok.SetJti(uuid.NewString())
	tok.SetSubject(userID.String())
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(expiresAt)
	tok.SetString("typ", typ)
	tok.SetString("uid", userID.String())

	return tok.V4Encrypt(*keys.Symmetric, nil)
}

func TestVerifyLocalToken(t *testing.T) {
	keys := NewLocalKeys()
	mgr, err := New(Config{Mode: ModeLocal, Issuer: testIssuer, Audience: testAudience}, keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	userID := uuid.New()
	raw := mintLocal(t, keys, userID, "access", time.Now().Add(10*time.Minute))

	claims, err := mgr.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.Subject != userID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, userID.String())
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	keys := NewLocalKeys()
	mgr, err := New(Config{Mode: ModeLocal, Issuer: testIssuer, Audience: testAudience}, keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw := mintLocal(t, keys, uuid.New(), "access", time.Now().Add(-time.Minute))
	if _, err := mgr.Verify(raw); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	mgr, err := New(Config{Mode: ModeLocal, Issuer: testIssuer, Audience: testAudience}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw := mintLocal(t, NewLocalKeys(), uuid.New(), "access", time.Now().Add(10*time.Minute))
	if _, err := mgr.Verify(raw); err == nil {
		t.Fatal("token minted with a different key verified")
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	keys := NewLocalKeys()
	mgr, err := New(Config{Mode: ModeLocal, Issuer: testIssuer, Audience: "other_service"}, keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw := mintLocal(t, keys, uuid.New(), "access", time.Now().Add(10*time.Minute))
	if _, err := mgr.Verify(raw); err == nil {
		t.Fatal("token for another audience verified")
	}
}

func TestVerifyPublicToken(t *testing.T) {
	keys := NewPublicKeys()
	mgr, err := New(Config{Mode: ModePublic, Issuer: testIssuer, Audience: testAudience}, keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	now := time.Now()
	userID := uuid.New()
	tok := paseto.NewToken()
	tok.SetIssuer(testIssuer)
	tok.SetAudience(testAudience)
	tok.SetJti(uuid.NewString())
	tok.SetSubject(userID.String())
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(now.Add(10 * time.Minute))
	tok.SetString("typ", "access")
	tok.SetString("uid", userID.String())

	claims, err := mgr.Verify(tok.V4Sign(*keys.Secret, nil))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
}

func TestNewRejectsModeMismatch(t *testing.T) {
	if _, err := New(Config{Mode: ModePublic, Issuer: testIssuer, Audience: testAudience}, NewLocalKeys()); err == nil {
		t.Fatal("mode mismatch accepted")
	}
}
