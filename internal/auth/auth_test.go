package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHS256Verifier(t *testing.T) {
	ctx := context.Background()
	v, err := NewHS256Verifier("top-secret", "codinho", "")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		token, err := v.Issue("student-42", time.Hour)
		require.NoError(t, err)

		user, err := v.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "student-42", user.ID)
		assert.Greater(t, user.ExpiresAt, time.Now().Unix())
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := v.Issue("student-42", -time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewHS256Verifier("another-secret", "codinho", "")
		require.NoError(t, err)
		token, err := other.Issue("student-42", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewHS256Verifier("top-secret", "someone-else", "")
		require.NoError(t, err)
		token, err := other.Issue("student-42", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := v.Issue("", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrMissingSubject)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify(ctx, "not.a.jwt")
		assert.Error(t, err)
	})
}

func TestNewHS256Verifier_RequiresSecret(t *testing.T) {
	_, err := NewHS256Verifier("", "", "")
	assert.Error(t, err)
}

func TestHS256Verifier_Audience(t *testing.T) {
	ctx := context.Background()
	v, err := NewHS256Verifier("top-secret", "", "codinho-api")
	require.NoError(t, err)

	token, err := v.Issue("u1", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(ctx, token)
	require.NoError(t, err)

	noAudience, err := NewHS256Verifier("top-secret", "", "")
	require.NoError(t, err)
	token, err = noAudience.Issue("u1", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(ctx, token)
	assert.Error(t, err)
}

func TestJWKSVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	jwks := map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": "test-key",
			"use": "sig",
			"alg": "RS256",
			"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwks)
	}))
	defer srv.Close()

	v, err := NewJWKSVerifier(srv.URL, "https://auth.codinho.dev", "")
	require.NoError(t, err)
	defer v.Close()

	sign := func(claims jwt.RegisteredClaims) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
		tok.Header["kid"] = "test-key"
		signed, err := tok.SignedString(key)
		require.NoError(t, err)
		return signed
	}

	user, err := v.Verify(context.Background(), sign(jwt.RegisteredClaims{
		Subject:   "student-7",
		Issuer:    "https://auth.codinho.dev",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}))
	require.NoError(t, err)
	assert.Equal(t, "student-7", user.ID)

	_, err = v.Verify(context.Background(), sign(jwt.RegisteredClaims{
		Subject: "student-7",
		Issuer:  "https://evil.example.com",
	}))
	assert.Error(t, err)
}

func TestNewVerifier(t *testing.T) {
	v, err := NewVerifier(Config{Mode: ModeNoop})
	require.NoError(t, err)
	assert.IsType(t, NoopVerifier{}, v)

	v, err = NewVerifier(Config{Mode: ModeHS256, Secret: "s"})
	require.NoError(t, err)
	assert.IsType(t, &HS256Verifier{}, v)

	_, err = NewVerifier(Config{Mode: ModeJWKS})
	assert.Error(t, err)

	_, err = NewVerifier(Config{Mode: "basic"})
	assert.Error(t, err)
}

func TestAuthenticator(t *testing.T) {
	var failures int
	authn := NewAuthenticator(NoopVerifier{}, func(*http.Request, error) { failures++ })

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("user=" + UserIDFromContext(r.Context())))
	})

	tests := []struct {
		name       string
		required   bool
		header     string
		wantStatus int
		wantBody   string
	}{
		{"required with token", true, "Bearer u1", http.StatusOK, "user=u1"},
		{"required without token", true, "", http.StatusUnauthorized, ""},
		{"required malformed", true, "Token u1", http.StatusUnauthorized, ""},
		{"optional without token", false, "", http.StatusOK, "user="},
		{"optional with token", false, "bearer u2", http.StatusOK, "user=u2"},
		{"optional malformed", false, "Bearer   ", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := authn.Optional()
			if tt.required {
				mw = authn.Required()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/katas", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			mw(echo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}

	assert.Equal(t, 3, failures)
}

func TestAuthenticator_RejectsInvalidJWT(t *testing.T) {
	v, err := NewHS256Verifier("s", "", "")
	require.NoError(t, err)
	authn := NewAuthenticator(v, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()

	authn.Optional()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserFromContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, UserIDFromContext(context.Background()))

	ctx := WithUser(context.Background(), User{ID: "u9"})
	assert.Equal(t, "u9", UserIDFromContext(ctx))
}
