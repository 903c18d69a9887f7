package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject is the caller identity extracted from a verified credential. Guards
// attach it to the request context; handlers read it back with SubjectFrom.
type Subject struct {
	UID   string
	Email string
}

// TokenVerifier validates a bearer credential and extracts the caller's
// subject identity. The production implementation delegates to the external
// token-issuing service; tests substitute a stub.
type TokenVerifier interface {
	Verify(token string) (Subject, error)
}

// RSATokenVerifier verifies tokens against the RSA public key published by
// the identity service. The key is fetched on every verification; no result
// is cached across requests.
type RSATokenVerifier struct {
	publicKeyURL string
	httpClient   *http.Client
}

func NewRSATokenVerifier(publicKeyURL string) *RSATokenVerifier {
	return &RSATokenVerifier{
		publicKeyURL: publicKeyURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify parses and validates the JWT and pulls the uid and email claims.
func (v *RSATokenVerifier) Verify(tokenString string) (Subject, error) {
	publicKey, err := v.fetchPublicKey()
	if err != nil {
		return Subject{}, fmt.Errorf("failed to get public key: %w", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return Subject{}, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Subject{}, fmt.Errorf("invalid JWT token")
	}

	uid, _ := claims["uid"].(string)
	if uid == "" {
		return Subject{}, fmt.Errorf("uid claim missing in token")
	}
	email, _ := claims["email"].(string)

	return Subject{UID: uid, Email: email}, nil
}

// fetchPublicKey fetches the PEM-encoded RSA public key from the identity
// service.
func (v *RSATokenVerifier) fetchPublicKey() (*rsa.PublicKey, error) {
	resp, err := v.httpClient.Get(v.publicKeyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// The identity service wraps the key in a JSON object with a "key" field.
	keyResponse := struct {
		Key string `json:"key"`
	}{}
	if err := json.Unmarshal(body, &keyResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal public key response: %w", err)
	}

	block, _ := pem.Decode([]byte(keyResponse.Key))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("failed to decode PEM block containing public key")
	}

	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPubKey, ok := pubKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}

	return rsaPubKey, nil
}
