// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the HTTP pipeline. The [TokenCodec] is built once at startup from the
// configured secret and is read-only afterwards, so it is safe to share
// across concurrent requests.
package sec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretKeyLength is the shortest raw secret accepted for HMAC signing (HS256).
const MinSecretKeyLength = 32

// # Token Errors

var (
	// ErrSigning is returned when the key material cannot be used for HMAC signing.
	ErrSigning = errors.New("sec: malformed signing key")

	// ErrTokenExpired is returned when the token expiration is not in the future.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrInvalidSignature is returned when the signature does not verify against the key.
	ErrInvalidSignature = errors.New("sec: invalid token signature")

	// ErrMalformedToken is returned for structurally corrupt tokens.
	ErrMalformedToken = errors.New("sec: malformed token")
)

// Claims is the payload embedded inside a signed token.
//
// Access tokens carry {sub, username, roles, iat, exp}. Refresh tokens are
// signed with registered claims only, so decoding one yields an empty
// Username and nil Roles.
type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenCodec encodes, signs, and verifies HMAC JWTs.
type TokenCodec struct {
	secretKey                     string
	accessTokenExpirationMinutes  int
	refreshTokenExpirationMinutes int
}

// NewTokenCodec creates a new TokenCodec.
//
// It fails fast when the secret is too short for HS256 or a lifetime is not positive.
func NewTokenCodec(secretKey string, accessTokenExpirationMinutes, refreshTokenExpirationMinutes int) (*TokenCodec, error) {
	if len(secretKey) < MinSecretKeyLength {
		return nil, fmt.Errorf("%w: secret must be at least %d bytes", ErrSigning, MinSecretKeyLength)
	}
	if accessTokenExpirationMinutes <= 0 || refreshTokenExpirationMinutes <= 0 {
		return nil, errors.New("sec: token lifetimes must be positive")
	}

	return &TokenCodec{
		secretKey:                     secretKey,
		accessTokenExpirationMinutes:  accessTokenExpirationMinutes,
		refreshTokenExpirationMinutes: refreshTokenExpirationMinutes,
	}, nil
}

// # Key Handling

// EncodeKey returns the base64 encoding of the raw secret used as signing material.
func EncodeKey(rawKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(rawKey))
}

// EncodedSecretKey returns the configured secret in its encoded form.
func (codec *TokenCodec) EncodedSecretKey() string {
	return EncodeKey(codec.secretKey)
}

// AccessTokenExpiry returns the expiration timestamp for an access token issued now.
func (codec *TokenCodec) AccessTokenExpiry() time.Time {
	return ComputeExpiry(codec.accessTokenExpirationMinutes)
}

// RefreshTokenExpiry returns the expiration timestamp for a refresh token issued now.
func (codec *TokenCodec) RefreshTokenExpiry() time.Time {
	return ComputeExpiry(codec.refreshTokenExpirationMinutes)
}

// ComputeExpiry returns the current time plus the given number of minutes.
func ComputeExpiry(minutes int) time.Time {
	return time.Now().Add(time.Duration(minutes) * time.Minute)
}

// # Issuing

// IssueAccessToken signs a token carrying the username and roles of claims.
//
// Registered fields on the input are replaced by subject, issued-at(now) and expiresAt.
func (codec *TokenCodec) IssueAccessToken(claims Claims, subject string, expiresAt time.Time, encodedKey string) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return sign(claims, encodedKey)
}

// IssueRefreshToken signs a token carrying only subject, issued-at and expiration.
func (codec *TokenCodec) IssueRefreshToken(subject string, expiresAt time.Time, encodedKey string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return sign(claims, encodedKey)
}

func sign(claims jwt.Claims, encodedKey string) (string, error) {
	key, method, err := signingKey(encodedKey)
	if err != nil {
		return "", err
	}

	signedToken, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigning, err)
	}

	return signedToken, nil
}

// # Verification

// DecodeAndVerify parses token, verifies its signature against encodedKey and
// checks that its expiration is strictly in the future.
//
// Failures are reported as [ErrInvalidSignature], [ErrTokenExpired],
// [ErrMalformedToken] or [ErrSigning].
func (codec *TokenCodec) DecodeAndVerify(token, encodedKey string) (*Claims, error) {
	key, _, err := signingKey(encodedKey)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(parsed *jwt.Token) (any, error) {
		if _, ok := parsed.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidSignature, parsed.Header["alg"])
		}
		return key, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return nil, classify(token, err)
	}

	return claims, nil
}

// classify maps golang-jwt errors onto the token error taxonomy.
//
// An expired token reports [ErrTokenExpired] even when its signature is also
// wrong; both outcomes reject the token.
func classify(token string, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrInvalidSignature):
		if expiredUnverified(token) {
			return fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
}

func expiredUnverified(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !time.Now().Before(claims.ExpiresAt.Time)
}

// signingKey decodes the encoded key and picks the HMAC strength its length supports.
func signingKey(encodedKey string) ([]byte, jwt.SigningMethod, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSigning, err)
	}

	switch {
	case len(key) >= 64:
		return key, jwt.SigningMethodHS512, nil
	case len(key) >= 48:
		return key, jwt.SigningMethodHS384, nil
	case len(key) >= MinSecretKeyLength:
		return key, jwt.SigningMethodHS256, nil
	default:
		return nil, nil, fmt.Errorf("%w: key is %d bytes, need at least %d", ErrSigning, len(key), MinSecretKeyLength)
	}
}
