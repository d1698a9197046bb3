// Package auth signs and verifies the tokens the API accepts: HS256 invite
// links issued by this service and RS256 session tokens issued by Clerk.
package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const inviteIssuer = "inkhouse-invite"

// InviteGrant is what a valid invite link entitles its holder to.
type InviteGrant struct {
	WorkspaceID string
	Role        string
	ExpiresAt   time.Time
}

type inviteClaims struct {
	jwt.RegisteredClaims
	WorkspaceID string `json:"workspace_id"`
	Role        string `json:"role"`
}

// InviteSigner issues and validates signed workspace invite links.
type InviteSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewInviteSigner creates a signer. secret must be at least 32 characters
// for HS256 security; config validation enforces this.
func NewInviteSigner(secret string, ttl time.Duration) *InviteSigner {
	return &InviteSigner{secret: []byte(secret), ttl: ttl}
}

// Sign creates an invite token for the workspace and role.
func (s *InviteSigner) Sign(workspaceID, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := inviteClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    inviteIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		WorkspaceID: workspaceID,
		Role:        role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign invite: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses an invite token and returns its grant.
func (s *InviteSigner) Verify(token string) (InviteGrant, error) {
	if token == "" {
		return InviteGrant{}, errors.New("token is empty")
	}

	parsed, err := jwt.ParseWithClaims(token, &inviteClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(inviteIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return InviteGrant{}, fmt.Errorf("parse invite: %w", err)
	}

	claims, ok := parsed.Claims.(*inviteClaims)
	if !ok || !parsed.Valid || claims.WorkspaceID == "" {
		return InviteGrant{}, errors.New("invalid invite claims")
	}

	return InviteGrant{
		WorkspaceID: claims.WorkspaceID,
		Role:        claims.Role,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// SessionVerifier validates Clerk session tokens with the instance's
// PEM-encoded public key (networkless verification).
type SessionVerifier struct {
	key *rsa.PublicKey
}

// NewSessionVerifier parses pemKey. Escaped "\n" sequences, as found in
// single-line env values, are accepted.
func NewSessionVerifier(pemKey string) (*SessionVerifier, error) {
	pemKey = strings.ReplaceAll(pemKey, `\n`, "\n")

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("parse session key: %w", err)
	}
	return &SessionVerifier{key: key}, nil
}

// Verify checks a session token and returns its subject (the Clerk user id).
func (v *SessionVerifier) Verify(token string) (string, error) {
	if token == "" {
		return "", errors.New("token is empty")
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5*time.Second),
	)
	if err != nil {
		return "", fmt.Errorf("parse session: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid session claims")
	}

	return claims.Subject, nil
}
