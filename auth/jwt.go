package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var ErrInvalidCredential = errors.New("invalid credential")

// Credential is the read contract of the external authentication system:
// an opaque bearer token plus the role and identity it vouches for. This
// package never touches passwords or account records; it only mints and
// verifies the token the rest of the system passes around.
type Credential struct {
	Token    string
	Role     string
	Identity string
	Name     string
}

// Mint signs a bearer token for an authenticated principal.
func Mint(identity, name, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  identity,
		"name": name,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify parses a bearer token and returns the credential it carries.
func Verify(tokenString, secret string) (Credential, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Credential{}, ErrInvalidCredential
	}

	cred := Credential{Token: tokenString}
	if sub, ok := claims["sub"].(string); ok {
		cred.Identity = sub
	}
	if name, ok := claims["name"].(string); ok {
		cred.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		cred.Role = role
	}
	if cred.Identity == "" || (cred.Role != RoleTeacher && cred.Role != RoleStudent) {
		return Credential{}, ErrInvalidCredential
	}
	return cred, nil
}
