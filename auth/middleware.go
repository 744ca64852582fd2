package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
)

const credentialKey = "auth.credential"

// Middleware verifies the Authorization header and stores the credential in
// the request context. Absence or a bad token fails the request with 401;
// no operation behind this middleware runs without a credential.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   sessions.CodeUnauthorized,
				"message": "missing bearer credential",
			})
			return
		}

		cred, err := Verify(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   sessions.CodeUnauthorized,
				"message": "invalid or expired credential",
			})
			return
		}

		c.Set(credentialKey, cred)
		c.Next()
	}
}

// RequireRole guards an operation that only one role may perform. The wrong
// role is an authorization failure, same as a missing credential.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cred, ok := CredentialFrom(c)
		if !ok || cred.Role != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   sessions.CodeUnauthorized,
				"message": "operation requires role " + role,
			})
			return
		}
		c.Next()
	}
}

// CredentialFrom returns the verified credential stored by Middleware.
func CredentialFrom(c *gin.Context) (Credential, bool) {
	value, exists := c.Get(credentialKey)
	if !exists {
		return Credential{}, false
	}
	cred, ok := value.(Credential)
	return cred, ok
}
