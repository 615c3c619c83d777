package middleware

import (
	"fmt"
	"strings"

	"github.com/gigconnect/marketplace-api/internal/apierrors"
	"github.com/gigconnect/marketplace-api/internal/auth"
	"github.com/gigconnect/marketplace-api/internal/constants"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// identityClaims mirrors the claims the identity provider puts in its
// tokens. The user id travels in the registered "sub" claim.
type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// RequireAuth verifies the bearer token issued by the external identity
// provider and exposes the verified identity to handlers. The token is
// only mined for who the caller is; issuing and revoking tokens is the
// provider's responsibility.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			apierrors.Unauthorized(c, "Missing bearer token")
			c.Abort()
			return
		}

		claims := &identityClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIdentity, auth.Identity{
			UID:   claims.Subject,
			Email: claims.Email,
			Name:  claims.Name,
		})
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from the context
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return auth.Identity{}, false
	}

	ident, ok := v.(auth.Identity)
	return ident, ok
}
