package middleware

import (
	"net/http"
	"strings"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const adminClaimsKey = "adminClaims"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

// AdminJWT guards back-office reads with an HMAC-signed bearer token.
// With an empty secret the routes stay open.
func AdminJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims := jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), &claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// AdminClaims returns the verified token claims, if any.
func AdminClaims(c *gin.Context) (jwt.RegisteredClaims, bool) {
	v, ok := c.Get(adminClaimsKey)
	if !ok {
		return jwt.RegisteredClaims{}, false
	}
	claims, ok := v.(jwt.RegisteredClaims)
	return claims, ok
}
