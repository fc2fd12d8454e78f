package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ModeratorClaims are the claims the moderation dashboard puts into its
// bearer tokens. Identity itself lives in the external auth service; this
// guard only checks that the token was signed with our shared secret and
// carries the moderator role.
type ModeratorClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

const RoleModerator = "moderator"

// SignModeratorToken issues a token for tests and local tooling.
func SignModeratorToken(secret, userID string, ttl time.Duration) (string, error) {
	claims := ModeratorClaims{
		UserID: userID,
		Role:   RoleModerator,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// RequireModerator rejects requests without a valid moderator bearer token.
func RequireModerator(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Moderator authorization required",
			})
			return
		}
		if claims.Role != RoleModerator {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Moderator role required",
			})
			return
		}

		c.Set("moderator_id", claims.UserID)
		c.Next()
	}
}

func parseBearer(header, secret string) (*ModeratorClaims, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, errors.New("missing bearer token")
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if tokenStr == "" {
		return nil, errors.New("empty token")
	}

	token, err := jwtlib.ParseWithClaims(tokenStr, &ModeratorClaims{}, func(t *jwtlib.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*ModeratorClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
