package middleware

import (
	"net/http"
	"strings"

	"axonet/internal/apierror"
	"axonet/internal/model"
	"axonet/internal/repository"
	"axonet/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
	ActorKey  = "actor"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route and resolves
// the acting user. The account is re-checked against the database so that a
// deactivated account is rejected even while its token is still unexpired.
func JWTAuth(secret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.NewKind("unauthenticated", "Authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.NewKind("unauthenticated", "Invalid or expired token"))
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.NewKind("unauthenticated", "Invalid or expired token"))
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil || !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.NewKind("unauthenticated", "Account is not active"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(ActorKey, service.Actor{ID: user.ID, Email: user.Email, Role: user.Role})
		c.Next()
	}
}

// RequireRole rejects requests whose resolved role is not in the allowed
// list. A "both" account satisfies a buyer or supplier requirement.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		actor, ok := c.MustGet(ActorKey).(service.Actor)
		if !ok || !roleAllowed(allowed, actor.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.NewKind("forbidden", "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

func roleAllowed(allowed map[string]bool, role string) bool {
	if allowed[role] {
		return true
	}
	if allowed[model.RoleBuyer] && model.CanBuy(role) {
		return true
	}
	if allowed[model.RoleSupplier] && model.CanSupply(role) {
		return true
	}
	return false
}

// GetActor retrieves the resolved acting identity from the Gin context.
func GetActor(c *gin.Context) service.Actor {
	actor, _ := c.MustGet(ActorKey).(service.Actor)
	return actor
}
