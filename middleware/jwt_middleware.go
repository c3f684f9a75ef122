// middleware/jwt_middleware.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petopia/petopia_backend/config"
	"github.com/petopia/petopia_backend/models"
)

// TokenValidity is the absolute lifetime of a session token.
const TokenValidity = 10 * 24 * time.Hour

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// GenerateJWT mints a signed session token for a user, expiring
// TokenValidity from now.
func GenerateJWT(userID, secret string) (string, error) {
	now := time.Now()
	claims := &JwtCustomClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenValidity).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a token's signature and expiry and returns its claims.
func ParseToken(tokenString, secret string) (*JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// JWTMiddleware authenticates requests with a Bearer token. Beyond the
// signature and expiry check it confirms the user still exists, so
// tokens for deleted accounts stop working. The resolved user id is
// stored in the context under "userId"; downstream handlers trust it
// without re-validating.
func JWTMiddleware(secret string, db *mongo.Database) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(echo.HeaderAuthorization)
			if authorization == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authorization token missing"})
			}

			parts := strings.SplitN(authorization, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid authorization format"})
			}

			claims, err := ParseToken(parts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Request is not authorized"})
			}

			userID, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Request is not authorized"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			err = db.Collection(config.UsersCollection).
				FindOne(ctx, bson.M{"_id": userID}).Err()
			if err != nil {
				if err == mongo.ErrNoDocuments {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "User not found"})
				}
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Request is not authorized"})
			}

			c.Set("userId", claims.UserID)
			return next(c)
		}
	}
}

// GetUserIDFromContext returns the authenticated user id set by
// JWTMiddleware, or an empty string on unauthenticated routes.
func GetUserIDFromContext(c echo.Context) string {
	if userID, ok := c.Get("userId").(string); ok {
		return userID
	}
	return ""
}
