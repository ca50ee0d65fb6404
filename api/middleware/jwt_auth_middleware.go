package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pinora-app/pinora-backend/api/controller"
)

// JwtCustomClaims 会话服务签发的访问令牌
type JwtCustomClaims struct {
	UserID string `json:"_id"`
	jwt.RegisteredClaims
}

// JwtAuthMiddleware 校验 Bearer 令牌并把用户ID写入 controller.UserIDKey
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
			return
		}

		userID, err := ExtractIDFromToken(strings.TrimSpace(token), secret)
		if err != nil {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			return
		}

		c.Set(controller.UserIDKey, userID)
		c.Next()
	}
}

func ExtractIDFromToken(requestToken string, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("token secret not configured")
	}

	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(requestToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}

	return claims.UserID, nil
}

// CreateAccessToken 签发访问令牌，供测试与本地调试使用
func CreateAccessToken(userID, secret string, claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &JwtCustomClaims{
		UserID:           userID,
		RegisteredClaims: claims,
	})
	return token.SignedString([]byte(secret))
}
