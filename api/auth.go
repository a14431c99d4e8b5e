package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type accessClaims struct {
	Subject   string
	Role      string
	ExpiresAt int64
}

func parseAccessToken(jwtStr string, secret string) (*accessClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	out := accessClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = int64(exp)
	}

	// tokens without an expiry are rejected
	if time.Now().UTC().Unix() > out.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &out, nil
}

func (m ApiHandler) requireAdmin(c *gin.Context) {
	if m.JwtSecret == "" {
		returnErrorJsonCode(fmt.Errorf("admin endpoints are disabled - no jwt secret configured"), c, 403)
		return
	}

	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
		return
	}

	claims, err := parseAccessToken(strings.TrimPrefix(authHeader, "Bearer "), m.JwtSecret)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	if claims.Role != "admin" {
		returnErrorJsonCode(fmt.Errorf("admin role required"), c, 403)
		return
	}

	c.Next()
}
