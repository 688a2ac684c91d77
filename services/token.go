package services

import (
	"errors"
	"time"

	"sportmate/config"
	"sportmate/models"

	"github.com/dgrijalva/jwt-go"
)

// TokenClaims JWT 里携带的用户信息
type TokenClaims struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"username"`
	jwt.StandardClaims
}

// GenerateToken 为用户生成 JWT Token，有效期 72 小时
func GenerateToken(user models.User) (string, error) {
	claims := TokenClaims{
		UserID:   user.ID,
		UserName: user.UserName,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(72 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

// ParseToken 校验并解析 Token
func ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return config.JWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
