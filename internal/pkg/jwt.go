package pkg

import (
	"errors"
	"time"

	"mindmeter/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims JWT 自定义声明，sub 为邮箱或 anonymous_<id>
type Claims struct {
	UserID    uint   `json:"userId"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Anonymous bool   `json:"anonymous"`
	jwt.RegisteredClaims
}

// TokenUser 签发令牌所需的用户信息
type TokenUser struct {
	Subject   string
	UserID    uint
	Role      string
	FirstName string
	LastName  string
	Anonymous bool
}

// GenerateAccessToken 生成访问令牌
func GenerateAccessToken(u TokenUser) (string, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(config.Conf.JWT.ExpireTime) * time.Hour)

	claims := &Claims{
		UserID:    u.UserID,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Anonymous: u.Anonymous,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Subject,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.JWT.Secret))
}

// ParseAccessToken 解析并验证访问令牌
func ParseAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.Conf.JWT.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Subject != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
