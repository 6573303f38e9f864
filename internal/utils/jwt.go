package utils

import (
	"errors"
	"fmt"
	"photo-share-server/internal/config"
	"photo-share-server/internal/consts"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidScope = errors.New("invalid scope for token")
	ErrInvalidToken = errors.New("invalid token")
)

// SessionClaims 用于访问/刷新令牌，Scope 区分两者用途
type SessionClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// EmailClaims 用于邮箱验证和密码重置链接，不携带 scope
type EmailClaims struct {
	jwt.RegisteredClaims
}

func getSecret() []byte {
	return []byte(config.Get().JWT.Secret)
}

// 签名算法已在配置加载时做过白名单校验，这里只做兜底
func signingMethod() jwt.SigningMethod {
	if config.Get().JWT.Algorithm == "HS512" {
		return jwt.SigningMethodHS512
	}
	return jwt.SigningMethodHS256
}

// GenerateAccessToken 生成访问令牌（默认 15 分钟）
func GenerateAccessToken(email string) (string, error) {
	cfg := config.Get()
	duration := time.Duration(cfg.JWT.AccessExpireMins) * time.Minute
	if duration <= 0 {
		duration = 15 * time.Minute
	}
	return generateSessionToken(email, consts.TokenScopeAccess, duration)
}

// GenerateRefreshToken 生成刷新令牌（默认 7 天）
func GenerateRefreshToken(email string) (string, error) {
	cfg := config.Get()
	duration := time.Duration(cfg.JWT.RefreshExpireHours) * time.Hour
	if duration <= 0 {
		duration = 7 * 24 * time.Hour
	}
	return generateSessionToken(email, consts.TokenScopeRefresh, duration)
}

func generateSessionToken(email, scope string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti 保证同一秒内签发的令牌也互不相同，刷新令牌轮换依赖这一点
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    "photo-share-server",
		},
	}
	token := jwt.NewWithClaims(signingMethod(), claims)
	return token.SignedString(getSecret())
}

// GenerateEmailToken 生成邮箱类令牌（验证邮箱 / 重置密码链接），固定 7 天
func GenerateEmailToken(email string) (string, error) {
	now := time.Now()
	claims := EmailClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(consts.EmailTokenTTL)),
			Issuer:    "photo-share-server",
		},
	}
	token := jwt.NewWithClaims(signingMethod(), claims)
	return token.SignedString(getSecret())
}

// ParseAccessToken 解析访问令牌，返回 subject(email)。
// scope 不是 access_token 时返回 ErrInvalidScope。
func ParseAccessToken(tokenString string) (string, error) {
	return parseSessionToken(tokenString, consts.TokenScopeAccess)
}

// ParseRefreshToken 解析刷新令牌，返回 subject(email)。
// scope 不是 refresh_token 时返回 ErrInvalidScope。
func ParseRefreshToken(tokenString string) (string, error) {
	return parseSessionToken(tokenString, consts.TokenScopeRefresh)
}

func parseSessionToken(tokenString, wantScope string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	})

	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	// 先判断 scope：拿错令牌种类和拿伪造令牌是两类错误
	if claims.Scope != wantScope {
		return "", ErrInvalidScope
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// ParseEmailToken 解析邮箱类令牌，返回 subject(email)
func ParseEmailToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &EmailClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	})

	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*EmailClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
