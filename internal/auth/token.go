package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lumenarts/school-be/internal/models"
)

// TokenManager issues signed JWTs for authenticated accounts.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// Claims is the application view of a parsed token.
type Claims struct {
	AccountID int64
	IsAdmin   bool
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Generate issues a signed JWT carrying the account identifier and admin flag.
func (t *TokenManager) Generate(account models.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":     t.issuer,
		"sub":     strconv.FormatInt(account.ID, 10),
		"isAdmin": account.IsAdmin,
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates a token string and extracts its claims.
func (t *TokenManager) Parse(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tk.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	sub, _ := mc["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Claims{}, fmt.Errorf("invalid subject claim: %w", err)
	}
	isAdmin, _ := mc["isAdmin"].(bool)

	return Claims{AccountID: id, IsAdmin: isAdmin}, nil
}
