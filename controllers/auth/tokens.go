package authControllers

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	defaultAccessExpiry  = time.Hour
	defaultRefreshExpiry = 30 * 24 * time.Hour
)

var ErrWrongTokenType = errors.New("wrong token type")

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Claims struct {
	UserID string
	Email  string
	Role   models.Role
	Type   string
}

// Access and refresh tokens are signed with distinct secrets, so a
// token of one type can never verify against the other's key even
// before the type claim is checked.
func secretFor(tokenType string) []byte {
	if tokenType == TokenTypeRefresh {
		return []byte(os.Getenv("JWT_REFRESH_SECRET"))
	}
	return []byte(os.Getenv("JWT_SECRET"))
}

func expiryFor(tokenType string) time.Duration {
	envVar, fallback := "JWT_ACCESS_EXPIRY", defaultAccessExpiry
	if tokenType == TokenTypeRefresh {
		envVar, fallback = "JWT_REFRESH_EXPIRY", defaultRefreshExpiry
	}
	if raw := os.Getenv(envVar); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
	}
	return fallback
}

// SignToken mints a JWT of the given type for a user.
func SignToken(user models.User, tokenType string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"role":   string(user.Role),
		"type":   tokenType,
		"iat":    now.Unix(),
		"exp":    now.Add(expiryFor(tokenType)).Unix(),
	})
	return token.SignedString(secretFor(tokenType))
}

// IssueTokenPair mints the access/refresh pair returned on login,
// registration and Google sign-in.
func IssueTokenPair(user models.User) (TokenPair, error) {
	access, err := SignToken(user, TokenTypeAccess)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := SignToken(user, TokenTypeRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyToken checks signature and the type claim. A validly signed
// token of the wrong type is rejected with ErrWrongTokenType.
func VerifyToken(raw, wantType string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secretFor(wantType), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if tokenType, _ := mapClaims["type"].(string); tokenType != wantType {
		return nil, ErrWrongTokenType
	}

	userID, _ := mapClaims["userId"].(string)
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	return &Claims{
		UserID: userID,
		Email:  email,
		Role:   models.ParseRole(role),
		Type:   wantType,
	}, nil
}
