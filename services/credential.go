package services

import (
	"fmt"
	"time"

	"coursecraft/config"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// CredentialService hashes passwords and issues/verifies bearer tokens. The
// signing secret and bcrypt cost come from the config struct handed to the
// constructor; nothing here reads globals.
type CredentialService struct {
	secret    []byte
	saltRound int
}

func NewCredentialService(cfg *config.Config) *CredentialService {
	return &CredentialService{
		secret:    []byte(cfg.JWTKey),
		saltRound: cfg.SaltRound,
	}
}

// HashPassword returns a salted bcrypt hash of the plaintext
func (s *CredentialService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash
func (s *CredentialService) VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// IssueToken generates a JWT for the user, valid for 24 hours
func (s *CredentialService) IssueToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken parses and validates a token, returning the user id it carries
func (s *CredentialService) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, unauthorized("Invalid token payload")
	}

	// JWT numeric claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, unauthorized("Invalid token payload")
	}

	return uint(userID), nil
}
