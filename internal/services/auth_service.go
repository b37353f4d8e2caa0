package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"vtc-booking/internal/domain"
	"vtc-booking/internal/domain/models"
	"vtc-booking/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidity = 24 * time.Hour

// Principal identifies the authenticated operator carried by a credential.
type Principal struct {
	ID       int64
	Username string
}

// AuthService creates the single operator account, exchanges credentials
// for a signed bearer token and verifies tokens presented on admin calls.
type AuthService struct {
	Repo   repositories.AdminRepo
	Secret []byte

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Bootstrap creates the operator account. It refuses to run once any
// principal exists, which makes it safe to leave routable.
func (s AuthService) Bootstrap(username, password, email string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, domain.ValidationError{Fields: []string{"username and password are required"}}
	}

	n, err := s.Repo.Count()
	if err != nil {
		return 0, domain.PersistenceError{Op: "count admins", Err: err}
	}
	if n > 0 {
		return 0, domain.ConflictError{Resource: "admin", Msg: "an administrator already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.Repo.Create(username, string(hash), email)
	if err != nil {
		return 0, domain.PersistenceError{Op: "create admin", Err: err}
	}
	return id, nil
}

// Login verifies the credentials and issues a 24-hour HS256 token carrying
// the principal id and username.
func (s AuthService) Login(username, password string) (string, models.AdminUser, error) {
	if username == "" || password == "" {
		return "", models.AdminUser{}, domain.ValidationError{Fields: []string{"username and password are required"}}
	}

	u, err := s.Repo.GetByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.AdminUser{}, domain.AuthError{Msg: "invalid credentials"}
	}
	if err != nil {
		return "", models.AdminUser{}, domain.PersistenceError{Op: "get admin", Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", models.AdminUser{}, domain.AuthError{Msg: "invalid credentials"}
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       u.ID,
		"username": u.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenValidity).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", models.AdminUser{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, u, nil
}

// Authenticate verifies a bearer token's signature and expiry and returns
// the principal it encodes.
func (s AuthService) Authenticate(tokenString string) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return Principal{}, domain.AuthError{Msg: "invalid token", Err: err}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, domain.AuthError{Msg: "invalid token"}
	}

	p := Principal{}
	if id, ok := claims["id"].(float64); ok {
		p.ID = int64(id)
	}
	if name, ok := claims["username"].(string); ok {
		p.Username = name
	}
	if p.ID == 0 || p.Username == "" {
		return Principal{}, domain.AuthError{Msg: "invalid token"}
	}
	return p, nil
}
