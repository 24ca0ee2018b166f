// Package auth implements the session guard: bcrypt password handling and
// signed, time-bound session tokens carried in an HTTP-only cookie. The only
// states are anonymous and authenticated; there are no roles.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridianlaw/cms/internal/models"
	"github.com/meridianlaw/cms/pkg/repository"
)

// SessionCookieName is the single cookie carrying the session token.
const SessionCookieName = "cms_session"

// ErrInvalidCredentials covers both unknown email and wrong password so the
// two cases stay indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Identity is the decoded session payload: subject id and email, nothing
// else.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// Sessions mints and verifies session tokens with a fixed secret and TTL.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Token issues an HS256 JWT whose only payload is the subject id, email and
// issued/expiry timestamps.
func (s *Sessions) Token(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})
	tokenStr, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenStr, nil
}

// Verify reads the session cookie and returns the decoded identity. Every
// failure mode (no cookie, malformed token, bad signature, expired) is
// reported uniformly as "no session".
func (s *Sessions) Verify(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return Identity{}, false
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, false
	}
	id := Identity{}
	if sub, ok := claims["sub"].(string); ok {
		id.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if id.UserID == "" {
		return Identity{}, false
	}

	return id, true
}

// SetCookie installs the session cookie: HTTP-only, same-site, expiring with
// the token.
func (s *Sessions) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie returns the caller to anonymous.
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticate resolves email+password to an admin account, failing closed
// with ErrInvalidCredentials for unknown email and wrong password alike.
func Authenticate(ctx context.Context, admins repository.AdminRepo, email, password string) (*models.AdminAccount, error) {
	admin, err := admins.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !VerifyPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
