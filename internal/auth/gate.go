package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/michaelwsd/lingualift/internal/domain"
)

// userNamespace derives stable user ids from usernames.
var userNamespace = uuid.MustParse("6f1c1d52-3b7e-4a43-9d55-2a6c3c1b8e10")

// UserID returns the stable id of username.
func UserID(username string) uuid.UUID {
	return uuid.NewSHA1(userNamespace, []byte(strings.ToLower(strings.TrimSpace(username))))
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	UserID      uuid.UUID
	SessionID   uuid.UUID
	ExpiresAt   time.Time
}

// Gate checks the configured static credentials and issues session tokens.
type Gate struct {
	username     string
	passwordHash []byte
	jwt          *JWTManager
	log          *slog.Logger
}

// NewGate creates a Gate. When passwordHash is empty the plain password is
// hashed once here.
func NewGate(logger *slog.Logger, jwt *JWTManager, username, password, passwordHash string) (*Gate, error) {
	hash := []byte(passwordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}
	return &Gate{
		username:     strings.TrimSpace(username),
		passwordHash: hash,
		jwt:          jwt,
		log:          logger.With("service", "auth"),
	}, nil
}

// Login verifies the credentials and starts a new session.
// Each login gets its own session id, so two tabs never share a workspace.
func (g *Gate) Login(ctx context.Context, username, password string) (*Session, error) {
	var errs []domain.FieldError
	if strings.TrimSpace(username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(g.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		g.log.WarnContext(ctx, "login rejected", slog.String("username", username))
		return nil, domain.ErrUnauthorized
	}

	userID := UserID(g.username)
	sessionID := uuid.New()
	token, err := g.jwt.GenerateAccessToken(userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	g.log.InfoContext(ctx, "login accepted",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()),
	)

	return &Session{
		AccessToken: token,
		UserID:      userID,
		SessionID:   sessionID,
		ExpiresAt:   time.Now().Add(g.jwt.TTL()),
	}, nil
}

// ValidateToken resolves an access token into user and session ids.
func (g *Gate) ValidateToken(_ context.Context, token string) (uuid.UUID, uuid.UUID, error) {
	claims, err := g.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return claims.UserID, claims.SessionID, nil
}
