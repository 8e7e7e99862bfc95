package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ibrac/internal/domain"
	"ibrac/internal/domain/models"
	"ibrac/internal/repositories"
	"ibrac/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = domain.UnauthorizedError{Msg: "email ou senha inválidos"}

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies session tokens.
type AuthService struct {
	Users     repositories.UserRepository
	Secret    []byte
	TTL       time.Duration
	Now       func() time.Time
	RequestID string
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login checks email/password and returns a signed token.
func (s AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", models.User{}, domain.ValidationError{Msg: "email e senha são obrigatórios"}
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.User{}, errBadCredentials
		}
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, errBadCredentials
	}
	if !u.Active {
		return "", models.User{}, domain.ForbiddenError{Msg: "usuário inativo"}
	}
	token, err := s.Issue(u)
	if err != nil {
		return "", models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d role=%s", u.ID, u.Role))
	return token, u, nil
}

// Issue signs a token for u.
func (s AuthService) Issue(u models.User) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := s.now()
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "falha ao gerar token", Err: err}
	}
	return signed, nil
}

// Verify parses and validates a token produced by Issue.
func (s AuthService) Verify(token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, domain.UnauthorizedError{Msg: "sessão expirada", Err: err}
		}
		return Claims{}, domain.UnauthorizedError{Msg: "token inválido", Err: err}
	}
	if _, ok := domain.ParseRole(claims.Role); !ok {
		return Claims{}, domain.UnauthorizedError{Msg: "papel desconhecido"}
	}
	return claims, nil
}

// UserInput is the admin form for creating accounts.
type UserInput struct {
	Name     string `json:"nome" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// CreateUser hashes the password and inserts an active account.
func (s AuthService) CreateUser(ctx context.Context, in UserInput) (models.User, error) {
	if err := validateStruct(in); err != nil {
		return models.User{}, err
	}
	role, ok := domain.ParseRole(strings.ToLower(strings.TrimSpace(in.Role)))
	if !ok {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "papel desconhecido"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "falha ao gerar hash", Err: err}
	}
	u := models.User{
		Name:         utils.NormalizeSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         string(role),
		Active:       true,
	}
	id, err := s.Users.Create(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	utils.LogEvent(s.RequestID, "auth", "create_user", fmt.Sprintf("user_id=%d role=%s", id, role))
	return u, nil
}
