package jwt

import (
	"errors"
	"time"

	"appointment-engine/internal/domain/staff"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const leeway = 30 * time.Second

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carries the staff member in the subject and their role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service verifies tokens minted by the identity service sharing the secret.
// GenerateToken exists for tooling and tests.
type Service struct {
	secret   []byte
	duration time.Duration
	parser   *jwt.Parser
}

func NewService(secret string, duration time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		duration: duration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(leeway),
		),
	}
}

func (s *Service) GenerateToken(staffID uuid.UUID, role staff.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staffID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Identity validates a token and returns the caller id and role.
func (s *Service) Identity(token string) (uuid.UUID, staff.Role, error) {
	var claims Claims
	parsed, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, "", ErrExpiredToken
		}
		return uuid.Nil, "", ErrInvalidToken
	}
	if !parsed.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	staffID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}
	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return staffID, role, nil
}
