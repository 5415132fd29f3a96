package usecase

import (
	"volume-discount-admin/internal/pkg/jwt"
)

// Session identifies the merchant user behind a request.
type Session struct {
	Shop      string
	UserID    string
	SessionID string
}

// SessionValidator provides session token validation for middleware
type SessionValidator interface {
	ValidateSession(tokenString string) (*Session, error)
}

type sessionValidatorImpl struct {
	jwtService *jwt.Service
}

func NewSessionValidator(jwtService *jwt.Service) SessionValidator {
	return &sessionValidatorImpl{
		jwtService: jwtService,
	}
}

func (s *sessionValidatorImpl) ValidateSession(tokenString string) (*Session, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	shop, err := claims.Shop()
	if err != nil {
		return nil, err
	}

	return &Session{
		Shop:      shop,
		UserID:    claims.Subject,
		SessionID: claims.SessionID,
	}, nil
}
