package jwt

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"

	"volume-discount-admin/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.ErrInvalidSessionToken
	ErrExpiredToken = errs.ErrExpiredSessionToken
	ErrInvalidShop  = errors.New("invalid shop domain")
)

var shopDomainRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]*\.myshopify\.com$`)

// SessionClaims mirrors the session token the embedded admin sends on every request.
type SessionClaims struct {
	Dest      string `json:"dest"`
	SessionID string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// Shop returns the shop domain the token was issued for.
func (c *SessionClaims) Shop() (string, error) {
	return shopFromURL(c.Dest)
}

type Service struct {
	apiKey        string
	secretKey     []byte
	leeway        time.Duration
	tokenDuration time.Duration
}

func NewService(apiKey, apiSecret string, leeway time.Duration) *Service {
	return &Service{
		apiKey:        apiKey,
		secretKey:     []byte(apiSecret),
		leeway:        leeway,
		tokenDuration: time.Minute,
	}
}

// GenerateToken issues a session token in the same shape the admin does.
// Used by local tooling and tests.
func (s *Service) GenerateToken(shop, userID string) (string, error) {
	return s.generate(shop, userID, time.Now(), s.tokenDuration)
}

func (s *Service) GenerateTokenAt(shop, userID string, issuedAt time.Time, ttl time.Duration) (string, error) {
	return s.generate(shop, userID, issuedAt, ttl)
}

func (s *Service) generate(shop, userID string, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		Dest:      "https://" + shop,
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://" + shop + "/admin",
			Subject:   userID,
			Audience:  jwt.ClaimStrings{s.apiKey},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(s.apiKey),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	destShop, err := claims.Shop()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	issuerShop, err := shopFromURL(claims.Issuer)
	if err != nil || issuerShop != destShop {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func shopFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" {
		return "", ErrInvalidShop
	}
	host := strings.ToLower(u.Hostname())
	if !shopDomainRegex.MatchString(host) {
		return "", ErrInvalidShop
	}
	return host, nil
}
