package usecase

import (
	"regexp"
	"time"

	authdomain "calendar-backend/internal/auth/domain"
	authdto "calendar-backend/internal/auth/dto"
	"calendar-backend/internal/auth/repository"
	"calendar-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// emailPattern decides whether a login identifier is an email address or a
// username. Anything that doesn't match is looked up by name.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.Authenticate(req.Identifier, req.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := u.IssueToken(user.Email)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, authdomain.ErrEmailTaken
	}

	// Name uniqueness is left to the store's unique index; a violation
	// surfaces as a generic persistence error.
	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Authenticate(identifier, password string) (*authdomain.User, error) {
	var user *authdomain.User
	var err error

	if emailPattern.MatchString(identifier) {
		user, err = u.userRepo.FindByEmail(identifier)
	} else {
		user, err = u.userRepo.FindByName(identifier)
	}
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}

	if !repository.VerifyPassword(password, user.Password) {
		return nil, authdomain.ErrInvalidCredentials
	}

	return user, nil
}

func (u *authUsecase) IssueToken(email string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(u.config.AccessTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	// Bad signature, malformed token and expiry all collapse to the same
	// failure so the caller treats them uniformly as unauthenticated.
	if err != nil || !token.Valid {
		return "", authdomain.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", authdomain.ErrInvalidToken
	}

	return claims.Subject, nil
}

func (u *authUsecase) ResolveUser(subject string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(subject)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Token verified but the account is gone (e.g. deleted after
		// issuance). Distinct from ErrInvalidToken.
		return nil, authdomain.ErrUserNotFound
	}

	return user, nil
}
