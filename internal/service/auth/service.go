package auth

import (
	"context"

	"github.com/workpulse/timeclock-backend-go/internal/domain/auth"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &service{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService. Unknown usernames and wrong
// passwords return the same error.
func (s *service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPair{}, err
	}

	e, err := s.employeeRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return auth.TokenPair{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(e)
}

// Refresh implements auth.AuthService.
func (s *service) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if refreshToken == "" {
		return auth.TokenPair{}, auth.ErrRefreshTokenMissing
	}

	employeeID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return auth.TokenPair{}, auth.ErrInvalidToken
		}
		return auth.TokenPair{}, err
	}

	return s.issueTokens(e)
}

func (s *service) issueTokens(e employee.Employee) (auth.TokenPair, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(e.ID, e.AccessLevel, e.DepartmentID)
	if err != nil {
		return auth.TokenPair{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(e.ID)
	if err != nil {
		return auth.TokenPair{}, err
	}

	return auth.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}
