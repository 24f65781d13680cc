package auth

import (
	"context"

	"hotelreserve/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	staff StaffRepository
	jwt   jwtService
}

func NewService(staff StaffRepository, jwt jwtService) *Service {
	return &Service{staff: staff, jwt: jwt}
}

// Login verifies credentials and issues a signed token. Unknown
// username and wrong password collapse into the same error so the
// endpoint does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	acct, err := s.staff.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(acct.ID, acct.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:    token,
		Username: acct.Username,
		Role:     acct.Role,
	}, nil
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Staff, error) {
	existing, err := s.staff.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acct, err := domain.NewStaff(req.Username, string(hash), req.Role)
	if err != nil {
		return nil, err
	}
	if err := s.staff.Create(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}
