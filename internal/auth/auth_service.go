package auth

import (
	"context"
	"os"
	"time"

	autherrors "hr-backoffice/internal/auth/errors"
	"hr-backoffice/internal/employee"
	"hr-backoffice/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL          = 7 * 24 * time.Hour
	defaultAdminEmail = "admin@abcit.com"

	activitiesDefaultLimit = 500
	activitiesMaxLimit     = 1000
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ListActivities(ctx context.Context, limit int) ([]LoginActivityResponse, error)
}

type service struct {
	activities   ActivityRepository
	employeeRepo employee.Repository
	adminEmail   string
	adminPwd     string
	logger       *zap.Logger
}

func NewService(
	activities ActivityRepository,
	employeeRepo employee.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = defaultAdminEmail
	}
	return &service{
		activities:   activities,
		employeeRepo: employeeRepo,
		adminEmail:   adminEmail,
		adminPwd:     os.Getenv("DEFAULT_ADMIN_PWD"),
		logger:       l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	// Built-in admin short-circuits the directory lookup.
	if req.Email == s.adminEmail && s.adminPwd != "" && req.Password == s.adminPwd {
		token, err := s.generateToken(req.Email, rbac.RoleAdmin, "")
		if err != nil {
			return LoginResponse{}, autherrors.ErrTokenGenerationFailed
		}
		return LoginResponse{Token: token, Email: req.Email, Role: rbac.RoleAdmin}, nil
	}

	empl, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.recordActivity(ctx, req.Email, false, "no-user")
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte(req.Password)); err != nil {
		s.recordActivity(ctx, req.Email, false, "bad-pwd")
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(empl.Email, rbac.RoleEmployee, empl.ID.String())
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.recordActivity(ctx, req.Email, true, "")
	s.logger.Info("login success", zap.String("email", empl.Email))
	return LoginResponse{Token: token, Email: empl.Email, Role: rbac.RoleEmployee}, nil
}

func (s *service) ListActivities(ctx context.Context, limit int) ([]LoginActivityResponse, error) {
	if limit <= 0 {
		limit = activitiesDefaultLimit
	}
	if limit > activitiesMaxLimit {
		limit = activitiesMaxLimit
	}

	activities, err := s.activities.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]LoginActivityResponse, len(activities))
	for i, a := range activities {
		resp[i] = LoginActivityResponse{
			ID:        a.ID.String(),
			Email:     a.Email,
			Success:   a.Success,
			Reason:    a.Reason,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}

// recordActivity is best effort: a failed audit write never blocks a login.
func (s *service) recordActivity(ctx context.Context, email string, success bool, reason string) {
	activity := &LoginActivity{
		ID:        uuid.New(),
		Email:     email,
		Success:   success,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.activities.Record(ctx, activity); err != nil {
		s.logger.Warn("record login activity failed",
			zap.String("email", email),
			zap.Error(err),
		)
	}
}

func (s *service) generateToken(email, role, id string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	if id != "" {
		claims["id"] = id
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
