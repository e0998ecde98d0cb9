package auth_test

import (
	"context"
	"testing"
	"time"

	"hr-backoffice/internal/auth"
	autherrors "hr-backoffice/internal/auth/errors"
	"hr-backoffice/internal/employee"
	"hr-backoffice/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeActivityRepository struct {
	recorded     []auth.LoginActivity
	findRecentFn func(ctx context.Context, limit int) ([]auth.LoginActivity, error)
}

func (f *fakeActivityRepository) Record(ctx context.Context, activity *auth.LoginActivity) error {
	f.recorded = append(f.recorded, *activity)
	return nil
}

func (f *fakeActivityRepository) FindRecent(ctx context.Context, limit int) ([]auth.LoginActivity, error) {
	if f.findRecentFn != nil {
		return f.findRecentFn(ctx, limit)
	}
	return nil, nil
}

type fakeEmployeeRepository struct {
	byEmail map[string]*employee.Employee
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Find(ctx context.Context, search string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if e, ok := f.byEmail[email]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }

func hashPassword(t *testing.T, pwd string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	return claims
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", "admin@abcit.com")
	t.Setenv("DEFAULT_ADMIN_PWD", "s3cret-admin")

	t.Run("built-in admin", func(t *testing.T) {
		activities := &fakeActivityRepository{}
		svc := auth.NewService(activities, &fakeEmployeeRepository{})

		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@abcit.com", Password: "s3cret-admin"})

		assert.NoError(t, err)
		assert.Equal(t, rbac.RoleAdmin, resp.Role)

		claims := parseClaims(t, resp.Token)
		assert.Equal(t, "admin@abcit.com", claims["email"])
		assert.Equal(t, rbac.RoleAdmin, claims["role"])
	})

	t.Run("employee with valid password", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeEmployeeRepository{byEmail: map[string]*employee.Employee{
			"alice@example.com": {ID: id, Email: "alice@example.com", Password: hashPassword(t, "hunter2")},
		}}
		activities := &fakeActivityRepository{}
		svc := auth.NewService(activities, repo)

		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "alice@example.com", Password: "hunter2"})

		assert.NoError(t, err)
		assert.Equal(t, rbac.RoleEmployee, resp.Role)

		claims := parseClaims(t, resp.Token)
		assert.Equal(t, id.String(), claims["id"])

		assert.Len(t, activities.recorded, 1)
		assert.True(t, activities.recorded[0].Success)
	})

	t.Run("wrong password records bad-pwd", func(t *testing.T) {
		repo := &fakeEmployeeRepository{byEmail: map[string]*employee.Employee{
			"alice@example.com": {ID: uuid.New(), Email: "alice@example.com", Password: hashPassword(t, "hunter2")},
		}}
		activities := &fakeActivityRepository{}
		svc := auth.NewService(activities, repo)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "alice@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
		assert.Len(t, activities.recorded, 1)
		assert.False(t, activities.recorded[0].Success)
		assert.Equal(t, "bad-pwd", activities.recorded[0].Reason)
	})

	t.Run("unknown user records no-user", func(t *testing.T) {
		activities := &fakeActivityRepository{}
		svc := auth.NewService(activities, &fakeEmployeeRepository{})

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
		assert.Len(t, activities.recorded, 1)
		assert.Equal(t, "no-user", activities.recorded[0].Reason)
	})

	t.Run("wrong admin password falls through to directory", func(t *testing.T) {
		activities := &fakeActivityRepository{}
		svc := auth.NewService(activities, &fakeEmployeeRepository{})

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@abcit.com", Password: "guess"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ListActivities(t *testing.T) {
	ctx := context.Background()

	t.Run("default and ceiling limits", func(t *testing.T) {
		var gotLimit int
		activities := &fakeActivityRepository{
			findRecentFn: func(ctx context.Context, limit int) ([]auth.LoginActivity, error) {
				gotLimit = limit
				return nil, nil
			},
		}
		svc := auth.NewService(activities, &fakeEmployeeRepository{})

		_, err := svc.ListActivities(ctx, 0)
		assert.NoError(t, err)
		assert.Equal(t, 500, gotLimit)

		_, err = svc.ListActivities(ctx, 5000)
		assert.NoError(t, err)
		assert.Equal(t, 1000, gotLimit)

		_, err = svc.ListActivities(ctx, 25)
		assert.NoError(t, err)
		assert.Equal(t, 25, gotLimit)
	})

	t.Run("maps entities", func(t *testing.T) {
		now := time.Now().UTC()
		activities := &fakeActivityRepository{
			findRecentFn: func(ctx context.Context, limit int) ([]auth.LoginActivity, error) {
				return []auth.LoginActivity{
					{ID: uuid.New(), Email: "alice@example.com", Success: true, CreatedAt: now},
				}, nil
			},
		}
		svc := auth.NewService(activities, &fakeEmployeeRepository{})

		resp, err := svc.ListActivities(ctx, 10)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "alice@example.com", resp[0].Email)
		assert.True(t, resp[0].Success)
	})
}
