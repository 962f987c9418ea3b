package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/repository"
	util "github.com/spec-kit/rental-crm/pkg/util"
)

type fakeAdminRepo struct {
	repository.AdminRepository
	admins []*domain.Admin
}

func (f *fakeAdminRepo) GetByUsernameAndRole(_ context.Context, username string, role domain.AdminRole) (*domain.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username && a.Role == role {
			return a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeCustomerRepo struct {
	repository.CustomerRepository
	customers []*domain.Customer
}

func (f *fakeCustomerRepo) GetByUsername(_ context.Context, username string) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestAuthService(admins []*domain.Admin, customers []*domain.Customer) *AuthService {
	return NewAuthService(AuthDependencies{
		AdminRepo:    &fakeAdminRepo{admins: admins},
		CustomerRepo: &fakeCustomerRepo{customers: customers},
		Tokens:       auth.NewTokenManager("service-test-secret", 0, 0),
		Revoked:      auth.NewRevocationList(nil, nil),
		Logger:       zap.NewNop(),
	})
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, 1000)
	require.NoError(t, err)
	return hash
}

func TestLoginCustomer(t *testing.T) {
	customer := &domain.Customer{ID: uuid.New(), Username: "sara", PasswordHash: hashFor(t, "pass123")}
	svc := newTestAuthService(nil, []*domain.Customer{customer})

	pair, err := svc.Login(context.Background(), "sara", "pass123", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, pair.Role)
	assert.Equal(t, customer.ID.String(), pair.SubjectID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestLoginAdminWinsOverCustomerWithSameUsername(t *testing.T) {
	admin := &domain.Admin{ID: uuid.New(), Username: "shared", Role: domain.AdminRoleGeneral, PasswordHash: hashFor(t, "adminpass")}
	customer := &domain.Customer{ID: uuid.New(), Username: "shared", PasswordHash: hashFor(t, "customerpass")}
	svc := newTestAuthService([]*domain.Admin{admin}, []*domain.Customer{customer})

	pair, err := svc.Login(context.Background(), "shared", "adminpass", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGeneralAdmin, pair.Role)
	assert.Equal(t, admin.ID.String(), pair.SubjectID)

	// The customer credentials still work: the admin probe fails the
	// password check and the walk continues.
	pair, err = svc.Login(context.Background(), "shared", "customerpass", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, pair.Role)
	assert.Equal(t, customer.ID.String(), pair.SubjectID)
}

func TestLoginSuperAdmin(t *testing.T) {
	admin := &domain.Admin{ID: uuid.New(), Username: "root", Role: domain.AdminRoleSuper, PasswordHash: hashFor(t, "rootpass")}
	svc := newTestAuthService([]*domain.Admin{admin}, nil)

	pair, err := svc.Login(context.Background(), "root", "rootpass", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, pair.Role)
}

func TestLoginDeclaredRoleNarrowsProbe(t *testing.T) {
	admin := &domain.Admin{ID: uuid.New(), Username: "shared", Role: domain.AdminRoleGeneral, PasswordHash: hashFor(t, "adminpass")}
	customer := &domain.Customer{ID: uuid.New(), Username: "shared", PasswordHash: hashFor(t, "pass123")}
	svc := newTestAuthService([]*domain.Admin{admin}, []*domain.Customer{customer})

	pair, err := svc.Login(context.Background(), "shared", "pass123", domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, pair.Role)

	// Narrowed to the admin pool, the customer password no longer matches.
	_, err = svc.Login(context.Background(), "shared", "pass123", domain.RoleGeneralAdmin)
	require.Error(t, err)
	assert.Equal(t, "AUTHENTICATION_FAILED", util.ToDomainError(err).Code)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	customer := &domain.Customer{ID: uuid.New(), Username: "sara", PasswordHash: hashFor(t, "pass123")}
	svc := newTestAuthService(nil, []*domain.Customer{customer})

	for _, tc := range []struct{ username, password string }{
		{"sara", "wrong"},
		{"nobody", "pass123"},
	} {
		_, err := svc.Login(context.Background(), tc.username, tc.password, "")
		require.Error(t, err)
		domainErr := util.ToDomainError(err)
		assert.Equal(t, "AUTHENTICATION_FAILED", domainErr.Code)
	}
}

func TestRefreshRotatesPair(t *testing.T) {
	customer := &domain.Customer{ID: uuid.New(), Username: "sara", PasswordHash: hashFor(t, "pass123")}
	svc := newTestAuthService(nil, []*domain.Customer{customer})

	pair, err := svc.Login(context.Background(), "sara", "pass123", "")
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, pair.SubjectID, rotated.SubjectID)
	assert.Equal(t, pair.Role, rotated.Role)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)
}

func TestRefreshRejectsAccessTokenGarbage(t *testing.T) {
	svc := newTestAuthService(nil, nil)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, "TOKEN_INVALID", util.ToDomainError(err).Code)
}

func TestLogoutToleratesGarbageTokens(t *testing.T) {
	svc := newTestAuthService(nil, nil)
	svc.Logout(context.Background(), "garbage", "")
}
