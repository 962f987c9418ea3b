package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/events"
	"github.com/spec-kit/rental-crm/internal/repository"
	util "github.com/spec-kit/rental-crm/pkg/util"
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
	SubjectID        string
	Role             domain.Role
}

// AuthService coordinates login, token rotation and logout.
type AuthService struct {
	admins     repository.AdminRepository
	customers  repository.CustomerRepository
	tokens     *auth.TokenManager
	revoked    *auth.RevocationList
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	AdminRepo    repository.AdminRepository
	CustomerRepo repository.CustomerRepository
	Tokens       *auth.TokenManager
	Revoked      *auth.RevocationList
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:     deps.AdminRepo,
		customers:  deps.CustomerRepo,
		tokens:     deps.Tokens,
		revoked:    deps.Revoked,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Login authenticates a username and password against the three account
// pools in fixed order: super admins, then general admins, then customers.
// A non-empty declaredRole narrows the probe to that single pool. The first
// account whose username and password both match wins. All failure modes
// collapse into the same generic error so the response never reveals whether
// the username exists.
func (s *AuthService) Login(ctx context.Context, username, password string, declaredRole domain.Role) (*TokenPair, error) {
	if declaredRole != "" && !declaredRole.Valid() {
		return nil, util.NewAuthenticationFailed()
	}

	principal, role, err := s.probe(ctx, username, password, declaredRole)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, util.NewAuthenticationFailed()
	}

	pair, err := s.issuePair(principal.PrincipalID().String(), role)
	if err != nil {
		return nil, util.NewInternalError(err)
	}

	s.publish(ctx, events.EventLoginSucceeded, pair, events.LoginPayload{Username: username, Role: role})
	return pair, nil
}

// probe walks the account pools in priority order and returns the first
// principal with a matching password, or nil when none matches.
func (s *AuthService) probe(ctx context.Context, username, password string, declaredRole domain.Role) (domain.Principal, domain.Role, error) {
	lookups := []struct {
		role domain.Role
		find func() (domain.Principal, error)
	}{
		{domain.RoleSuperAdmin, func() (domain.Principal, error) {
			return s.admins.GetByUsernameAndRole(ctx, username, domain.AdminRoleSuper)
		}},
		{domain.RoleGeneralAdmin, func() (domain.Principal, error) {
			return s.admins.GetByUsernameAndRole(ctx, username, domain.AdminRoleGeneral)
		}},
		{domain.RoleCustomer, func() (domain.Principal, error) {
			return s.customers.GetByUsername(ctx, username)
		}},
	}

	for _, lookup := range lookups {
		if declaredRole != "" && lookup.role != declaredRole {
			continue
		}
		principal, err := lookup.find()
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, "", util.NewInternalError(err)
		}
		if auth.VerifyPassword(principal.StoredPasswordHash(), password) {
			return principal, lookup.role, nil
		}
	}
	return nil, "", nil
}

// Refresh validates a refresh token and rotates the full pair. The spent
// refresh token is revoked so it cannot be replayed. Role and subject come
// from the verified claims, never from the request.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.Parse(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, util.NewTokenExpired()
		}
		return nil, util.NewTokenInvalid(err)
	}
	if s.revoked.IsRevoked(ctx, claims.ID) {
		return nil, util.NewUnauthorized("token has been revoked")
	}

	pair, err := s.issuePair(claims.SubjectID, claims.Role)
	if err != nil {
		return nil, util.NewInternalError(err)
	}

	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		s.logger.Warn("failed to revoke spent refresh token", zap.Error(err))
	}

	s.publish(ctx, events.EventTokenRefreshed, pair, nil)
	return pair, nil
}

// Logout revokes the presented tokens. It succeeds even when the tokens are
// already expired or malformed; logging out is always safe to repeat.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) {
	actor := events.Actor{}
	for _, tokenStr := range []string{accessToken, refreshToken} {
		if tokenStr == "" {
			continue
		}
		claims, err := s.tokens.Parse(tokenStr)
		if err != nil {
			continue
		}
		actor = events.Actor{Role: claims.Role, SubjectID: claims.SubjectID}
		if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			s.logger.Warn("failed to revoke token on logout", zap.Error(err))
		}
	}

	if s.dispatcher != nil && actor.SubjectID != "" {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventLogout, actor, nil))
	}
}

func (s *AuthService) issuePair(subjectID string, role domain.Role) (*TokenPair, error) {
	access, accessExp, err := s.tokens.IssueAccess(subjectID, role)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.tokens.IssueRefresh(subjectID, role)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
		SubjectID:        subjectID,
		Role:             role,
	}, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, pair *TokenPair, payload any) {
	if s.dispatcher == nil {
		return
	}
	actor := events.Actor{Role: pair.Role, SubjectID: pair.SubjectID}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, actor, payload))
}
