package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/core/services"
	"github.com/oficinadev/oficina_backend/internal/platform/config"
)

type PermissionServiceTestSuite struct {
	suite.Suite
	mockSource *MockPermissionSource
	service    portssvc.PermissionSvc
}

func (suite *PermissionServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockPermissionSource)
	suite.service = services.NewPermissionService(suite.mockSource)
}

func (suite *PermissionServiceTestSuite) TestGlobalAdminBypassesMembership() {
	ctx := context.Background()

	err := suite.service.CanAccessCashFlow(ctx, adminCaller())

	suite.NoError(err)
	suite.mockSource.AssertNotCalled(suite.T(), "MembershipFor", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PermissionServiceTestSuite) TestNoActiveOrganization() {
	ctx := context.Background()
	caller := domain.Caller{UserID: testUserID, Role: domain.UserRoleUser}

	err := suite.service.CanAccessCashFlow(ctx, caller)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSource.AssertNotCalled(suite.T(), "MembershipFor", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PermissionServiceTestSuite) TestNotAMember() {
	ctx := context.Background()
	caller := memberCaller()
	suite.mockSource.On("MembershipFor", mock.Anything, testUserID, testOrgID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.CanAccessCashFlow(ctx, caller)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestMembershipRoles() {
	tests := []struct {
		name       string
		member     *domain.Member
		wantAccess bool
	}{
		{"owner", &domain.Member{Role: domain.MemberRoleOwner}, true},
		{"org admin", &domain.Member{Role: domain.MemberRoleAdmin}, true},
		{"plain member", &domain.Member{Role: domain.MemberRoleMember}, false},
		{"member with financeiro", &domain.Member{Role: domain.MemberRoleMember, ExtraRoles: []string{domain.ExtraRoleFinanceiro}}, true},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			source := new(MockPermissionSource)
			svc := services.NewPermissionService(source)
			caller := memberCaller()
			source.On("MembershipFor", mock.Anything, testUserID, testOrgID).
				Return(tt.member, nil).Once()

			err := svc.CanAccessCashFlow(context.Background(), caller)

			if tt.wantAccess {
				suite.NoError(err)
			} else {
				suite.ErrorIs(err, apperrors.ErrForbidden)
			}
			source.AssertExpectations(suite.T())
		})
	}
}

func (suite *PermissionServiceTestSuite) TestSourceFailurePropagates() {
	ctx := context.Background()
	caller := memberCaller()
	dbErr := errors.New("connection reset")
	suite.mockSource.On("MembershipFor", mock.Anything, testUserID, testOrgID).
		Return(nil, dbErr).Once()

	err := suite.service.CanAccessCashFlow(ctx, caller)

	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrForbidden, "infrastructure failures are not denials")
}

func TestPermissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}

func TestNewPermissionSource(t *testing.T) {
	memberRepo := new(MockMemberRepository)

	source, err := services.NewPermissionSource(&config.Config{PermissionSource: "member"}, memberRepo)
	require.NoError(t, err)
	assert.NotNil(t, source)

	source, err = services.NewPermissionSource(&config.Config{}, memberRepo)
	require.NoError(t, err, "empty selects the default adapter")
	assert.NotNil(t, source)

	_, err = services.NewPermissionSource(&config.Config{PermissionSource: "ldap"}, memberRepo)
	assert.Error(t, err)
}

func TestMemberPermissionSourceDelegatesToRepository(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	source, err := services.NewPermissionSource(&config.Config{PermissionSource: "member"}, memberRepo)
	require.NoError(t, err)

	want := &domain.Member{MemberID: "m1", Role: domain.MemberRoleMember}
	memberRepo.On("FindMember", mock.Anything, testUserID, testOrgID).Return(want, nil).Once()

	got, err := source.MembershipFor(context.Background(), testUserID, testOrgID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	memberRepo.AssertExpectations(t)
}
