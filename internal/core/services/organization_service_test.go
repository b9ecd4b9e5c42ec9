package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/core/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	mockOrgRepo    *MockOrganizationRepository
	mockMemberRepo *MockMemberRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.OrganizationSvcFacade
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewOrganizationService(
		suite.mockOrgRepo,
		suite.mockMemberRepo,
		suite.mockUserRepo,
	)
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_AdminSeesAll() {
	ctx := context.Background()
	expected := []domain.Organization{{OrganizationID: "o1"}, {OrganizationID: "o2"}}
	suite.mockOrgRepo.On("ListOrganizations", ctx).Return(expected, nil).Once()

	orgs, err := suite.service.ListOrganizations(ctx, adminCaller())

	suite.NoError(err)
	suite.Equal(expected, orgs)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "ListMembershipsByUser", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_UserSeesOwn() {
	ctx := context.Background()
	caller := memberCaller()
	memberships := []domain.Member{
		{OrganizationID: "o1"},
		{OrganizationID: "o2"},
	}
	expected := []domain.Organization{{OrganizationID: "o1"}, {OrganizationID: "o2"}}

	suite.mockMemberRepo.On("ListMembershipsByUser", ctx, testUserID).Return(memberships, nil).Once()
	suite.mockOrgRepo.On("ListOrganizationsByIDs", ctx, []string{"o1", "o2"}).Return(expected, nil).Once()

	orgs, err := suite.service.ListOrganizations(ctx, caller)

	suite.NoError(err)
	suite.Equal(expected, orgs)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "ListOrganizations", mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_UserWithoutMemberships() {
	ctx := context.Background()
	caller := memberCaller()
	suite.mockMemberRepo.On("ListMembershipsByUser", ctx, testUserID).Return([]domain.Member{}, nil).Once()

	orgs, err := suite.service.ListOrganizations(ctx, caller)

	suite.NoError(err)
	suite.NotNil(orgs)
	suite.Empty(orgs)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindOrganizationBySlug", ctx, "oficina-do-ze").
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.Organization
	suite.mockOrgRepo.On("SaveOrganization", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Organization)
		}).
		Return(nil).Once()

	org, err := suite.service.CreateOrganization(ctx, adminCaller(), dto.CreateOrganizationRequest{
		Name: "Oficina do Ze",
		Slug: "oficina-do-ze",
	})

	suite.Require().NoError(err)
	suite.Equal("Oficina do Ze", org.Name)
	suite.Equal("oficina-do-ze", org.Slug)
	suite.NotEmpty(org.OrganizationID)
	suite.Equal(org.OrganizationID, saved.OrganizationID)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_NonAdmin() {
	ctx := context.Background()

	_, err := suite.service.CreateOrganization(ctx, memberCaller(), dto.CreateOrganizationRequest{
		Name: "x", Slug: "x",
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "SaveOrganization", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_SlugTaken() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindOrganizationBySlug", ctx, "oficina-do-ze").
		Return(&domain.Organization{OrganizationID: "o1", Slug: "oficina-do-ze"}, nil).Once()

	_, err := suite.service.CreateOrganization(ctx, adminCaller(), dto.CreateOrganizationRequest{
		Name: "Oficina do Ze",
		Slug: "oficina-do-ze",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "SaveOrganization", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization_RefusesActiveOrganization() {
	ctx := context.Background()
	orgID := testOrgID
	caller := domain.Caller{UserID: testUserID, Role: domain.UserRoleAdmin, ActiveOrganizationID: &orgID}

	err := suite.service.DeleteOrganization(ctx, caller, orgID)

	suite.ErrorIs(err, apperrors.ErrBusinessRule)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "DeleteOrganization", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization_OtherOrganization() {
	ctx := context.Background()
	orgID := testOrgID
	caller := domain.Caller{UserID: testUserID, Role: domain.UserRoleAdmin, ActiveOrganizationID: &orgID}
	otherOrg := "99999999-9999-9999-9999-999999999999"

	suite.mockOrgRepo.On("DeleteOrganization", ctx, otherOrg).Return(nil).Once()

	err := suite.service.DeleteOrganization(ctx, caller, otherOrg)

	suite.NoError(err)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization_NonAdmin() {
	ctx := context.Background()

	err := suite.service.DeleteOrganization(ctx, memberCaller(), "o1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *OrganizationServiceTestSuite) TestAddMember() {
	ctx := context.Background()
	newUserID := "77777777-7777-7777-7777-777777777777"

	suite.mockMemberRepo.On("FindMember", ctx, testUserID, testOrgID).
		Return(&domain.Member{MemberID: "m0", Role: domain.MemberRoleOwner}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, newUserID).
		Return(&domain.User{UserID: newUserID}, nil).Once()
	suite.mockMemberRepo.On("FindMember", ctx, newUserID, testOrgID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMemberRepo.On("AddMember", ctx, mock.Anything).Return(nil).Once()

	member, err := suite.service.AddMember(ctx, memberCaller(), testOrgID, dto.AddMemberRequest{
		UserID: newUserID,
		Role:   "member",
	})

	suite.Require().NoError(err)
	suite.Equal(newUserID, member.UserID)
	suite.Equal(domain.MemberRoleMember, member.Role)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestAddMember_AlreadyMember() {
	ctx := context.Background()
	newUserID := "77777777-7777-7777-7777-777777777777"

	suite.mockMemberRepo.On("FindMember", ctx, testUserID, testOrgID).
		Return(&domain.Member{MemberID: "m0", Role: domain.MemberRoleAdmin}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, newUserID).
		Return(&domain.User{UserID: newUserID}, nil).Once()
	suite.mockMemberRepo.On("FindMember", ctx, newUserID, testOrgID).
		Return(&domain.Member{MemberID: "m1"}, nil).Once()

	_, err := suite.service.AddMember(ctx, memberCaller(), testOrgID, dto.AddMemberRequest{
		UserID: newUserID,
		Role:   "member",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "AddMember", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestAddMember_PlainMemberCannotManage() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMember", ctx, testUserID, testOrgID).
		Return(&domain.Member{MemberID: "m0", Role: domain.MemberRoleMember}, nil).Once()

	_, err := suite.service.AddMember(ctx, memberCaller(), testOrgID, dto.AddMemberRequest{
		UserID: "77777777-7777-7777-7777-777777777777",
		Role:   "member",
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "AddMember", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestUpdateMember_SetsExtraRoles() {
	ctx := context.Background()
	members := []domain.Member{
		{MemberID: "m1", UserID: "u1", OrganizationID: testOrgID, Role: domain.MemberRoleMember},
	}

	suite.mockMemberRepo.On("FindMember", ctx, testUserID, testOrgID).
		Return(&domain.Member{MemberID: "m0", Role: domain.MemberRoleOwner}, nil).Once()
	suite.mockMemberRepo.On("ListMembersByOrganization", ctx, testOrgID).Return(members, nil).Once()
	suite.mockMemberRepo.On("SetExtraRoles", ctx, "m1", []string{domain.ExtraRoleFinanceiro}).Return(nil).Once()

	err := suite.service.UpdateMember(ctx, memberCaller(), testOrgID, "m1", dto.UpdateMemberRequest{
		ExtraRoles: []string{domain.ExtraRoleFinanceiro},
	})

	suite.NoError(err)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "UpdateMemberRole", mock.Anything, mock.Anything, mock.Anything)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestUpdateMember_ForeignMemberReadsAsNotFound() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMember", ctx, testUserID, testOrgID).
		Return(&domain.Member{MemberID: "m0", Role: domain.MemberRoleOwner}, nil).Once()
	suite.mockMemberRepo.On("ListMembersByOrganization", ctx, testOrgID).
		Return([]domain.Member{}, nil).Once()

	err := suite.service.UpdateMember(ctx, memberCaller(), testOrgID, "foreign-member", dto.UpdateMemberRequest{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrganizationServiceTestSuite) TestRemoveMember() {
	ctx := context.Background()
	members := []domain.Member{
		{MemberID: "m1", UserID: "u1", OrganizationID: testOrgID, Role: domain.MemberRoleMember},
	}

	suite.mockMemberRepo.On("FindMember", ctx, testUserID, testOrgID).
		Return(&domain.Member{MemberID: "m0", Role: domain.MemberRoleOwner}, nil).Once()
	suite.mockMemberRepo.On("ListMembersByOrganization", ctx, testOrgID).Return(members, nil).Once()
	suite.mockMemberRepo.On("RemoveMember", ctx, "m1").Return(nil).Once()

	err := suite.service.RemoveMember(ctx, memberCaller(), testOrgID, "m1")

	suite.NoError(err)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestGetOrganizationByID_RequiresMembership() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMember", ctx, testUserID, testOrgID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.GetOrganizationByID(ctx, memberCaller(), testOrgID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganizationByID() {
	ctx := context.Background()
	org := &domain.Organization{OrganizationID: testOrgID, Name: "Oficina do Ze"}
	members := []domain.Member{{MemberID: "m1"}}

	suite.mockMemberRepo.On("FindMember", ctx, testUserID, testOrgID).
		Return(&domain.Member{MemberID: "m1", Role: domain.MemberRoleMember}, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, testOrgID).Return(org, nil).Once()
	suite.mockMemberRepo.On("ListMembersByOrganization", ctx, testOrgID).Return(members, nil).Once()

	gotOrg, gotMembers, err := suite.service.GetOrganizationByID(ctx, memberCaller(), testOrgID)

	suite.NoError(err)
	suite.Equal(org, gotOrg)
	suite.Equal(members, gotMembers)
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
