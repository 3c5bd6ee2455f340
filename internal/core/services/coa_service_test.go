package services_test

import (
	"context"
	"testing"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	"github.com/calyxerp/calyx_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CoAServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockConfigRepo  *MockConfigRepository
	service         *services.CoAService
	tenantID        string
	actorID         string
}

func (suite *CoAServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockConfigRepo = new(MockConfigRepository)
	suite.service = services.NewCoAService(suite.mockAccountRepo, suite.mockConfigRepo)

	suite.tenantID = uuid.NewString()
	suite.actorID = uuid.NewString()
}

func (suite *CoAServiceTestSuite) expectConfigSeeding() {
	// Roles are seeded only when not yet mapped.
	suite.mockConfigRepo.On("FindAccountConfig", mock.Anything, suite.tenantID, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)
	suite.mockConfigRepo.On("UpsertAccountConfig", mock.Anything, mock.AnythingOfType("domain.AccountConfig")).
		Return(nil)
}

func (suite *CoAServiceTestSuite) TestSetupChartOfAccounts_FreshTenant() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil)
	suite.expectConfigSeeding()

	accounts, err := suite.service.SetupChartOfAccounts(ctx, suite.tenantID, "retail", suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(accounts, 4)

	codes := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		codes[a.Code] = a
		suite.Equal(suite.tenantID, a.TenantID)
		suite.True(a.IsActive)
	}
	suite.Contains(codes, "1000")
	suite.Contains(codes, "1200")
	suite.Contains(codes, "4000")
	suite.Contains(codes, "5000")
	suite.Equal(domain.Asset, codes["1000"].AccountType)
	suite.Equal(domain.Revenue, codes["4000"].AccountType)
	suite.Equal(domain.Expense, codes["5000"].AccountType)

	suite.mockAccountRepo.AssertNumberOfCalls(suite.T(), "SaveAccount", 4)
}

func (suite *CoAServiceTestSuite) TestSetupChartOfAccounts_Idempotent() {
	ctx := context.Background()

	// Every template code already exists; nothing may be written.
	for _, code := range []string{"1000", "1200", "4000", "5000"} {
		existing := &domain.Account{
			AccountID: uuid.NewString(),
			TenantID:  suite.tenantID,
			Code:      code,
			IsActive:  true,
		}
		suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, code).
			Return(existing, nil).Once()
	}
	existingConfig := &domain.AccountConfig{TenantID: suite.tenantID}
	suite.mockConfigRepo.On("FindAccountConfig", mock.Anything, suite.tenantID, mock.AnythingOfType("string")).
		Return(existingConfig, nil)

	accounts, err := suite.service.SetupChartOfAccounts(ctx, suite.tenantID, "retail", suite.actorID)

	suite.Require().NoError(err)
	suite.Len(accounts, 4)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockConfigRepo.AssertNotCalled(suite.T(), "UpsertAccountConfig", mock.Anything, mock.Anything)
}

func (suite *CoAServiceTestSuite) TestSetupChartOfAccounts_UnknownIndustryFallsBack() {
	ctx := context.Background()

	var seededCodes []string
	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			seededCodes = append(seededCodes, args.Get(1).(domain.Account).Code)
		}).
		Return(nil)
	suite.expectConfigSeeding()

	accounts, err := suite.service.SetupChartOfAccounts(ctx, suite.tenantID, "aerospace", suite.actorID)

	suite.Require().NoError(err)
	// Falls back to the retail template.
	suite.Len(accounts, 4)
	suite.ElementsMatch(seededCodes, []string{"1000", "1200", "4000", "5000"})
}

func (suite *CoAServiceTestSuite) TestSetParentAccount_RejectsSelf() {
	ctx := context.Background()
	accountID := uuid.NewString()

	account := &domain.Account{
		AccountID: accountID,
		TenantID:  suite.tenantID,
		IsActive:  true,
	}
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()

	result, err := suite.service.SetParentAccount(ctx, suite.tenantID, accountID, &accountID, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrCyclicHierarchy)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountParent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CoAServiceTestSuite) TestSetParentAccount_RejectsCycle() {
	ctx := context.Background()

	// a <- b <- c; assigning c as a's parent closes the loop.
	a := &domain.Account{AccountID: uuid.NewString(), TenantID: suite.tenantID, IsActive: true}
	b := &domain.Account{AccountID: uuid.NewString(), TenantID: suite.tenantID, IsActive: true, ParentAccountID: a.AccountID}
	c := &domain.Account{AccountID: uuid.NewString(), TenantID: suite.tenantID, IsActive: true, ParentAccountID: b.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, a.AccountID).Return(a, nil)
	suite.mockAccountRepo.On("FindAccountByID", ctx, b.AccountID).Return(b, nil)
	suite.mockAccountRepo.On("FindAccountByID", ctx, c.AccountID).Return(c, nil)

	result, err := suite.service.SetParentAccount(ctx, suite.tenantID, a.AccountID, &c.AccountID, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrCyclicHierarchy)
}

func (suite *CoAServiceTestSuite) TestSetParentAccount_AcceptsValidParent() {
	ctx := context.Background()

	parent := &domain.Account{AccountID: uuid.NewString(), TenantID: suite.tenantID, IsActive: true}
	child := &domain.Account{AccountID: uuid.NewString(), TenantID: suite.tenantID, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByID", ctx, child.AccountID).Return(child, nil)
	suite.mockAccountRepo.On("FindAccountByID", ctx, parent.AccountID).Return(parent, nil)
	suite.mockAccountRepo.On("UpdateAccountParent", ctx, suite.tenantID, child.AccountID, &parent.AccountID, suite.actorID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	result, err := suite.service.SetParentAccount(ctx, suite.tenantID, child.AccountID, &parent.AccountID, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(parent.AccountID, result.ParentAccountID)
}

func (suite *CoAServiceTestSuite) TestResolveRoleAccount_Missing() {
	ctx := context.Background()

	suite.mockConfigRepo.On("FindAccountConfig", ctx, suite.tenantID, "tax_payable").
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.ResolveRoleAccount(ctx, suite.tenantID, domain.RoleTaxPayable)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrMissingAccountConfig)

	var missing *apperrors.MissingAccountConfigError
	suite.Require().ErrorAs(err, &missing)
	suite.Equal("tax_payable", missing.Role)
}

func (suite *CoAServiceTestSuite) TestResolveRoleAccount_DanglingCode() {
	ctx := context.Background()

	config := &domain.AccountConfig{
		TenantID:    suite.tenantID,
		Role:        domain.RoleCash,
		AccountCode: "1000",
	}
	suite.mockConfigRepo.On("FindAccountConfig", ctx, suite.tenantID, "cash").
		Return(config, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, "1000").
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.ResolveRoleAccount(ctx, suite.tenantID, domain.RoleCash)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrMissingAccountConfig)
}

func (suite *CoAServiceTestSuite) TestResolveRoleAccount_Success() {
	ctx := context.Background()

	config := &domain.AccountConfig{
		TenantID:    suite.tenantID,
		Role:        domain.RoleCash,
		AccountCode: "1000",
	}
	cash := &domain.Account{
		AccountID: uuid.NewString(),
		TenantID:  suite.tenantID,
		Code:      "1000",
		IsActive:  true,
	}
	suite.mockConfigRepo.On("FindAccountConfig", ctx, suite.tenantID, "cash").Return(config, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, "1000").Return(cash, nil).Once()

	account, err := suite.service.ResolveRoleAccount(ctx, suite.tenantID, domain.RoleCash)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(cash.AccountID, account.AccountID)
}

func (suite *CoAServiceTestSuite) TestGetAccountByID_CrossTenant() {
	ctx := context.Background()

	other := &domain.Account{
		AccountID: uuid.NewString(),
		TenantID:  uuid.NewString(),
		IsActive:  true,
	}
	suite.mockAccountRepo.On("FindAccountByID", ctx, other.AccountID).Return(other, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.tenantID, other.AccountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCoAServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CoAServiceTestSuite))
}
