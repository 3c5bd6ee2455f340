package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	portssvc "github.com/calyxerp/calyx_backend/internal/core/ports/services"
	"github.com/calyxerp/calyx_backend/internal/core/services"
	"github.com/calyxerp/calyx_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockCoASvc      *MockCoAService
	service         portssvc.LedgerSvcFacade
	tenantID        string
	actorID         string
	cashAccount     domain.Account
	revenueAccount  domain.Account
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockCoASvc = new(MockCoAService)
	suite.service = services.NewLedgerService(suite.mockJournalRepo, suite.mockCoASvc)

	suite.tenantID = uuid.NewString()
	suite.actorID = uuid.NewString()

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "1000",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "4000",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
}

func (suite *LedgerServiceTestSuite) balancedRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		BranchID:    uuid.NewString(),
		Date:        time.Now(),
		Description: "Cash sale",
		Lines: []dto.CreateEntryLine{
			{AccountCode: "1000", Debit: decimal.RequireFromString("100.00")},
			{AccountCode: "4000", Credit: decimal.RequireFromString("100.00")},
		},
	}
}

func (suite *LedgerServiceTestSuite) accountsByCode() map[string]domain.Account {
	return map[string]domain.Account{
		"1000": suite.cashAccount,
		"4000": suite.revenueAccount,
	}
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockCoASvc.On("ResolveAccountsByCodes", ctx, suite.tenantID, []string{"1000", "4000"}).
		Return(suite.accountsByCode(), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(suite.tenantID, entry.TenantID)
	suite.Equal(suite.actorID, entry.CreatedBy)
	suite.Require().Len(entry.Lines, 2)
	suite.Equal(suite.cashAccount.AccountID, entry.Lines[0].AccountID)
	suite.Equal(entry.EntryID, entry.Lines[0].EntryID)
	suite.Equal(1, entry.Lines[0].LineNo)
	suite.Equal(2, entry.Lines[1].LineNo)

	suite.mockCoASvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_Imbalanced() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[1].Credit = decimal.RequireFromString("90.00")

	suite.mockCoASvc.On("ResolveAccountsByCodes", ctx, suite.tenantID, []string{"1000", "4000"}).
		Return(suite.accountsByCode(), nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrImbalancedEntry)

	var imbalanced *apperrors.ImbalancedEntryError
	suite.Require().ErrorAs(err, &imbalanced)
	suite.True(imbalanced.Debit.Equal(decimal.RequireFromString("100.00")))
	suite.True(imbalanced.Credit.Equal(decimal.RequireFromString("90.00")))

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_ToleranceBoundary() {
	ctx := context.Background()
	req := suite.balancedRequest()
	// 0.01 off is within tolerance and must post.
	req.Lines[1].Credit = decimal.RequireFromString("99.99")

	suite.mockCoASvc.On("ResolveAccountsByCodes", ctx, suite.tenantID, []string{"1000", "4000"}).
		Return(suite.accountsByCode(), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_UnknownAccountCode() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockCoASvc.On("ResolveAccountsByCodes", ctx, suite.tenantID, []string{"1000", "4000"}).
		Return(nil, apperrors.ErrAccountNotFound).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_InactiveAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()

	inactive := suite.revenueAccount
	inactive.IsActive = false
	accounts := map[string]domain.Account{
		"1000": suite.cashAccount,
		"4000": inactive,
	}

	suite.mockCoASvc.On("ResolveAccountsByCodes", ctx, suite.tenantID, []string{"1000", "4000"}).
		Return(accounts, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_RejectsSubCentAmount() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[0].Debit = decimal.RequireFromString("100.005")
	req.Lines[1].Credit = decimal.RequireFromString("100.005")

	entry, err := suite.service.CreateEntry(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.mockCoASvc.AssertNotCalled(suite.T(), "ResolveAccountsByCodes", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_IdempotentSourceReplay() {
	ctx := context.Background()
	sourceType := domain.SourceSale
	sourceID := uuid.NewString()

	req := suite.balancedRequest()
	req.SourceType = &sourceType
	req.SourceID = &sourceID

	existing := &domain.JournalEntry{
		EntryID:    uuid.NewString(),
		TenantID:   suite.tenantID,
		SourceType: &sourceType,
		SourceID:   &sourceID,
	}
	existingLines := []domain.LedgerLine{
		{LineID: uuid.NewString(), EntryID: existing.EntryID},
	}

	suite.mockCoASvc.On("ResolveAccountsByCodes", ctx, suite.tenantID, []string{"1000", "4000"}).
		Return(suite.accountsByCode(), nil).Once()
	suite.mockJournalRepo.On("FindEntryBySource", ctx, suite.tenantID, sourceType, sourceID).
		Return(existing, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, existing.EntryID).
		Return(existingLines, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(existing.EntryID, entry.EntryID)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_DuplicateSourceRace() {
	ctx := context.Background()
	sourceType := domain.SourceSale
	sourceID := uuid.NewString()

	req := suite.balancedRequest()
	req.SourceType = &sourceType
	req.SourceID = &sourceID

	winner := &domain.JournalEntry{
		EntryID:    uuid.NewString(),
		TenantID:   suite.tenantID,
		SourceType: &sourceType,
		SourceID:   &sourceID,
	}

	suite.mockCoASvc.On("ResolveAccountsByCodes", ctx, suite.tenantID, []string{"1000", "4000"}).
		Return(suite.accountsByCode(), nil).Once()
	// Pre-check misses, insert loses the race, re-fetch finds the winner.
	suite.mockJournalRepo.On("FindEntryBySource", ctx, suite.tenantID, sourceType, sourceID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Return(apperrors.ErrDuplicateSourcePosting).Once()
	suite.mockJournalRepo.On("FindEntryBySource", ctx, suite.tenantID, sourceType, sourceID).
		Return(winner, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, winner.EntryID).
		Return([]domain.LedgerLine{}, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(winner.EntryID, entry.EntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetEntryByID_CrossTenant() {
	ctx := context.Background()
	other := &domain.JournalEntry{
		EntryID:  uuid.NewString(),
		TenantID: uuid.NewString(), // different tenant
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, other.EntryID).Return(other, nil).Once()

	entry, err := suite.service.GetEntryByID(ctx, suite.tenantID, other.EntryID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindLinesByEntryID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_SwapsDebitsAndCredits() {
	ctx := context.Background()
	originalID := uuid.NewString()

	original := &domain.JournalEntry{
		EntryID:   originalID,
		TenantID:  suite.tenantID,
		BranchID:  uuid.NewString(),
		EntryDate: time.Now(),
	}
	lines := []domain.LedgerLine{
		{LineID: uuid.NewString(), EntryID: originalID, AccountID: suite.cashAccount.AccountID, Debit: decimal.RequireFromString("100.00"), Credit: decimal.Zero, LineNo: 1},
		{LineID: uuid.NewString(), EntryID: originalID, AccountID: suite.revenueAccount.AccountID, Debit: decimal.Zero, Credit: decimal.RequireFromString("100.00"), LineNo: 2},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, originalID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, originalID).Return(lines, nil).Once()
	suite.mockCoASvc.On("GetAccountByID", ctx, suite.tenantID, suite.cashAccount.AccountID).Return(&suite.cashAccount, nil).Once()
	suite.mockCoASvc.On("GetAccountByID", ctx, suite.tenantID, suite.revenueAccount.AccountID).Return(&suite.revenueAccount, nil).Once()

	// The reversal flows through CreateEntry with the swapped lines.
	suite.mockCoASvc.On("ResolveAccountsByCodes", ctx, suite.tenantID, []string{"1000", "4000"}).
		Return(suite.accountsByCode(), nil).Once()
	suite.mockJournalRepo.On("FindEntryBySource", ctx, suite.tenantID, domain.SourceReversal, originalID).
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.JournalEntry
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.JournalEntry)
		}).
		Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, suite.tenantID, originalID, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(reversal)
	suite.NotEqual(originalID, reversal.EntryID)
	suite.Require().NotNil(saved.SourceType)
	suite.Equal(domain.SourceReversal, *saved.SourceType)
	suite.Require().NotNil(saved.SourceID)
	suite.Equal(originalID, *saved.SourceID)

	suite.Require().Len(saved.Lines, 2)
	suite.True(saved.Lines[0].Credit.Equal(decimal.RequireFromString("100.00")), "cash line should now be a credit")
	suite.True(saved.Lines[0].Debit.IsZero())
	suite.True(saved.Lines[1].Debit.Equal(decimal.RequireFromString("100.00")), "revenue line should now be a debit")
	suite.True(saved.Lines[1].Credit.IsZero())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
