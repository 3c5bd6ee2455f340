package dto_test

import (
	"strings"
	"testing"
	"time"

	"github.com/calyxerp/calyx_backend/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// validate runs the same validator gin applies during ShouldBindJSON.
func validate(req any) error {
	return binding.Validator.ValidateStruct(req)
}

func TestCreateAccountRequestValidation(t *testing.T) {
	valid := dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash on Hand",
		AccountType: "ASSET",
	}
	assert.NoError(t, validate(&valid))

	badType := valid
	badType.AccountType = "BANK"
	assert.Error(t, validate(&badType), "account type outside the five categories must fail")

	longCode := valid
	longCode.Code = strings.Repeat("9", 21)
	assert.Error(t, validate(&longCode), "codes are capped at 20 characters")

	noName := valid
	noName.Name = ""
	assert.Error(t, validate(&noName))
}

func TestUpsertAccountConfigRequestValidation(t *testing.T) {
	valid := dto.UpsertAccountConfigRequest{Role: "tax_payable", AccountCode: "2200"}
	assert.NoError(t, validate(&valid))

	badRole := dto.UpsertAccountConfigRequest{Role: "petty_cash", AccountCode: "2200"}
	assert.Error(t, validate(&badRole), "only the seven posting roles are accepted")

	noCode := dto.UpsertAccountConfigRequest{Role: "cash"}
	assert.Error(t, validate(&noCode))
}

func TestCreateEntryRequestValidation(t *testing.T) {
	valid := dto.CreateEntryRequest{
		BranchID:    "branch-001",
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "manual adjustment",
		Lines: []dto.CreateEntryLine{
			{AccountCode: "1000", Debit: decimal.RequireFromString("10.00")},
			{AccountCode: "4000", Credit: decimal.RequireFromString("10.00")},
		},
	}
	assert.NoError(t, validate(&valid))

	noLines := valid
	noLines.Lines = nil
	assert.Error(t, validate(&noLines), "an entry needs at least one line")

	blankLineCode := valid
	blankLineCode.Lines = []dto.CreateEntryLine{
		{Debit: decimal.RequireFromString("10.00")},
	}
	assert.Error(t, validate(&blankLineCode), "every line must name an account code")

	noBranch := valid
	noBranch.BranchID = ""
	assert.Error(t, validate(&noBranch))
}

func TestPostSaleRequestValidation(t *testing.T) {
	valid := dto.PostSaleRequest{
		SaleID:        "sale-1",
		BranchID:      "branch-001",
		ReceiptNumber: "R-1001",
		Subtotal:      decimal.RequireFromString("100.00"),
		Tax:           decimal.RequireFromString("15.00"),
		Total:         decimal.RequireFromString("115.00"),
		OccurredAt:    time.Now(),
	}
	assert.NoError(t, validate(&valid))

	noReceipt := valid
	noReceipt.ReceiptNumber = ""
	assert.Error(t, validate(&noReceipt))

	noDate := valid
	noDate.OccurredAt = time.Time{}
	assert.Error(t, validate(&noDate))
}
