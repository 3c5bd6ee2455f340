package accounting

import (
	"fmt"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum permitted difference between an entry's
// debit and credit totals. It absorbs rounding at the 2-decimal boundary;
// anything beyond it is a genuine imbalance.
var BalanceTolerance = decimal.New(1, -2) // 0.01

// EntryTotals sums the debit and credit amounts across a line set.
func EntryTotals(lines []domain.LedgerLine) (debit, credit decimal.Decimal) {
	debit = decimal.Zero
	credit = decimal.Zero
	for _, line := range lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit, credit
}

// IsBalanced reports whether the two totals agree within BalanceTolerance.
func IsBalanced(debit, credit decimal.Decimal) bool {
	return debit.Sub(credit).Abs().LessThanOrEqual(BalanceTolerance)
}

// ValidateAmount checks that a monetary amount is non-negative and carries at
// most 2 decimal places. The balance invariant is exact-equality based, so
// sub-cent amounts are rejected rather than silently rounded.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s: %w", amount.String(), apperrors.ErrValidation)
	}
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("amount must have at most 2 decimal places, got %s: %w", amount.String(), apperrors.ErrValidation)
	}
	return nil
}

// NormalBalance converts the raw debit-normal balance (debits minus credits)
// into the account type's normal-balance figure. Assets and expenses keep the
// raw sign; liabilities, equity and revenue are negated. This is the single
// place sign conversion happens; everything internal stays debit-normal.
func NormalBalance(accountType domain.AccountType, rawBalance decimal.Decimal) decimal.Decimal {
	if accountType.IsDebitNormal() {
		return rawBalance
	}
	return rawBalance.Neg()
}

// Summarize folds trial-balance rows into the type-grouped dashboard totals.
func Summarize(rows []domain.TrialBalanceRow) domain.AccountingSummary {
	summary := domain.AccountingSummary{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		NetRevenue:       decimal.Zero,
		NetExpenses:      decimal.Zero,
	}
	for _, row := range rows {
		raw := row.TotalDebit.Sub(row.TotalCredit)
		switch row.AccountType {
		case domain.Asset:
			summary.TotalAssets = summary.TotalAssets.Add(raw)
		case domain.Liability:
			summary.TotalLiabilities = summary.TotalLiabilities.Add(raw.Neg())
		case domain.Revenue:
			summary.NetRevenue = summary.NetRevenue.Add(raw.Neg())
		case domain.Expense:
			summary.NetExpenses = summary.NetExpenses.Add(raw)
		}
	}
	return summary
}
