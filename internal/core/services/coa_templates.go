package services

import "github.com/calyxerp/calyx_backend/internal/core/domain"

// templateAccount is one row of an industry chart-of-accounts template.
type templateAccount struct {
	Code string
	Name string
	Type domain.AccountType
}

const defaultIndustryKey = "retail"

// industryCoATemplates holds the seed accounts per industry. Unknown industry
// keys fall back to retail.
var industryCoATemplates = map[string][]templateAccount{
	"retail": {
		{Code: "1000", Name: "Cash on Hand", Type: domain.Asset},
		{Code: "1200", Name: "Inventory", Type: domain.Asset},
		{Code: "4000", Name: "Retail Sales", Type: domain.Revenue},
		{Code: "5000", Name: "Cost of Goods Sold", Type: domain.Expense},
	},
	"service": {
		{Code: "1000", Name: "Bank Account", Type: domain.Asset},
		{Code: "4000", Name: "Service Revenue", Type: domain.Revenue},
		{Code: "5100", Name: "Labor Costs", Type: domain.Expense},
	},
	"pharmacy": {
		{Code: "1000", Name: "Main Register", Type: domain.Asset},
		{Code: "1200", Name: "Medical Supplies Inventory", Type: domain.Asset},
		{Code: "4000", Name: "Prescription Sales", Type: domain.Revenue},
		{Code: "5000", Name: "Procurement Costs", Type: domain.Expense},
	},
}

// defaultRoleSeeds maps posting roles to the template codes that should back
// them out of the box. Only roles whose code exists in the chosen template get
// seeded; the rest stay unmapped until configured explicitly.
var defaultRoleSeeds = map[string]map[domain.AccountRole]string{
	"retail": {
		domain.RoleCash:    "1000",
		domain.RoleRevenue: "4000",
		domain.RoleExpense: "5000",
	},
	"service": {
		domain.RoleCash:    "1000",
		domain.RoleRevenue: "4000",
		domain.RoleExpense: "5100",
	},
	"pharmacy": {
		domain.RoleCash:    "1000",
		domain.RoleRevenue: "4000",
		domain.RoleExpense: "5000",
	},
}

func templateForIndustry(industryKey string) (string, []templateAccount) {
	if template, ok := industryCoATemplates[industryKey]; ok {
		return industryKey, template
	}
	return defaultIndustryKey, industryCoATemplates[defaultIndustryKey]
}
