package domain

import "github.com/shopspring/decimal"

// LoanType names a loan product.
type LoanType string

const (
	LoanTypePersonal  LoanType = "personal"
	LoanTypeExcess    LoanType = "excess"
	LoanTypeBusiness  LoanType = "business"
	LoanTypeEmergency LoanType = "emergency"
	LoanTypeMicro     LoanType = "micro"
)

// InterestDistribution splits collected interest into admin, client and general shares.
// The three fractions sum to 1.
type InterestDistribution struct {
	Admin   decimal.Decimal `json:"admin"`
	Client  decimal.Decimal `json:"client"`
	General decimal.Decimal `json:"general"`
}

// LoanTypeConfig is the static policy for a loan type.
type LoanTypeConfig struct {
	Type                 LoanType              `json:"type"`
	InterestRate         decimal.Decimal       `json:"interestRate"`
	UpfrontPercentage    decimal.Decimal       `json:"upfrontPercentage"`
	InterestMethod       InterestMethod        `json:"interestMethod"`
	HasDefaultCharges    bool                  `json:"hasDefaultCharges"`
	InterestDistribution *InterestDistribution `json:"interestDistribution,omitempty"`
}

var loanTypeConfigs = map[LoanType]LoanTypeConfig{
	LoanTypePersonal: {
		Type:              LoanTypePersonal,
		InterestRate:      decimal.Zero,
		UpfrontPercentage: decimal.NewFromInt(10),
		InterestMethod:    InterestFlat,
		InterestDistribution: &InterestDistribution{
			Admin:   decimal.RequireFromString("0.4"),
			Client:  decimal.RequireFromString("0.3"),
			General: decimal.RequireFromString("0.3"),
		},
	},
	LoanTypeExcess: {
		Type:              LoanTypeExcess,
		InterestRate:      decimal.NewFromInt(5),
		UpfrontPercentage: decimal.NewFromInt(10),
		InterestMethod:    InterestFlat,
		InterestDistribution: &InterestDistribution{
			Admin:   decimal.RequireFromString("0.5"),
			Client:  decimal.RequireFromString("0.25"),
			General: decimal.RequireFromString("0.25"),
		},
	},
	LoanTypeBusiness: {
		Type:              LoanTypeBusiness,
		InterestRate:      decimal.NewFromInt(15),
		UpfrontPercentage: decimal.NewFromInt(5),
		InterestMethod:    InterestDecliningBalance,
		HasDefaultCharges: true,
	},
	LoanTypeEmergency: {
		Type:              LoanTypeEmergency,
		InterestRate:      decimal.NewFromInt(10),
		UpfrontPercentage: decimal.NewFromInt(5),
		InterestMethod:    InterestFlat,
		HasDefaultCharges: true,
	},
	LoanTypeMicro: {
		Type:              LoanTypeMicro,
		InterestRate:      decimal.NewFromInt(12),
		UpfrontPercentage: decimal.NewFromInt(2),
		InterestMethod:    InterestDecliningBalance,
		HasDefaultCharges: true,
	},
}

// GetLoanTypeConfig returns the policy for a loan type.
// Unrecognized type names resolve to the personal policy.
func GetLoanTypeConfig(loanType LoanType) LoanTypeConfig {
	if cfg, ok := loanTypeConfigs[loanType]; ok {
		return cfg
	}
	return loanTypeConfigs[LoanTypePersonal]
}

// IsKnownLoanType reports whether loanType has its own policy entry.
func IsKnownLoanType(loanType LoanType) bool {
	_, ok := loanTypeConfigs[loanType]
	return ok
}
