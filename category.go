package fincalc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a key names neither an asset nor a
// liability.
var ErrUnknownCategory = errors.New("unknown category")

// Asset is the key of an asset field.
type Asset string

// Liability is the key of a liability field.
type Liability string

// Personal assets.
const (
	Home            Asset = "home"
	Cars            Asset = "cars"
	ArtCollectables Asset = "artCollectables"
	Furnishings     Asset = "furnishings"
	Jewelry         Asset = "jewelry"
	Electronics     Asset = "electronics"
	OtherPersonal   Asset = "otherPersonal"
)

// Cash and cash equivalents.
const (
	Checking               Asset = "checking"
	Savings                Asset = "savings"
	CertificatesOfDeposit  Asset = "certificatesOfDeposit"
	LifeInsuranceCashValue Asset = "lifeInsuranceCashValue"
	MoneyMarketAccount     Asset = "moneyMarketAccount"
	OtherCash              Asset = "otherCash"
)

// Investments.
const (
	MutualFunds         Asset = "mutualFunds"
	Stocks              Asset = "stocks"
	Bonds               Asset = "bonds"
	TreasuryBills       Asset = "treasuryBills"
	PensionValueToday   Asset = "pensionValueToday"
	TaxDeferredAccounts Asset = "taxDeferredAccounts"
	OtherInvestments    Asset = "otherInvestments"
)

// Loan balances.
const (
	OutstandingMortgageLoan Liability = "outstandingMortgageLoan"
	HomeEquityLoanBalance   Liability = "homeEquityLoanBalance"
	CarLoans                Liability = "carLoans"
	StudentLoans            Liability = "studentLoans"
	LoansAgainst401k        Liability = "loansAgainst401k"
	OtherLoans              Liability = "otherLoans"
)

// Other outstanding debt.
const (
	CreditCardBalance Liability = "creditCardBalance"
	OtherDebt         Liability = "otherDebt"
)

// Field describes how a category is presented in a form.
type Field struct {
	Key         string
	Label       string
	Placeholder string
}

// Group is a titled list of fields, in display order.
type Group struct {
	Title  string
	Fields []Field
}

// Group titles.
const (
	PersonalAssets       = "Personal Assets"
	CashEquivalents      = "Cash & Cash Equivalents"
	Investments          = "Investments"
	LoanBalances         = "Loan Balances"
	OtherOutstandingDebt = "Other Outstanding Debt"
)

// assetGroups and liabilityGroups are the single definition of the categories.
// Every key list, default record and reset is derived from them.
var assetGroups = []Group{
	{PersonalAssets, []Field{
		{string(Home), "Home", "250000"},
		{string(Cars), "Cars", "20000"},
		{string(ArtCollectables), "Art and Collectables", "2000"},
		{string(Furnishings), "Furnishings", "25000"},
		{string(Jewelry), "Jewelry", "10000"},
		{string(Electronics), "Electronics", "3000"},
		{string(OtherPersonal), "Other Personal Assets", "5000"},
	}},
	{CashEquivalents, []Field{
		{string(Checking), "Checking Account", "2500"},
		{string(Savings), "Savings Account", "10000"},
		{string(CertificatesOfDeposit), "Certificates of Deposit", "25000"},
		{string(LifeInsuranceCashValue), "Life Insurance Cash Value", "20000"},
		{string(MoneyMarketAccount), "Money Market Account", "0"},
		{string(OtherCash), "Other Cash Assets", "0"},
	}},
	{Investments, []Field{
		{string(MutualFunds), "Mutual Funds", "25000"},
		{string(Stocks), "Stocks", "20000"},
		{string(Bonds), "Bonds", "25000"},
		{string(TreasuryBills), "Treasury Bills", "15000"},
		{string(PensionValueToday), "Pension Value Today", "0"},
		{string(TaxDeferredAccounts), "Tax-Deferred Accounts", "0"},
		{string(OtherInvestments), "Other Investments", "5000"},
	}},
}

var liabilityGroups = []Group{
	{LoanBalances, []Field{
		{string(OutstandingMortgageLoan), "Outstanding Mortgage Loan", "150000"},
		{string(HomeEquityLoanBalance), "Home Equity Loan Balance", "0"},
		{string(CarLoans), "Car Loans", "15000"},
		{string(StudentLoans), "Student Loans", "30000"},
		{string(LoansAgainst401k), "Loans against 401k Balance", "0"},
		{string(OtherLoans), "Other Loans", "0"},
	}},
	{OtherOutstandingDebt, []Field{
		{string(CreditCardBalance), "Credit Card Balance", "5000"},
		{string(OtherDebt), "Other Debt", "0"},
	}},
}

// AssetGroups returns the asset fields grouped for display.
func AssetGroups() []Group { return cloneGroups(assetGroups) }

// LiabilityGroups returns the liability fields grouped for display.
func LiabilityGroups() []Group { return cloneGroups(liabilityGroups) }

func cloneGroups(groups []Group) []Group {
	res := make([]Group, len(groups))
	for i, g := range groups {
		res[i] = Group{Title: g.Title, Fields: append([]Field(nil), g.Fields...)}
	}
	return res
}

// Assets returns every asset key in display order.
func Assets() []Asset {
	var res []Asset
	for _, g := range assetGroups {
		for _, f := range g.Fields {
			res = append(res, Asset(f.Key))
		}
	}
	return res
}

// Liabilities returns every liability key in display order.
func Liabilities() []Liability {
	var res []Liability
	for _, g := range liabilityGroups {
		for _, f := range g.Fields {
			res = append(res, Liability(f.Key))
		}
	}
	return res
}

// ParseAsset returns the asset named by key, ignoring case.
func ParseAsset(key string) (Asset, error) {
	if f, ok := lookup(assetGroups, key); ok {
		return Asset(f.Key), nil
	}
	return "", fmt.Errorf("asset %q: %w", key, ErrUnknownCategory)
}

// ParseLiability returns the liability named by key, ignoring case.
func ParseLiability(key string) (Liability, error) {
	if f, ok := lookup(liabilityGroups, key); ok {
		return Liability(f.Key), nil
	}
	return "", fmt.Errorf("liability %q: %w", key, ErrUnknownCategory)
}

// Label returns the human readable name of the asset.
func (a Asset) Label() string {
	f, _ := lookup(assetGroups, string(a))
	return f.Label
}

// Group returns the title of the group the asset belongs to.
func (a Asset) Group() string { return groupOf(assetGroups, string(a)) }

// Label returns the human readable name of the liability.
func (l Liability) Label() string {
	f, _ := lookup(liabilityGroups, string(l))
	return f.Label
}

// Group returns the title of the group the liability belongs to.
func (l Liability) Group() string { return groupOf(liabilityGroups, string(l)) }

func lookup(groups []Group, key string) (Field, bool) {
	key = strings.TrimSpace(key)
	for _, g := range groups {
		for _, f := range g.Fields {
			if strings.EqualFold(f.Key, key) {
				return f, true
			}
		}
	}
	return Field{}, false
}

func groupOf(groups []Group, key string) string {
	for _, g := range groups {
		for _, f := range g.Fields {
			if f.Key == key {
				return g.Title
			}
		}
	}
	return ""
}
