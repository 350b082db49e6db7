package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is a raw statement record handed over by the statement parser.
// Layout extraction happens upstream; only the description matters to the
// classifier.
type Transaction struct {
	Date        string          `csv:"Date" yaml:"date"`
	Description string          `csv:"Description" yaml:"description"`
	Amount      decimal.Decimal `csv:"Amount" yaml:"amount"`
	Category    string          `csv:"Category" yaml:"category"`
}

// IsCategorized reports whether the transaction carries a real category.
func (t Transaction) IsCategorized() bool {
	return t.Category != "" && t.Category != CategoryUnknown
}

// WithCategory returns a copy of the transaction with the category set.
func (t Transaction) WithCategory(category string) Transaction {
	t.Category = category
	return t
}
