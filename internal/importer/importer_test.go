package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/txn-classify/internal/categorizer"
	"fjacquet/txn-classify/internal/models"
)

var corpusExamples = []models.TrainingExample{
	{Description: "CHIPOTLE USAPAVAFL", Category: "food"},
	{Description: "GRAMMARLY CO", Category: "software"},
}

func newTestImporter(t *testing.T) *Importer {
	t.Helper()
	cat := categorizer.New([]categorizer.Strategy{
		categorizer.NewDirectMappingStrategy(corpusExamples, nil),
		categorizer.NewFuzzyStrategy(corpusExamples, 0.85, nil),
	}, nil)
	return New(cat, 0.3, nil)
}

func TestReadTransactions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	content := "Date,Description,Amount,Category\n" +
		"2024-01-02,CHIPOTLE 1234,12.50,\n" +
		"2024-01-03,GRAMMARLY CO,29.95,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	im := newTestImporter(t)
	transactions, err := im.ReadTransactions(path)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, "2024-01-02", transactions[0].Date)
	assert.Equal(t, "CHIPOTLE 1234", transactions[0].Description)
	assert.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("12.50")))
	assert.False(t, transactions[0].IsCategorized())
}

func TestReadTransactions_MissingFile(t *testing.T) {
	im := newTestImporter(t)
	_, err := im.ReadTransactions(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestCategorize_AttachesAboveThreshold(t *testing.T) {
	im := newTestImporter(t)
	transactions := []models.Transaction{
		{Date: "2024-01-02", Description: "CHIPOTLE USAPAVAFL", Amount: decimal.RequireFromString("12.50")},
		{Date: "2024-01-03", Description: "TOTALLY NEW MERCHANT", Amount: decimal.RequireFromString("5.00")},
	}

	categorized, predictions := im.Categorize(transactions)
	require.Len(t, categorized, 2)
	require.Len(t, predictions, 2)

	assert.Equal(t, "food", categorized[0].Category)
	assert.True(t, categorized[0].IsCategorized())

	assert.Equal(t, models.CategoryUnknown, categorized[1].Category)
	assert.Zero(t, predictions[1].Confidence)
}

func TestCategorize_InputNotMutated(t *testing.T) {
	im := newTestImporter(t)
	transactions := []models.Transaction{
		{Date: "2024-01-02", Description: "CHIPOTLE USAPAVAFL", Amount: decimal.RequireFromString("12.50")},
	}

	im.Categorize(transactions)
	assert.Empty(t, transactions[0].Category)
}

func TestWriteTransactions_Roundtrip(t *testing.T) {
	im := newTestImporter(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	transactions := []models.Transaction{
		{Date: "2024-01-02", Description: "CHIPOTLE USAPAVAFL", Amount: decimal.RequireFromString("12.50"), Category: "food"},
	}

	require.NoError(t, im.WriteTransactions(path, transactions))

	read, err := im.ReadTransactions(path)
	require.NoError(t, err)
	require.Len(t, read, 1)
	assert.Equal(t, transactions[0].Description, read[0].Description)
	assert.Equal(t, transactions[0].Category, read[0].Category)
	assert.True(t, transactions[0].Amount.Equal(read[0].Amount))
}
