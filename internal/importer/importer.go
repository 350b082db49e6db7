// Package importer is the consumer side of the prediction service: it reads
// statement transactions already extracted upstream, requests predictions for
// their descriptions, and attaches categories above the confidence threshold.
package importer

import (
	"fmt"
	"os"

	"fjacquet/txn-classify/internal/categorizer"
	"fjacquet/txn-classify/internal/logging"
	"fjacquet/txn-classify/internal/models"

	"github.com/gocarina/gocsv"
)

// Importer categorizes batches of statement transactions.
type Importer struct {
	categorizer *categorizer.Categorizer
	threshold   float64
	logger      logging.Logger
}

// New creates an Importer. threshold is the configured confidence threshold:
// predictions strictly above it are attached, the rest stay "unknown" for the
// review loop.
func New(cat *categorizer.Categorizer, threshold float64, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{categorizer: cat, threshold: threshold, logger: logger}
}

// ReadTransactions reads statement transactions from a CSV file.
func (im *Importer) ReadTransactions(path string) ([]models.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening statement file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			im.logger.WithError(err).Warn("Failed to close statement file")
		}
	}()

	var transactions []models.Transaction
	if err := gocsv.UnmarshalFile(file, &transactions); err != nil {
		return nil, fmt.Errorf("error parsing statement file: %w", err)
	}

	im.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "transactions", Value: len(transactions)},
	).Info("Read statement transactions")
	return transactions, nil
}

// Categorize predicts a category for every transaction and attaches it when
// the confidence clears the threshold; otherwise the transaction stays
// "unknown". Returns the categorized transactions and the parallel batch of
// predictions for the review loop.
func (im *Importer) Categorize(transactions []models.Transaction) ([]models.Transaction, []models.Prediction) {
	out := make([]models.Transaction, len(transactions))
	predictions := make([]models.Prediction, len(transactions))

	attached := 0
	for i, tx := range transactions {
		prediction := im.categorizer.Categorize(tx.Description)
		predictions[i] = prediction

		if prediction.Confidence > im.threshold && prediction.Category != models.CategoryUnknown {
			out[i] = tx.WithCategory(prediction.Category)
			attached++
		} else {
			out[i] = tx.WithCategory(models.CategoryUnknown)
		}
	}

	im.logger.WithFields(
		logging.Field{Key: "total", Value: len(transactions)},
		logging.Field{Key: "categorized", Value: attached},
		logging.Field{Key: "needs_review", Value: len(transactions) - attached},
	).Info("Categorization summary")
	return out, predictions
}

// WriteTransactions writes categorized transactions to a CSV file.
func (im *Importer) WriteTransactions(path string, transactions []models.Transaction) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			im.logger.WithError(err).Warn("Failed to close output file")
		}
	}()

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	im.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "transactions", Value: len(transactions)},
	).Info("Wrote categorized transactions")
	return nil
}
