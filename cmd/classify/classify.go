// Package classify handles transaction classification commands
package classify

import (
	"fmt"

	"fjacquet/txn-classify/cmd/root"
	"fjacquet/txn-classify/internal/categorizer"
	"fjacquet/txn-classify/internal/corpus"
	"fjacquet/txn-classify/internal/importer"
	"fjacquet/txn-classify/internal/predictor"

	"github.com/spf13/cobra"
)

var (
	description string
	threshold   float64
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify transaction descriptions using the trained model",
	Long: `Classify predicts a category for a single description (--description)
or for a whole statement CSV (--input/--output). Predictions above the
confidence threshold are attached; the rest stay "unknown" for review.`,
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Single transaction description to classify")
	Cmd.Flags().Float64VarP(&threshold, "threshold", "t", -1, "Confidence threshold override (default from config)")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	log := root.Log.WithField("command", "classify")

	if threshold < 0 {
		threshold = cfg.Categorization.ConfidenceThreshold
	}

	store := corpus.NewStore(cfg.CorpusPath(), cfg.CategoriesPath(), log)
	vocab, err := store.LoadVocabulary()
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}
	examples, err := store.Load(vocab)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	service, err := predictor.Load(cfg.ModelDir(), vocab, log)
	if err != nil {
		return fmt.Errorf("loading model pair: %w", err)
	}
	cat := categorizer.NewDefault(examples, service, cfg.Categorization.FuzzyMinRatio, log)

	if description != "" {
		prediction := cat.Categorize(description)
		fmt.Printf("%s -> %s (confidence %.3f)\n",
			prediction.Description, prediction.Category, prediction.Confidence)
		return nil
	}

	if root.SharedFlags.Input == "" {
		return fmt.Errorf("either --description or --input is required")
	}
	if root.SharedFlags.Output == "" {
		return fmt.Errorf("--output is required with --input")
	}

	im := importer.New(cat, threshold, log)
	transactions, err := im.ReadTransactions(root.SharedFlags.Input)
	if err != nil {
		return err
	}
	categorized, _ := im.Categorize(transactions)
	return im.WriteTransactions(root.SharedFlags.Output, categorized)
}
