// Package review handles the human-in-the-loop review commands
package review

import (
	"context"
	"fmt"
	"os"

	"fjacquet/txn-classify/cmd/root"
	"fjacquet/txn-classify/internal/categorizer"
	"fjacquet/txn-classify/internal/corpus"
	"fjacquet/txn-classify/internal/importer"
	"fjacquet/txn-classify/internal/models"
	"fjacquet/txn-classify/internal/predictor"
	"fjacquet/txn-classify/internal/review"
	"fjacquet/txn-classify/internal/suggest"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	threshold float64
	applyFile string
)

// decisionRecord is one row of a curator's decisions CSV: a description and
// the category it should be trained as. Category "unknown" discards the row.
type decisionRecord struct {
	Description string `csv:"Description"`
	Category    string `csv:"Category"`
}

// Cmd represents the review command
var Cmd = &cobra.Command{
	Use:   "review",
	Short: "Surface low-confidence predictions for manual labeling",
	Long: `Review classifies a statement CSV (--input) and lists every
prediction at or below the confidence threshold, least confident first. With
--apply, a decisions CSV of {description, category} rows is appended to the
training corpus instead. Retraining stays a separate, explicit step.`,
	RunE: reviewFunc,
}

func init() {
	Cmd.Flags().Float64VarP(&threshold, "threshold", "t", -1, "Confidence threshold override (default from config)")
	Cmd.Flags().StringVarP(&applyFile, "apply", "a", "", "Decisions CSV to append to the training corpus")
}

func reviewFunc(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	log := root.Log.WithField("command", "review")

	store := corpus.NewStore(cfg.CorpusPath(), cfg.CategoriesPath(), log)
	vocab, err := store.LoadVocabulary()
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}
	loop := review.NewLoop(store, vocab, log)

	if applyFile != "" {
		return applyDecisions(loop, applyFile)
	}

	if root.SharedFlags.Input == "" {
		return fmt.Errorf("--input is required")
	}
	if threshold < 0 {
		threshold = cfg.Categorization.ConfidenceThreshold
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

	im := importer.New(cat, threshold, log)
	transactions, err := im.ReadTransactions(root.SharedFlags.Input)
	if err != nil {
		return err
	}
	_, predictions := im.Categorize(transactions)

	entries := review.Filter(predictions, threshold)

	if cfg.AI.Enabled {
		ctx := context.Background()
		ai, err := suggest.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, log)
		if err != nil {
			log.WithError(err).Warn("AI suggestions unavailable")
		} else {
			defer func() {
				if err := ai.Close(); err != nil {
					log.WithError(err).Warn("Failed to close AI client")
				}
			}()
			loop.WithSuggestions(ai).Annotate(ctx, entries)
		}
	}

	out := os.Stdout
	if root.SharedFlags.Output != "" {
		file, err := os.Create(root.SharedFlags.Output)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.WithError(err).Warn("Failed to close report file")
			}
		}()
		out = file
	}
	return review.WriteReport(out, entries)
}

// applyDecisions reads curator decisions and appends them to the corpus.
func applyDecisions(loop *review.Loop, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening decisions file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var records []decisionRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return fmt.Errorf("parsing decisions file: %w", err)
	}

	var resolved []models.TrainingExample
	for _, record := range records {
		entry := models.ReviewEntry{
			Prediction: models.Prediction{Description: record.Description, Category: record.Category},
		}
		decision := models.DecisionAccept
		if record.Category == models.CategoryUnknown {
			decision = models.DecisionUnknown
		}
		example, err := loop.Resolve(entry, decision, record.Category)
		if err != nil {
			return fmt.Errorf("resolving decision for %q: %w", record.Description, err)
		}
		if example != nil {
			resolved = append(resolved, *example)
		}
	}
	return loop.Apply(resolved)
}
