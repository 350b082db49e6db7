// Package train handles model training commands
package train

import (
	"fmt"
	"os"

	"fjacquet/txn-classify/cmd/root"
	"fjacquet/txn-classify/internal/corpus"
	"fjacquet/txn-classify/internal/trainer"
	"fjacquet/txn-classify/internal/vectorizer"

	"github.com/spf13/cobra"
)

// Cmd represents the train command
var Cmd = &cobra.Command{
	Use:   "train",
	Short: "Train the classifier from the training corpus",
	Long: `Train fits the feature extractor and naive Bayes classifier on the
curated corpus, prints a diagnostic report, and persists the matched model
pair for the classify and review commands.`,
	RunE: trainFunc,
}

func trainFunc(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	log := root.Log.WithField("command", "train")

	store := corpus.NewStore(cfg.CorpusPath(), cfg.CategoriesPath(), log)
	vocab, err := store.LoadVocabulary()
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}

	examples, err := store.Load(vocab)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	trainerCfg := trainer.Config{
		Vectorizer: vectorizer.Config{
			MinDocumentFrequency: cfg.Training.MinDocumentFrequency,
		},
		HoldoutFraction: cfg.Training.HoldoutFraction,
		Augment:         cfg.Training.Augment,
	}

	result, err := trainer.New(vocab, trainerCfg, log).Train(examples)
	if err != nil {
		return fmt.Errorf("training: %w", err)
	}

	if err := trainer.SaveModels(cfg.ModelDir(), result.Feature, result.Classifier); err != nil {
		return fmt.Errorf("persisting models: %w", err)
	}
	log.WithField("model_dir", cfg.ModelDir()).Info("Model pair saved")

	return result.Report.Write(os.Stdout)
}
