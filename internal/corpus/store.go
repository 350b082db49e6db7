// Package corpus provides the persistent, human-editable training corpus: a
// YAML file of {description, category} records curated by the reviewer.
package corpus

import (
	"fmt"
	"os"

	"fjacquet/txn-classify/internal/classerr"
	"fjacquet/txn-classify/internal/fileutils"
	"fjacquet/txn-classify/internal/logging"
	"fjacquet/txn-classify/internal/models"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Store manages loading and appending of training corpus data.
type Store struct {
	CorpusFile     string
	CategoriesFile string
	logger         logging.Logger
}

// categoriesFile is the on-disk shape of the category vocabulary file.
type categoriesFile struct {
	Categories []string `yaml:"categories"`
}

// NewStore creates a new corpus store over the given files.
func NewStore(corpusFile, categoriesFile string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{
		CorpusFile:     corpusFile,
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// LoadVocabulary loads the category vocabulary from the categories file. A
// missing file falls back to the built-in default vocabulary.
func (s *Store) LoadVocabulary() (*models.Vocabulary, error) {
	if s.CategoriesFile == "" || !fileutils.FileExists(s.CategoriesFile) {
		s.logger.WithField("file", s.CategoriesFile).Debug("Categories file not found, using default vocabulary")
		return models.DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(s.CategoriesFile)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var cf categoriesFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	if len(cf.Categories) == 0 {
		return nil, &classerr.ConfigError{
			Field:  "categories",
			Reason: fmt.Sprintf("no categories defined in %s", s.CategoriesFile),
		}
	}

	s.logger.WithField("count", len(cf.Categories)).Debug("Loaded category vocabulary")
	return models.NewVocabulary(cf.Categories), nil
}

// Load reads the corpus and validates every record against the vocabulary.
// Duplicate descriptions with conflicting categories are flagged with
// CorpusConflictError rather than silently overwritten; exact duplicates
// collapse to one example. A missing corpus file yields an empty corpus.
func (s *Store) Load(vocab *models.Vocabulary) ([]models.TrainingExample, error) {
	if !fileutils.FileExists(s.CorpusFile) {
		s.logger.WithField("file", s.CorpusFile).Warn("Corpus file not found")
		return nil, nil
	}

	data, err := os.ReadFile(s.CorpusFile)
	if err != nil {
		return nil, fmt.Errorf("error reading corpus file: %w", err)
	}

	var records []models.TrainingExample
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing corpus file: %w", err)
	}

	seen := make(map[string]string, len(records))
	examples := make([]models.TrainingExample, 0, len(records))
	for _, record := range records {
		example, err := models.NewTrainingExample(record.Description, record.Category, vocab)
		if err != nil {
			return nil, fmt.Errorf("invalid corpus record %q: %w", record.Description, err)
		}
		if previous, ok := seen[example.Description]; ok {
			if previous != example.Category {
				return nil, &classerr.CorpusConflictError{
					Description: example.Description,
					Categories:  []string{previous, example.Category},
				}
			}
			continue
		}
		seen[example.Description] = example.Category
		examples = append(examples, example)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: s.CorpusFile},
		logging.Field{Key: "examples", Value: len(examples)},
	).Debug("Loaded training corpus")
	return examples, nil
}

// Append adds examples to the corpus file. Writers serialize on an advisory
// file lock; the rewrite itself goes through a temp file and atomic rename.
func (s *Store) Append(examples []models.TrainingExample, vocab *models.Vocabulary) error {
	if len(examples) == 0 {
		return nil
	}

	lock := flock.New(s.CorpusFile + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("error locking corpus file: %w", err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.WithError(err).Warn("Failed to release corpus lock")
		}
	}()

	existing, err := s.Load(vocab)
	if err != nil {
		return err
	}

	seen := make(map[string]string, len(existing))
	for _, example := range existing {
		seen[example.Description] = example.Category
	}

	appended := 0
	for _, example := range examples {
		if previous, ok := seen[example.Description]; ok {
			if previous != example.Category {
				return &classerr.CorpusConflictError{
					Description: example.Description,
					Categories:  []string{previous, example.Category},
				}
			}
			continue
		}
		seen[example.Description] = example.Category
		existing = append(existing, example)
		appended++
	}

	if appended == 0 {
		s.logger.Debug("No new corpus entries to append")
		return nil
	}

	data, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("error marshaling corpus: %w", err)
	}
	if err := fileutils.WriteFileAtomic(s.CorpusFile, data, 0644); err != nil {
		return fmt.Errorf("error writing corpus file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: s.CorpusFile},
		logging.Field{Key: "appended", Value: appended},
	).Info("Appended examples to training corpus")
	return nil
}
