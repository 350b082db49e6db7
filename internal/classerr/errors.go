// Package classerr defines the typed errors surfaced by the training and
// prediction pipeline. Callers match them with errors.As.
package classerr

import "fmt"

// ConfigError reports an invalid or empty training configuration, such as an
// empty corpus handed to the feature extractor.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Reason)
}

// InsufficientDataError reports a training set too small or too uniform to
// learn from.
type InsufficientDataError struct {
	Examples   int
	Categories int
	Reason     string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient training data (%d examples, %d categories): %s",
		e.Examples, e.Categories, e.Reason)
}

// ModelNotFoundError reports a missing model artifact on disk.
type ModelNotFoundError struct {
	Path string
	Err  error
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model artifact not found at %s: %v", e.Path, e.Err)
}

func (e *ModelNotFoundError) Unwrap() error {
	return e.Err
}

// ModelMismatchError reports a feature model and classifier model whose
// pairing fingerprints disagree. The pair must never be used together.
type ModelMismatchError struct {
	FeatureFingerprint    string
	ClassifierFingerprint string
}

func (e *ModelMismatchError) Error() string {
	return fmt.Sprintf("model pair mismatch: feature model fingerprint %q does not match classifier fingerprint %q",
		e.FeatureFingerprint, e.ClassifierFingerprint)
}

// CorpusConflictError reports the same description mapped to different
// categories within one training run.
type CorpusConflictError struct {
	Description string
	Categories  []string
}

func (e *CorpusConflictError) Error() string {
	return fmt.Sprintf("corpus conflict: description %q mapped to multiple categories %v",
		e.Description, e.Categories)
}

// InvalidCategoryError reports a label outside the category vocabulary.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("category %q is not in the category vocabulary", e.Category)
}
