package classerr

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ConfigError{Field: "corpus", Reason: "empty"}).Error(), "corpus")
	assert.Contains(t, (&InsufficientDataError{Examples: 3, Categories: 1, Reason: "need contrast"}).Error(), "3 examples")
	assert.Contains(t, (&ModelMismatchError{FeatureFingerprint: "a", ClassifierFingerprint: "b"}).Error(), "mismatch")
	assert.Contains(t, (&CorpusConflictError{Description: "CHIPOTLE", Categories: []string{"food", "shopping"}}).Error(), "CHIPOTLE")
	assert.Contains(t, (&InvalidCategoryError{Category: "nope"}).Error(), "nope")
}

func TestModelNotFoundUnwrap(t *testing.T) {
	err := &ModelNotFoundError{Path: "models/feature_model.yaml", Err: os.ErrNotExist}
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
