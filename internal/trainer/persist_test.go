package trainer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/txn-classify/internal/models"
)

func TestSaveModels(t *testing.T) {
	tr := New(models.DefaultVocabulary(), DefaultConfig(), nil)
	result, err := tr.Train(scenarioExamples())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "models")
	require.NoError(t, SaveModels(dir, result.Feature, result.Classifier))

	assert.FileExists(t, filepath.Join(dir, FeatureModelFile))
	assert.FileExists(t, filepath.Join(dir, ClassifierModelFile))

	// No temp leftovers after the atomic renames
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSaveModels_RefusesUnpairedSet(t *testing.T) {
	tr := New(models.DefaultVocabulary(), DefaultConfig(), nil)
	result, err := tr.Train(scenarioExamples())
	require.NoError(t, err)

	result.Classifier.Fingerprint = "tampered"
	err = SaveModels(t.TempDir(), result.Feature, result.Classifier)
	assert.Error(t, err)
}

func TestSaveModels_RefusesEmptyFingerprint(t *testing.T) {
	tr := New(models.DefaultVocabulary(), DefaultConfig(), nil)
	result, err := tr.Train(scenarioExamples())
	require.NoError(t, err)

	result.Feature.Fingerprint = ""
	result.Classifier.Fingerprint = ""
	err = SaveModels(t.TempDir(), result.Feature, result.Classifier)
	assert.Error(t, err)
}
