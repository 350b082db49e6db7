package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/txn-classify/internal/classerr"
	"fjacquet/txn-classify/internal/models"
	"fjacquet/txn-classify/internal/vectorizer"
)

func fitScenario(t *testing.T) (*vectorizer.FeatureModel, *Model) {
	t.Helper()

	corpus := []string{
		"CHIPOTLE USAPAVAFL", "CHIPOTLE USAPAVAFL", "CHIPOTLE USAPAVAFL",
		"GRAMMARLY CO", "GRAMMARLY CO", "GRAMMARLY CO",
	}
	labels := []string{"food", "food", "food", "software", "software", "software"}

	feature, err := vectorizer.Fit(corpus, vectorizer.DefaultConfig())
	require.NoError(t, err)

	vectors := make([][]float64, len(corpus))
	for i, text := range corpus {
		vectors[i] = feature.Transform(text)
	}

	model, err := Train(vectors, labels, models.DefaultVocabulary())
	require.NoError(t, err)
	return feature, model
}

func TestTrain_EmptyData(t *testing.T) {
	_, err := Train(nil, nil, models.DefaultVocabulary())
	var cfgErr *classerr.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestTrain_MismatchedLengths(t *testing.T) {
	_, err := Train([][]float64{{1}}, []string{"food", "rent"}, models.DefaultVocabulary())
	var cfgErr *classerr.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestTrain_SingleCategory(t *testing.T) {
	vectors := [][]float64{{1, 0}, {0, 1}}
	_, err := Train(vectors, []string{"food", "food"}, models.DefaultVocabulary())

	var dataErr *classerr.InsufficientDataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 2, dataErr.Examples)
	assert.Equal(t, 1, dataErr.Categories)
}

func TestTrain_LabelsInVocabularyOrder(t *testing.T) {
	vectors := [][]float64{{1, 0}, {0, 1}}
	model, err := Train(vectors, []string{"software", "food"}, models.DefaultVocabulary())
	require.NoError(t, err)

	assert.Equal(t, []string{"food", "software"}, model.Labels)
}

func TestPredict_SeparatesCategories(t *testing.T) {
	feature, model := fitScenario(t)

	category, confidence := model.Predict(feature.Transform("CHIPOTLE USAPAVAFL"))
	assert.Equal(t, "food", category)
	assert.Greater(t, confidence, 0.5)

	category, confidence = model.Predict(feature.Transform("GRAMMARLY CO"))
	assert.Equal(t, "software", category)
	assert.Greater(t, confidence, 0.5)
}

func TestProba_SumsToOne(t *testing.T) {
	feature, model := fitScenario(t)

	probs := model.Proba(feature.Transform("CHIPOTLE USAPAVAFL"))
	require.Len(t, probs, len(model.Labels))

	var sum float64
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestPredict_TieBreaksToCanonicalOrder(t *testing.T) {
	// Identical evidence for both classes forces equal posteriors
	vectors := [][]float64{{1, 0}, {1, 0}}
	model, err := Train(vectors, []string{"software", "food"}, models.DefaultVocabulary())
	require.NoError(t, err)

	category, confidence := model.Predict([]float64{1, 0})
	assert.Equal(t, "food", category)
	assert.InDelta(t, 0.5, confidence, 1e-9)
}

func TestPredict_Deterministic(t *testing.T) {
	feature, model := fitScenario(t)

	vector := feature.Transform("CHIPOTLE 123")
	firstCategory, firstConfidence := model.Predict(vector)
	for i := 0; i < 10; i++ {
		category, confidence := model.Predict(vector)
		assert.Equal(t, firstCategory, category)
		assert.Equal(t, firstConfidence, confidence)
	}
}
