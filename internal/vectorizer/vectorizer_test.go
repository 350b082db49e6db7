package vectorizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/txn-classify/internal/classerr"
)

func TestFit_EmptyCorpus(t *testing.T) {
	_, err := Fit(nil, DefaultConfig())
	var cfgErr *classerr.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFit_NoSurvivingTerms(t *testing.T) {
	_, err := Fit([]string{"   ", "to the"}, DefaultConfig())
	var cfgErr *classerr.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFit_Deterministic(t *testing.T) {
	corpus := []string{"CHIPOTLE USAPAVAFL", "GRAMMARLY CO", "WHOLE FOODS MARKET"}

	first, err := Fit(corpus, DefaultConfig())
	require.NoError(t, err)
	second, err := Fit(corpus, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first.Terms, second.Terms)
	assert.Equal(t, first.IDF, second.IDF)
	assert.IsIncreasing(t, first.Terms)
}

func TestFit_MinDocumentFrequency(t *testing.T) {
	corpus := []string{"alpha beta", "alpha gamma"}

	model, err := Fit(corpus, Config{MinDocumentFrequency: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, model.Terms)
}

func TestTransform_Normalized(t *testing.T) {
	model, err := Fit([]string{"CHIPOTLE USAPAVAFL", "GRAMMARLY CO"}, DefaultConfig())
	require.NoError(t, err)

	vector := model.Transform("CHIPOTLE USAPAVAFL")
	require.Len(t, vector, len(model.Terms))

	var norm float64
	for _, v := range vector {
		norm += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestTransform_OutOfVocabulary(t *testing.T) {
	model, err := Fit([]string{"CHIPOTLE USAPAVAFL", "GRAMMARLY CO"}, DefaultConfig())
	require.NoError(t, err)

	vector := model.Transform("UNKNOWN MERCHANT XYZ")
	for _, v := range vector {
		assert.Zero(t, v)
	}
}

func TestCoverage(t *testing.T) {
	model, err := Fit([]string{"CHIPOTLE USAPAVAFL", "GRAMMARLY CO"}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.0, model.Coverage("UNKNOWN MERCHANT XYZ"))
	assert.Equal(t, 1.0, model.Coverage("GRAMMARLY CO"))
	assert.InDelta(t, 0.5, model.Coverage("CHIPOTLE NOWHERE"), 1e-9)
	assert.Equal(t, 0.0, model.Coverage("   "))
}
