package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/txn-classify/internal/classerr"
)

func TestNewTrainingExample(t *testing.T) {
	vocab := NewVocabulary([]string{"food", "software"})

	example, err := NewTrainingExample("CHIPOTLE 123", "food", vocab)
	require.NoError(t, err)
	assert.Equal(t, "CHIPOTLE 123", example.Description)
	assert.Equal(t, "food", example.Category)
}

func TestNewTrainingExample_EmptyDescription(t *testing.T) {
	vocab := NewVocabulary([]string{"food"})

	_, err := NewTrainingExample("   ", "food", vocab)
	var cfgErr *classerr.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewTrainingExample_InvalidCategory(t *testing.T) {
	vocab := NewVocabulary([]string{"food"})

	_, err := NewTrainingExample("CHIPOTLE", "groceries", vocab)
	var catErr *classerr.InvalidCategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "groceries", catErr.Category)
}

func TestNewTrainingExample_UnknownRejected(t *testing.T) {
	vocab := NewVocabulary([]string{"food"})

	_, err := NewTrainingExample("CHIPOTLE", CategoryUnknown, vocab)
	var catErr *classerr.InvalidCategoryError
	assert.ErrorAs(t, err, &catErr)
}

func TestPredictionNeedsReview(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		threshold  float64
		expected   bool
	}{
		{"below threshold", 0.2, 0.3, true},
		{"exactly at threshold", 0.3, 0.3, true},
		{"above threshold", 0.31, 0.3, false},
		{"zero confidence", 0.0, 0.3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Prediction{Description: "X", Category: "food", Confidence: tc.confidence}
			assert.Equal(t, tc.expected, p.NeedsReview(tc.threshold))
		})
	}
}
