// Package vectorizer converts raw transaction descriptions into fixed-width
// TF-IDF feature vectors for the statistical classifier.
package vectorizer

import (
	"math"
	"sort"

	"fjacquet/txn-classify/internal/classerr"
)

// Config holds the fitting parameters. The same configuration over the same
// corpus always yields the same FeatureModel.
type Config struct {
	// MinDocumentFrequency drops terms appearing in fewer documents.
	MinDocumentFrequency int
}

// DefaultConfig returns the fitting defaults.
func DefaultConfig() Config {
	return Config{MinDocumentFrequency: 1}
}

// FeatureModel is the fitted vectorizer state: the term vocabulary and its
// inverse-document-frequency weights. Read-only after fitting; a retrain
// produces a fresh model rather than mutating this one.
type FeatureModel struct {
	Fingerprint          string    `yaml:"fingerprint"`
	MinDocumentFrequency int       `yaml:"min_document_frequency"`
	Terms                []string  `yaml:"terms"`
	IDF                  []float64 `yaml:"idf"`

	index map[string]int
}

// Fit builds a FeatureModel from the corpus descriptions. Terms are sorted so
// the feature space is deterministic. Fails with ConfigError when the corpus
// is empty or produces no vocabulary.
func Fit(corpus []string, cfg Config) (*FeatureModel, error) {
	if len(corpus) == 0 {
		return nil, &classerr.ConfigError{
			Field:  "corpus",
			Reason: "cannot fit feature extractor on an empty corpus",
		}
	}
	if cfg.MinDocumentFrequency < 1 {
		cfg.MinDocumentFrequency = 1
	}

	// Document frequency per term
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, token := range Tokenize(text) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			df[token]++
		}
	}

	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count >= cfg.MinDocumentFrequency {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, &classerr.ConfigError{
			Field:  "corpus",
			Reason: "corpus produced no vocabulary terms",
		}
	}
	sort.Strings(terms)

	// Smoothed IDF, as if one extra document contained every term
	n := float64(len(corpus))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	model := &FeatureModel{
		MinDocumentFrequency: cfg.MinDocumentFrequency,
		Terms:                terms,
		IDF:                  idf,
	}
	model.buildIndex()
	return model, nil
}

// Transform converts text into an L2-normalized tf-idf vector over the fitted
// vocabulary. Text with only out-of-vocabulary terms yields the zero vector,
// never an error.
func (m *FeatureModel) Transform(text string) []float64 {
	m.ensureIndex()

	vector := make([]float64, len(m.Terms))
	for _, token := range Tokenize(text) {
		if i, ok := m.index[token]; ok {
			vector[i] += m.IDF[i]
		}
	}

	var norm float64
	for _, v := range vector {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector
}

// Coverage returns the fraction of the text's tokens present in the fitted
// vocabulary, in [0,1]. Zero means the transform is the zero vector.
func (m *FeatureModel) Coverage(text string) float64 {
	m.ensureIndex()

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}
	matched := 0
	for _, token := range tokens {
		if _, ok := m.index[token]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}

func (m *FeatureModel) ensureIndex() {
	if m.index == nil {
		m.buildIndex()
	}
}

func (m *FeatureModel) buildIndex() {
	m.index = make(map[string]int, len(m.Terms))
	for i, term := range m.Terms {
		m.index[term] = i
	}
}
