// Package classifier implements a multinomial naive Bayes model over tf-idf
// feature vectors, producing a category plus the probability mass behind it.
package classifier

import (
	"math"
	"sort"

	"fjacquet/txn-classify/internal/classerr"
	"fjacquet/txn-classify/internal/models"
)

const smoothingAlpha = 1.0

// Model is the fitted classifier state: per-class log priors and per-feature
// log likelihoods. Classes are stored in the vocabulary's canonical order so
// argmax ties resolve deterministically toward the lowest index. Read-only
// after training.
type Model struct {
	Fingerprint    string      `yaml:"fingerprint"`
	Labels         []string    `yaml:"labels"`
	ClassLogPrior  []float64   `yaml:"class_log_prior"`
	FeatureLogProb [][]float64 `yaml:"feature_log_prob"`
}

// Train fits the model on parallel slices of feature vectors and category
// labels. Fails with InsufficientDataError when fewer than two distinct
// categories are present: a classifier needs contrast to learn.
func Train(vectors [][]float64, labels []string, vocab *models.Vocabulary) (*Model, error) {
	if len(vectors) == 0 || len(vectors) != len(labels) {
		return nil, &classerr.ConfigError{
			Field:  "training data",
			Reason: "feature vectors and labels must be non-empty and parallel",
		}
	}

	classCounts := make(map[string]int)
	for _, label := range labels {
		classCounts[label]++
	}
	if len(classCounts) < 2 {
		return nil, &classerr.InsufficientDataError{
			Examples:   len(labels),
			Categories: len(classCounts),
			Reason:     "at least 2 distinct categories are required",
		}
	}

	classes := make([]string, 0, len(classCounts))
	for label := range classCounts {
		classes = append(classes, label)
	}
	sort.Slice(classes, func(i, j int) bool {
		return vocab.Index(classes[i]) < vocab.Index(classes[j])
	})
	classIndex := make(map[string]int, len(classes))
	for i, label := range classes {
		classIndex[label] = i
	}

	featureCount := len(vectors[0])
	totals := make([]float64, len(classes))
	counts := make([][]float64, len(classes))
	for i := range counts {
		counts[i] = make([]float64, featureCount)
	}
	for i, vector := range vectors {
		c := classIndex[labels[i]]
		for t, weight := range vector {
			counts[c][t] += weight
			totals[c] += weight
		}
	}

	model := &Model{
		Labels:         classes,
		ClassLogPrior:  make([]float64, len(classes)),
		FeatureLogProb: make([][]float64, len(classes)),
	}
	n := float64(len(labels))
	for c, label := range classes {
		model.ClassLogPrior[c] = math.Log(float64(classCounts[label]) / n)
		model.FeatureLogProb[c] = make([]float64, featureCount)
		denominator := totals[c] + smoothingAlpha*float64(featureCount)
		for t := 0; t < featureCount; t++ {
			model.FeatureLogProb[c][t] = math.Log((counts[c][t] + smoothingAlpha) / denominator)
		}
	}
	return model, nil
}

// Proba returns the posterior probability of each class for the given feature
// vector, parallel to Labels. Probabilities sum to 1.
func (m *Model) Proba(vector []float64) []float64 {
	joint := make([]float64, len(m.Labels))
	for c := range m.Labels {
		score := m.ClassLogPrior[c]
		for t, weight := range vector {
			if weight != 0 {
				score += weight * m.FeatureLogProb[c][t]
			}
		}
		joint[c] = score
	}

	// Normalize with log-sum-exp for numerical stability
	max := joint[0]
	for _, score := range joint[1:] {
		if score > max {
			max = score
		}
	}
	var sum float64
	probs := make([]float64, len(joint))
	for c, score := range joint {
		probs[c] = math.Exp(score - max)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs
}

// Predict returns the argmax class and its probability mass. Ties break toward
// the lowest canonical index because classes are stored in vocabulary order
// and only a strictly greater probability displaces the current winner.
func (m *Model) Predict(vector []float64) (string, float64) {
	probs := m.Proba(vector)
	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return m.Labels[best], probs[best]
}
