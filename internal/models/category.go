// Package models provides the data structures used throughout the application.
package models

// CategoryUnknown is the sentinel label for transactions the classifier could
// not place. It is a fallback, never a trainable class.
const CategoryUnknown = "unknown"

// DefaultCategories is the built-in vocabulary used when no categories file is
// present. Order is canonical: prediction ties break toward the lowest index.
var DefaultCategories = []string{
	"bills",
	"entertainment",
	"food",
	"groceries",
	"health",
	"insurance",
	"miscellaneous",
	"other",
	"personal care",
	"rent",
	"services",
	"shopping",
	"software",
	"subscriptions",
	"transportation",
	"utilities",
}

// Vocabulary is the ordered set of valid category labels plus the "unknown"
// sentinel. Every training example and every non-unknown prediction must carry
// a label from it.
type Vocabulary struct {
	labels []string
	index  map[string]int
}

// NewVocabulary builds a vocabulary from the given labels. Duplicates collapse
// to their first position and "unknown" is always appended last.
func NewVocabulary(labels []string) *Vocabulary {
	v := &Vocabulary{
		index: make(map[string]int, len(labels)+1),
	}
	for _, label := range labels {
		if label == CategoryUnknown {
			continue
		}
		if _, seen := v.index[label]; seen {
			continue
		}
		v.index[label] = len(v.labels)
		v.labels = append(v.labels, label)
	}
	v.index[CategoryUnknown] = len(v.labels)
	v.labels = append(v.labels, CategoryUnknown)
	return v
}

// DefaultVocabulary returns the built-in vocabulary.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(DefaultCategories)
}

// Labels returns the labels in canonical order, including "unknown".
func (v *Vocabulary) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)
	return out
}

// TrainableLabels returns the labels in canonical order without "unknown".
func (v *Vocabulary) TrainableLabels() []string {
	out := make([]string, 0, len(v.labels)-1)
	for _, label := range v.labels {
		if label != CategoryUnknown {
			out = append(out, label)
		}
	}
	return out
}

// Contains reports whether the label belongs to the vocabulary.
func (v *Vocabulary) Contains(label string) bool {
	_, ok := v.index[label]
	return ok
}

// Index returns the canonical position of the label, or -1 if absent.
func (v *Vocabulary) Index(label string) int {
	if i, ok := v.index[label]; ok {
		return i
	}
	return -1
}

// Len returns the number of labels including "unknown".
func (v *Vocabulary) Len() int {
	return len(v.labels)
}
