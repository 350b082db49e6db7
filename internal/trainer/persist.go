package trainer

import (
	"fmt"
	"path/filepath"

	"fjacquet/txn-classify/internal/classifier"
	"fjacquet/txn-classify/internal/fileutils"
	"fjacquet/txn-classify/internal/vectorizer"

	"gopkg.in/yaml.v3"
)

// Model artifact file names inside the model directory.
const (
	FeatureModelFile    = "feature_model.yaml"
	ClassifierModelFile = "classifier_model.yaml"
)

// SaveModels persists the matched pair into dir. Each artifact is written to a
// temp file and atomically renamed. Both carry the same pairing fingerprint,
// so even a crash between the two renames can never produce a loadable
// mismatched pair: the loader compares fingerprints and refuses.
func SaveModels(dir string, feature *vectorizer.FeatureModel, model *classifier.Model) error {
	if feature.Fingerprint == "" || feature.Fingerprint != model.Fingerprint {
		return fmt.Errorf("refusing to save an unpaired model set")
	}

	featureData, err := yaml.Marshal(feature)
	if err != nil {
		return fmt.Errorf("marshaling feature model: %w", err)
	}
	classifierData, err := yaml.Marshal(model)
	if err != nil {
		return fmt.Errorf("marshaling classifier model: %w", err)
	}

	if err := fileutils.WriteFileAtomic(filepath.Join(dir, FeatureModelFile), featureData, 0644); err != nil {
		return fmt.Errorf("writing feature model: %w", err)
	}
	if err := fileutils.WriteFileAtomic(filepath.Join(dir, ClassifierModelFile), classifierData, 0644); err != nil {
		return fmt.Errorf("writing classifier model: %w", err)
	}
	return nil
}
