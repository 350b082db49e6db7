package review

import (
	"fmt"
	"io"

	"fjacquet/txn-classify/internal/models"
)

// WriteReport renders review entries as a text listing for the curator,
// least-confident first (entries arrive pre-sorted from Filter).
func WriteReport(w io.Writer, entries []models.ReviewEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No predictions need review.")
		return err
	}

	if _, err := fmt.Fprintf(w, "%d predictions need review:\n", len(entries)); err != nil {
		return err
	}
	for _, entry := range entries {
		line := fmt.Sprintf("  %.3f  %-20s %s",
			entry.Prediction.Confidence, entry.Prediction.Category, entry.Prediction.Description)
		if entry.Suggestion != "" && entry.Suggestion != models.CategoryUnknown {
			line += fmt.Sprintf("  (suggested: %s)", entry.Suggestion)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
