package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrymomot/feedgate/feed"
)

// renderText prints a human-readable per-record report.
func renderText(w io.Writer, results []feed.Result) {
	for _, r := range results {
		if r.Valid() {
			fmt.Fprintf(w, "record %d: ok (%s)\n", r.Index, r.Item.ProductID)
			continue
		}
		fmt.Fprintf(w, "record %d: %d violation(s)\n", r.Index, len(r.Violations))
		for _, v := range r.Violations {
			fmt.Fprintf(w, "  %s: %s (%s)\n", v.Path, v.Message, v.Code)
		}
	}
}

// renderJSON prints the full result set as a JSON array.
func renderJSON(w io.Writer, results []feed.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
