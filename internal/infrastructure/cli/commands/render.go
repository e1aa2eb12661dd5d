package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/doeshing/movierec-go/internal/domain"
)

// renderRecommendation prints a numbered list and the source tag.
func renderRecommendation(out io.Writer, res domain.RecommendationResult) {
	fmt.Fprintf(out, "Recommendations (source: %s)\n", res.Source.WireName())
	for i, title := range res.Movies {
		fmt.Fprintf(out, "  %d. %s\n", i+1, title)
	}
}

// renderRecommendationJSON prints the same body the HTTP API returns.
func renderRecommendationJSON(out io.Writer, res domain.RecommendationResult) error {
	data, err := json.MarshalIndent(map[string]string{
		"movies": res.Raw(),
		"source": res.Source.WireName(),
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// renderProbe prints the diagnostic outcome in a flat key: value form.
func renderProbe(out io.Writer, res domain.ProbeResult) {
	fmt.Fprintf(out, "Status: %s\n", strings.ToUpper(string(res.Outcome)))
	fmt.Fprintf(out, "Message: %s\n", res.Message)
	if res.Result != "" {
		fmt.Fprintf(out, "Result: %s\n", res.Result)
	}
	if res.StatusCode != 0 {
		fmt.Fprintf(out, "HTTP status: %d\n", res.StatusCode)
	}
	if res.Kind != "" {
		fmt.Fprintf(out, "Error kind: %s\n", res.Kind)
	}
	if len(res.Details) > 0 {
		keys := make([]string, 0, len(res.Details))
		for k := range res.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(out, "Details:")
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %v\n", k, res.Details[k])
		}
	}
	if res.ErrorData != "" {
		fmt.Fprintf(out, "Body: %s\n", res.ErrorData)
	}
}

// renderEntries prints log entries one per line.
func renderEntries(out io.Writer, entries []domain.LogEntry) {
	for _, e := range entries {
		fmt.Fprintf(out, "%d | %s | %s | %s\n",
			e.ID,
			e.Timestamp.Format(domain.TimestampFormat),
			e.Input,
			e.Output)
	}
}
