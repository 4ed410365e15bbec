package pipeline

import (
	"fmt"
	"net/url"

	"github.com/sowtrack/seedscrape/models"
)

// State is the value threaded through each pipeline stage. Stages receive it
// and return an updated copy; nothing is captured by reference across
// branches, so a stage abandoned by the timeout race cannot corrupt the
// response being assembled.
type State struct {
	Request models.ScrapeRequest
	URL     *url.URL

	Meta       models.PageMeta
	Identity   models.Identity
	Extraction models.Extraction
	Category   string

	// AIExtracted is set when the structured extractor replaced the
	// heuristic stage for this request. AIVariety carries the model's
	// variety answer for when the resolver comes up empty.
	AIExtracted bool
	AIVariety   string

	// SearchInvoked/SearchProvided track the web-search fallback: invoked
	// means the call was made, provided means it contributed at least one
	// usable field.
	SearchInvoked  bool
	SearchProvided bool

	ImageError bool
	ErrorLog   []string
}

// LogError appends a stage failure to the error log.
func (s State) LogError(stage string, err error) State {
	if err == nil {
		return s
	}
	s.ErrorLog = append(s.ErrorLog, fmt.Sprintf("%s: %v", stage, err))
	return s
}

// Outcome assembles the final response payload from the state.
func (s State) Outcome(status models.ScrapeStatus) *models.ScrapeOutcome {
	out := &models.ScrapeOutcome{ScrapeStatus: status}
	out.ApplyIdentity(s.Identity)
	out.ApplyExtraction(&s.Extraction)
	out.ImageError = s.ImageError
	if len(s.ErrorLog) > 0 {
		out.ScrapeErrorLog = joinLog(s.ErrorLog)
	}
	return out
}

func joinLog(entries []string) string {
	log := entries[0]
	for _, e := range entries[1:] {
		log += "; " + e
	}
	return log
}
