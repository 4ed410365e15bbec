// Package pipeline sequences fetch, extraction, defaults, and the AI
// fallbacks under a single global timeout race, assembling one ScrapeOutcome
// per request.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/sowtrack/seedscrape/config"
	"github.com/sowtrack/seedscrape/defaults"
	"github.com/sowtrack/seedscrape/fetch"
	"github.com/sowtrack/seedscrape/identity"
	"github.com/sowtrack/seedscrape/llm"
	"github.com/sowtrack/seedscrape/metadata"
	"github.com/sowtrack/seedscrape/models"
	"github.com/sowtrack/seedscrape/sanitize"
	"github.com/sowtrack/seedscrape/vendors"
)

// PageFetcher retrieves vendor pages and probes image URLs.
type PageFetcher interface {
	Page(ctx context.Context, targetURL string) *fetch.Result
	ProbeImage(ctx context.Context, imageURL string) bool
}

// Extractor is the credential-gated structured extraction stage.
type Extractor interface {
	Enabled() bool
	ExtractListing(ctx context.Context, pageText string) (*llm.Listing, error)
}

// Searcher is the credential-gated web-search fallback stage.
type Searcher interface {
	Enabled() bool
	Search(ctx context.Context, query string) (answer, combined string, err error)
}

// Orchestrator runs the scrape pipeline.
type Orchestrator struct {
	cfg      *config.Config
	fetcher  PageFetcher
	registry *vendors.Registry
	resolver *identity.Resolver
	ai       Extractor
	search   Searcher
	log      *slog.Logger
}

func New(cfg *config.Config, fetcher PageFetcher, registry *vendors.Registry,
	resolver *identity.Resolver, ai Extractor, search Searcher, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		cfg:      cfg,
		fetcher:  fetcher,
		registry: registry,
		resolver: resolver,
		ai:       ai,
		search:   search,
		log:      log,
	}
}

// Run executes the pipeline for one request, racing it against the global
// timeout. The loser of the race is abandoned; its context is cancelled so
// in-flight sub-calls stop. Run never returns nil and never panics.
func (o *Orchestrator) Run(ctx context.Context, req models.ScrapeRequest) *models.ScrapeOutcome {
	u, err := url.Parse(req.URL)
	if err != nil || u.Host == "" {
		return &models.ScrapeOutcome{
			ScrapeStatus:   models.StatusFailed,
			ScrapeErrorLog: fmt.Sprintf("invalid url: %v", err),
		}
	}
	st := State{Request: req, URL: u}

	runCtx, cancel := context.WithTimeout(ctx, o.cfg.Pipeline.GlobalTimeout)
	defer cancel()

	done := make(chan *models.ScrapeOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				o.log.Error("pipeline panic recovered", "url", req.URL, "panic", r)
				done <- o.safetyResponse(st.LogError("pipeline", fmt.Errorf("panic: %v", r)))
			}
		}()
		done <- o.run(runCtx, st)
	}()

	select {
	case out := <-done:
		return out
	case <-runCtx.Done():
		o.log.Warn("pipeline timed out", "url", req.URL, "timeout", o.cfg.Pipeline.GlobalTimeout)
		return o.timeoutFallback(ctx, st)
	}
}

// run is the main state machine: Fetch → {Blocked, Error, Fetched} →
// extract → defaults → classify → optional search → finalize.
func (o *Orchestrator) run(ctx context.Context, st State) *models.ScrapeOutcome {
	res := o.fetcher.Page(ctx, st.Request.URL)
	switch res.Kind {
	case fetch.KindBlocked:
		o.log.Info("vendor blocked request, taking identity-only path",
			"url", st.Request.URL, "status", res.StatusCode)
		return o.blockedPath(ctx, st.LogError("fetch", res.Err))
	case fetch.KindError:
		return o.safetyResponse(st.LogError("fetch", res.Err))
	}

	st.Meta = metadata.Extract(res.HTML)

	st = o.extract(ctx, st, res)
	st.Identity = o.resolver.Resolve(st.URL, st.Meta.Title, st.Meta.SiteName, st.Request.KnownPlantTypes)
	if st.Identity.VarietyName == "" && st.AIVariety != "" && !strings.EqualFold(st.AIVariety, st.Identity.PlantName) {
		st.Identity.VarietyName = identity.TitleCase(st.AIVariety)
	}
	st.Category = defaults.ResolveCategory(typeHint(st.Request.KnownPlantTypes), st.Identity.PlantName)

	if st.AIExtracted {
		llm.ScheduleBackfill(&st.Extraction, o.cfg.AI.Region, st.Category)
	}
	defaults.Apply(&st.Extraction, st.Category)

	if NeedsSearch(&st.Extraction) && !st.Request.SkipAiFallback {
		st = o.searchFallback(ctx, st)
	}
	st = o.probeImage(ctx, st)

	return st.Outcome(Classify(&st.Extraction, st.SearchProvided))
}

// extract runs the structured extractor when configured, falling back to the
// vendor/generic heuristic parser. A successful AI pass replaces the
// heuristic stage entirely.
func (o *Orchestrator) extract(ctx context.Context, st State, res *fetch.Result) State {
	if o.ai != nil && o.ai.Enabled() {
		listing, err := o.ai.ExtractListing(ctx, pageText(st.Meta, res.HTML))
		if err == nil {
			st.Extraction = listingExtraction(listing)
			st.AIExtracted = true
			st.AIVariety = sanitize.CleanSpec(listing.VarietyName, 80)
			// Image and free text still come from the page itself, but the
			// growing-spec fields belong to the model and the schedule
			// backfill alone; heuristic spec values never ride along.
			page := &vendors.Page{HTML: res.HTML, Origin: res.Origin, Meta: st.Meta}
			st.Extraction = st.Extraction.MergeFreeText(o.registry.Generic().Parse(page))
			return st
		}
		o.log.Debug("structured extraction unavailable", "url", st.Request.URL, "error", err)
	}

	page := &vendors.Page{HTML: res.HTML, Origin: res.Origin, Meta: st.Meta}
	parser := o.registry.For(st.URL.Host)
	if ext := parser.Parse(page); ext != nil {
		st.Extraction = *ext
	}
	return st
}

// searchFallback runs the web-search stage and folds any parsed fields over
// missing or default-derived values. Failures degrade silently.
func (o *Orchestrator) searchFallback(ctx context.Context, st State) State {
	if o.search == nil || !o.search.Enabled() {
		return st
	}
	query := llm.BuildQuery(searchSubject(st.Identity), st.Category)
	if query == "" {
		return st
	}

	st.SearchInvoked = true
	answer, combined, err := o.search.Search(ctx, query)
	if err != nil {
		o.log.Debug("search fallback failed", "url", st.Request.URL, "error", err)
		return st.LogError("search", err)
	}

	found := llm.ParseProse(answer, combined)
	st.Extraction, st.SearchProvided = foldSearch(st.Extraction, found)
	return st
}

// probeImage checks that the extracted image URL answers a HEAD request with
// an image content type. Failure only flags image_error.
func (o *Orchestrator) probeImage(ctx context.Context, st State) State {
	if st.Extraction.ImageURL == "" {
		return st
	}
	if !o.fetcher.ProbeImage(ctx, st.Extraction.ImageURL) {
		st.ImageError = true
	}
	return st
}

// blockedPath handles a 403/404 vendor response: identity from the URL
// alone, defaults for whatever category that yields, and one optional
// search attempt.
func (o *Orchestrator) blockedPath(ctx context.Context, st State) *models.ScrapeOutcome {
	st.Identity = o.resolver.Resolve(st.URL, "", "", st.Request.KnownPlantTypes)
	st.Category = defaults.ResolveCategory(typeHint(st.Request.KnownPlantTypes), st.Identity.PlantName)

	if !st.Request.SkipAiFallback {
		st = o.searchFallback(ctx, st)
	}
	defaults.Apply(&st.Extraction, st.Category)

	status := models.StatusPartial
	if st.SearchProvided {
		status = models.StatusAISearch
	}
	return st.Outcome(status)
}

// timeoutFallback handles a trip of the global timeout: identity from the
// URL plus one best-effort search on a fresh budget, then give up.
func (o *Orchestrator) timeoutFallback(ctx context.Context, st State) *models.ScrapeOutcome {
	st = st.LogError("pipeline", models.NewScrapeError(models.ErrCodeTimeout, "global scrape timeout exceeded", nil))
	st.Identity = o.resolver.Resolve(st.URL, "", "", st.Request.KnownPlantTypes)
	st.Category = defaults.ResolveCategory(typeHint(st.Request.KnownPlantTypes), st.Identity.PlantName)

	if !st.Request.SkipAiFallback && o.search != nil && o.search.Enabled() {
		searchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.cfg.AI.SearchTimeout)
		defer cancel()
		st = o.searchFallback(searchCtx, st)
	}
	if st.SearchProvided {
		defaults.Apply(&st.Extraction, st.Category)
		return st.Outcome(models.StatusAISearch)
	}
	return o.safetyResponse(st)
}

// safetyResponse is the degraded terminal payload: whatever identity and
// metadata survived, status Failed.
func (o *Orchestrator) safetyResponse(st State) *models.ScrapeOutcome {
	if st.Identity.PlantName == "" && st.URL != nil {
		st.Identity = o.resolver.Resolve(st.URL, st.Meta.Title, st.Meta.SiteName, st.Request.KnownPlantTypes)
	}
	if st.Extraction.PlantDescription == "" {
		st.Extraction.PlantDescription = st.Meta.Description
	}
	if st.Extraction.ImageURL == "" {
		st.Extraction.ImageURL = st.Meta.Image
	}
	return st.Outcome(models.StatusFailed)
}

// foldSearch overlays parsed search fields onto fields that are empty or
// default-derived, reporting whether anything changed.
func foldSearch(base models.Extraction, found models.Extraction) (models.Extraction, bool) {
	changed := false
	overlay := func(dst *models.Field, src models.Field) {
		if src.Empty() {
			return
		}
		if dst.Empty() || dst.Source == models.SourceDefault {
			*dst = src
			changed = true
		}
	}
	overlay(&base.Sun, found.Sun)
	overlay(&base.PlantSpacing, found.PlantSpacing)
	overlay(&base.DaysToGermination, found.DaysToGermination)
	overlay(&base.HarvestDays, found.HarvestDays)
	return base, changed
}

// listingExtraction maps the structured extractor's reply onto an Extraction.
func listingExtraction(l *llm.Listing) models.Extraction {
	var ext models.Extraction
	ext.Sun.Set(sanitize.CleanSpec(l.SunRequirements, 60))
	ext.HarvestDays.Set(sanitize.CleanSpec(l.DaysToMaturity, 60))
	if depth := sanitize.CleanSpec(l.SowingDepth, 60); depth != "" {
		ext.VendorNotes = "Sowing depth: " + depth
	}
	return ext
}

// pageText builds the bounded text blob sent to the structured extractor.
func pageText(meta models.PageMeta, html string) string {
	const maxHTML = 60000
	if len(html) > maxHTML {
		html = html[:maxHTML]
	}
	var b strings.Builder
	b.WriteString(meta.Title)
	b.WriteString("\n")
	b.WriteString(meta.Description)
	b.WriteString("\n")
	b.WriteString(sanitize.Clean(html))
	return b.String()
}

func typeHint(knownTypes []string) string {
	if len(knownTypes) == 0 {
		return ""
	}
	return knownTypes[0]
}

// searchSubject prefers the variety name, falling back to the plant name.
func searchSubject(id models.Identity) string {
	if id.VarietyName != "" {
		return id.VarietyName
	}
	return id.PlantName
}
