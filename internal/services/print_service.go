// Package services – PrintService
//
// This file implements PrintService, the query engine over legislative
// prints. The Sejm API returns a whole term in one response, so every query
// is answered by fetching that list, enriching each print, then filtering,
// sorting and slicing in memory. Finished pages are cached per query with a
// fixed TTL: results inside one cache window are stable, and the next window
// re-evaluates the time-dependent status and age of every print.
//
// Observability: public methods are OpenTelemetry-instrumented and cache
// lookups are counted in Prometheus.
package services

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/tbourn/sejm-prints-backend/internal/cache"
	"github.com/tbourn/sejm-prints-backend/internal/classify"
	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/observability"
	"github.com/tbourn/sejm-prints-backend/internal/search"
	"github.com/tbourn/sejm-prints-backend/internal/sejm"
	"github.com/tbourn/sejm-prints-backend/internal/sysutil"
)

const (
	DefaultLimit    = 20
	MaxLimit        = 100
	DefaultCacheTTL = 30 * time.Minute
	maxSearchRunes  = 200
)

// PrintQuery selects a page of prints. Type and Status accept "all" or "" for
// no filter; Type also accepts short aliases such as "rządowy".
type PrintQuery struct {
	Limit  int
	Offset int
	Type   string
	Status string
	Search string
}

// PrintService answers print queries against a PrintSource.
type PrintService struct {
	Source  PrintSource
	Pages   cache.Cache[domain.PrintPage]
	Details cache.Cache[domain.PrintDetails]
	TTL     time.Duration
	Clock   sysutil.Clock

	group singleflight.Group
}

// NewPrintService wires a PrintService with in-memory caches sharing clock.
// A non-positive ttl selects DefaultCacheTTL.
func NewPrintService(src PrintSource, ttl time.Duration, clock sysutil.Clock) *PrintService {
	if clock == nil {
		clock = sysutil.SystemClock
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &PrintService{
		Source:  src,
		Pages:   cache.NewMemory[domain.PrintPage](clock),
		Details: cache.NewMemory[domain.PrintDetails](clock),
		TTL:     ttl,
		Clock:   clock,
	}
}

// FetchPrints returns one page of enriched prints matching q.
//
// Semantics:
//   - Limit defaults to DefaultLimit and is capped at MaxLimit; a negative
//     Offset is treated as 0.
//   - An unknown Type or Status yields ErrInvalidFilter.
//   - A cached page for the same normalized query is returned verbatim.
//   - Otherwise the full list is fetched once, enriched at a single instant,
//     filtered, sorted by delivery date (newest first, ties by number
//     descending) and sliced. Total counts the filtered list.
//   - Upstream failures are wrapped in ErrPrintsUnavailable and not cached.
func (s *PrintService) FetchPrints(ctx context.Context, q PrintQuery) (*domain.PrintPage, error) {
	tr := otel.Tracer("services/PrintService")
	ctx, span := tr.Start(ctx, "FetchPrints",
		trace.WithAttributes(
			attribute.Int("limit", q.Limit),
			attribute.Int("offset", q.Offset),
			attribute.String("type", q.Type),
			attribute.String("status", q.Status),
		),
	)
	defer span.End()

	nq, typ, status, err := normalizeQuery(q)
	if err != nil {
		return nil, err
	}

	key := s.pageKey(nq, typ, status)
	if page, ok := s.Pages.Get(key); ok {
		observability.ObserveCache("prints", true)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return clonePage(page), nil
	}
	observability.ObserveCache("prints", false)

	// Identical concurrent misses share one upstream call. The call outlives
	// any single caller; a caller whose ctx ends stops waiting for it.
	ch := s.group.DoChan(key, func() (any, error) {
		if page, ok := s.Pages.Get(key); ok {
			return page, nil
		}
		raw, err := s.Source.ListPrints(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		page := s.buildPage(raw, nq, typ, status)
		s.Pages.Set(key, page, s.TTL)
		return page, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return nil, ctx.Err()
	}
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
		log.Warn().Err(res.Err).Str("component", "prints").Msg("fetch prints failed")
		return nil, fmt.Errorf("%w: %w", ErrPrintsUnavailable, res.Err)
	}
	return clonePage(res.Val.(domain.PrintPage)), nil
}

// FetchPrintDetails returns a single enriched print with its PDF and
// process links. Details are cached independently of list pages.
func (s *PrintService) FetchPrintDetails(ctx context.Context, number string) (*domain.PrintDetails, error) {
	tr := otel.Tracer("services/PrintService")
	ctx, span := tr.Start(ctx, "FetchPrintDetails",
		trace.WithAttributes(attribute.String("print.number", number)),
	)
	defer span.End()

	number = strings.TrimSpace(number)
	if !ValidPrintNumber(number) {
		return nil, ErrInvalidPrintNumber
	}

	key := fmt.Sprintf("print:%d:%s", s.Source.Term(), number)
	if d, ok := s.Details.Get(key); ok {
		observability.ObserveCache("print_details", true)
		return &d, nil
	}
	observability.ObserveCache("print_details", false)

	p, err := s.Source.GetPrint(ctx, number)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if sejm.IsNotFound(err) {
			return nil, ErrPrintNotFound
		}
		log.Warn().Err(err).Str("component", "prints").Str("print", number).Msg("fetch print failed")
		return nil, fmt.Errorf("%w: %w", ErrPrintsUnavailable, err)
	}

	d := domain.PrintDetails{
		EnrichedPrint: classify.Enrich(*p, s.Clock.Now()),
		FullPDFURL:    s.Source.PDFURL(p.Number),
		ProcessURL:    s.Source.ProcessURL(p.ProcessPrint),
	}
	s.Details.Set(key, d, s.TTL)
	return &d, nil
}

func (s *PrintService) buildPage(raw []domain.Print, q PrintQuery, typ domain.PrintType, status domain.PrintStatus) domain.PrintPage {
	enriched := classify.EnrichAll(raw, s.Clock.Now())

	filtered := make([]domain.EnrichedPrint, 0, len(enriched))
	for _, p := range enriched {
		if typ != "" && p.Type != typ {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		filtered = append(filtered, p)
	}

	if q.Search != "" {
		titles := make([]string, len(filtered))
		for i, p := range filtered {
			titles[i] = p.Title
		}
		hits := search.NewIndex(titles).Match(q.Search)
		matched := make([]domain.EnrichedPrint, 0, len(hits))
		for _, i := range hits {
			matched = append(matched, filtered[i])
		}
		filtered = matched
	}

	sortNewestFirst(filtered)

	total := len(filtered)
	start := min(q.Offset, total)
	end := total
	if q.Limit < total-start {
		end = start + q.Limit
	}

	items := make([]domain.EnrichedPrint, end-start)
	copy(items, filtered[start:end])

	return domain.PrintPage{
		Prints: items,
		Pagination: domain.Pagination{
			Total:   total,
			Limit:   q.Limit,
			Offset:  q.Offset,
			HasMore: end < total,
		},
	}
}

// clonePage copies the item slice so callers cannot modify a cached page.
func clonePage(page domain.PrintPage) *domain.PrintPage {
	page.Prints = slices.Clone(page.Prints)
	return &page
}

func (s *PrintService) pageKey(q PrintQuery, typ domain.PrintType, status domain.PrintStatus) string {
	return fmt.Sprintf("prints:%d:%d:%d:%s:%s:%s", s.Source.Term(), q.Limit, q.Offset, typ, status, strings.ToLower(q.Search))
}

// normalizeQuery applies limit/offset defaults and resolves filters.
func normalizeQuery(q PrintQuery) (PrintQuery, domain.PrintType, domain.PrintStatus, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	typ, ok := classify.ResolveType(q.Type)
	if !ok {
		return q, "", "", fmt.Errorf("%w: type %q", ErrInvalidFilter, q.Type)
	}
	status, ok := classify.ResolveStatus(q.Status)
	if !ok {
		return q, "", "", fmt.Errorf("%w: status %q", ErrInvalidFilter, q.Status)
	}
	q.Search = strings.Join(strings.Fields(q.Search), " ")
	if r := []rune(q.Search); len(r) > maxSearchRunes {
		q.Search = string(r[:maxSearchRunes])
	}
	return q, typ, status, nil
}

// sortNewestFirst orders by delivery date descending; equal dates fall back
// to print number descending so pages are deterministic.
func sortNewestFirst(ps []domain.EnrichedPrint) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i].DeliveryDate, ps[j].DeliveryDate
		if !a.Equal(b) {
			return a.After(b)
		}
		return compareNumbers(ps[i].Number, ps[j].Number) > 0
	})
}

// compareNumbers compares print numbers by their leading integer, then
// lexically ("512-A" sorts after "512", "99" before "100").
func compareNumbers(a, b string) int {
	na, ra := leadingInt(a)
	nb, rb := leadingInt(b)
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	return strings.Compare(ra, rb)
}

func leadingInt(s string) (int, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return -1, s
	}
	return n, s[i:]
}

var printNumberRE = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z-]{0,31}$`)

// ValidPrintNumber reports whether s looks like a Sejm print number
// (e.g. "512", "512-A").
func ValidPrintNumber(s string) bool {
	return printNumberRE.MatchString(s)
}
