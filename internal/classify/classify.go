// Package classify derives semantic attributes of legislative prints from
// their raw data: document type, lifecycle status, priority, a short
// summary and the document's age.
//
// Every function is total and deterministic for a given time: missing
// titles are treated as empty strings, which classify as inne / normalny.
// The rule tables live in rules.go and are evaluated strictly in order.
package classify

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
)

const (
	summaryMaxRunes = 100
	summaryCutRunes = 97
	dateLayout      = "02.01.2006"
)

// Type returns the print type of the first matching rule in TypeRules, or
// inne when none matches.
func Type(title string) domain.PrintType {
	lower := normalize(title)
	for _, r := range TypeRules {
		if r.Matches(lower) {
			return r.Type
		}
	}
	return domain.TypeOther
}

// Priority returns the priority of the first tier in PriorityTiers with a
// keyword contained in the title, or normalny.
func Priority(title string) domain.Priority {
	lower := normalize(title)
	for _, tier := range PriorityTiers {
		if containsAny(lower, tier.Keywords) {
			return tier.Priority
		}
	}
	return domain.PriorityNormal
}

// Status derives the lifecycle status of p at now.
//
// A follow-up document delivered within RecentUpdateDays puts the print in
// progress regardless of its own age. Otherwise the age ladder applies:
// up to 7 days nowe, up to 30 aktywne, up to 180 aktywne or w_trakcie for
// long-running subjects, up to 365 stare, older archiwalne. The long-running
// override is not applied past 180 days.
func Status(p domain.Print, now time.Time) domain.PrintStatus {
	if latest, ok := latestAdditional(p.AdditionalPrints); ok {
		if ageInDays(latest, now) <= RecentUpdateDays {
			return domain.StatusInProgress
		}
	}
	if p.DeliveryDate.IsZero() {
		return domain.StatusArchived
	}

	age := ageInDays(p.DeliveryDate, now)
	switch {
	case age <= NewMaxDays:
		return domain.StatusNew
	case age <= ActiveMaxDays:
		return domain.StatusActive
	case age <= LongRunMaxDays:
		if containsAny(normalize(p.Title), LongRunningKeywords) {
			return domain.StatusInProgress
		}
		return domain.StatusActive
	case age <= OldMaxDays:
		return domain.StatusOld
	default:
		return domain.StatusArchived
	}
}

// Summary returns a short human-readable description of a print title.
func Summary(title string) string {
	title = strings.TrimSpace(title)
	lower := normalize(title)
	for _, tpl := range summaryTemplates {
		if s, ok := tpl(title, lower); ok {
			return s
		}
	}
	return truncate(title)
}

// DaysAge is the number of started days between delivery and now, or 0 when
// the delivery date is unknown.
func DaysAge(delivered, now time.Time) int {
	if delivered.IsZero() {
		return 0
	}
	return ageInDays(delivered, now)
}

// FormatDate renders a delivery date the way pl-PL dates are written.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// Enrich classifies p at now.
func Enrich(p domain.Print, now time.Time) domain.EnrichedPrint {
	return domain.EnrichedPrint{
		Print:         p,
		Type:          Type(p.Title),
		Status:        Status(p, now),
		Priority:      Priority(p.Title),
		Summary:       Summary(p.Title),
		FormattedDate: FormatDate(p.DeliveryDate),
		DaysAge:       DaysAge(p.DeliveryDate, now),
	}
}

// EnrichAll classifies every print at the same instant.
func EnrichAll(prints []domain.Print, now time.Time) []domain.EnrichedPrint {
	out := make([]domain.EnrichedPrint, len(prints))
	for i, p := range prints {
		out[i] = Enrich(p, now)
	}
	return out
}

// ResolveType maps a filter value to a print type. Empty and "all" mean no
// filter and return ("", true). Full type names and short aliases such as
// "rządowy" are accepted case-insensitively.
func ResolveType(s string) (domain.PrintType, bool) {
	s = normalize(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return "", true
	}
	if t, ok := typeAliases[s]; ok {
		return t, true
	}
	for _, t := range domain.AllPrintTypes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ResolveStatus maps a filter value to a print status; empty and "all" mean
// no filter.
func ResolveStatus(s string) (domain.PrintStatus, bool) {
	s = normalize(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return "", true
	}
	for _, st := range domain.AllPrintStatuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// ----------------------------------------------------------------------------
// Summary templates

type summaryTemplate func(title, lower string) (string, bool)

var billSubjectRE = regexp.MustCompile(`(?i)projekt ustawy o\s+([^.]+)`)

var summaryTemplates = []summaryTemplate{
	func(_, lower string) (string, bool) {
		if containsAny(lower, []string{"o zmianie ustawy", "o zmianie niektórych ustaw", "nowelizac"}) {
			return "Nowelizacja istniejącej ustawy", true
		}
		return "", false
	},
	func(title, _ string) (string, bool) {
		m := billSubjectRE.FindStringSubmatch(title)
		if m == nil {
			return "", false
		}
		subject := strings.TrimSpace(m[1])
		if subject == "" {
			return "", false
		}
		return truncate("Ustawa o " + subject), true
	},
	func(_, lower string) (string, bool) {
		if strings.Contains(lower, "sprawozdanie") {
			return "Sprawozdanie komisji sejmowej", true
		}
		return "", false
	},
	func(_, lower string) (string, bool) {
		if strings.Contains(lower, "kandydat") {
			return "Kandydatura na stanowisko publiczne", true
		}
		return "", false
	},
}

// ----------------------------------------------------------------------------
// Helpers

// normalize lower-cases with Polish rules. A Caser is stateful, so one is
// built per call.
func normalize(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Polish).String(s)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// ageInDays is ceil((now - t) / 24h).
func ageInDays(t, now time.Time) int {
	return int(math.Ceil(now.Sub(t).Hours() / 24))
}

func latestAdditional(prints []domain.AdditionalPrint) (time.Time, bool) {
	var latest time.Time
	for _, ap := range prints {
		if ap.DeliveryDate.After(latest) {
			latest = ap.DeliveryDate
		}
	}
	return latest, !latest.IsZero()
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= summaryMaxRunes {
		return s
	}
	return string([]rune(s)[:summaryCutRunes]) + "..."
}
