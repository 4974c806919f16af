package classify

import (
	"strings"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
)

// TypeRule maps a title predicate to a print type. Rules are evaluated in
// slice order and the first match wins.
type TypeRule struct {
	Phrase string
	Type   domain.PrintType
}

// Matches reports whether the lower-cased title contains the rule phrase.
func (r TypeRule) Matches(lower string) bool {
	return strings.Contains(lower, r.Phrase)
}

// TypeRules is the ordered type classification table. The three sponsored
// bill forms come before the generic document kinds so that a government
// bill mentioning "sprawozdanie" or "wniosek" is still a government bill.
// A "projekt ustawy" without a sponsor adjective (senacki, komisyjny,
// prezydencki) has no dedicated type and falls through to inne.
var TypeRules = []TypeRule{
	{Phrase: "rządowy projekt ustawy", Type: domain.TypeGovernmentBill},
	{Phrase: "poselski projekt ustawy", Type: domain.TypeDeputiesBill},
	{Phrase: "obywatelski projekt ustawy", Type: domain.TypeCitizensBill},
	{Phrase: "projekt uchwały", Type: domain.TypeResolution},
	{Phrase: "sprawozdanie", Type: domain.TypeReport},
	{Phrase: "kandydat", Type: domain.TypeCandidate},
	{Phrase: "informacja", Type: domain.TypeInformation},
	{Phrase: "wniosek", Type: domain.TypeMotion},
}

// PriorityTier groups the keywords that raise a print to one priority.
type PriorityTier struct {
	Priority domain.Priority
	Keywords []string
}

// PriorityTiers is checked top to bottom; the first tier with a matching
// keyword decides. Keywords are stems so that declined forms match
// ("podatku", "podatkowy" both contain "podat").
var PriorityTiers = []PriorityTier{
	{
		Priority: domain.PriorityHigh,
		Keywords: []string{
			"budżet", "podat", "konstytuc", "kodeks", "bezpieczeństw",
			"obronnoś", "ochronie zdrowia", "emerytur", "wyborcz",
		},
	},
	{
		Priority: domain.PriorityMedium,
		Keywords: []string{
			"o zmianie ustawy", "ratyfikac", "umowy międzynarodowej", "edukac",
			"oświat", "samorząd", "środowisk", "energet", "rolnict",
		},
	},
}

// LongRunningKeywords mark processes that normally take months. Between 31
// and 180 days of age such prints stay in progress instead of active.
var LongRunningKeywords = []string{"budżet", "o zmianie ustawy", "komisji śledczej"}

// Age thresholds in days for the status ladder. Each bound is inclusive.
const (
	RecentUpdateDays = 30
	NewMaxDays       = 7
	ActiveMaxDays    = 30
	LongRunMaxDays   = 180
	OldMaxDays       = 365
)

// typeAliases maps short filter names to print types.
var typeAliases = map[string]domain.PrintType{
	"rządowy":      domain.TypeGovernmentBill,
	"rzadowy":      domain.TypeGovernmentBill,
	"poselski":     domain.TypeDeputiesBill,
	"obywatelski":  domain.TypeCitizensBill,
	"uchwała":      domain.TypeResolution,
	"uchwala":      domain.TypeResolution,
	"sprawozdanie": domain.TypeReport,
	"kandydat":     domain.TypeCandidate,
	"informacja":   domain.TypeInformation,
	"wniosek":      domain.TypeMotion,
	"inne":         domain.TypeOther,
}
