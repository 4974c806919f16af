package sejm

import (
	"fmt"
	"strings"
	"time"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
)

// APIPrint is a print as returned by GET /term{N}/prints.
type APIPrint struct {
	Number           string     `json:"number"`
	Term             int        `json:"term"`
	Title            string     `json:"title"`
	DeliveryDate     apiDate    `json:"deliveryDate"`
	DocumentDate     apiDate    `json:"documentDate"`
	ChangeDate       apiDate    `json:"changeDate"`
	Attachments      []string   `json:"attachments"`
	AdditionalPrints []APIPrint `json:"additionalPrints"`
	ProcessPrint     []string   `json:"processPrint"`
}

// apiDate accepts the date layouts used by the Sejm API. Empty strings and
// null decode to the zero time.
type apiDate struct{ time.Time }

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func (d *apiDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised date %q", s)
}

func toDomain(p APIPrint) domain.Print {
	out := domain.Print{
		Number:       p.Number,
		Term:         p.Term,
		Title:        p.Title,
		DeliveryDate: p.DeliveryDate.Time,
		DocumentDate: p.DocumentDate.Time,
		ChangeDate:   p.ChangeDate.Time,
		Attachments:  p.Attachments,
	}
	if out.Attachments == nil {
		out.Attachments = []string{}
	}
	out.AdditionalPrints = make([]domain.AdditionalPrint, 0, len(p.AdditionalPrints))
	for _, ap := range p.AdditionalPrints {
		out.AdditionalPrints = append(out.AdditionalPrints, domain.AdditionalPrint{
			Number:       ap.Number,
			Title:        ap.Title,
			DeliveryDate: ap.DeliveryDate.Time,
		})
	}
	// The process is tracked under its opening print; a print that opens its
	// own process has nothing further to link to.
	for _, n := range p.ProcessPrint {
		if n = strings.TrimSpace(n); n != "" && n != p.Number {
			out.ProcessPrint = n
			break
		}
	}
	return out
}
