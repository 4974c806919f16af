package domain

import "time"

// PrintType is the document category derived from a print's title.
type PrintType string

const (
	TypeGovernmentBill PrintType = "rządowy_projekt_ustawy"
	TypeDeputiesBill   PrintType = "poselski_projekt_ustawy"
	TypeCitizensBill   PrintType = "obywatelski_projekt_ustawy"
	TypeResolution     PrintType = "projekt_uchwały"
	TypeReport         PrintType = "sprawozdanie"
	TypeCandidate      PrintType = "kandydat"
	TypeInformation    PrintType = "informacja"
	TypeMotion         PrintType = "wniosek"
	TypeOther          PrintType = "inne"
)

// AllPrintTypes lists every print type in classification order.
func AllPrintTypes() []PrintType {
	return []PrintType{
		TypeGovernmentBill, TypeDeputiesBill, TypeCitizensBill, TypeResolution,
		TypeReport, TypeCandidate, TypeInformation, TypeMotion, TypeOther,
	}
}

// PrintStatus is the lifecycle stage derived from a print's age and the
// recency of its follow-up documents.
type PrintStatus string

const (
	StatusNew        PrintStatus = "nowe"
	StatusActive     PrintStatus = "aktywne"
	StatusInProgress PrintStatus = "w_trakcie"
	StatusOld        PrintStatus = "stare"
	StatusArchived   PrintStatus = "archiwalne"
)

// AllPrintStatuses lists every status from newest to oldest.
func AllPrintStatuses() []PrintStatus {
	return []PrintStatus{StatusNew, StatusActive, StatusInProgress, StatusOld, StatusArchived}
}

// Priority is the importance derived from keywords in a print's title.
type Priority string

const (
	PriorityHigh   Priority = "wysoki"
	PriorityMedium Priority = "średni"
	PriorityNormal Priority = "normalny"
)

// AdditionalPrint is a follow-up document attached to a print's process.
type AdditionalPrint struct {
	Number       string    `json:"number"`
	Title        string    `json:"title"`
	DeliveryDate time.Time `json:"deliveryDate"`
}

// Print is a raw legislative print as published by the Sejm API.
// Number and Term identify a print; it is immutable once delivered except
// for AdditionalPrints, which accumulate over time.
type Print struct {
	Number           string            `json:"number"`
	Term             int               `json:"term"`
	Title            string            `json:"title"`
	DeliveryDate     time.Time         `json:"deliveryDate"`
	DocumentDate     time.Time         `json:"documentDate,omitempty"`
	ChangeDate       time.Time         `json:"changeDate,omitempty"`
	Attachments      []string          `json:"attachments"`
	AdditionalPrints []AdditionalPrint `json:"additionalPrints"`
	// ProcessPrint holds the number of the print that opened the legislative
	// process this print belongs to, when the API reports one.
	ProcessPrint string `json:"processPrint,omitempty"`
}

// EnrichedPrint is a Print with classification results. It is computed on
// read and never persisted: Status and DaysAge depend on the current time.
type EnrichedPrint struct {
	Print
	Type          PrintType   `json:"type"`
	Status        PrintStatus `json:"status"`
	Priority      Priority    `json:"priority"`
	Summary       string      `json:"summary"`
	FormattedDate string      `json:"formattedDate"`
	DaysAge       int         `json:"daysAge"`
}

// PrintDetails is an EnrichedPrint with links to the full document and to
// the legislative process page.
type PrintDetails struct {
	EnrichedPrint
	FullPDFURL string `json:"fullPdfUrl"`
	ProcessURL string `json:"processUrl,omitempty"`
}

// Pagination describes a slice of a filtered print list.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// PrintPage is one page of enriched prints.
type PrintPage struct {
	Prints     []EnrichedPrint `json:"data"`
	Pagination Pagination      `json:"pagination"`
}
