package response

import "github.com/ledgerone/ledgerone-api/internal/domain"

// BusinessSummary is the public listing entry shown on the employee login
// screen. Settings and owner are not exposed.
type BusinessSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewBusinessSummaries(businesses []domain.Business) []BusinessSummary {
	summaries := make([]BusinessSummary, 0, len(businesses))
	for _, b := range businesses {
		summaries = append(summaries, BusinessSummary{ID: b.ID, Name: b.Name})
	}

	return summaries
}

// EmployeeSummary is the public employee picker entry: name only, no
// permissions or passcode material.
type EmployeeSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewEmployeeSummaries(employees []domain.Employee) []EmployeeSummary {
	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		summaries = append(summaries, EmployeeSummary{ID: e.ID, Name: e.Name})
	}

	return summaries
}
