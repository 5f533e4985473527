package catalog

import (
	"mock-interview-be/internal/pkg/serverutils"
)

// TotalQuestions is the fixed interview length. Every registered domain
// carries exactly this many template questions.
const TotalQuestions = 10

// DomainTemplate describes one interview domain. Templates are defined at
// process start and never mutated, so they are safe to share across sessions.
type DomainTemplate struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Persona     string   `json:"persona"`
	Questions   []string `json:"questions"`
}

// Get returns the template for the given domain id.
func Get(domainID string) (*DomainTemplate, error) {
	tpl, ok := templates[domainID]
	if !ok {
		return nil, serverutils.NewNotFoundError("interview domain '" + domainID + "' is not registered")
	}
	return tpl, nil
}

// ListAll returns every registered template in a stable order.
func ListAll() []*DomainTemplate {
	out := make([]*DomainTemplate, 0, len(domainOrder))
	for _, id := range domainOrder {
		out = append(out, templates[id])
	}
	return out
}
