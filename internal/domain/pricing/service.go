package pricing

import "github.com/google/uuid"

// Service is an add-on sold with a resource. Required services are always
// included in the total; optional ones only when selected.
type Service struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Name       string
	PriceCents int64
	Required   bool
}

func servicesTotal(services []Service, selected []uuid.UUID) (int64, []Line) {
	var total int64
	var lines []Line
	for _, s := range services {
		if s.Required || containsID(selected, s.ID) {
			total += s.PriceCents
			lines = append(lines, Line{Label: s.Name, AmountCents: s.PriceCents})
		}
	}
	return total, lines
}
