package pricing

import "github.com/google/uuid"

// Line is one named amount inside a breakdown. Discount lines record the
// amount subtracted (positive), surcharge lines the amount added.
type Line struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
}

// Breakdown is the immutable result of one pipeline run. The stages append
// lines in application order, so the breakdown doubles as an audit of how
// the total was reached.
type Breakdown struct {
	SubtotalCents int64  `json:"subtotal_cents"`
	Discounts     []Line `json:"discounts,omitempty"`
	Surcharges    []Line `json:"surcharges,omitempty"`
	Services      []Line `json:"services,omitempty"`
	ServicesCents int64  `json:"services_cents"`
	// DepositCents is collected separately and never folded into the total.
	DepositCents   int64      `json:"deposit_cents,omitempty"`
	TaxCents       int64      `json:"tax_cents"`
	TaxIncluded    bool       `json:"tax_included"`
	TotalCents     int64      `json:"total_cents"`
	Currency       string     `json:"currency"`
	AppliedGroupID *uuid.UUID `json:"applied_group_id,omitempty"`
}
