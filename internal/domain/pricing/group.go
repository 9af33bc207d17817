package pricing

import (
	"strings"

	"github.com/google/uuid"
)

// GroupScope orders who a pricing group was assigned to; a narrower scope
// always beats a wider one.
type GroupScope int

const (
	ScopeTenantDefault GroupScope = iota
	ScopeOrganization
	ScopeUser
)

// Group is a named discount tier assignable to a user or organization.
type Group struct {
	ID                  uuid.UUID
	TenantID            uuid.UUID
	Name                string
	DiscountPercent     *float64
	DiscountAmountCents *int64
	// Priority ranks ascending: the lowest value wins a same-scope tie.
	Priority  int
	IsDefault bool
}

type GroupAssignment struct {
	Group Group
	Scope GroupScope
}

// ResolveGroup picks the single applicable group: user-assigned beats
// org-assigned beats tenant default; same-scope ties break by ascending
// numeric priority, then by id, so identical inputs always resolve
// identically.
func ResolveGroup(assignments []GroupAssignment) *Group {
	var best *GroupAssignment
	for i := range assignments {
		a := &assignments[i]
		if best == nil || betterAssignment(a, best) {
			best = a
		}
	}
	if best == nil {
		return nil
	}
	g := best.Group
	return &g
}

func betterAssignment(a, b *GroupAssignment) bool {
	if a.Scope != b.Scope {
		return a.Scope > b.Scope
	}
	if a.Group.Priority != b.Group.Priority {
		return a.Group.Priority < b.Group.Priority
	}
	return strings.Compare(a.Group.ID.String(), b.Group.ID.String()) < 0
}

// discountCents converts the group's tier to an amount off the running
// total.
func (g Group) discountCents(running int64) int64 {
	if g.DiscountPercent != nil {
		return percentOf(running, *g.DiscountPercent)
	}
	if g.DiscountAmountCents != nil {
		return *g.DiscountAmountCents
	}
	return 0
}
