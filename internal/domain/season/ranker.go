package season

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not_equals"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
	OpGTE         Operator = "gte"
	OpLTE         Operator = "lte"
	OpContains    Operator = "contains"
)

// PriorityRule awards Weight to every application whose attribute matches.
type PriorityRule struct {
	SeasonID uuid.UUID
	Field    string
	Operator Operator
	Value    string
	Weight   int
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationWaitlist ApplicationStatus = "waitlist"
)

// Application is one organization's request for a weekly window within a
// season. Rule fields resolve against the typed attributes below; unknown
// fields never match.
type Application struct {
	ID              uuid.UUID
	SeasonID        uuid.UUID
	ResourceID      uuid.UUID
	OrganizationID  uuid.UUID
	Category        string
	MemberCount     int
	PreviousSeasons int
	StartDate       time.Time
	EndDate         time.Time
	Weekdays        WeekdaySet
	StartMin        int // requested start, minutes since midnight
	EndMin          int
	SubmittedAt     time.Time
}

type RankedApplication struct {
	Application Application
	Score       int
	Rank        int
	Status      ApplicationStatus
}

// Score sums the weights of all matching rules.
func Score(rules []PriorityRule, app Application) int {
	total := 0
	for _, r := range rules {
		if ruleMatches(r, app) {
			total += r.Weight
		}
	}
	return total
}

func ruleMatches(r PriorityRule, app Application) bool {
	switch r.Field {
	case "organization_id":
		return stringMatches(r.Operator, app.OrganizationID.String(), r.Value)
	case "category":
		return stringMatches(r.Operator, app.Category, r.Value)
	case "member_count":
		return numberMatches(r.Operator, app.MemberCount, r.Value)
	case "previous_seasons":
		return numberMatches(r.Operator, app.PreviousSeasons, r.Value)
	case "weekday_count":
		return numberMatches(r.Operator, len(app.Weekdays.Days()), r.Value)
	default:
		return false
	}
}

func stringMatches(op Operator, have, want string) bool {
	switch op {
	case OpEquals:
		return have == want
	case OpNotEquals:
		return have != want
	case OpContains:
		return strings.Contains(have, want)
	default:
		return false
	}
}

func numberMatches(op Operator, have int, want string) bool {
	w, err := strconv.Atoi(want)
	if err != nil {
		return false
	}
	switch op {
	case OpEquals:
		return have == w
	case OpNotEquals:
		return have != w
	case OpGreaterThan:
		return have > w
	case OpLessThan:
		return have < w
	case OpGTE:
		return have >= w
	case OpLTE:
		return have <= w
	default:
		return false
	}
}

// Rank orders competing applications by descending score, breaking ties by
// earliest submission, and approves the top `capacity` entries. Everyone
// else is waitlisted. Both slices keep submission order stable.
func Rank(rules []PriorityRule, apps []Application, capacity int) []RankedApplication {
	if capacity < 1 {
		capacity = 1
	}

	ranked := make([]RankedApplication, len(apps))
	for i, app := range apps {
		ranked[i] = RankedApplication{Application: app, Score: Score(rules, app)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Application.SubmittedAt.Before(ranked[j].Application.SubmittedAt)
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		if i < capacity {
			ranked[i].Status = ApplicationApproved
		} else {
			ranked[i].Status = ApplicationWaitlist
		}
	}
	return ranked
}

// Competes reports whether two applications contend for the same recurring
// window: overlapping date ranges, at least one shared weekday, and
// overlapping half-open daily windows.
func Competes(a, b Application) bool {
	if !a.StartDate.Before(b.EndDate.AddDate(0, 0, 1)) || !b.StartDate.Before(a.EndDate.AddDate(0, 0, 1)) {
		return false
	}
	if a.Weekdays&b.Weekdays == 0 {
		return false
	}
	return a.StartMin < b.EndMin && a.EndMin > b.StartMin
}

// CompetingGroups partitions applications into transitive contention groups.
func CompetingGroups(apps []Application) [][]Application {
	n := len(apps)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if Competes(apps[i], apps[j]) {
				parent[find(i)] = find(j)
			}
		}
	}

	groups := make(map[int][]Application)
	order := make([]int, 0, n)
	for i, app := range apps {
		root := find(i)
		if _, seen := groups[root]; !seen {
			order = append(order, root)
		}
		groups[root] = append(groups[root], app)
	}

	out := make([][]Application, 0, len(order))
	for _, root := range order {
		out = append(out, groups[root])
	}
	return out
}
