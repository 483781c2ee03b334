package planning

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// consolidationFloor is the minimum merged total worth consolidating.
// Groups below it stay as individual payments.
var consolidationFloor = decimal.NewFromInt(50)

// consolidationWindowDays groups entries this many days apart or closer
const consolidationWindowDays = 2

// OptimizeSchedule merges a plan's near-adjacent payments into fewer,
// larger ones to cut transaction noise. Entries within two days of each
// other are merged onto the earliest date when their combined total
// reaches the consolidation floor.
func (p *Planner) OptimizeSchedule(schedules []*PaymentSchedule) []*PaymentSchedule {
	byPlan := make(map[uuid.UUID][]*PaymentSchedule)
	planOrder := make([]uuid.UUID, 0)
	for _, s := range schedules {
		if _, seen := byPlan[s.PlanID]; !seen {
			planOrder = append(planOrder, s.PlanID)
		}
		byPlan[s.PlanID] = append(byPlan[s.PlanID], s)
	}

	optimized := make([]*PaymentSchedule, 0, len(schedules))
	for _, planID := range planOrder {
		planSchedules := byPlan[planID]
		sort.Slice(planSchedules, func(i, j int) bool {
			return planSchedules[i].ScheduledDate.Before(planSchedules[j].ScheduledDate)
		})
		optimized = append(optimized, consolidate(planSchedules)...)
	}
	return optimized
}

func consolidate(schedules []*PaymentSchedule) []*PaymentSchedule {
	if len(schedules) <= 1 {
		return schedules
	}

	consolidated := make([]*PaymentSchedule, 0, len(schedules))
	group := []*PaymentSchedule{schedules[0]}

	for _, s := range schedules[1:] {
		last := group[len(group)-1]
		daysApart := int(s.ScheduledDate.Sub(last.ScheduledDate).Hours() / 24)
		if daysApart <= consolidationWindowDays {
			group = append(group, s)
		} else {
			consolidated = append(consolidated, mergeGroup(group)...)
			group = []*PaymentSchedule{s}
		}
	}
	consolidated = append(consolidated, mergeGroup(group)...)

	return consolidated
}

// mergeGroup collapses a group onto its first entry when the combined
// amount is large enough to be worth a single payment
func mergeGroup(group []*PaymentSchedule) []*PaymentSchedule {
	if len(group) <= 1 {
		return group
	}

	total := decimal.Zero
	for _, s := range group {
		total = total.Add(s.ScheduledAmount)
	}
	if total.LessThan(consolidationFloor) {
		return group
	}

	first := group[0]
	first.ScheduledAmount = total
	return []*PaymentSchedule{first}
}
