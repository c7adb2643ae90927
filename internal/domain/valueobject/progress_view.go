// Package valueobject contains domain value objects for the AIDIY system.
package valueobject

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
)

// ProgressViewState is the explicit state of the weekly progress view for a
// goal and its selected chore batch.
type ProgressViewState string

const (
	// ProgressViewActive means the kid can toggle completions and submit.
	ProgressViewActive ProgressViewState = "active"
	// ProgressViewPendingApproval means a prior submission awaits parent
	// review; the view is read-only.
	ProgressViewPendingApproval ProgressViewState = "pending_approval"
	// ProgressViewRedirectDashboard means every selected chore has already
	// been consumed by a prior submission cycle; the batch must not be
	// resubmitted and the kid is sent back to the dashboard.
	ProgressViewRedirectDashboard ProgressViewState = "redirect_dashboard"
)

// ChoreReviewStatus marks a selected chore's reconciled server-side state.
const StatusArchivedOrPending = "archived_or_pending"

// DeadlineStatus describes where the goal stands against its time window.
type DeadlineStatus struct {
	Deadline      time.Time
	DaysRemaining int
	Warning       bool // 0 < days remaining ≤ 3
	Passed        bool // days remaining ≤ 0; submission blocked
}

// ComputeDeadline evaluates the goal deadline at the given instant:
// deadline = created_at + duration*7d, daysRemaining = ceil((deadline-now)/24h).
func ComputeDeadline(createdAt time.Time, durationWeeks int, now time.Time) DeadlineStatus {
	deadline := createdAt.Add(time.Duration(durationWeeks) * 7 * 24 * time.Hour)
	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	return DeadlineStatus{
		Deadline:      deadline,
		DaysRemaining: days,
		Warning:       days > 0 && days <= 3,
		Passed:        days <= 0,
	}
}

// ProgressView is the reconciled weekly progress view.
type ProgressView struct {
	State ProgressViewState
	// ChoreStatuses maps each selected chore id to its current server-side
	// status, or StatusArchivedOrPending when the chore is no longer in the
	// goal's active chore list.
	ChoreStatuses map[string]string
	Deadline      DeadlineStatus
}

// ReconcileProgress compares the locally selected chores against the server's
// current chore list for the goal and computes the explicit view state. The
// active list excludes archived and submitted chores, so a selected chore that
// is absent from it is either consumed or awaiting review:
//
//	ALL selected absent → RedirectDashboard (terminal)
//	ANY selected absent → PendingApproval   (terminal, read-only)
//	otherwise           → Active
func ReconcileProgress(goal *entity.Goal, selectedIDs []string, current []*entity.Chore, now time.Time) ProgressView {
	byID := make(map[string]*entity.Chore, len(current))
	for _, c := range current {
		byID[c.ID.String()] = c
	}

	statuses := make(map[string]string, len(selectedIDs))
	anyPending := false
	allConsumed := len(selectedIDs) > 0
	for _, id := range selectedIDs {
		c, ok := byID[id]
		if !ok {
			// Absent from the goal's active list: a submission covering it is
			// outstanding (or it was archived by one). The view locks until
			// the review lands.
			statuses[id] = StatusArchivedOrPending
			anyPending = true
			continue
		}
		statuses[id] = string(c.Status)
		allConsumed = false
		if c.Status == entity.ChoreStatusPendingApproval {
			anyPending = true
		}
	}

	state := ProgressViewActive
	switch {
	case allConsumed:
		state = ProgressViewRedirectDashboard
	case anyPending:
		state = ProgressViewPendingApproval
	}

	return ProgressView{
		State:         state,
		ChoreStatuses: statuses,
		Deadline:      ComputeDeadline(goal.CreatedAt, goal.DurationWeeks, now),
	}
}

// CompletionSet tracks which selected chores the kid has ticked as done,
// keyed strictly by chore id.
type CompletionSet struct {
	ids map[string]struct{}
}

// NewCompletionSet creates an empty completion set.
func NewCompletionSet() *CompletionSet {
	return &CompletionSet{ids: make(map[string]struct{})}
}

// Toggle flips the completion state of the chore with the given id and
// reports whether it is now completed. Toggling on then off restores the
// exact prior state.
func (cs *CompletionSet) Toggle(id string) bool {
	if _, ok := cs.ids[id]; ok {
		delete(cs.ids, id)
		return false
	}
	cs.ids[id] = struct{}{}
	return true
}

// Contains reports whether the chore with the given id is marked completed.
func (cs *CompletionSet) Contains(id string) bool {
	_, ok := cs.ids[id]
	return ok
}

// Len returns the number of completed chores.
func (cs *CompletionSet) Len() int {
	return len(cs.ids)
}

// TotalEarned sums the rewards of only the completed subset of the selected
// chores.
func (cs *CompletionSet) TotalEarned(selected []QuestChore) decimal.Decimal {
	total := decimal.Zero
	for _, c := range selected {
		if cs.Contains(c.ID) {
			total = total.Add(c.Amount)
		}
	}
	return total
}

// CompletedIDs returns the ids of the completed subset of selected, in
// selection order.
func (cs *CompletionSet) CompletedIDs(selected []QuestChore) []string {
	var ids []string
	for _, c := range selected {
		if cs.Contains(c.ID) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
