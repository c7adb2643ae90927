// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// In-memory repositories for use case tests.

var errFakeNotFound = errors.New("not found")

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) FindByChild(_ context.Context, childID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.ChildID == childID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindByParent(_ context.Context, parentID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.ParentID == parentID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) FindExpired(_ context.Context, now time.Time, limit int) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.IsExpired(now) && len(out) < limit {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeChildRepo struct {
	children map[uuid.UUID]*entity.Child
}

func newFakeChildRepo() *fakeChildRepo {
	return &fakeChildRepo{children: make(map[uuid.UUID]*entity.Child)}
}

func (r *fakeChildRepo) Create(_ context.Context, c *entity.Child) error {
	r.children[c.ID] = c
	return nil
}

func (r *fakeChildRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Child, error) {
	c, ok := r.children[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return c, nil
}

func (r *fakeChildRepo) FindByUsername(_ context.Context, username string) (*entity.Child, error) {
	for _, c := range r.children {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeChildRepo) FindByParent(_ context.Context, parentID uuid.UUID) ([]*entity.Child, error) {
	var out []*entity.Child
	for _, c := range r.children {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeChildRepo) Update(_ context.Context, c *entity.Child) error {
	r.children[c.ID] = c
	return nil
}

func (r *fakeChildRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, c := range r.children {
		if c.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeNotificationRepo) FindByRecipient(_ context.Context, recipientEmail string, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.RecipientEmail == recipientEmail && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, recipientEmail string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.RecipientEmail == recipientEmail && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id uuid.UUID, recipientEmail string) (int64, error) {
	for _, n := range r.notifications {
		if n.ID == id && n.RecipientEmail == recipientEmail {
			n.Read = true
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, recipientEmail string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.RecipientEmail == recipientEmail && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) ResolveByGoal(_ context.Context, goalID uuid.UUID, status entity.NotificationStatus) error {
	for _, n := range r.notifications {
		if n.GoalID != nil && *n.GoalID == goalID {
			n.Status = status
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeNotificationRepo) DeleteBySubmission(_ context.Context, submissionID uuid.UUID) error {
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.SubmissionID == nil || *n.SubmissionID != submissionID {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}

func (r *fakeNotificationRepo) forRecipient(recipientEmail string) []*entity.Notification {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.RecipientEmail == recipientEmail {
			out = append(out, n)
		}
	}
	return out
}

type fakeEmailService struct {
	goalEvents []adapter.QueueGoalEventInput
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{}
}

func (s *fakeEmailService) QueueOTPEmail(context.Context, adapter.QueueOTPEmailInput) error {
	return nil
}

func (s *fakeEmailService) QueueGoalEventEmail(_ context.Context, input adapter.QueueGoalEventInput) error {
	s.goalEvents = append(s.goalEvents, input)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
