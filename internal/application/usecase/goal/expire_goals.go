package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// ExpireGoalsInput bounds one sweep.
type ExpireGoalsInput struct {
	Now   time.Time
	Limit int
}

// ExpireGoalsOutput reports how many goals were archived in the sweep.
type ExpireGoalsOutput struct {
	Expired int
}

// ExpireGoalsUseCase archives approved goals whose time window lapsed before
// the target was reached and notifies both the parent and the kid. It runs
// from the background sweeper, not from a request handler.
type ExpireGoalsUseCase struct {
	goalRepo         adapter.GoalRepository
	childRepo        adapter.ChildRepository
	notificationRepo adapter.NotificationRepository
	logger           *slog.Logger
}

// NewExpireGoalsUseCase creates a new ExpireGoalsUseCase instance.
func NewExpireGoalsUseCase(
	goalRepo adapter.GoalRepository,
	childRepo adapter.ChildRepository,
	notificationRepo adapter.NotificationRepository,
	logger *slog.Logger,
) *ExpireGoalsUseCase {
	return &ExpireGoalsUseCase{
		goalRepo:         goalRepo,
		childRepo:        childRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Execute runs one expiry sweep.
func (uc *ExpireGoalsUseCase) Execute(ctx context.Context, input ExpireGoalsInput) (*ExpireGoalsOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	limit := input.Limit
	if limit <= 0 {
		limit = 100
	}

	expired, err := uc.goalRepo.FindExpired(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired goals: %w", err)
	}

	out := &ExpireGoalsOutput{}
	for _, g := range expired {
		if !g.IsExpired(now) {
			continue
		}

		g.Status = entity.GoalStatusArchived
		g.UpdatedAt = now
		if err := uc.goalRepo.Update(ctx, g); err != nil {
			uc.logger.Error("failed to archive expired goal", "goal_id", g.ID, "error", err)
			continue
		}

		uc.notifyExpired(ctx, g)
		out.Expired++
	}

	return out, nil
}

func (uc *ExpireGoalsUseCase) notifyExpired(ctx context.Context, g *entity.Goal) {
	child, err := uc.childRepo.FindByID(ctx, g.ChildID)
	if err != nil {
		uc.logger.Error("failed to load child for expired goal", "goal_id", g.ID, "error", err)
		return
	}

	title := fmt.Sprintf("Goal %q expired", g.Title)
	parentMsg := fmt.Sprintf("%s's goal ran out of time with $%s of $%s saved", child.DisplayName(), g.Saved.StringFixed(2), g.Amount.StringFixed(2))
	kidMsg := fmt.Sprintf("Your goal ran out of time with $%s of $%s saved", g.Saved.StringFixed(2), g.Amount.StringFixed(2))

	for _, n := range []*entity.Notification{
		entity.NewNotification(child.ParentEmail, entity.NotificationGoalExpired, title, parentMsg, entity.NotificationStatusSuccess),
		entity.NewNotification(child.InboxAddress(), entity.NotificationGoalExpired, title, kidMsg, entity.NotificationStatusSuccess),
	} {
		goalID := g.ID
		n.GoalID = &goalID
		n.KidUsername = child.Username
		n.KidName = child.DisplayName()
		n.KidAvatar = child.Avatar
		if err := uc.notificationRepo.Create(ctx, n); err != nil {
			uc.logger.Error("failed to create expiry notification", "goal_id", g.ID, "recipient", n.RecipientEmail, "error", err)
		}
	}
}
