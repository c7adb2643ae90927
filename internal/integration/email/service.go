// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueOTPEmail queues a one-time code email.
func (s *Service) QueueOTPEmail(ctx context.Context, input adapter.QueueOTPEmailInput) error {
	subject := "Your verification code - AiDIY"
	if input.Purpose == "reset" {
		subject = "Reset your password - AiDIY"
	}

	templateData := map[string]interface{}{
		"user_name":  input.Name,
		"code":       input.Code,
		"purpose":    input.Purpose,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplateOTPCode,
		input.Email,
		input.Name,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue otp email",
			err,
		)
	}

	return nil
}

// QueueGoalEventEmail queues a goal lifecycle email (approved, completed).
func (s *Service) QueueGoalEventEmail(ctx context.Context, input adapter.QueueGoalEventInput) error {
	templateType := entity.TemplateGoalApproved
	subject := fmt.Sprintf("%s's goal was approved - AiDIY", input.KidName)
	if input.Event == "completed" {
		templateType = entity.TemplateGoalCompleted
		subject = fmt.Sprintf("%s reached their goal! - AiDIY", input.KidName)
	}

	templateData := map[string]interface{}{
		"user_name":  input.Name,
		"kid_name":   input.KidName,
		"goal_title": input.GoalTitle,
		"amount":     input.Amount,
		"app_url":    s.appBaseURL,
	}

	job := entity.NewEmailJob(
		templateType,
		input.Email,
		input.Name,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue goal event email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
