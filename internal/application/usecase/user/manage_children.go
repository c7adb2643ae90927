package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
	domainerror "github.com/aidiy/backend/internal/domain/error"
)

// ListChildrenInput represents the input for listing a parent's children.
type ListChildrenInput struct {
	ParentID uuid.UUID
}

// ListChildrenOutput represents the output of listing children.
type ListChildrenOutput struct {
	Children []*entity.Child
}

// ListChildrenUseCase lists the parent's kid accounts.
type ListChildrenUseCase struct {
	childRepo adapter.ChildRepository
}

// NewListChildrenUseCase creates a new ListChildrenUseCase instance.
func NewListChildrenUseCase(childRepo adapter.ChildRepository) *ListChildrenUseCase {
	return &ListChildrenUseCase{childRepo: childRepo}
}

// Execute retrieves the children.
func (uc *ListChildrenUseCase) Execute(ctx context.Context, input ListChildrenInput) (*ListChildrenOutput, error) {
	children, err := uc.childRepo.FindByParent(ctx, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	return &ListChildrenOutput{Children: children}, nil
}

// AddChildInput represents the input for adding a kid account.
type AddChildInput struct {
	ParentID    uuid.UUID
	ParentEmail string
	Username    string
	FirstName   string
	NickName    string
	Avatar      string
	BirthDate   string
	LoginCode   string
}

// AddChildOutput represents the output of adding a kid account.
type AddChildOutput struct {
	Child *entity.Child
}

// AddChildUseCase creates a kid account under the parent. Usernames are
// globally unique; the login code is stored hashed like a password.
type AddChildUseCase struct {
	childRepo       adapter.ChildRepository
	passwordService adapter.PasswordService
}

// NewAddChildUseCase creates a new AddChildUseCase instance.
func NewAddChildUseCase(childRepo adapter.ChildRepository, passwordService adapter.PasswordService) *AddChildUseCase {
	return &AddChildUseCase{
		childRepo:       childRepo,
		passwordService: passwordService,
	}
}

// Execute creates the kid account.
func (uc *AddChildUseCase) Execute(ctx context.Context, input AddChildInput) (*AddChildOutput, error) {
	if input.Username == "" || input.FirstName == "" || input.BirthDate == "" || input.LoginCode == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"missing required fields",
			nil,
		)
	}

	taken, err := uc.childRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"username already taken",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	codeHash, err := uc.passwordService.HashPassword(input.LoginCode)
	if err != nil {
		return nil, fmt.Errorf("failed to hash login code: %w", err)
	}

	child := entity.NewChild(
		input.ParentID,
		input.ParentEmail,
		input.Username,
		input.FirstName,
		input.NickName,
		input.Avatar,
		input.BirthDate,
		codeHash,
	)
	if err := uc.childRepo.Create(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to create child: %w", err)
	}

	return &AddChildOutput{Child: child}, nil
}

// UpdateChildInput represents the input for editing a kid account. Nil
// fields are left untouched.
type UpdateChildInput struct {
	ParentID    uuid.UUID
	Username    string
	FirstName   *string
	NickName    *string
	Avatar      *string
	BirthDate   *string
	LoginCode   *string
	NewUsername *string
}

// UpdateChildOutput represents the output of editing a kid account.
type UpdateChildOutput struct {
	Child *entity.Child
}

// UpdateChildUseCase edits a kid account owned by the parent.
type UpdateChildUseCase struct {
	childRepo       adapter.ChildRepository
	passwordService adapter.PasswordService
}

// NewUpdateChildUseCase creates a new UpdateChildUseCase instance.
func NewUpdateChildUseCase(childRepo adapter.ChildRepository, passwordService adapter.PasswordService) *UpdateChildUseCase {
	return &UpdateChildUseCase{
		childRepo:       childRepo,
		passwordService: passwordService,
	}
}

// Execute applies the update.
func (uc *UpdateChildUseCase) Execute(ctx context.Context, input UpdateChildInput) (*UpdateChildOutput, error) {
	if input.FirstName == nil && input.NickName == nil && input.Avatar == nil &&
		input.BirthDate == nil && input.LoginCode == nil && input.NewUsername == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"no valid fields to update",
			nil,
		)
	}

	child, err := uc.childRepo.FindByUsername(ctx, input.Username)
	if err != nil || child.ParentID != input.ParentID {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	if input.NewUsername != nil && *input.NewUsername != child.Username {
		taken, err := uc.childRepo.ExistsByUsername(ctx, *input.NewUsername)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"username already taken",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		child.Username = *input.NewUsername
	}

	if input.FirstName != nil {
		child.FirstName = *input.FirstName
	}
	if input.NickName != nil {
		child.NickName = *input.NickName
	}
	if input.Avatar != nil {
		child.Avatar = *input.Avatar
	}
	if input.BirthDate != nil {
		child.BirthDate = *input.BirthDate
	}
	if input.LoginCode != nil {
		hash, err := uc.passwordService.HashPassword(*input.LoginCode)
		if err != nil {
			return nil, fmt.Errorf("failed to hash login code: %w", err)
		}
		child.LoginCodeHash = hash
	}
	child.UpdatedAt = time.Now().UTC()

	if err := uc.childRepo.Update(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to update child: %w", err)
	}

	return &UpdateChildOutput{Child: child}, nil
}
