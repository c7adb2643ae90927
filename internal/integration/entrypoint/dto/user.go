// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aidiy/backend/internal/application/usecase/user"
	"github.com/aidiy/backend/internal/domain/entity"
)

// UserResponse represents a parent account in API responses.
type UserResponse struct {
	ID                     string    `json:"id"`
	Email                  string    `json:"email"`
	FirstName              string    `json:"first_name"`
	LastName               string    `json:"last_name"`
	PhoneNumber            string    `json:"phone_number"`
	BirthDate              string    `json:"birth_date"`
	Avatar                 string    `json:"avatar"`
	IsProfileComplete      bool      `json:"is_profile_complete"`
	HasCompletedAssessment bool      `json:"has_completed_assessment"`
	CreatedAt              time.Time `json:"created_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:                     u.ID.String(),
		Email:                  u.Email,
		FirstName:              u.FirstName,
		LastName:               u.LastName,
		PhoneNumber:            u.PhoneNumber,
		BirthDate:              u.BirthDate,
		Avatar:                 u.Avatar,
		IsProfileComplete:      u.IsProfileComplete,
		HasCompletedAssessment: u.HasCompletedAssessment,
		CreatedAt:              u.CreatedAt,
	}
}

// ChildResponse represents a kid account in API responses.
type ChildResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	NickName  string `json:"nick_name"`
	Avatar    string `json:"avatar"`
	BirthDate string `json:"birth_date"`
}

// ToChildResponse converts a domain Child entity to a ChildResponse DTO.
func ToChildResponse(c *entity.Child) ChildResponse {
	return ChildResponse{
		ID:        c.ID.String(),
		Username:  c.Username,
		FirstName: c.FirstName,
		NickName:  c.NickName,
		Avatar:    c.Avatar,
		BirthDate: c.BirthDate,
	}
}

// KidFinancialInfoResponse summarizes a kid's savings across goals.
type KidFinancialInfoResponse struct {
	TotalSavings   float64 `json:"total_savings"`
	TotalGoals     int     `json:"total_goals"`
	ActiveGoals    int     `json:"active_goals"`
	CompletedGoals int     `json:"completed_goals"`
}

// ProfileResponse represents the response for GET /users/profile.
// Exactly one of User and Kid is set, depending on the token's role.
type ProfileResponse struct {
	Success       bool                      `json:"success"`
	User          *UserResponse             `json:"user,omitempty"`
	Kid           *ChildResponse            `json:"kid,omitempty"`
	FinancialInfo *KidFinancialInfoResponse `json:"financial_info,omitempty"`
}

// ToProfileResponse converts profile output to a ProfileResponse DTO.
func ToProfileResponse(output *user.GetProfileOutput) ProfileResponse {
	response := ProfileResponse{Success: true}
	if output.User != nil {
		u := ToUserResponse(output.User)
		response.User = &u
	}
	if output.Child != nil {
		k := ToChildResponse(output.Child)
		response.Kid = &k
	}
	if output.FinancialInfo != nil {
		response.FinancialInfo = &KidFinancialInfoResponse{
			TotalSavings:   output.FinancialInfo.TotalSavings.InexactFloat64(),
			TotalGoals:     output.FinancialInfo.TotalGoals,
			ActiveGoals:    output.FinancialInfo.ActiveGoals,
			CompletedGoals: output.FinancialInfo.CompletedGoals,
		}
	}
	return response
}

// UpdateProfileRequest represents the request body for profile updates.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
}

// UpdateProfileResponse represents the response for a profile update.
type UpdateProfileResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// AddChildRequest represents the request body for adding a kid account.
type AddChildRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30"`
	FirstName string `json:"first_name" binding:"required"`
	NickName  string `json:"nick_name"`
	Avatar    string `json:"avatar"`
	BirthDate string `json:"birth_date" binding:"required"`
	LoginCode string `json:"login_code" binding:"required,len=4"`
}

// UpdateChildRequest represents the request body for updating a kid account.
type UpdateChildRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	NickName    *string `json:"nick_name,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	LoginCode   *string `json:"login_code,omitempty"`
	NewUsername *string `json:"new_username,omitempty"`
}

// ChildListResponse represents the response for listing kid accounts.
type ChildListResponse struct {
	Success  bool            `json:"success"`
	Children []ChildResponse `json:"children"`
}

// ToChildListResponse converts domain children to a ChildListResponse DTO.
func ToChildListResponse(children []*entity.Child) ChildListResponse {
	response := ChildListResponse{
		Success:  true,
		Children: make([]ChildResponse, len(children)),
	}
	for i, c := range children {
		response.Children[i] = ToChildResponse(c)
	}
	return response
}

// ChildMutationResponse represents the response after adding or updating a kid.
type ChildMutationResponse struct {
	Success bool          `json:"success"`
	Kid     ChildResponse `json:"kid"`
}
