package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/integration/persistence/model"
)

func (t *testContext) aParentExistsWithEmail(email string) error {
	return t.createParent(email, "Secret123!")
}

func (t *testContext) aParentExistsWithEmailAndPassword(email, password string) error {
	return t.createParent(email, password)
}

func (t *testContext) createParent(email, password string) error {
	var existing model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&existing).Error; err == nil {
		t.currentParentID = existing.ID
		t.currentParentEmail = existing.Email
		return nil
	}

	parentID := uuid.New()
	t.currentParentID = parentID
	t.currentParentEmail = email

	now := time.Now().UTC()
	parent := &model.UserModel{
		ID:                parentID,
		Email:             email,
		FirstName:         "Test",
		LastName:          "Parent",
		PasswordHash:      hashPassword(password),
		IsProfileComplete: true,
		VerifiedAt:        now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return t.db.DbConn.Create(parent).Error
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) aPendingRegistrationExistsFor(email string) error {
	pending := &model.PendingUserModel{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    "Pending",
		LastName:     "Parent",
		PasswordHash: hashPassword("Secret123!"),
		CreatedAt:    time.Now().UTC(),
	}
	return t.db.DbConn.Create(pending).Error
}

func (t *testContext) aKidExistsForParentWithLoginCode(username, parentEmail, code string) error {
	if err := t.createParent(parentEmail, "Secret123!"); err != nil {
		return err
	}

	var parent model.UserModel
	if err := t.db.DbConn.Where("email = ?", parentEmail).First(&parent).Error; err != nil {
		return fmt.Errorf("parent not found: %w", err)
	}

	kidID := uuid.New()
	t.currentKidID = kidID
	t.currentKidUsername = username

	now := time.Now().UTC()
	kid := &model.ChildModel{
		ID:            kidID,
		ParentID:      parent.ID,
		ParentEmail:   parent.Email,
		Username:      username,
		FirstName:     titleCase(username),
		Avatar:        "🦊",
		BirthDate:     "2015-06-01",
		LoginCodeHash: hashPassword(code),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(kid).Error
}

func (t *testContext) iAmLoggedInAsParent(email string) error {
	if err := t.createParent(email, "Secret123!"); err != nil {
		return err
	}

	tokens, err := t.tokenService.GenerateTokenPair(context.Background(), t.currentParentID, email, adapter.RoleParent, "")
	if err != nil {
		return fmt.Errorf("failed to generate parent tokens: %w", err)
	}

	t.accessToken = tokens.AccessToken
	t.refreshToken = tokens.RefreshToken
	return nil
}

func (t *testContext) iAmLoggedInAsKid(username string) error {
	var kid model.ChildModel
	if err := t.db.DbConn.Where("username = ?", username).First(&kid).Error; err != nil {
		return fmt.Errorf("kid not found: %w", err)
	}

	t.currentKidID = kid.ID
	t.currentKidUsername = kid.Username

	tokens, err := t.tokenService.GenerateTokenPair(context.Background(), kid.ID, kid.ToEntity().InboxAddress(), adapter.RoleKid, kid.Username)
	if err != nil {
		return fmt.Errorf("failed to generate kid tokens: %w", err)
	}

	t.accessToken = tokens.AccessToken
	t.refreshToken = tokens.RefreshToken
	return nil
}

func (t *testContext) aVerificationCodeWasIssuedFor(email string) error {
	code, err := t.otpService.Issue(context.Background(), email, adapter.OTPPurposeVerify)
	if err != nil {
		return err
	}
	t.otpCode = code
	return nil
}

func (t *testContext) aPasswordResetCodeWasIssuedFor(email string) error {
	code, err := t.otpService.Issue(context.Background(), email, adapter.OTPPurposeReset)
	if err != nil {
		return err
	}
	t.otpCode = code
	return nil
}

func (t *testContext) aValidatedPasswordResetCodeExistsFor(email string) error {
	if err := t.aPasswordResetCodeWasIssuedFor(email); err != nil {
		return err
	}
	return t.otpService.MarkValidated(context.Background(), email)
}

func (t *testContext) aGoalExistsForKid(status, title, amount string, weeks int, username string) error {
	var kid model.ChildModel
	if err := t.db.DbConn.Where("username = ?", username).First(&kid).Error; err != nil {
		return fmt.Errorf("kid not found: %w", err)
	}

	goalAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid goal amount %q: %w", amount, err)
	}

	if status == "pending" {
		status = "pending_approval"
	}

	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:            goalID,
		ChildID:       kid.ID,
		ParentID:      kid.ParentID,
		Title:         title,
		Category:      "savings",
		Amount:        goalAmount,
		DurationWeeks: weeks,
		Saved:         decimal.Zero,
		Status:        status,
		KidName:       kid.FirstName,
		KidAvatar:     kid.Avatar,
		DeadlineAt:    now.Add(time.Duration(weeks) * 7 * 24 * time.Hour),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if status == "approved" {
		goalModel.ApprovedBy = kid.ParentEmail
		goalModel.ApprovedAt = &now
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) theGoalHasSaved(amount string) error {
	saved, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid saved amount %q: %w", amount, err)
	}
	return t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Update("saved", saved).Error
}

func (t *testContext) aChoreWithRewardExists(title, reward string) error {
	return t.createChore(title, reward, "pending", false)
}

func (t *testContext) aChoreWithRewardExistsForKid(title, reward, username string) error {
	var kid model.ChildModel
	if err := t.db.DbConn.Where("username = ?", username).First(&kid).Error; err != nil {
		return fmt.Errorf("kid not found: %w", err)
	}
	t.currentKidID = kid.ID
	t.currentKidUsername = kid.Username
	return t.createChore(title, reward, "assigned", false)
}

func (t *testContext) aChoreIsAssignedToTheGoal(title, reward string) error {
	return t.createChore(title, reward, "assigned", true)
}

func (t *testContext) aChoreIsAwaitingApprovalOnTheGoal(title, reward string) error {
	return t.createChore(title, reward, "pending_approval", true)
}

func (t *testContext) createChore(title, reward, status string, claimedByGoal bool) error {
	choreReward, err := decimal.NewFromString(reward)
	if err != nil {
		return fmt.Errorf("invalid reward %q: %w", reward, err)
	}

	choreID := uuid.New()
	t.lastChoreID = choreID
	t.choreIDs = append(t.choreIDs, choreID)

	now := time.Now().UTC()
	choreModel := &model.ChoreModel{
		ID:         choreID,
		ParentID:   t.currentParentID,
		Title:      title,
		Category:   "household",
		Difficulty: "Easy",
		Reward:     choreReward,
		DueDate:    "weekly",
		Status:     status,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if status != "pending" {
		kidID := t.currentKidID
		choreModel.ChildID = &kidID
		choreModel.KidUsername = t.currentKidUsername
	}
	if status == "pending_approval" {
		choreModel.SubmittedAt = &now
	}
	if claimedByGoal {
		goalID := t.currentGoalID
		choreModel.AssignedGoalID = &goalID
	}

	if err := t.db.DbConn.Create(choreModel).Error; err != nil {
		return err
	}

	if claimedByGoal {
		var goalModel model.GoalModel
		if err := t.db.DbConn.Where("id = ?", t.currentGoalID).First(&goalModel).Error; err != nil {
			return fmt.Errorf("goal not found: %w", err)
		}
		goalModel.AssignedChoreIDs = append(goalModel.AssignedChoreIDs, choreID.String())
		return t.db.DbConn.Save(&goalModel).Error
	}
	return nil
}

func (t *testContext) aPendingProgressSubmissionExistsForTheGoal(amount string) error {
	earned, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid earned amount %q: %w", amount, err)
	}

	choreIDs := make([]string, len(t.choreIDs))
	for i, id := range t.choreIDs {
		choreIDs[i] = id.String()
	}

	submissionID := uuid.New()
	t.currentSubmissionID = submissionID

	now := time.Now().UTC()
	submission := &model.ProgressSubmissionModel{
		ID:             submissionID,
		GoalID:         t.currentGoalID,
		ChildID:        t.currentKidID,
		ParentID:       t.currentParentID,
		ChoreIDs:       choreIDs,
		TotalEarned:    earned,
		SubmissionDate: now,
		Status:         "pending",
		CreatedAt:      now,
	}

	return t.db.DbConn.Create(submission).Error
}

func (t *testContext) anUnreadNotificationExistsFor(email string) error {
	notificationID := uuid.New()
	t.currentNotificationID = notificationID

	goalID := t.currentGoalID
	notificationModel := &model.NotificationModel{
		ID:             notificationID,
		RecipientEmail: email,
		Type:           "goal_approval_request",
		Title:          "Goal approval requested",
		Message:        "A new goal is waiting for your review",
		KidUsername:    t.currentKidUsername,
		EarnedAmount:   decimal.Zero,
		Status:         "pending",
		Read:           false,
		CreatedAt:      time.Now().UTC(),
	}
	if goalID != uuid.Nil {
		notificationModel.GoalID = &goalID
	}

	return t.db.DbConn.Create(notificationModel).Error
}

func (t *testContext) aChatSessionExistsFor(title, email string) error {
	sessionID := uuid.New()
	t.currentSessionID = sessionID

	now := time.Now().UTC()
	session := &model.ChatSessionModel{
		ID:         sessionID,
		OwnerEmail: email,
		Title:      title,
		Messages:   "[]",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(session).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{otp_code}}", t.otpCode)
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{chore_id}}", t.lastChoreID.String())
	content = strings.ReplaceAll(content, "{{submission_id}}", t.currentSubmissionID.String())
	content = strings.ReplaceAll(content, "{{notification_id}}", t.currentNotificationID.String())
	content = strings.ReplaceAll(content, "{{session_id}}", t.currentSessionID.String())
	content = strings.ReplaceAll(content, "{{kid_username}}", t.currentKidUsername)

	if len(t.choreIDs) > 0 {
		ids := make([]string, len(t.choreIDs))
		for i, id := range t.choreIDs {
			ids[i] = fmt.Sprintf(`"%s"`, id.String())
		}
		content = strings.ReplaceAll(content, "{{chore_ids}}", "["+strings.Join(ids, ", ")+"]")
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIDs(responseBody)
	}

	return nil
}

// captureIDs remembers identifiers from successful responses so follow-up
// steps can reference {{goal_id}}, {{chore_id}} and friends.
func (t *testContext) captureIDs(body map[string]any) {
	if tokenStr, ok := body["access_token"].(string); ok && tokenStr != "" {
		t.accessToken = tokenStr
	}
	if tokenStr, ok := body["refresh_token"].(string); ok && tokenStr != "" {
		t.refreshToken = tokenStr
	}

	if goalBody, ok := body["goal"].(map[string]any); ok {
		if id, ok := parseIDField(goalBody); ok {
			t.currentGoalID = id
		}
	}
	if choreBody, ok := body["chore"].(map[string]any); ok {
		if id, ok := parseIDField(choreBody); ok {
			t.lastChoreID = id
			t.choreIDs = append(t.choreIDs, id)
		}
	}
	if submissionBody, ok := body["submission"].(map[string]any); ok {
		if id, ok := parseIDField(submissionBody); ok {
			t.currentSubmissionID = id
		}
	}
	if sessionBody, ok := body["session"].(map[string]any); ok {
		if id, ok := parseIDField(sessionBody); ok {
			t.currentSessionID = id
		}
	}
	if sessionIDStr, ok := body["session_id"].(string); ok {
		if id, err := uuid.Parse(sessionIDStr); err == nil {
			t.currentSessionID = id
		}
	}
}

func parseIDField(body map[string]any) (uuid.UUID, bool) {
	idStr, ok := body["id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
