// Package valueobject contains domain value objects for the AIDIY system.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aidiy/backend/internal/domain/entity"
)

// categoryEmojis maps chore categories to the emoji prefixed to the title in
// the kid-facing quest view.
var categoryEmojis = map[string]string{
	"Cleaning":     "🧹",
	"Kitchen":      "🍳",
	"Outdoor":      "🌳",
	"Organization": "📦",
	"Pet Care":     "🐕",
	"Other":        "📝",
}

// DifficultyLabel maps a difficulty to its kid-friendly label. Matching is
// case-insensitive; unknown difficulty strings pass through unchanged.
func DifficultyLabel(difficulty entity.ChoreDifficulty) string {
	switch strings.ToLower(string(difficulty)) {
	case "easy":
		return "☺️ Easy"
	case "medium":
		return "💪 Medium"
	case "hard":
		return "🔥 Hard"
	default:
		return string(difficulty)
	}
}

// QuestChore is a chore decorated for the kid-facing selection view.
type QuestChore struct {
	ID          string
	Name        string
	Description string
	Amount      decimal.Decimal // reward rounded to whole currency units
	Difficulty  string
	DueDate     string
	Status      entity.ChoreStatus
	Category    string
}

// DecorateChore converts a chore into its quest representation: category
// emoji title prefix, kid-friendly difficulty label, reward rounded to the
// nearest whole unit.
func DecorateChore(c *entity.Chore) QuestChore {
	name := c.Title
	if emoji, ok := categoryEmojis[c.Category]; ok && c.Category != "" {
		name = emoji + " " + c.Title
	}
	return QuestChore{
		ID:          c.ID.String(),
		Name:        name,
		Description: c.Description,
		Amount:      c.Reward.Round(0),
		Difficulty:  DifficultyLabel(c.Difficulty),
		DueDate:     c.DueDate,
		Status:      c.Status,
		Category:    c.Category,
	}
}

// Selection is the set of chores a kid has picked for a goal, keyed by chore
// id and kept in pick order. It is seeded from previously selected chores so
// re-entering the flow keeps prior picks.
type Selection struct {
	chores []QuestChore
}

// NewSelection creates a selection seeded with previously picked chores.
func NewSelection(prev []QuestChore) *Selection {
	s := &Selection{}
	for _, c := range prev {
		if !s.Contains(c.ID) {
			s.chores = append(s.chores, c)
		}
	}
	return s
}

// Contains reports whether the chore with the given id is selected.
func (s *Selection) Contains(id string) bool {
	for _, c := range s.chores {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Toggle adds the chore to the selection, or removes it if already present.
func (s *Selection) Toggle(chore QuestChore) {
	for i, c := range s.chores {
		if c.ID == chore.ID {
			s.chores = append(s.chores[:i], s.chores[i+1:]...)
			return
		}
	}
	s.chores = append(s.chores, chore)
}

// Chores returns the selected chores in pick order.
func (s *Selection) Chores() []QuestChore {
	out := make([]QuestChore, len(s.chores))
	copy(out, s.chores)
	return out
}

// Len returns the number of selected chores.
func (s *Selection) Len() int {
	return len(s.chores)
}

// PotentialEarnings sums the rewards of all selected chores.
func (s *Selection) PotentialEarnings() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.chores {
		total = total.Add(c.Amount)
	}
	return total
}

// NewChoreIDs partitions the selection against a previously assigned set and
// returns only the ids not present in prev. These are the only ids sent to
// the assign-to-goal operation; already assigned chores are never re-assigned.
func (s *Selection) NewChoreIDs(prev []QuestChore) []string {
	prevIDs := make(map[string]struct{}, len(prev))
	for _, c := range prev {
		prevIDs[c.ID] = struct{}{}
	}
	var ids []string
	for _, c := range s.chores {
		if _, ok := prevIDs[c.ID]; !ok && c.ID != "" {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// ProgressSegments renders existing savings and potential earnings as the two
// segments of the quest progress bar, each as a percentage of the goal
// amount. Both are clamped to [0,100] and the second is further clamped to
// the headroom left by the first.
func ProgressSegments(amount, saved, potential decimal.Decimal) (savedPct, potentialPct float64) {
	if !amount.IsPositive() {
		return 0, 0
	}
	hundred := decimal.NewFromInt(100)
	savedPct, _ = saved.Div(amount).Mul(hundred).Float64()
	savedPct = clampPct(savedPct, 100)
	potentialPct, _ = potential.Div(amount).Mul(hundred).Float64()
	potentialPct = clampPct(potentialPct, 100-savedPct)
	return savedPct, potentialPct
}

func clampPct(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
