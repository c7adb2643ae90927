// Package chore contains chore-related use cases.
package chore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

// In-memory repositories for use case tests.

var errFakeNotFound = errors.New("not found")

type fakeChoreRepo struct {
	chores map[uuid.UUID]*entity.Chore
}

func newFakeChoreRepo() *fakeChoreRepo {
	return &fakeChoreRepo{chores: make(map[uuid.UUID]*entity.Chore)}
}

func (r *fakeChoreRepo) Create(_ context.Context, c *entity.Chore) error {
	r.chores[c.ID] = c
	return nil
}

func (r *fakeChoreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Chore, error) {
	c, ok := r.chores[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return c, nil
}

func (r *fakeChoreRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Chore, error) {
	var out []*entity.Chore
	for _, id := range ids {
		if c, ok := r.chores[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeChoreRepo) List(_ context.Context, filter adapter.ChoreFilter) ([]*entity.Chore, error) {
	var out []*entity.Chore
	for _, c := range r.chores {
		if filter.KidUsername != "" && c.KidUsername != filter.KidUsername {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if !filter.IncludeInactive && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeChoreRepo) FindByGoal(_ context.Context, goalID uuid.UUID) ([]*entity.Chore, error) {
	var out []*entity.Chore
	for _, c := range r.chores {
		if c.AssignedGoalID == nil || *c.AssignedGoalID != goalID {
			continue
		}
		if c.Status == entity.ChoreStatusArchived || c.Status == entity.ChoreStatusPendingApproval {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeChoreRepo) Update(_ context.Context, c *entity.Chore) error {
	r.chores[c.ID] = c
	return nil
}

func (r *fakeChoreRepo) Delete(_ context.Context, id, parentID uuid.UUID) (int64, error) {
	c, ok := r.chores[id]
	if !ok || c.ParentID != parentID {
		return 0, nil
	}
	delete(r.chores, id)
	return 1, nil
}

func (r *fakeChoreRepo) CountSelectable(_ context.Context, kidUsername string) (int64, error) {
	var count int64
	for _, c := range r.chores {
		if c.KidUsername == kidUsername && c.IsActive && c.IsSelectable() {
			count++
		}
	}
	return count, nil
}

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
