// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestChild_DisplayName(t *testing.T) {
	t.Run("nickname wins when set", func(t *testing.T) {
		c := NewChild(uuid.New(), "parent@example.com", "emma", "Emma", "Sparkles", "🦊", "2015-06-01", "hash")

		if got := c.DisplayName(); got != "Sparkles" {
			t.Errorf("expected Sparkles, got %s", got)
		}
	})

	t.Run("falls back to first name", func(t *testing.T) {
		c := NewChild(uuid.New(), "parent@example.com", "emma", "Emma", "", "🦊", "2015-06-01", "hash")

		if got := c.DisplayName(); got != "Emma" {
			t.Errorf("expected Emma, got %s", got)
		}
	})
}

func TestChild_InboxAddress(t *testing.T) {
	c := NewChild(uuid.New(), "parent@example.com", "emma", "Emma", "", "🦊", "2015-06-01", "hash")

	if got := c.InboxAddress(); got != "emma@kids.aidiy" {
		t.Errorf("expected emma@kids.aidiy, got %s", got)
	}
	if got := KidInboxAddress("leo"); got != "leo@kids.aidiy" {
		t.Errorf("expected leo@kids.aidiy, got %s", got)
	}
}

func TestNewChild_DefaultAvatar(t *testing.T) {
	c := NewChild(uuid.New(), "parent@example.com", "emma", "Emma", "", "", "2015-06-01", "hash")

	if c.Avatar != "👧" {
		t.Errorf("expected default avatar, got %q", c.Avatar)
	}
}
