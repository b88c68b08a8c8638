// Package subscription manages the directed "user follows author" edges.
package subscription

import (
	"github.com/pkg/errors"

	"github.com/pressfeed/pressfeed/store"
)

type Manager struct {
	Store store.Store
}

func NewManager(s store.Store) *Manager {
	return &Manager{Store: s}
}

// Follow ensures a follow edge from userID to authorID. Following yourself
// is a silent no-op, and following someone twice leaves the single existing
// edge untouched; neither case is an error.
func (m *Manager) Follow(userID, authorID string) error {
	if userID == authorID {
		return nil
	}
	if err := m.Store.CreateFollow(userID, authorID); err != nil {
		return errors.Wrap(err, "failure creating follow edge")
	}
	return nil
}

// Unfollow removes the follow edge from userID to authorID. The edge is
// looked up strictly before deletion: unfollowing someone never followed
// surfaces store.ErrNotFound instead of succeeding silently.
func (m *Manager) Unfollow(userID, authorID string) error {
	err := m.Store.DeleteFollow(userID, authorID)
	if errors.Is(err, store.ErrNotFound) {
		return err
	}
	if err != nil {
		return errors.Wrap(err, "failure deleting follow edge")
	}
	return nil
}

// IsFollowing reports whether userID follows authorID. An empty userID is
// an anonymous viewer and always reports false without error.
func (m *Manager) IsFollowing(userID, authorID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return m.Store.FollowExists(userID, authorID)
}
