// Package store is the only place that talks to the relational database.
// Everything above it depends on the Store interface, never on gorm
// specifics, so feeds and subscriptions stay testable against any backend.
package store

import (
	"github.com/pkg/errors"

	"github.com/pressfeed/pressfeed/model"
)

// ErrNotFound is returned whenever a lookup resolves to no row: unknown
// group slug, unknown username, unknown post id, or unfollowing an edge
// that was never created.
var ErrNotFound = errors.New("resource not found")

// PostFilter selects posts by field. Zero values mean "no constraint".
// A non-nil empty AuthorIn matches nothing, it is not a wildcard.
type PostFilter struct {
	AuthorID string
	GroupID  uint
	AuthorIn []string
}

// Store is the persistence contract. All list results come back ordered
// newest-first with the post id as a stable tie-breaker, so pagination is
// deterministic across repeated requests within the same second.
type Store interface {
	CreateUser(user *model.User) error
	// DeleteUser removes the user together with their posts, comments and
	// follow edges in either direction, in one transaction.
	DeleteUser(id string) error
	GetUser(id string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)

	CreateGroup(group *model.Group) error
	// DeleteGroup keeps the group's posts alive with a nulled group field.
	DeleteGroup(id uint) error
	GetGroupBySlug(slug string) (*model.Group, error)

	CreatePost(post *model.Post) error
	GetPost(id uint) (*model.Post, error)
	UpdatePost(post *model.Post) error
	FindPosts(filter PostFilter) ([]*model.Post, error)
	CountPostsByAuthor(authorID string) (int64, error)

	CreateComment(comment *model.Comment) error
	FindCommentsByPost(postID uint) ([]*model.Comment, error)

	// CreateFollow is idempotent: an existing (user, author) edge is left
	// untouched and no error is raised.
	CreateFollow(userID, authorID string) error
	// DeleteFollow looks the edge up strictly before deletion and returns
	// ErrNotFound when it does not exist.
	DeleteFollow(userID, authorID string) error
	FollowExists(userID, authorID string) (bool, error)
	FollowedAuthorIDs(userID string) ([]string, error)
}
