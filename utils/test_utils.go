package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pressfeed/pressfeed/model"
)

// TestCreateUserAndValidate seeds a user with a fresh uuid and asserts the
// row landed.
func TestCreateUserAndValidate(t *testing.T, username string, db *gorm.DB) *model.User {
	t.Helper()
	user := model.User{Id: uuid.New().String(), Username: username}
	require.NoError(t, db.Create(&user).Error)

	var count int64
	db.Model(&model.User{}).Where("id = ?", user.Id).Count(&count)
	require.Equal(t, int64(1), count)
	return &user
}

// TestCreateGroupAndValidate seeds a group.
func TestCreateGroupAndValidate(t *testing.T, title string, slug string, db *gorm.DB) *model.Group {
	t.Helper()
	group := model.Group{Title: title, Slug: slug, Description: title + " description"}
	require.NoError(t, db.Create(&group).Error)
	require.NotZero(t, group.ID)
	return &group
}

// TestCreatePostAndValidate seeds a post for author, optionally filed
// under group. Sequential calls produce strictly increasing ids, so
// newest-first ordering is the reverse of creation order.
func TestCreatePostAndValidate(t *testing.T, author *model.User, text string, group *model.Group, db *gorm.DB) *model.Post {
	t.Helper()
	post := model.Post{Text: text, AuthorID: author.Id}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, db.Create(&post).Error)
	require.NotZero(t, post.ID)
	return &post
}

// TestCreatePostAt seeds a post with an explicit creation timestamp, used
// to exercise ordering tie-breaks.
func TestCreatePostAt(t *testing.T, author *model.User, text string, createdAt time.Time, db *gorm.DB) *model.Post {
	t.Helper()
	post := model.Post{Text: text, AuthorID: author.Id, CreatedAt: createdAt}
	require.NoError(t, db.Create(&post).Error)
	return &post
}

// TestCreateCommentAndValidate seeds a comment on post.
func TestCreateCommentAndValidate(t *testing.T, author *model.User, post *model.Post, text string, db *gorm.DB) *model.Comment {
	t.Helper()
	comment := model.Comment{PostID: post.ID, AuthorID: author.Id, Text: text}
	require.NoError(t, db.Create(&comment).Error)
	require.NotZero(t, comment.ID)
	return &comment
}
