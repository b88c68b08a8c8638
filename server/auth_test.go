package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pressfeed/pressfeed/model"
)

func TestRequireLogin(t *testing.T) {
	decision := RequireLogin("user-1", "/create/")
	require.True(t, decision.Allowed)

	decision = RequireLogin("", "/posts/7/comment/")
	require.False(t, decision.Allowed)
	require.Equal(t, "/auth/login/?next=%2Fposts%2F7%2Fcomment%2F", decision.Target)
}

func TestCanEditPost(t *testing.T) {
	post := &model.Post{ID: 42, AuthorID: "author-1"}

	require.True(t, CanEditPost("author-1", post).Allowed)

	decision := CanEditPost("someone-else", post)
	require.False(t, decision.Allowed)
	require.Equal(t, "/posts/42/", decision.Target)

	decision = CanEditPost("", post)
	require.False(t, decision.Allowed)
	require.Equal(t, "/posts/42/", decision.Target)
}
