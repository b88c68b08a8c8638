package subscription

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pressfeed/pressfeed/model"
	"github.com/pressfeed/pressfeed/store"
	"github.com/pressfeed/pressfeed/utils"
)

func followCount(t *testing.T, m *Manager) int64 {
	t.Helper()
	gs := m.Store.(*store.GormStore)
	var count int64
	require.NoError(t, gs.DB.Model(&model.Follow{}).Count(&count).Error)
	return count
}

func TestFollowCreatesSingleEdge(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	manager := NewManager(store.NewGormStore(db))

	user := utils.TestCreateUserAndValidate(t, "reader", db)
	author := utils.TestCreateUserAndValidate(t, "author", db)

	require.NoError(t, manager.Follow(user.Id, author.Id))
	require.Equal(t, int64(1), followCount(t, manager))

	following, err := manager.IsFollowing(user.Id, author.Id)
	require.NoError(t, err)
	require.True(t, following)

	// The edge is directed: the author does not follow back.
	following, err = manager.IsFollowing(author.Id, user.Id)
	require.NoError(t, err)
	require.False(t, following)
}

func TestFollowSelfIsSilentNoop(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	manager := NewManager(store.NewGormStore(db))

	user := utils.TestCreateUserAndValidate(t, "reader", db)

	require.NoError(t, manager.Follow(user.Id, user.Id))
	require.Equal(t, int64(0), followCount(t, manager))
}

func TestFollowTwiceIsIdempotent(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	manager := NewManager(store.NewGormStore(db))

	user := utils.TestCreateUserAndValidate(t, "reader", db)
	author := utils.TestCreateUserAndValidate(t, "author", db)

	require.NoError(t, manager.Follow(user.Id, author.Id))
	require.NoError(t, manager.Follow(user.Id, author.Id))
	require.Equal(t, int64(1), followCount(t, manager))
}

func TestUnfollowRemovesEdge(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	manager := NewManager(store.NewGormStore(db))

	user := utils.TestCreateUserAndValidate(t, "reader", db)
	author := utils.TestCreateUserAndValidate(t, "author", db)

	require.NoError(t, manager.Follow(user.Id, author.Id))
	require.NoError(t, manager.Unfollow(user.Id, author.Id))
	require.Equal(t, int64(0), followCount(t, manager))

	following, err := manager.IsFollowing(user.Id, author.Id)
	require.NoError(t, err)
	require.False(t, following)
}

// Unfollowing someone never followed is a reportable not-found, not a
// silent success. Some revisions of this logic redirected silently
// instead; the strict reading wins here.
func TestUnfollowNonexistentEdgeIsNotFound(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	manager := NewManager(store.NewGormStore(db))

	user := utils.TestCreateUserAndValidate(t, "reader", db)
	author := utils.TestCreateUserAndValidate(t, "author", db)

	err := manager.Unfollow(user.Id, author.Id)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestIsFollowingAnonymousViewer(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	manager := NewManager(store.NewGormStore(db))

	author := utils.TestCreateUserAndValidate(t, "author", db)

	following, err := manager.IsFollowing("", author.Id)
	require.NoError(t, err)
	require.False(t, following)
}
