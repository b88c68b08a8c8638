package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pressfeed/pressfeed/store"
	"github.com/pressfeed/pressfeed/utils"
)

func TestGlobalFeed(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	assembler := NewAssembler(store.NewGormStore(db))

	author := utils.TestCreateUserAndValidate(t, "leo", db)
	for i := 0; i < 17; i++ {
		utils.TestCreatePostAndValidate(t, author, "text", nil, db)
	}

	page, err := assembler.Global("1")
	require.NoError(t, err)
	require.Equal(t, 10, len(page.Posts))
	require.Equal(t, 2, page.TotalPages)

	page, err = assembler.Global("2")
	require.NoError(t, err)
	require.Equal(t, 7, len(page.Posts))
}

func TestGlobalFeedOrdering(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	assembler := NewAssembler(store.NewGormStore(db))

	author := utils.TestCreateUserAndValidate(t, "leo", db)
	older := utils.TestCreatePostAndValidate(t, author, "older", nil, db)
	newer := utils.TestCreatePostAndValidate(t, author, "newer", nil, db)

	page, err := assembler.Global("")
	require.NoError(t, err)
	require.Equal(t, 2, len(page.Posts))
	require.Equal(t, newer.ID, page.Posts[0].ID)
	require.Equal(t, older.ID, page.Posts[1].ID)
}

func TestGlobalFeedTieBreakOnEqualTimestamps(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	assembler := NewAssembler(store.NewGormStore(db))

	author := utils.TestCreateUserAndValidate(t, "leo", db)
	at := time.Date(2022, 9, 14, 4, 30, 0, 0, time.UTC)
	first := utils.TestCreatePostAt(t, author, "first", at, db)
	second := utils.TestCreatePostAt(t, author, "second", at, db)

	// Same second twice in a row must produce the same order: higher id
	// first.
	for i := 0; i < 2; i++ {
		page, err := assembler.Global("")
		require.NoError(t, err)
		require.Equal(t, second.ID, page.Posts[0].ID)
		require.Equal(t, first.ID, page.Posts[1].ID)
	}
}

func TestGroupFeed(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	assembler := NewAssembler(store.NewGormStore(db))

	author := utils.TestCreateUserAndValidate(t, "leo", db)
	group := utils.TestCreateGroupAndValidate(t, "Cats", "cats", db)
	inGroup := utils.TestCreatePostAndValidate(t, author, "in group", group, db)
	utils.TestCreatePostAndValidate(t, author, "no group", nil, db)

	found, page, err := assembler.Group("cats", "")
	require.NoError(t, err)
	require.Equal(t, group.ID, found.ID)
	require.Equal(t, 1, len(page.Posts))
	require.Equal(t, inGroup.ID, page.Posts[0].ID)
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	assembler := NewAssembler(store.NewGormStore(db))

	_, _, err := assembler.Group("no-such-group", "")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProfileFeed(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	s := store.NewGormStore(db)
	assembler := NewAssembler(s)

	author := utils.TestCreateUserAndValidate(t, "leo", db)
	other := utils.TestCreateUserAndValidate(t, "mia", db)
	viewer := utils.TestCreateUserAndValidate(t, "sam", db)
	utils.TestCreatePostAndValidate(t, author, "one", nil, db)
	utils.TestCreatePostAndValidate(t, author, "two", nil, db)
	utils.TestCreatePostAndValidate(t, other, "not leo's", nil, db)

	profile, err := assembler.Profile(viewer.Id, "leo", "")
	require.NoError(t, err)
	require.Equal(t, author.Id, profile.Author.Id)
	require.Equal(t, 2, len(profile.Page.Posts))
	require.Equal(t, int64(2), profile.PostCount)
	require.False(t, profile.Following)

	require.NoError(t, s.CreateFollow(viewer.Id, author.Id))
	profile, err = assembler.Profile(viewer.Id, "leo", "")
	require.NoError(t, err)
	require.True(t, profile.Following)

	// Anonymous viewer gets the same feed with following unset.
	profile, err = assembler.Profile("", "leo", "")
	require.NoError(t, err)
	require.False(t, profile.Following)
}

func TestProfileFeedUnknownUsername(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	assembler := NewAssembler(store.NewGormStore(db))

	_, err := assembler.Profile("", "nobody", "")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFollowingFeed(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	s := store.NewGormStore(db)
	assembler := NewAssembler(s)

	reader := utils.TestCreateUserAndValidate(t, "reader", db)
	followed := utils.TestCreateUserAndValidate(t, "followed", db)
	alsoFollowed := utils.TestCreateUserAndValidate(t, "also_followed", db)
	stranger := utils.TestCreateUserAndValidate(t, "stranger", db)

	a := utils.TestCreatePostAndValidate(t, followed, "a", nil, db)
	b := utils.TestCreatePostAndValidate(t, alsoFollowed, "b", nil, db)
	utils.TestCreatePostAndValidate(t, stranger, "hidden", nil, db)

	require.NoError(t, s.CreateFollow(reader.Id, followed.Id))
	require.NoError(t, s.CreateFollow(reader.Id, alsoFollowed.Id))

	page, err := assembler.Following(reader.Id, "")
	require.NoError(t, err)
	require.Equal(t, 2, len(page.Posts))
	require.Equal(t, b.ID, page.Posts[0].ID)
	require.Equal(t, a.ID, page.Posts[1].ID)
}

func TestFollowingFeedEmptyWhenFollowingNobody(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	assembler := NewAssembler(store.NewGormStore(db))

	reader := utils.TestCreateUserAndValidate(t, "reader", db)
	author := utils.TestCreateUserAndValidate(t, "author", db)
	utils.TestCreatePostAndValidate(t, author, "unseen", nil, db)

	page, err := assembler.Following(reader.Id, "")
	require.NoError(t, err)
	require.Equal(t, 0, len(page.Posts))
	require.Equal(t, 1, page.TotalPages)
}

func TestFollowingFeedReflectsUnfollow(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	s := store.NewGormStore(db)
	assembler := NewAssembler(s)

	reader := utils.TestCreateUserAndValidate(t, "reader", db)
	author := utils.TestCreateUserAndValidate(t, "author", db)
	utils.TestCreatePostAndValidate(t, author, "post", nil, db)

	require.NoError(t, s.CreateFollow(reader.Id, author.Id))
	page, err := assembler.Following(reader.Id, "")
	require.NoError(t, err)
	require.Equal(t, 1, len(page.Posts))

	require.NoError(t, s.DeleteFollow(reader.Id, author.Id))
	page, err = assembler.Following(reader.Id, "")
	require.NoError(t, err)
	require.Equal(t, 0, len(page.Posts))
}
