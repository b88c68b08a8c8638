// Package feed builds the four paginated post listings: global, per group,
// per author and per follower. Every variant is a read-only projection over
// the store, ordered newest-first.
package feed

import (
	"github.com/pkg/errors"

	"github.com/pressfeed/pressfeed/model"
	"github.com/pressfeed/pressfeed/store"
)

type Assembler struct {
	Store store.Store
}

func NewAssembler(s store.Store) *Assembler {
	return &Assembler{Store: s}
}

// Profile is the author feed plus the viewer-dependent extras shown on a
// profile page.
type Profile struct {
	Author    *model.User `json:"author"`
	Page      Page        `json:"page"`
	PostCount int64       `json:"post_count"`
	Following bool        `json:"following"`
}

// Global returns one page of every post in the system.
func (a *Assembler) Global(rawPage string) (Page, error) {
	posts, err := a.Store.FindPosts(store.PostFilter{})
	if err != nil {
		return Page{}, errors.Wrap(err, "failure querying global feed")
	}
	return Paginate(posts, rawPage), nil
}

// Group returns one page of the posts filed under the group with the given
// slug, or store.ErrNotFound when the slug resolves to nothing.
func (a *Assembler) Group(slug, rawPage string) (*model.Group, Page, error) {
	group, err := a.Store.GetGroupBySlug(slug)
	if err != nil {
		return nil, Page{}, err
	}
	posts, err := a.Store.FindPosts(store.PostFilter{GroupID: group.ID})
	if err != nil {
		return nil, Page{}, errors.Wrapf(err, "failure querying feed for group %s", slug)
	}
	return group, Paginate(posts, rawPage), nil
}

// Profile returns one page of the posts authored by username, their total
// post count and whether viewerID currently follows them. An empty viewerID
// means an anonymous viewer, which simply reports following=false.
func (a *Assembler) Profile(viewerID, username, rawPage string) (*Profile, error) {
	author, err := a.Store.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	posts, err := a.Store.FindPosts(store.PostFilter{AuthorID: author.Id})
	if err != nil {
		return nil, errors.Wrapf(err, "failure querying feed for author %s", username)
	}
	count, err := a.Store.CountPostsByAuthor(author.Id)
	if err != nil {
		return nil, errors.Wrapf(err, "failure counting posts for author %s", username)
	}
	following := false
	if viewerID != "" {
		following, err = a.Store.FollowExists(viewerID, author.Id)
		if err != nil {
			return nil, errors.Wrap(err, "failure querying follow state")
		}
	}
	return &Profile{
		Author:    author,
		Page:      Paginate(posts, rawPage),
		PostCount: count,
		Following: following,
	}, nil
}

// Following returns one page of the union of posts authored by everyone
// userID follows. Following nobody is not an error, just an empty page.
func (a *Assembler) Following(userID, rawPage string) (Page, error) {
	authorIds, err := a.Store.FollowedAuthorIDs(userID)
	if err != nil {
		return Page{}, errors.Wrap(err, "failure querying followed authors")
	}
	posts, err := a.Store.FindPosts(store.PostFilter{AuthorIn: authorIds})
	if err != nil {
		return Page{}, errors.Wrap(err, "failure querying followed-authors feed")
	}
	return Paginate(posts, rawPage), nil
}
