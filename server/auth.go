package server

import (
	"fmt"
	"net/url"

	"github.com/pressfeed/pressfeed/model"
)

// LoginPath is where unauthenticated write attempts get sent. The login
// flow itself lives outside this service; the original path travels along
// in the next parameter so the user lands back where they started.
const LoginPath = "/auth/login/"

/*

Decision is the outcome of an authorization check. Authorization here is
never a hard 403: a denied action carries the redirect target the boundary
layer should send the caller to instead. Keeping the decision a plain value
of (viewer, resource) keeps the rules pure and testable without HTTP.

*/

type Decision struct {
	Allowed bool
	Target  string
}

func authorized() Decision {
	return Decision{Allowed: true}
}

func redirectTo(target string) Decision {
	return Decision{Allowed: false, Target: target}
}

// RequireLogin gates write actions: creating posts, commenting and
// changing follow state all need an authenticated viewer. Anonymous
// callers are pointed at the login entry with the original path preserved.
func RequireLogin(viewerID, originalPath string) Decision {
	if viewerID != "" {
		return authorized()
	}
	return redirectTo(LoginPath + "?next=" + url.QueryEscape(originalPath))
}

// CanEditPost gates the edit form and edit submission: only the author may
// pass. Everyone else is sent back to the post detail page rather than
// shown a permission error.
func CanEditPost(viewerID string, post *model.Post) Decision {
	if viewerID == post.AuthorID {
		return authorized()
	}
	return redirectTo(fmt.Sprintf("/posts/%d/", post.ID))
}
