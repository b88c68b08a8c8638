package server

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// PostForm is the payload for creating or editing a post. Group is the id
// of an existing group or absent; Image is the stored path of an already
// uploaded attachment (upload itself happens outside this service).
type PostForm struct {
	Text  string `form:"text" json:"text" binding:"required,max=300"`
	Group *uint  `form:"group" json:"group"`
	Image string `form:"image" json:"image"`
}

// CommentForm is the payload for commenting on a post.
type CommentForm struct {
	Text string `form:"text" json:"text" binding:"required"`
}

// validationField names the first offending field of a binding error, or
// empty when the error is not a field validation failure.
func validationField(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return strings.ToLower(fieldErrs[0].Field())
	}
	return ""
}
