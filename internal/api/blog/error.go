package blogs

import "BlogGolang/pkg/apperror"

const blogResource = "Blog"

// Wrap messages for unexpected failures inside the command handlers.
const (
	MsgFailedToSave   = "Failed to save blog"
	MsgFailedToDelete = "Failed to delete blog"
	MsgFailedToFetch  = "Failed to fetch blogs"
)

func ErrBlogNotFound(id string) error {
	return apperror.NewNotFound(blogResource, id)
}
