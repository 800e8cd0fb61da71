package blogs

import (
	"time"

	"BlogGolang/internal/entity"
)

// BlogPayload is the create/update input. The handler fills it from the
// `data` form field, a raw JSON body, or plain form fields, in that order.
type BlogPayload struct {
	Title   string `json:"title" form:"title" validate:"required"`
	Content string `json:"content" form:"content" validate:"required"`
}

type BlogResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBlogResponse(blog entity.Blog) BlogResponse {
	return BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		Image:     blog.Image,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

func NewBlogListResponse(blogsList []entity.Blog) []BlogResponse {
	responses := make([]BlogResponse, 0, len(blogsList))
	for _, blog := range blogsList {
		responses = append(responses, NewBlogResponse(blog))
	}
	return responses
}
