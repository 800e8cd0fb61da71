package blogHandler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	blogsService "BlogGolang/internal/api/blog/service"
	"BlogGolang/internal/auth"
	"BlogGolang/internal/middleware"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	gate         *auth.Gate
	blogsService blogsService.IBlogsService
	timeout      time.Duration
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	gate *auth.Gate,
	bs blogsService.IBlogsService,
	timeout time.Duration,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		gate:         gate,
		blogsService: bs,
		timeout:      timeout,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	// Read/delete family
	blogs.Get("", h.GetAllBlogs)
	blogs.Get("/:id", h.GetBlogByID)
	blogs.Delete("/:id", h.DeleteBlog)

	// Create/update family; POST on an id is an accepted update alias.
	blogs.Post("", h.CreateBlog)
	blogs.Put("/:id", h.UpdateBlog)
	blogs.Post("/:id", h.UpdateBlog)
}
