package blogHandler

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"

	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/auth"
	"BlogGolang/pkg/apperror"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/log"
	"BlogGolang/pkg/response"
	"BlogGolang/pkg/timing"
)

// authorize runs the auth gate and the first timeout checkpoint. Every
// route goes through it before touching the blog service.
func (h *BlogsHandler) authorize(ctx *fiber.Ctx) (context.Context, *timing.Timing, error) {
	c := contextPkg.FromFiberCtx(ctx)
	timer := timing.Start(h.timeout)

	if _, err := h.gate.Authorize(c, auth.CredentialsFromFiber(ctx)); err != nil {
		return c, nil, err
	}

	if err := timer.Checkpoint(); err != nil {
		return c, nil, err
	}

	return c, timer, nil
}

func (h *BlogsHandler) GetAllBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all blogs request")

	c, timer, err := h.authorize(ctx)
	if err != nil {
		return err
	}

	blogsList, err := h.blogsService.GetAllBlogs(c)
	if err != nil {
		return err
	}

	if err := timer.Checkpoint(); err != nil {
		return err
	}

	return response.Success(ctx, fiber.StatusOK, blogs.NewBlogListResponse(blogsList), "Blog list fetched")
}

func (h *BlogsHandler) GetBlogByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get blog by ID request")

	c, timer, err := h.authorize(ctx)
	if err != nil {
		return err
	}

	blog, err := h.blogsService.GetBlogByID(c, ctx.Params("id"))
	if err != nil {
		return err
	}

	if err := timer.Checkpoint(); err != nil {
		return err
	}

	return response.Success(ctx, fiber.StatusOK, blogs.NewBlogResponse(blog), "Blog found")
}

func (h *BlogsHandler) DeleteBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete blog request")

	c, timer, err := h.authorize(ctx)
	if err != nil {
		return err
	}

	if err := h.blogsService.DeleteBlog(c, ctx.Params("id")); err != nil {
		return err
	}

	if err := timer.Checkpoint(); err != nil {
		return err
	}

	return response.Success(ctx, fiber.StatusOK, nil, "Blog deleted")
}

func (h *BlogsHandler) CreateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create blog request")

	c, timer, err := h.authorize(ctx)
	if err != nil {
		return err
	}

	payload := h.parsePayload(ctx)
	if err := h.validatePayload(payload); err != nil {
		return err
	}

	imageFile, _ := ctx.FormFile("image")

	blog, err := h.blogsService.CreateBlog(c, payload, imageFile)
	if err != nil {
		return err
	}

	if err := timer.Checkpoint(); err != nil {
		return err
	}

	return response.Success(ctx, fiber.StatusCreated, blogs.NewBlogResponse(blog), "Blog created")
}

func (h *BlogsHandler) UpdateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update blog request")

	c, timer, err := h.authorize(ctx)
	if err != nil {
		return err
	}

	payload := h.parsePayload(ctx)
	if err := h.validatePayload(payload); err != nil {
		return err
	}

	imageFile, _ := ctx.FormFile("image")

	blog, err := h.blogsService.UpdateBlog(c, ctx.Params("id"), payload, imageFile)
	if err != nil {
		return err
	}

	if err := timer.Checkpoint(); err != nil {
		return err
	}

	return response.Success(ctx, fiber.StatusOK, blogs.NewBlogResponse(blog), "Blog updated")
}

// parsePayload accepts, in priority order: a JSON string under the `data`
// form field, a raw JSON body, or plain title/content form fields.
func (h *BlogsHandler) parsePayload(ctx *fiber.Ctx) blogs.BlogPayload {
	var payload blogs.BlogPayload

	if data := ctx.FormValue("data"); data != "" {
		if err := jsoniter.Unmarshal([]byte(data), &payload); err != nil {
			h.log.WithFields(log.Fields{
				"request_id": h.middleware.GetRequestID(ctx),
				"error":      err.Error(),
			}).Warn("Failed to decode data field")
		}
		return payload
	}

	contentType := ctx.Get(fiber.HeaderContentType)
	if strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		if err := ctx.BodyParser(&payload); err != nil {
			h.log.WithFields(log.Fields{
				"request_id": h.middleware.GetRequestID(ctx),
				"error":      err.Error(),
			}).Warn("Failed to decode JSON body")
		}
		return payload
	}

	payload.Title = ctx.FormValue("title")
	payload.Content = ctx.FormValue("content")
	return payload
}

// validatePayload checks every field so the caller sees all violations at
// once, not just the first.
func (h *BlogsHandler) validatePayload(payload blogs.BlogPayload) error {
	err := h.validator.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make(map[string][]string)
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		fieldErrors[field] = append(fieldErrors[field], fmt.Sprintf("%s is required.", fieldErr.Field()))
	}

	return apperror.NewValidation(fieldErrors)
}
