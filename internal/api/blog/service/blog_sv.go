package blogService

import (
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/apperror"
	contextPkg "BlogGolang/pkg/context"
)

const imageFolder = "blogs"

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.BlogPayload, imageFile *multipart.FileHeader) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToSave, err)
	}
	defer repo.Rollback()

	image, err := s.storeImage(requestID, imageFile)
	if err != nil {
		return entity.Blog{}, err
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToSave, err)
	}

	now := time.Now()

	blog := entity.Blog{
		ID:        blogID,
		Title:     req.Title,
		Content:   req.Content,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToSave, err)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToSave, err)
	}

	return blog, nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToFetch, err)
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToFetch, err)
	}

	blog.Image = s.presignImage(requestID, blog.Image)

	return blog, nil
}

func (s *blogsService) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, apperror.Wrap(blogs.MsgFailedToFetch, err)
	}

	blogsList, err := repo.Blogs.GetAllBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, apperror.Wrap(blogs.MsgFailedToFetch, err)
	}

	for i := range blogsList {
		blogsList[i].Image = s.presignImage(requestID, blogsList[i].Image)
	}

	return blogsList, nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.BlogPayload, imageFile *multipart.FileHeader) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToSave, err)
	}
	defer repo.Rollback()

	// Not found surfaces as-is here, never as an internal error.
	existing, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToSave, err)
	}

	image := existing.Image
	if imageFile != nil {
		if existing.Image != "" {
			// Old file removal is best effort; the update proceeds either way.
			if err := s.s3Client.DeleteFile(existing.Image); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"image":      existing.Image,
					"error":      err.Error(),
				}).Warn("Failed to delete old image")
			}
		}

		image, err = s.storeImage(requestID, imageFile)
		if err != nil {
			return entity.Blog{}, err
		}
	}

	updated := entity.Blog{
		ID:        existing.ID,
		Title:     req.Title,
		Content:   req.Content,
		Image:     image,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}

	if err := repo.Blogs.UpdateBlog(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToSave, err)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Blog{}, apperror.Wrap(blogs.MsgFailedToSave, err)
	}

	return updated, nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return apperror.Wrap(blogs.MsgFailedToDelete, err)
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return apperror.Wrap(blogs.MsgFailedToDelete, err)
	}

	if blog.Image != "" {
		// Best effort; the record goes away even if the file lingers.
		if err := s.s3Client.DeleteFile(blog.Image); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"image":      blog.Image,
				"error":      err.Error(),
			}).Warn("Failed to delete blog image")
		}
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return apperror.Wrap(blogs.MsgFailedToDelete, err)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return apperror.Wrap(blogs.MsgFailedToDelete, err)
	}

	return nil
}

func (s *blogsService) storeImage(requestID string, imageFile *multipart.FileHeader) (string, error) {
	if imageFile == nil {
		return "", nil
	}

	if err := s.utils.ValidateImageFile(imageFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid image file")
		return "", err
	}

	uploadedURL, err := s.s3Client.UploadFile(imageFile, imageFolder)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload image")
		return "", apperror.Wrap(blogs.MsgFailedToSave, err)
	}

	return uploadedURL, nil
}

func (s *blogsService) presignImage(requestID string, image string) string {
	if image == "" {
		return ""
	}

	presignedURL, err := s.s3Client.PresignUrl(image)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image":      image,
			"error":      err.Error(),
		}).Warn("Failed to create presigned URL for image")
		return image
	}

	return presignedURL
}
