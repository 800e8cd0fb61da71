package blogService

import (
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"

	blogs "BlogGolang/internal/api/blog"
	blogsRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/s3"
	"BlogGolang/pkg/utils"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.BlogPayload, imageFile *multipart.FileHeader) (entity.Blog, error)
	GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
	GetAllBlogs(ctx context.Context) ([]entity.Blog, error)
	UpdateBlog(ctx context.Context, id string, req blogs.BlogPayload, imageFile *multipart.FileHeader) (entity.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	s3Client  s3.ItfS3
	utils     utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		s3Client:  s3Client,
		utils:     utils,
	}
}
