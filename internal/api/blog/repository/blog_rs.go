package blogRepository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
)

type BlogDB struct {
	ID        sql.NullString `db:"id"`
	Title     sql.NullString `db:"title"`
	Content   sql.NullString `db:"content"`
	Image     sql.NullString `db:"image"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         blog.ID,
		"title":      blog.Title,
		"content":    blog.Content,
		"image":      blog.Image,
		"created_at": blog.CreatedAt,
		"updated_at": blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	query, args, err := sqlx.Named(queryGetBlogByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound(id)
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return makeBlog(blog), nil
}

func (r *blogsRepository) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogDB

	query, args, err := sqlx.Named(queryGetAllBlogs, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogs named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogs execution err")
		return nil, err
	}

	result := make([]entity.Blog, 0, len(blogsList))
	for _, blogDB := range blogsList {
		result = append(result, makeBlog(blogDB))
	}

	return result, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         blog.ID,
		"title":      blog.Title,
		"content":    blog.Content,
		"image":      blog.Image,
		"updated_at": blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBlog, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting blog")
		return err
	}

	return nil
}

func makeBlog(blog BlogDB) entity.Blog {
	return entity.Blog{
		ID:        blog.ID.String,
		Title:     blog.Title.String,
		Content:   blog.Content.String,
		Image:     blog.Image.String,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}
