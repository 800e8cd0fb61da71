package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			content,
			image,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:content,
			:image,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			content,
			image,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	queryGetAllBlogs = `
		SELECT
			id,
			title,
			content,
			image,
			created_at,
			updated_at
		FROM blogs
		ORDER BY created_at DESC
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			content = :content,
			image = CASE WHEN :image = '' THEN image ELSE :image END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`
)
