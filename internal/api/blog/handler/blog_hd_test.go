package blogHandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	blogs "BlogGolang/internal/api/blog"
	blogHandler "BlogGolang/internal/api/blog/handler"
	blogRepository "BlogGolang/internal/api/blog/repository"
	blogService "BlogGolang/internal/api/blog/service"
	"BlogGolang/internal/auth"
	"BlogGolang/internal/config"
	"BlogGolang/internal/entity"
	"BlogGolang/internal/middleware"
	"BlogGolang/pkg/log"
	"BlogGolang/pkg/utils"
)

type fakeBlogStore struct {
	mu    sync.Mutex
	delay time.Duration
	blogs map[string]entity.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: make(map[string]entity.Blog)}
}

func (f *fakeBlogStore) CreateBlog(_ context.Context, blog entity.Blog) error {
	time.Sleep(f.delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogStore) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	blog, ok := f.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound(id)
	}
	return blog, nil
}

func (f *fakeBlogStore) GetAllBlogs(_ context.Context) ([]entity.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]entity.Blog, 0, len(f.blogs))
	for _, blog := range f.blogs {
		list = append(list, blog)
	}
	return list, nil
}

func (f *fakeBlogStore) UpdateBlog(_ context.Context, blog entity.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogStore) DeleteBlog(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blogs, id)
	return nil
}

type fakeRepository struct {
	store *fakeBlogStore
}

func (f *fakeRepository) NewClient(_ bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeS3 struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (f *fakeS3) UploadFile(file *multipart.FileHeader, folder string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	location := fmt.Sprintf("https://bucket.s3.amazonaws.com/%s/%s", folder, file.Filename)
	f.uploaded = append(f.uploaded, location)
	return location, nil
}

func (f *fakeS3) PresignUrl(fileName string) (string, error) {
	return fileName, nil
}

func (f *fakeS3) DeleteFile(fileName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, fileName)
	return nil
}

type fakeSessions struct {
	users map[string]entity.User
}

func (f *fakeSessions) CurrentUser(_ context.Context, sessionID string) (entity.User, bool, error) {
	user, ok := f.users[sessionID]
	return user, ok, nil
}

type fakeVerifier struct {
	err error
}

func (f fakeVerifier) Verify(_ string) (jwt.MapClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return jwt.MapClaims{"sub": "u1"}, nil
}

type testEnv struct {
	app   *fiber.App
	store *fakeBlogStore
	s3    *fakeS3
}

type envOption func(*envConfig)

type envConfig struct {
	timeout    time.Duration
	storeDelay time.Duration
	tokenErr   error
	adminUser  bool
}

func withTimeout(d time.Duration) envOption {
	return func(c *envConfig) { c.timeout = d }
}

func withStoreDelay(d time.Duration) envOption {
	return func(c *envConfig) { c.storeDelay = d }
}

func withTokenError(err error) envOption {
	return func(c *envConfig) { c.tokenErr = err }
}

func withNonAdmin() envOption {
	return func(c *envConfig) { c.adminUser = false }
}

func newTestEnv(t *testing.T, opts ...envOption) testEnv {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	cfg := envConfig{timeout: 10 * time.Second, adminUser: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := log.NewLogger()
	app := config.NewFiber(logger)

	mw := middleware.New(logger)
	app.Use(mw.NewRequestIDMiddleware())

	sessions := &fakeSessions{users: map[string]entity.User{
		"s1": {ID: "u1", Email: "admin@example.com", Username: "admin", IsAdmin: cfg.adminUser},
	}}
	gate := auth.NewGate(logger, sessions, fakeVerifier{err: cfg.tokenErr})

	store := newFakeBlogStore()
	store.delay = cfg.storeDelay
	s3Client := &fakeS3{}
	svc := blogService.NewBlogsService(logger, &fakeRepository{store: store}, s3Client, utils.New())

	h := blogHandler.New(logger, config.NewValidator(), mw, gate, svc, cfg.timeout)
	h.Start(app.Group("/api/v1"))

	return testEnv{app: app, store: store, s3: s3Client}
}

func authedRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "s1"})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer token")
	return req
}

func jsonRequest(method, path string, payload interface{}) *http.Request {
	raw, _ := json.Marshal(payload)
	req := authedRequest(method, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func errorCode(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("want error object, got %v", body)
	}
	code, _ := errObj["code"].(string)
	return code
}

func createBlog(t *testing.T, env testEnv, title, content string) string {
	t.Helper()
	resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/v1/blogs", map[string]string{
		"title":   title,
		"content": content,
	}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: want 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	return data["id"].(string)
}

func TestAuthenticationRequired(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/blogs"},
		{http.MethodGet, "/api/v1/blogs/1"},
		{http.MethodDelete, "/api/v1/blogs/1"},
		{http.MethodPost, "/api/v1/blogs"},
		{http.MethodPut, "/api/v1/blogs/1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)

			resp, err := env.app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("want 401, got %d", resp.StatusCode)
			}
			if code := errorCode(t, decodeBody(t, resp)); code != "unauthorized" {
				t.Errorf("want code unauthorized, got %q", code)
			}
		})
	}
}

func TestAdminRequired(t *testing.T) {
	env := newTestEnv(t, withNonAdmin())

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/blogs"},
		{http.MethodDelete, "/api/v1/blogs/1"},
		{http.MethodPost, "/api/v1/blogs"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			resp, err := env.app.Test(authedRequest(route.method, route.path, nil))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != http.StatusForbidden {
				t.Errorf("want 403, got %d", resp.StatusCode)
			}
			if code := errorCode(t, decodeBody(t, resp)); code != "forbidden" {
				t.Errorf("want code forbidden, got %q", code)
			}
		})
	}
}

func TestTokenFailures(t *testing.T) {
	t.Run("expired token yields token expired", func(t *testing.T) {
		env := newTestEnv(t, withTokenError(fmt.Errorf("expired: %w", jwt.ErrTokenExpired)))

		resp, err := env.app.Test(authedRequest(http.MethodGet, "/api/v1/blogs", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("want 401, got %d", resp.StatusCode)
		}
		if code := errorCode(t, decodeBody(t, resp)); code != "token expired" {
			t.Errorf("want code token expired, got %q", code)
		}
	})

	t.Run("bad signature yields token invalid", func(t *testing.T) {
		env := newTestEnv(t, withTokenError(fmt.Errorf("signature is invalid")))

		resp, err := env.app.Test(authedRequest(http.MethodGet, "/api/v1/blogs", nil))
		if err != nil {
			t.Fatal(err)
		}
		if code := errorCode(t, decodeBody(t, resp)); code != "token invalid" {
			t.Errorf("want code token invalid, got %q", code)
		}
	})
}

func TestValidationAccumulates(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		payload    map[string]string
		wantFields []string
	}{
		{"missing title", map[string]string{"content": "body"}, []string{"title"}},
		{"missing content", map[string]string{"title": "hello"}, []string{"content"}},
		{"missing both", map[string]string{}, []string{"title", "content"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/v1/blogs", tt.payload))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != http.StatusUnprocessableEntity {
				t.Fatalf("want 422, got %d", resp.StatusCode)
			}

			body := decodeBody(t, resp)
			if code := errorCode(t, body); code != "validation error" {
				t.Errorf("want code validation error, got %q", code)
			}

			errObj := body["error"].(map[string]interface{})
			fieldErrors, ok := errObj["errors"].(map[string]interface{})
			if !ok {
				t.Fatalf("want errors map, got %v", errObj)
			}
			for _, field := range tt.wantFields {
				messages, ok := fieldErrors[field].([]interface{})
				if !ok || len(messages) == 0 {
					t.Errorf("want at least one message for %q, got %v", field, fieldErrors[field])
				}
			}
			if len(fieldErrors) != len(tt.wantFields) {
				t.Errorf("want %d field entries, got %v", len(tt.wantFields), fieldErrors)
			}
		})
	}
}

func TestCreateBlog(t *testing.T) {
	t.Run("valid JSON body returns 201 echoing input", func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/v1/blogs", map[string]string{
			"title":   "First post",
			"content": "Hello world",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("want 201, got %d", resp.StatusCode)
		}

		body := decodeBody(t, resp)
		if body["success"] != true {
			t.Errorf("want success true, got %v", body["success"])
		}
		if body["message"] != "Blog created" {
			t.Errorf("want message Blog created, got %v", body["message"])
		}

		data := body["data"].(map[string]interface{})
		if data["title"] != "First post" || data["content"] != "Hello world" {
			t.Errorf("want echoed input, got %v", data)
		}
		if _, present := data["image"]; present {
			t.Errorf("want image absent, got %v", data["image"])
		}
	})

	t.Run("data form field takes priority", func(t *testing.T) {
		env := newTestEnv(t)

		body, contentType := multipartBody(t, map[string]string{
			"data":  `{"title":"From data","content":"Data body"}`,
			"title": "ignored",
		}, "", "", nil)
		req := authedRequest(http.MethodPost, "/api/v1/blogs", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := env.app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("want 201, got %d", resp.StatusCode)
		}

		data := decodeBody(t, resp)["data"].(map[string]interface{})
		if data["title"] != "From data" {
			t.Errorf("want title from data field, got %v", data["title"])
		}
	})

	t.Run("plain form fields are accepted", func(t *testing.T) {
		env := newTestEnv(t)

		body, contentType := multipartBody(t, map[string]string{
			"title":   "Form title",
			"content": "Form content",
		}, "", "", nil)
		req := authedRequest(http.MethodPost, "/api/v1/blogs", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := env.app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("want 201, got %d", resp.StatusCode)
		}
	})

	t.Run("attached image is stored and referenced", func(t *testing.T) {
		env := newTestEnv(t)

		body, contentType := multipartBody(t, map[string]string{
			"title":   "With image",
			"content": "Has a picture",
		}, "image", "pic.png", []byte("png-bytes"))
		req := authedRequest(http.MethodPost, "/api/v1/blogs", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := env.app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("want 201, got %d", resp.StatusCode)
		}

		data := decodeBody(t, resp)["data"].(map[string]interface{})
		image, _ := data["image"].(string)
		if image == "" {
			t.Fatal("want image reference in data")
		}

		blogID := data["id"].(string)
		delResp, err := env.app.Test(authedRequest(http.MethodDelete, "/api/v1/blogs/"+blogID, nil))
		if err != nil {
			t.Fatal(err)
		}
		if delResp.StatusCode != http.StatusOK {
			t.Fatalf("delete: want 200, got %d", delResp.StatusCode)
		}
		if len(env.s3.deleted) != 1 || env.s3.deleted[0] != image {
			t.Errorf("want storage delete with %q, got %v", image, env.s3.deleted)
		}
	})

	t.Run("rejects non-image upload", func(t *testing.T) {
		env := newTestEnv(t)

		body, contentType := multipartBody(t, map[string]string{
			"title":   "Bad image",
			"content": "Not a picture",
		}, "image", "payload.exe", []byte("bytes"))
		req := authedRequest(http.MethodPost, "/api/v1/blogs", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := env.app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("want 422, got %d", resp.StatusCode)
		}
	})
}

func TestReadAndRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	id := createBlog(t, env, "Round trip", "Same content back")

	t.Run("read by id returns submitted values", func(t *testing.T) {
		resp, err := env.app.Test(authedRequest(http.MethodGet, "/api/v1/blogs/"+id, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("want 200, got %d", resp.StatusCode)
		}

		body := decodeBody(t, resp)
		if body["message"] != "Blog found" {
			t.Errorf("want message Blog found, got %v", body["message"])
		}
		data := body["data"].(map[string]interface{})
		if data["title"] != "Round trip" || data["content"] != "Same content back" {
			t.Errorf("want round-tripped values, got %v", data)
		}
	})

	t.Run("list includes the record", func(t *testing.T) {
		resp, err := env.app.Test(authedRequest(http.MethodGet, "/api/v1/blogs", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("want 200, got %d", resp.StatusCode)
		}

		body := decodeBody(t, resp)
		if body["message"] != "Blog list fetched" {
			t.Errorf("want message Blog list fetched, got %v", body["message"])
		}
		list, ok := body["data"].([]interface{})
		if !ok || len(list) != 1 {
			t.Errorf("want one record, got %v", body["data"])
		}
	})

	t.Run("read of unknown id is 404", func(t *testing.T) {
		resp, err := env.app.Test(authedRequest(http.MethodGet, "/api/v1/blogs/missing", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("want 404, got %d", resp.StatusCode)
		}
		if code := errorCode(t, decodeBody(t, resp)); code != "not found" {
			t.Errorf("want code not found, got %q", code)
		}
	})
}

func TestUpdateBlog(t *testing.T) {
	t.Run("updates existing record", func(t *testing.T) {
		env := newTestEnv(t)
		id := createBlog(t, env, "Before", "Old content")

		resp, err := env.app.Test(jsonRequest(http.MethodPut, "/api/v1/blogs/"+id, map[string]string{
			"title":   "After",
			"content": "New content",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("want 200, got %d", resp.StatusCode)
		}

		body := decodeBody(t, resp)
		if body["message"] != "Blog updated" {
			t.Errorf("want message Blog updated, got %v", body["message"])
		}
		data := body["data"].(map[string]interface{})
		if data["title"] != "After" {
			t.Errorf("want updated title, got %v", data["title"])
		}
	})

	t.Run("POST on id is an accepted update alias", func(t *testing.T) {
		env := newTestEnv(t)
		id := createBlog(t, env, "Before", "Old content")

		resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/v1/blogs/"+id, map[string]string{
			"title":   "After",
			"content": "New content",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("want 200, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown id is 404, never 500", func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.app.Test(jsonRequest(http.MethodPut, "/api/v1/blogs/missing", map[string]string{
			"title":   "x",
			"content": "y",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("want 404, got %d", resp.StatusCode)
		}
		if code := errorCode(t, decodeBody(t, resp)); code != "not found" {
			t.Errorf("want code not found, got %q", code)
		}
	})
}

func TestDeleteBlog(t *testing.T) {
	env := newTestEnv(t)
	id := createBlog(t, env, "Doomed", "Soon gone")

	t.Run("delete returns success with no data", func(t *testing.T) {
		resp, err := env.app.Test(authedRequest(http.MethodDelete, "/api/v1/blogs/"+id, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("want 200, got %d", resp.StatusCode)
		}

		body := decodeBody(t, resp)
		if body["message"] != "Blog deleted" {
			t.Errorf("want message Blog deleted, got %v", body["message"])
		}
		if body["data"] != nil {
			t.Errorf("want nil data, got %v", body["data"])
		}
	})

	t.Run("repeated delete is 404 both times", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp, err := env.app.Test(authedRequest(http.MethodDelete, "/api/v1/blogs/"+id, nil))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("attempt %d: want 404, got %d", i, resp.StatusCode)
			}
			if code := errorCode(t, decodeBody(t, resp)); code != "not found" {
				t.Errorf("attempt %d: want code not found, got %q", i, code)
			}
		}
	})
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(authedRequest(http.MethodPatch, "/api/v1/blogs", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d", resp.StatusCode)
	}
	if code := errorCode(t, decodeBody(t, resp)); code != "method not allowed" {
		t.Errorf("want code method not allowed, got %q", code)
	}
}

func TestTimeoutCheckpoint(t *testing.T) {
	t.Run("read trips the post-auth checkpoint", func(t *testing.T) {
		env := newTestEnv(t, withTimeout(0))

		resp, err := env.app.Test(authedRequest(http.MethodGet, "/api/v1/blogs", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusRequestTimeout {
			t.Fatalf("want 408, got %d", resp.StatusCode)
		}
		if code := errorCode(t, decodeBody(t, resp)); code != "request timeout" {
			t.Errorf("want code request timeout, got %q", code)
		}
	})

	t.Run("mutation that succeeded still reports 408", func(t *testing.T) {
		env := newTestEnv(t, withTimeout(50*time.Millisecond), withStoreDelay(120*time.Millisecond))

		resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/v1/blogs", map[string]string{
			"title":   "Slow",
			"content": "But stored",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusRequestTimeout {
			t.Errorf("want 408, got %d", resp.StatusCode)
		}
		if code := errorCode(t, decodeBody(t, resp)); code != "request timeout" {
			t.Errorf("want code request timeout, got %q", code)
		}

		env.store.mu.Lock()
		stored := len(env.store.blogs)
		env.store.mu.Unlock()
		if stored != 1 {
			t.Errorf("want mutation persisted before the checkpoint, got %d records", stored)
		}
	})
}

func TestErrorEnvelopeShape(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(authedRequest(http.MethodGet, "/api/v1/blogs/missing", nil))
	if err != nil {
		t.Fatal(err)
	}

	body := decodeBody(t, resp)
	if body["success"] != false {
		t.Errorf("want success false, got %v", body["success"])
	}

	errObj := body["error"].(map[string]interface{})
	for _, key := range []string{"message", "code", "status", "timestamp"} {
		if _, ok := errObj[key]; !ok {
			t.Errorf("want %q in error body, got %v", key, errObj)
		}
	}
	if ts, _ := errObj["timestamp"].(string); ts != "" {
		if _, err := time.Parse(time.RFC3339, ts); err != nil {
			t.Errorf("want RFC3339 timestamp, got %q", ts)
		}
	}
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %q: %v", key, err)
		}
	}

	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	return &buf, writer.FormDataContentType()
}
