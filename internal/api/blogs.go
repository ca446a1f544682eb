package api

import (
	"context"
	"net/http"

	"sirivaram/sirictl/internal/domain"
)

// BlogInput is the create/update payload for a blog post.
type BlogInput struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Content  string `json:"content"`
	IsActive bool   `json:"isActive"`
}

// ListBlogs returns all blog posts, active and inactive.
func (c *Client) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	var blogs []domain.Blog
	if err := c.list(ctx, "/api/blogs", nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// CreateBlog publishes a new blog post and returns the created record.
func (c *Client) CreateBlog(ctx context.Context, in BlogInput) (*domain.Blog, error) {
	var blog domain.Blog
	if _, err := c.mutate(ctx, http.MethodPost, "/api/admin/blogs", in, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateBlog replaces an existing blog post.
func (c *Client) UpdateBlog(ctx context.Context, id string, in BlogInput) (string, error) {
	return c.mutate(ctx, http.MethodPut, "/api/admin/blogs/"+id, in, nil)
}

// SetBlogActive flips the visibility toggle. Both directions are valid
// from any state.
func (c *Client) SetBlogActive(ctx context.Context, id string, active bool) (string, error) {
	body := map[string]bool{"isActive": active}
	return c.mutate(ctx, http.MethodPut, "/api/admin/blogs/"+id, body, nil)
}

// DeleteBlog removes a blog post permanently.
func (c *Client) DeleteBlog(ctx context.Context, id string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "/api/admin/blogs/"+id, nil, nil)
}
