package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Arss011/network-toolkit-management-api/models"
)

type CategoryList struct {
	Data       []models.Category `json:"data"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	TotalCount int64             `json:"total_count"`
}

func (c *Client) Categories(ctx context.Context, page, pageSize int) (*CategoryList, error) {
	var res CategoryList
	if err := c.do(ctx, http.MethodGet, "/api/categories", pageQuery(page, pageSize), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CategoryTree returns the full flat catalog.
func (c *Client) CategoryTree(ctx context.Context) ([]models.Category, error) {
	var res struct {
		Data []models.Category `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/categories/tree", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) Category(ctx context.Context, id uint) (*models.Category, error) {
	var res struct {
		Data models.Category `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/categories/%d", id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c *Client) CreateCategory(ctx context.Context, p CategoryPayload) (*models.Category, error) {
	var res struct {
		Data models.Category `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/categories", nil, p, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id uint, p CategoryPayload) (*models.Category, error) {
	var res struct {
		Data models.Category `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/categories/%d", id), nil, p, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil, nil, nil)
}
