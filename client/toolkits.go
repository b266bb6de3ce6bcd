package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Arss011/network-toolkit-management-api/models"
)

type ToolkitList struct {
	Data       []models.Toolkit `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	TotalCount int64            `json:"total_count"`
}

func (c *Client) Toolkits(ctx context.Context, page, pageSize int) (*ToolkitList, error) {
	var res ToolkitList
	if err := c.do(ctx, http.MethodGet, "/api/toolkits", pageQuery(page, pageSize), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Toolkit fetches a single record with its current available count;
// this is the authoritative read behind the pre-submit re-check.
func (c *Client) Toolkit(ctx context.Context, id uint) (*models.Toolkit, error) {
	var res struct {
		Data models.Toolkit `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/toolkits/%d", id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// ToolkitSearch is the POST-body filter used by the management table.
type ToolkitSearch struct {
	SearchTerm string `json:"search_term,omitempty"`
	CategoryID uint   `json:"category_id,omitempty"`
	Condition  string `json:"condition,omitempty"`
}

func (c *Client) SearchToolkits(ctx context.Context, s ToolkitSearch, page, pageSize int) (*ToolkitList, error) {
	var res ToolkitList
	if err := c.do(ctx, http.MethodPost, "/api/toolkits/search", pageQuery(page, pageSize), s, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ToolkitPayload is the create/update body.
type ToolkitPayload struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description,omitempty"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model,omitempty"`
	SerialNumber  string  `json:"serial_number,omitempty"`
	Condition     string  `json:"condition"`
	CategoryID    *uint   `json:"category_id"`
	PurchasePrice float64 `json:"purchase_price"`
}

func (c *Client) CreateToolkit(ctx context.Context, p ToolkitPayload) (*models.Toolkit, error) {
	var res struct {
		Data models.Toolkit `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/toolkits", nil, p, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) UpdateToolkit(ctx context.Context, id uint, p ToolkitPayload) (*models.Toolkit, error) {
	var res struct {
		Data models.Toolkit `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/toolkits/%d", id), nil, p, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) UpdateToolkitStock(ctx context.Context, id uint, quantity int) (*models.Toolkit, error) {
	var res struct {
		Data models.Toolkit `json:"data"`
	}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/toolkits/%d/stock", id), nil,
		map[string]int{"quantity": quantity}, &res)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) DeleteToolkit(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/toolkits/%d", id), nil, nil, nil)
}
