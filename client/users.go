package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Arss011/network-toolkit-management-api/models"
)

type UserList struct {
	Data       []models.User `json:"data"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	TotalCount int64         `json:"total_count"`
}

func (c *Client) Users(ctx context.Context, page, pageSize int) (*UserList, error) {
	var res UserList
	if err := c.do(ctx, http.MethodGet, "/api/users", pageQuery(page, pageSize), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type UserSearch struct {
	SearchTerm string `json:"search_term,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

func (c *Client) SearchUsers(ctx context.Context, s UserSearch, page, pageSize int) (*UserList, error) {
	var res UserList
	if err := c.do(ctx, http.MethodPost, "/api/users/search", pageQuery(page, pageSize), s, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type UserPayload struct {
	Username        string `json:"username,omitempty"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	IsActive        *bool  `json:"is_active,omitempty"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

func (c *Client) CreateUser(ctx context.Context, p UserPayload) (*models.User, error) {
	var res struct {
		Data models.User `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, p, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) UpdateUser(ctx context.Context, id uint, p UserPayload) (*models.User, error) {
	var res struct {
		Data models.User `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), nil, p, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil, nil)
}
