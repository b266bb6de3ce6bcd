package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/models"
)

var ErrToolkitHasOpenLoans = errors.New("toolkit has open loans")

// availableSelect computes the derived available column on reads. The
// figure can go stale between a read and a later submit; CreateLoan
// re-derives it under a row lock, so this one is advisory.
func availableSelect() string {
	return fmt.Sprintf(
		"%s.*, %s.quantity - COALESCE((SELECT SUM(l.quantity) FROM %s l WHERE l.toolkit_id = %s.id AND l.returned_date IS NULL), 0) AS available",
		models.ToolkitTable, models.ToolkitTable, models.LoanTable, models.ToolkitTable,
	)
}

func (r *Repo) CreateToolkit(ctx context.Context, t *models.Toolkit) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *Repo) FindToolkitByID(ctx context.Context, id uint) (*models.Toolkit, error) {
	var t models.Toolkit
	if err := r.DB.WithContext(ctx).
		Select(availableSelect()).
		First(&t, "toolkits.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repo) UpdateToolkit(ctx context.Context, id uint, fields map[string]any) (*models.Toolkit, error) {
	res := r.DB.WithContext(ctx).Model(&models.Toolkit{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindToolkitByID(ctx, id)
}

// UpdateToolkitStock adjusts only the total quantity.
func (r *Repo) UpdateToolkitStock(ctx context.Context, id uint, quantity int) (*models.Toolkit, error) {
	return r.UpdateToolkit(ctx, id, map[string]any{"quantity": quantity})
}

// DeleteToolkit refuses while stock is still out on loan.
func (r *Repo) DeleteToolkit(ctx context.Context, id uint) error {
	var open int64
	if err := r.DB.WithContext(ctx).Model(&models.Loan{}).
		Where("toolkit_id = ? AND returned_date IS NULL", id).
		Count(&open).Error; err != nil {
		return err
	}
	if open > 0 {
		return ErrToolkitHasOpenLoans
	}
	res := r.DB.WithContext(ctx).Delete(&models.Toolkit{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type ListToolkitsQuery struct {
	Search     string
	CategoryID uint
	Condition  string
	Page       int
	Size       int
}

type ListToolkitsResult struct {
	Toolkits []models.Toolkit `json:"toolkits"`
	Total    int64            `json:"total"`
}

func (r *Repo) ListToolkits(ctx context.Context, q ListToolkitsQuery) (ListToolkitsResult, error) {
	q.Page, q.Size = clampPage(q.Page, q.Size)

	tx := r.DB.WithContext(ctx).Model(&models.Toolkit{})
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(brand) LIKE ?", like, like, like)
	}
	if q.CategoryID != 0 {
		tx = tx.Where("category_id = ?", q.CategoryID)
	}
	if q.Condition != "" {
		tx = tx.Where("condition = ?", q.Condition)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListToolkitsResult{}, err
	}

	var toolkits []models.Toolkit
	if err := tx.
		Select(availableSelect()).
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&toolkits).Error; err != nil {
		return ListToolkitsResult{}, err
	}
	return ListToolkitsResult{Toolkits: toolkits, Total: total}, nil
}
