package db

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/models"
)

func (r *Repo) CreateCategory(ctx context.Context, c *models.Category) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *Repo) FindCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) UpdateCategory(ctx context.Context, id uint, fields map[string]any) (*models.Category, error) {
	res := r.DB.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindCategoryByID(ctx, id)
}

func (r *Repo) DeleteCategory(ctx context.Context, id uint) error {
	// Toolkits keep their rows; the category reference goes dangling-free.
	if err := r.DB.WithContext(ctx).Model(&models.Toolkit{}).
		Where("category_id = ?", id).
		Update("category_id", nil).Error; err != nil {
		return err
	}
	res := r.DB.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type ListCategoriesResult struct {
	Categories []models.Category `json:"categories"`
	Total      int64             `json:"total"`
}

func (r *Repo) ListCategories(ctx context.Context, q string, page, size int) (ListCategoriesResult, error) {
	page, size = clampPage(page, size)

	tx := r.DB.WithContext(ctx).Model(&models.Category{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(name) LIKE ?", like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListCategoriesResult{}, err
	}

	var cats []models.Category
	if err := tx.
		Order("name ASC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&cats).Error; err != nil {
		return ListCategoriesResult{}, err
	}
	return ListCategoriesResult{Categories: cats, Total: total}, nil
}

// AllCategories backs /categories/tree: the catalog is flat, so the
// tree is just every category ordered by name.
func (r *Repo) AllCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&cats).Error
	return cats, err
}
