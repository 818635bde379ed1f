package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

type ProductFilters struct {
	Category string
}

// ProductPatch carries a partial update. Nil fields keep the stored value.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Image       *string
	Category    *string
	Stock       *uint
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetFilteredProducts returns one page of products plus the total count of
// matching rows before pagination.
func (r *ProductsRepository) GetFilteredProducts(offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.Model(&Product{})
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("id").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductsRepository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts the product and fills in its assigned id.
// Returns ErrCategoryNotFound when the referenced category does not exist.
func (r *ProductsRepository) CreateProduct(product *Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := categoryMustExist(tx, product.Category); err != nil {
			return err
		}
		return tx.Create(product).Error
	})
}

// UpdateProduct applies a field-level merge and returns the updated record.
func (r *ProductsRepository) UpdateProduct(id uint, patch ProductPatch) (*Product, error) {
	var product Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if patch.Category != nil {
			if err := categoryMustExist(tx, *patch.Category); err != nil {
				return err
			}
			product.Category = *patch.Category
		}
		if patch.Name != nil {
			product.Name = *patch.Name
		}
		if patch.Description != nil {
			product.Description = *patch.Description
		}
		if patch.Price != nil {
			product.Price = *patch.Price
		}
		if patch.Image != nil {
			product.Image = *patch.Image
		}
		if patch.Stock != nil {
			product.Stock = *patch.Stock
		}

		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the product and returns the deleted record.
func (r *ProductsRepository) DeleteProduct(id uint) (*Product, error) {
	var product Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		return tx.Delete(&Product{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func categoryMustExist(tx *gorm.DB, name string) error {
	var count int64
	if err := tx.Model(&Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
