package models

import (
	"errors"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

func (r *CategoriesRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts the category and fills in its assigned id.
// Returns ErrCategoryExists when the name is already taken.
func (r *CategoriesRepository) CreateCategory(category *Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryExists
		}
		return tx.Create(category).Error
	})
}

// RenameCategory changes a category's name and rewrites the category field of
// every product that referenced the old name. Both updates happen in one
// transaction so readers never see the rename half-applied.
func (r *CategoriesRepository) RenameCategory(id uint, name string) (*Category, error) {
	var category Category
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
		if category.Name == name {
			return nil
		}

		var count int64
		if err := tx.Model(&Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryExists
		}

		oldName := category.Name
		category.Name = name
		if err := tx.Save(&category).Error; err != nil {
			return err
		}
		return tx.Model(&Product{}).Where("category = ?", oldName).Update("category", name).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes the category and returns the deleted record.
// Returns a CategoryInUseError while any product still references it.
func (r *CategoriesRepository) DeleteCategory(id uint) (*Category, error) {
	var category Category
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&Product{}).Where("category = ?", category.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &CategoryInUseError{Name: category.Name, Count: count}
		}
		return tx.Delete(&Category{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}
