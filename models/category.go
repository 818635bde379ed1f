package models

// Category is a named grouping that products belong to. Products reference
// it by name, so renaming a category has to carry its products along.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (c *Category) TableName() string {
	return "categories"
}
