// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name            string `json:"name" gorm:"size:255;not null"`
	Slug            string `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Description     string `json:"description" gorm:"type:text"`
	ParentID        *uint  `json:"parentId" gorm:"index"`
	OrderPosition   int    `json:"orderPosition" gorm:"default:0"`
	IsVisible       bool   `json:"isVisible" gorm:"default:true"`
	MetaTitle       string `json:"metaTitle,omitempty" gorm:"size:255"`
	MetaDescription string `json:"metaDescription,omitempty" gorm:"size:500"`

	// Relationships
	Parent        *Category  `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Subcategories []Category `json:"subcategories,omitempty" gorm:"foreignKey:ParentID"`
	Tools         []Tool     `json:"tools,omitempty" gorm:"foreignKey:CategoryID"`
}
