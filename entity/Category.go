package entity

type Category struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}
