package model

type Warehouse struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Location    string `gorm:"type:varchar(255)" json:"location"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

type WarehouseRequest struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}
