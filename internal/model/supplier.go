package model

type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone         string `gorm:"type:varchar(20)" json:"phone"`
	Address       string `gorm:"type:text" json:"address"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contact_person"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
}

type SupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	IsActive      *bool  `json:"is_active"`
}
