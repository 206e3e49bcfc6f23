package model

// Partner is a company the contractor works with, shown with its logo.
type Partner struct {
	Base
	NameEn      string  `gorm:"type:text;not null" json:"name_en" binding:"required"`
	NameAr      string  `gorm:"type:text;not null" json:"name_ar" binding:"required"`
	LogoImageID *string `gorm:"type:text" json:"logo_image_id"`
}

// Supplier is a vendor referenced by import services.
type Supplier struct {
	Base
	NameEn      string  `gorm:"type:text;not null" json:"name_en" binding:"required"`
	NameAr      string  `gorm:"type:text;not null" json:"name_ar" binding:"required"`
	LogoImageID *string `gorm:"type:text" json:"logo_image_id"`
}

func (Supplier) References() []Reference {
	return []Reference{junction("import_service_suppliers", "supplier_id")}
}
