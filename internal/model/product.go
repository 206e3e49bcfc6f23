package model

type ProductCategory struct {
	Base
	TitleEn       string `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr       string `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	DescriptionEn string `gorm:"type:text" json:"description_en"`
	DescriptionAr string `gorm:"type:text" json:"description_ar"`
}

func (ProductCategory) References() []Reference {
	return []Reference{nullable("products", "category_id")}
}

type PropertyCategory struct {
	Base
	TitleEn string `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr string `gorm:"type:text;not null" json:"title_ar" binding:"required"`
}

func (PropertyCategory) References() []Reference {
	return []Reference{nullable("properties", "category_id")}
}

// Property is a named attribute (size, grade, finish...) products can carry.
type Property struct {
	Base
	TitleEn    string  `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr    string  `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	CategoryID *string `gorm:"type:text;index" json:"category_id"`
}

func (Property) References() []Reference {
	return []Reference{junction("product_details", "property_id")}
}

type Product struct {
	Base
	TitleEn       string          `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr       string          `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	SlugEn        string          `gorm:"type:text;uniqueIndex;not null" json:"slug_en"`
	SlugAr        string          `gorm:"type:text;uniqueIndex;not null" json:"slug_ar"`
	DescriptionEn string          `gorm:"type:text" json:"description_en"`
	DescriptionAr string          `gorm:"type:text" json:"description_ar"`
	CategoryID    *string         `gorm:"type:text;index" json:"category_id"`
	MainImageID   *string         `gorm:"type:text" json:"main_image_id"`
	Images        []Image         `gorm:"many2many:product_images;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Details       []ProductDetail `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

func (p *Product) FillSlugs() error { return fillSlugs(&p.SlugEn, &p.SlugAr, p.TitleEn, p.TitleAr) }

func (Product) References() []Reference {
	return []Reference{
		junction("product_images", "product_id"),
		junction("product_details", "product_id"),
	}
}

// ProductDetail is a product's localized value for one property.
type ProductDetail struct {
	Base
	ProductID  string  `gorm:"type:text;not null;index" json:"product_id"`
	PropertyID *string `gorm:"type:text;index" json:"property_id"`
	ValueEn    string  `gorm:"type:text" json:"value_en"`
	ValueAr    string  `gorm:"type:text" json:"value_ar"`
}
