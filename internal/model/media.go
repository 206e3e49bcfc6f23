package model

// Image is the shared media record referenced by every content type.
type Image struct {
	Base
	URL     string `gorm:"type:text;not null" json:"url" binding:"required"`
	TitleEn string `gorm:"type:text" json:"title_en"`
	TitleAr string `gorm:"type:text" json:"title_ar"`
	AltEn   string `gorm:"type:text" json:"alt_en"`
	AltAr   string `gorm:"type:text" json:"alt_ar"`
}

func (Image) References() []Reference {
	return []Reference{
		junction("article_images", "image_id"),
		junction("product_images", "image_id"),
		junction("shipment_images", "image_id"),
		nullable("projects", "main_image_id"),
		nullable("partners", "logo_image_id"),
		nullable("suppliers", "logo_image_id"),
		nullable("article_categories", "image_id"),
		nullable("articles", "main_image_id"),
		nullable("products", "main_image_id"),
		nullable("main_services", "main_image_id"),
		nullable("shipments", "main_image_id"),
		nullable("import_services", "main_image_id"),
		nullable("contracting_services", "main_image_id"),
	}
}

// RichContent holds long-form bilingual markup for articles.
type RichContent struct {
	Base
	ContentEn string `gorm:"type:text;not null" json:"content_en" binding:"required"`
	ContentAr string `gorm:"type:text;not null" json:"content_ar" binding:"required"`
}

func (RichContent) References() []Reference {
	return []Reference{nullable("articles", "rich_content_id")}
}
