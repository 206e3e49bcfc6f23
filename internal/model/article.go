package model

import "time"

type ArticleCategory struct {
	Base
	TitleEn       string  `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr       string  `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	DescriptionEn string  `gorm:"type:text" json:"description_en"`
	DescriptionAr string  `gorm:"type:text" json:"description_ar"`
	SlugEn        string  `gorm:"type:text;uniqueIndex;not null" json:"slug_en"`
	SlugAr        string  `gorm:"type:text;uniqueIndex;not null" json:"slug_ar"`
	ImageID       *string `gorm:"type:text" json:"image_id"`
}

func (c *ArticleCategory) FillSlugs() error { return fillSlugs(&c.SlugEn, &c.SlugAr, c.TitleEn, c.TitleAr) }

func (ArticleCategory) References() []Reference {
	return []Reference{nullable("articles", "category_id")}
}

type Author struct {
	Base
	PublicNameEn string  `gorm:"type:text;not null" json:"public_name_en" binding:"required"`
	PublicNameAr string  `gorm:"type:text;not null" json:"public_name_ar" binding:"required"`
	AccountID    *string `gorm:"type:text;index" json:"account_id"`
}

func (Author) References() []Reference {
	return []Reference{nullable("articles", "author_id")}
}

// Article is a blog post. Its body lives in a separate rich content row that
// is written and removed together with the article.
type Article struct {
	Base
	TitleEn       string       `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr       string       `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	SlugEn        string       `gorm:"type:text;uniqueIndex;not null" json:"slug_en"`
	SlugAr        string       `gorm:"type:text;uniqueIndex;not null" json:"slug_ar"`
	MainImageID   *string      `gorm:"type:text" json:"main_image_id"`
	RichContentID *string      `gorm:"type:text" json:"rich_content_id"`
	AuthorID      *string      `gorm:"type:text;index" json:"author_id"`
	CategoryID    *string      `gorm:"type:text;index" json:"category_id"`
	PublishedAt   *time.Time   `json:"published_at"`
	RichContent   *RichContent `gorm:"foreignKey:RichContentID;constraint:OnDelete:SET NULL" json:"rich_content,omitempty"`
	Images        []Image      `gorm:"many2many:article_images;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (a *Article) FillSlugs() error { return fillSlugs(&a.SlugEn, &a.SlugAr, a.TitleEn, a.TitleAr) }

func (Article) References() []Reference {
	return []Reference{junction("article_images", "article_id")}
}
