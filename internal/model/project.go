package model

import (
	"errors"

	"contracting-cms/pkg/slug"
)

type ProjectType struct {
	Base
	TitleEn       string `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr       string `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	DescriptionEn string `gorm:"type:text" json:"description_en"`
	DescriptionAr string `gorm:"type:text" json:"description_ar"`
}

func (ProjectType) References() []Reference {
	return []Reference{nullable("projects", "project_type_id")}
}

type ProjectStatus struct {
	Base
	TitleEn string `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr string `gorm:"type:text;not null" json:"title_ar" binding:"required"`
}

func (ProjectStatus) References() []Reference {
	return []Reference{nullable("projects", "project_status_id")}
}

// Project is a portfolio entry shown on the public site.
type Project struct {
	Base
	TitleEn         string  `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr         string  `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	SlugEn          string  `gorm:"type:text;uniqueIndex;not null" json:"slug_en"`
	SlugAr          string  `gorm:"type:text;uniqueIndex;not null" json:"slug_ar"`
	DescriptionEn   string  `gorm:"type:text" json:"description_en"`
	DescriptionAr   string  `gorm:"type:text" json:"description_ar"`
	LocationEn      string  `gorm:"type:text" json:"location_en"`
	LocationAr      string  `gorm:"type:text" json:"location_ar"`
	Year            *int    `json:"year"`
	ProjectTypeID   *string `gorm:"type:text;index" json:"project_type_id"`
	ProjectStatusID *string `gorm:"type:text;index" json:"project_status_id"`
	MainImageID     *string `gorm:"type:text" json:"main_image_id"`
}

func (p *Project) FillSlugs() error { return fillSlugs(&p.SlugEn, &p.SlugAr, p.TitleEn, p.TitleAr) }

func (Project) References() []Reference {
	return []Reference{junction("contracting_service_projects", "project_id")}
}

// ErrEmptySlug is returned when a title has nothing a slug can be built from.
var ErrEmptySlug = errors.New("title needs at least one letter or digit to form a slug")

func fillSlugs(en, ar *string, titleEn, titleAr string) error {
	if *en == "" {
		*en = slug.Make(titleEn)
	}
	if *ar == "" {
		*ar = slug.Make(titleAr)
	}
	if *en == "" || *ar == "" {
		return ErrEmptySlug
	}
	return nil
}
