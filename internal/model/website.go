package model

// Contact channel types.
const (
	ContactEmail    = "email"
	ContactPhone    = "phone"
	ContactWhatsApp = "whatsapp"
)

type ContactInfo struct {
	Base
	Type    string `gorm:"type:text;not null" json:"type" binding:"required,oneof=email phone whatsapp"`
	Value   string `gorm:"type:text;not null" json:"value" binding:"required"`
	LabelEn string `gorm:"type:text" json:"label_en"`
	LabelAr string `gorm:"type:text" json:"label_ar"`
}

func (ContactInfo) TableName() string { return "contact_info" }

type SocialMediaAccount struct {
	Base
	Platform string `gorm:"type:text;not null" json:"platform" binding:"required"`
	URL      string `gorm:"type:text;not null" json:"url" binding:"required,url"`
	Username string `gorm:"type:text" json:"username"`
}

// Section is the title and description pair behind every "about us" block.
type Section struct {
	TitleEn       string `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr       string `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	DescriptionEn string `gorm:"type:text" json:"description_en"`
	DescriptionAr string `gorm:"type:text" json:"description_ar"`
}

type OrganizationGoal struct {
	Base
	Section
}

type WorkPrinciple struct {
	Base
	Section
}

type GeneralPolicy struct {
	Base
	Section
}

type Vision struct {
	Base
	Section
}

type Mission struct {
	Base
	Section
}

type CompanyValue struct {
	Base
	Section
}

type Strength struct {
	Base
	Section
}

type Experience struct {
	Base
	Section
}

type Commitment struct {
	Base
	Section
}
