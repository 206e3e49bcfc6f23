package model

// WhyChooseUs is a reusable selling point attached to service pages.
type WhyChooseUs struct {
	Base
	ReasonEn string `gorm:"type:text;not null" json:"reason_en" binding:"required"`
	ReasonAr string `gorm:"type:text;not null" json:"reason_ar" binding:"required"`
}

func (WhyChooseUs) TableName() string { return "why_choose_us" }

func (WhyChooseUs) References() []Reference {
	return []Reference{
		junction("import_service_why_choose_us", "why_choose_us_id"),
		junction("contracting_service_why_choose_us", "why_choose_us_id"),
	}
}

type Faq struct {
	Base
	QuestionEn string `gorm:"type:text;not null" json:"question_en" binding:"required"`
	QuestionAr string `gorm:"type:text;not null" json:"question_ar" binding:"required"`
	AnswerEn   string `gorm:"type:text;not null" json:"answer_en" binding:"required"`
	AnswerAr   string `gorm:"type:text;not null" json:"answer_ar" binding:"required"`
}

func (Faq) References() []Reference {
	return []Reference{
		junction("import_service_faqs", "faq_id"),
		junction("contracting_service_faqs", "faq_id"),
	}
}
