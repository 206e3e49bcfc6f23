package model

import "time"

// Well-known main service ids. Import and contracting services attach to
// these unless the caller names another one.
const (
	MainServiceImport      = "service_import"
	MainServiceContracting = "service_contracting"
)

// Titled is the bilingual title shared by the lookup tables.
type Titled struct {
	TitleEn string `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr string `gorm:"type:text;not null" json:"title_ar" binding:"required"`
}

type MainService struct {
	Base
	TitleEn       string  `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr       string  `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	SlugEn        string  `gorm:"type:text;uniqueIndex;not null" json:"slug_en"`
	SlugAr        string  `gorm:"type:text;uniqueIndex;not null" json:"slug_ar"`
	DescriptionEn string  `gorm:"type:text" json:"description_en"`
	DescriptionAr string  `gorm:"type:text" json:"description_ar"`
	MainImageID   *string `gorm:"type:text" json:"main_image_id"`
}

func (s *MainService) FillSlugs() error { return fillSlugs(&s.SlugEn, &s.SlugAr, s.TitleEn, s.TitleAr) }

func (MainService) References() []Reference {
	return []Reference{
		nullable("import_services", "main_service_id"),
		nullable("contracting_services", "main_service_id"),
	}
}

type Country struct {
	Base
	NameEn string `gorm:"type:text;not null" json:"name_en" binding:"required"`
	NameAr string `gorm:"type:text;not null" json:"name_ar" binding:"required"`
}

func (Country) References() []Reference {
	return []Reference{junction("import_service_countries", "country_id")}
}

type Usage struct {
	Base
	Titled
}

func (Usage) References() []Reference {
	return []Reference{junction("import_service_usages", "usage_id")}
}

type ImportMethod struct {
	Base
	Titled
}

func (ImportMethod) References() []Reference {
	return []Reference{junction("import_service_import_methods", "import_method_id")}
}

type DeliveryMethod struct {
	Base
	Titled
}

func (DeliveryMethod) References() []Reference {
	return []Reference{junction("import_service_delivery_methods", "delivery_method_id")}
}

type QualityWarrantyStandard struct {
	Base
	Titled
}

func (QualityWarrantyStandard) References() []Reference {
	return []Reference{junction("import_service_quality_warranties", "quality_warranty_standard_id")}
}

type QualitySafetyStandard struct {
	Base
	Titled
}

func (QualitySafetyStandard) References() []Reference {
	return []Reference{junction("contracting_service_quality_safety", "quality_safety_standard_id")}
}

type BeneficiaryCategory struct {
	Base
	Titled
}

func (BeneficiaryCategory) References() []Reference {
	return []Reference{junction("import_service_beneficiaries", "beneficiary_category_id")}
}

type Work struct {
	Base
	Titled
}

func (Work) References() []Reference {
	return []Reference{
		junction("contracting_service_included_works", "work_id"),
		junction("contracting_service_excluded_works", "work_id"),
	}
}

type Material struct {
	Base
	Titled
}

func (Material) References() []Reference {
	return []Reference{junction("contracting_service_materials", "material_id")}
}

type Technique struct {
	Base
	Titled
}

func (Technique) References() []Reference {
	return []Reference{junction("contracting_service_techniques", "technique_id")}
}

// Shipment is a showcased import delivery with its photo gallery.
type Shipment struct {
	Base
	TitleEn       string     `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr       string     `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	DescriptionEn string     `gorm:"type:text" json:"description_en"`
	DescriptionAr string     `gorm:"type:text" json:"description_ar"`
	MainImageID   *string    `gorm:"type:text" json:"main_image_id"`
	ArrivalDate   *time.Time `json:"arrival_date"`
	Images        []Image    `gorm:"many2many:shipment_images;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (Shipment) References() []Reference {
	return []Reference{
		junction("shipment_images", "shipment_id"),
		junction("import_service_shipments", "shipment_id"),
	}
}

type ImportService struct {
	Base
	TitleEn           string                    `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr           string                    `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	SlugEn            string                    `gorm:"type:text;uniqueIndex;not null" json:"slug_en"`
	SlugAr            string                    `gorm:"type:text;uniqueIndex;not null" json:"slug_ar"`
	DescriptionEn     string                    `gorm:"type:text" json:"description_en"`
	DescriptionAr     string                    `gorm:"type:text" json:"description_ar"`
	MainServiceID     *string                   `gorm:"type:text;index" json:"main_service_id"`
	MainImageID       *string                   `gorm:"type:text" json:"main_image_id"`
	Countries         []Country                 `gorm:"many2many:import_service_countries;constraint:OnDelete:CASCADE" json:"countries,omitempty"`
	Suppliers         []Supplier                `gorm:"many2many:import_service_suppliers;constraint:OnDelete:CASCADE" json:"suppliers,omitempty"`
	Beneficiaries     []BeneficiaryCategory     `gorm:"many2many:import_service_beneficiaries;constraint:OnDelete:CASCADE" json:"beneficiaries,omitempty"`
	Usages            []Usage                   `gorm:"many2many:import_service_usages;constraint:OnDelete:CASCADE" json:"usages,omitempty"`
	ImportMethods     []ImportMethod            `gorm:"many2many:import_service_import_methods;constraint:OnDelete:CASCADE" json:"import_methods,omitempty"`
	DeliveryMethods   []DeliveryMethod          `gorm:"many2many:import_service_delivery_methods;constraint:OnDelete:CASCADE" json:"delivery_methods,omitempty"`
	QualityWarranties []QualityWarrantyStandard `gorm:"many2many:import_service_quality_warranties;constraint:OnDelete:CASCADE" json:"quality_warranties,omitempty"`
	Shipments         []Shipment                `gorm:"many2many:import_service_shipments;constraint:OnDelete:CASCADE" json:"shipments,omitempty"`
	Reasons           []WhyChooseUs             `gorm:"many2many:import_service_why_choose_us;constraint:OnDelete:CASCADE" json:"why_choose_us,omitempty"`
	Faqs              []Faq                     `gorm:"many2many:import_service_faqs;constraint:OnDelete:CASCADE" json:"faqs,omitempty"`
}

func (s *ImportService) FillSlugs() error { return fillSlugs(&s.SlugEn, &s.SlugAr, s.TitleEn, s.TitleAr) }

func (ImportService) References() []Reference {
	return []Reference{
		junction("import_service_countries", "import_service_id"),
		junction("import_service_suppliers", "import_service_id"),
		junction("import_service_beneficiaries", "import_service_id"),
		junction("import_service_usages", "import_service_id"),
		junction("import_service_import_methods", "import_service_id"),
		junction("import_service_delivery_methods", "import_service_id"),
		junction("import_service_quality_warranties", "import_service_id"),
		junction("import_service_shipments", "import_service_id"),
		junction("import_service_why_choose_us", "import_service_id"),
		junction("import_service_faqs", "import_service_id"),
	}
}

type ContractingService struct {
	Base
	TitleEn          string                  `gorm:"type:text;not null" json:"title_en" binding:"required"`
	TitleAr          string                  `gorm:"type:text;not null" json:"title_ar" binding:"required"`
	SlugEn           string                  `gorm:"type:text;uniqueIndex;not null" json:"slug_en"`
	SlugAr           string                  `gorm:"type:text;uniqueIndex;not null" json:"slug_ar"`
	DescriptionEn    string                  `gorm:"type:text" json:"description_en"`
	DescriptionAr    string                  `gorm:"type:text" json:"description_ar"`
	TargetAudienceEn string                  `gorm:"type:text" json:"target_audience_en"`
	TargetAudienceAr string                  `gorm:"type:text" json:"target_audience_ar"`
	WhenNeededEn     string                  `gorm:"type:text" json:"when_needed_en"`
	WhenNeededAr     string                  `gorm:"type:text" json:"when_needed_ar"`
	MainServiceID    *string                 `gorm:"type:text;index" json:"main_service_id"`
	MainImageID      *string                 `gorm:"type:text" json:"main_image_id"`
	Projects         []Project               `gorm:"many2many:contracting_service_projects;constraint:OnDelete:CASCADE" json:"projects,omitempty"`
	IncludedWorks    []Work                  `gorm:"many2many:contracting_service_included_works;constraint:OnDelete:CASCADE" json:"included_works,omitempty"`
	ExcludedWorks    []Work                  `gorm:"many2many:contracting_service_excluded_works;constraint:OnDelete:CASCADE" json:"excluded_works,omitempty"`
	Materials        []Material              `gorm:"many2many:contracting_service_materials;constraint:OnDelete:CASCADE" json:"materials,omitempty"`
	Techniques       []Technique             `gorm:"many2many:contracting_service_techniques;constraint:OnDelete:CASCADE" json:"techniques,omitempty"`
	QualitySafety    []QualitySafetyStandard `gorm:"many2many:contracting_service_quality_safety;constraint:OnDelete:CASCADE" json:"quality_safety,omitempty"`
	Reasons          []WhyChooseUs           `gorm:"many2many:contracting_service_why_choose_us;constraint:OnDelete:CASCADE" json:"why_choose_us,omitempty"`
	Faqs             []Faq                   `gorm:"many2many:contracting_service_faqs;constraint:OnDelete:CASCADE" json:"faqs,omitempty"`
}

func (s *ContractingService) FillSlugs() error { return fillSlugs(&s.SlugEn, &s.SlugAr, s.TitleEn, s.TitleAr) }

func (ContractingService) References() []Reference {
	return []Reference{
		junction("contracting_service_projects", "contracting_service_id"),
		junction("contracting_service_included_works", "contracting_service_id"),
		junction("contracting_service_excluded_works", "contracting_service_id"),
		junction("contracting_service_materials", "contracting_service_id"),
		junction("contracting_service_techniques", "contracting_service_id"),
		junction("contracting_service_quality_safety", "contracting_service_id"),
		junction("contracting_service_why_choose_us", "contracting_service_id"),
		junction("contracting_service_faqs", "contracting_service_id"),
	}
}
