package service

import (
	"context"
	"errors"

	"contracting-cms/internal/model"
	"contracting-cms/internal/repository"

	"gorm.io/gorm"
)

const (
	byTitle = "title_en asc"
	byName  = "name_en asc"
)

// Catalog holds the content service of every dashboard entity.
type Catalog struct {
	Images       ContentService[model.Image]
	RichContents ContentService[model.RichContent]

	Roles ContentService[model.Role]

	ProjectTypes    ContentService[model.ProjectType]
	ProjectStatuses ContentService[model.ProjectStatus]
	Projects        ContentService[model.Project]

	Partners  ContentService[model.Partner]
	Suppliers ContentService[model.Supplier]

	ArticleCategories ContentService[model.ArticleCategory]
	Authors           ContentService[model.Author]
	Articles          ContentService[model.Article]

	ProductCategories  ContentService[model.ProductCategory]
	PropertyCategories ContentService[model.PropertyCategory]
	Properties         ContentService[model.Property]
	Products           ContentService[model.Product]

	MainServices             ContentService[model.MainService]
	Countries                ContentService[model.Country]
	Usages                   ContentService[model.Usage]
	ImportMethods            ContentService[model.ImportMethod]
	DeliveryMethods          ContentService[model.DeliveryMethod]
	QualityWarrantyStandards ContentService[model.QualityWarrantyStandard]
	QualitySafetyStandards   ContentService[model.QualitySafetyStandard]
	BeneficiaryCategories    ContentService[model.BeneficiaryCategory]
	Works                    ContentService[model.Work]
	Materials                ContentService[model.Material]
	Techniques               ContentService[model.Technique]
	Shipments                ContentService[model.Shipment]
	ImportServices           ContentService[model.ImportService]
	ContractingServices      ContentService[model.ContractingService]

	WhyChooseUs ContentService[model.WhyChooseUs]
	Faqs        ContentService[model.Faq]

	ContactInfo       ContentService[model.ContactInfo]
	SocialMedia       ContentService[model.SocialMediaAccount]
	OrganizationGoals ContentService[model.OrganizationGoal]
	WorkPrinciples    ContentService[model.WorkPrinciple]
	GeneralPolicies   ContentService[model.GeneralPolicy]
	Visions           ContentService[model.Vision]
	Missions          ContentService[model.Mission]
	CompanyValues     ContentService[model.CompanyValue]
	Strengths         ContentService[model.Strength]
	Experiences       ContentService[model.Experience]
	Commitments       ContentService[model.Commitment]
}

func NewCatalog(deps Deps) *Catalog {
	db := deps.DB
	return &Catalog{
		Images:       NewContentService[model.Image](deps, ContentOptions[model.Image]{Entity: "images", Label: "Image"}),
		RichContents: NewContentService[model.RichContent](deps, ContentOptions[model.RichContent]{Entity: "rich_contents", Label: "Content"}),

		Roles: NewContentService[model.Role](deps, ContentOptions[model.Role]{
			Entity:       "roles",
			Label:        "Role",
			Preloads:     []string{"Permissions"},
			ListPreloads: []string{"Permissions"},
			Relations:    []Relation{Related[model.Permission](db, "Permissions")},
		}),

		ProjectTypes:    NewContentService[model.ProjectType](deps, ContentOptions[model.ProjectType]{Entity: "project_types", Label: "Project type", Order: byTitle}),
		ProjectStatuses: NewContentService[model.ProjectStatus](deps, ContentOptions[model.ProjectStatus]{Entity: "project_statuses", Label: "Project status", Order: byTitle}),
		Projects:        NewContentService[model.Project](deps, ContentOptions[model.Project]{Entity: "projects", Label: "Project"}),

		Partners:  NewContentService[model.Partner](deps, ContentOptions[model.Partner]{Entity: "partners", Label: "Partner", Order: byName}),
		Suppliers: NewContentService[model.Supplier](deps, ContentOptions[model.Supplier]{Entity: "suppliers", Label: "Supplier", Order: byName}),

		ArticleCategories: NewContentService[model.ArticleCategory](deps, ContentOptions[model.ArticleCategory]{Entity: "article_categories", Label: "Category", Order: byTitle}),
		Authors:           NewContentService[model.Author](deps, ContentOptions[model.Author]{Entity: "authors", Label: "Author", Order: "public_name_en asc"}),
		Articles:          NewContentService[model.Article](deps, articleOptions(db)),

		ProductCategories:  NewContentService[model.ProductCategory](deps, ContentOptions[model.ProductCategory]{Entity: "product_categories", Label: "Product category", Order: byTitle}),
		PropertyCategories: NewContentService[model.PropertyCategory](deps, ContentOptions[model.PropertyCategory]{Entity: "property_categories", Label: "Property category", Order: byTitle}),
		Properties:         NewContentService[model.Property](deps, ContentOptions[model.Property]{Entity: "properties", Label: "Property", Order: byTitle}),
		Products:           NewContentService[model.Product](deps, productOptions(db)),

		MainServices:             NewContentService[model.MainService](deps, ContentOptions[model.MainService]{Entity: "main_services", Label: "Service"}),
		Countries:                NewContentService[model.Country](deps, ContentOptions[model.Country]{Entity: "countries", Label: "Country", Order: byName}),
		Usages:                   NewContentService[model.Usage](deps, ContentOptions[model.Usage]{Entity: "usages", Label: "Usage", Order: byTitle}),
		ImportMethods:            NewContentService[model.ImportMethod](deps, ContentOptions[model.ImportMethod]{Entity: "import_methods", Label: "Import method", Order: byTitle}),
		DeliveryMethods:          NewContentService[model.DeliveryMethod](deps, ContentOptions[model.DeliveryMethod]{Entity: "delivery_methods", Label: "Delivery method", Order: byTitle}),
		QualityWarrantyStandards: NewContentService[model.QualityWarrantyStandard](deps, ContentOptions[model.QualityWarrantyStandard]{Entity: "quality_warranty_standards", Label: "Quality warranty standard", Order: byTitle}),
		QualitySafetyStandards:   NewContentService[model.QualitySafetyStandard](deps, ContentOptions[model.QualitySafetyStandard]{Entity: "quality_safety_standards", Label: "Quality safety standard", Order: byTitle}),
		BeneficiaryCategories:    NewContentService[model.BeneficiaryCategory](deps, ContentOptions[model.BeneficiaryCategory]{Entity: "beneficiary_categories", Label: "Beneficiary category", Order: byTitle}),
		Works:                    NewContentService[model.Work](deps, ContentOptions[model.Work]{Entity: "works", Label: "Work", Order: byTitle}),
		Materials:                NewContentService[model.Material](deps, ContentOptions[model.Material]{Entity: "materials", Label: "Material", Order: byTitle}),
		Techniques:               NewContentService[model.Technique](deps, ContentOptions[model.Technique]{Entity: "techniques", Label: "Technique", Order: byTitle}),
		Shipments: NewContentService[model.Shipment](deps, ContentOptions[model.Shipment]{
			Entity:    "shipments",
			Label:     "Shipment",
			Preloads:  []string{"Images"},
			Relations: []Relation{Related[model.Image](db, "Images")},
		}),
		ImportServices:      NewContentService[model.ImportService](deps, importServiceOptions(db)),
		ContractingServices: NewContentService[model.ContractingService](deps, contractingServiceOptions(db)),

		WhyChooseUs: NewContentService[model.WhyChooseUs](deps, ContentOptions[model.WhyChooseUs]{Entity: "why_choose_us", Label: "Reason"}),
		Faqs:        NewContentService[model.Faq](deps, ContentOptions[model.Faq]{Entity: "faqs", Label: "FAQ"}),

		ContactInfo:       NewContentService[model.ContactInfo](deps, ContentOptions[model.ContactInfo]{Entity: "contact_info", Label: "Contact info"}),
		SocialMedia:       NewContentService[model.SocialMediaAccount](deps, ContentOptions[model.SocialMediaAccount]{Entity: "social_media_accounts", Label: "Social media account"}),
		OrganizationGoals: NewContentService[model.OrganizationGoal](deps, ContentOptions[model.OrganizationGoal]{Entity: "organization_goals", Label: "Goal"}),
		WorkPrinciples:    NewContentService[model.WorkPrinciple](deps, ContentOptions[model.WorkPrinciple]{Entity: "work_principles", Label: "Work principle"}),
		GeneralPolicies:   NewContentService[model.GeneralPolicy](deps, ContentOptions[model.GeneralPolicy]{Entity: "general_policies", Label: "Policy"}),
		Visions:           NewContentService[model.Vision](deps, ContentOptions[model.Vision]{Entity: "visions", Label: "Vision"}),
		Missions:          NewContentService[model.Mission](deps, ContentOptions[model.Mission]{Entity: "missions", Label: "Mission"}),
		CompanyValues:     NewContentService[model.CompanyValue](deps, ContentOptions[model.CompanyValue]{Entity: "company_values", Label: "Value"}),
		Strengths:         NewContentService[model.Strength](deps, ContentOptions[model.Strength]{Entity: "strengths", Label: "Strength"}),
		Experiences:       NewContentService[model.Experience](deps, ContentOptions[model.Experience]{Entity: "experiences", Label: "Experience"}),
		Commitments:       NewContentService[model.Commitment](deps, ContentOptions[model.Commitment]{Entity: "commitments", Label: "Commitment"}),
	}
}

func articleOptions(db *gorm.DB) ContentOptions[model.Article] {
	articles := repository.NewCrudRepository[model.Article](db)
	rich := repository.NewCrudRepository[model.RichContent](db)

	return ContentOptions[model.Article]{
		Entity:    "articles",
		Label:     "Article",
		Order:     "created_at desc",
		Preloads:  []string{"RichContent", "Images"},
		Relations: []Relation{Related[model.Image](db, "Images")},
		// The body is saved alongside the article: updated in place when the
		// article already points at one, created otherwise.
		BeforeWrite: func(ctx context.Context, a *model.Article) error {
			if a.RichContent == nil {
				return nil
			}
			body := a.RichContent
			if a.RichContentID != nil && *a.RichContentID != "" {
				err := rich.Update(ctx, *a.RichContentID, body)
				if err == nil {
					body.ID = *a.RichContentID
					return nil
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}
			body.ID = ""
			if err := rich.Create(ctx, body); err != nil {
				return err
			}
			a.RichContentID = &body.ID
			return nil
		},
		BeforeDelete: func(ctx context.Context, id string) error {
			a, err := articles.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if a.RichContentID == nil {
				return nil
			}
			if err := rich.Delete(ctx, *a.RichContentID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return nil
		},
	}
}

func productOptions(db *gorm.DB) ContentOptions[model.Product] {
	details := repository.NewProductDetailRepository(db)

	return ContentOptions[model.Product]{
		Entity:    "products",
		Label:     "Product",
		Preloads:  []string{"Images", "Details"},
		Relations: []Relation{Related[model.Image](db, "Images")},
		AfterWrite: func(ctx context.Context, p *model.Product) error {
			fresh, err := details.ReplaceForProduct(ctx, p.ID, p.Details)
			if err != nil {
				return err
			}
			p.Details = fresh
			return nil
		},
	}
}

func importServiceOptions(db *gorm.DB) ContentOptions[model.ImportService] {
	return ContentOptions[model.ImportService]{
		Entity: "import_services",
		Label:  "Import service",
		Preloads: []string{
			"Countries", "Suppliers", "Beneficiaries", "Usages", "ImportMethods",
			"DeliveryMethods", "QualityWarranties", "Shipments", "Reasons", "Faqs",
		},
		Relations: []Relation{
			Related[model.Country](db, "Countries"),
			Related[model.Supplier](db, "Suppliers"),
			Related[model.BeneficiaryCategory](db, "Beneficiaries"),
			Related[model.Usage](db, "Usages"),
			Related[model.ImportMethod](db, "ImportMethods"),
			Related[model.DeliveryMethod](db, "DeliveryMethods"),
			Related[model.QualityWarrantyStandard](db, "QualityWarranties"),
			Related[model.Shipment](db, "Shipments"),
			Related[model.WhyChooseUs](db, "Reasons"),
			Related[model.Faq](db, "Faqs"),
		},
		BeforeWrite: func(_ context.Context, s *model.ImportService) error {
			defaultMainService(&s.MainServiceID, model.MainServiceImport)
			return nil
		},
	}
}

func contractingServiceOptions(db *gorm.DB) ContentOptions[model.ContractingService] {
	return ContentOptions[model.ContractingService]{
		Entity: "contracting_services",
		Label:  "Contracting service",
		Preloads: []string{
			"Projects", "IncludedWorks", "ExcludedWorks", "Materials",
			"Techniques", "QualitySafety", "Reasons", "Faqs",
		},
		Relations: []Relation{
			Related[model.Project](db, "Projects"),
			Related[model.Work](db, "IncludedWorks"),
			Related[model.Work](db, "ExcludedWorks"),
			Related[model.Material](db, "Materials"),
			Related[model.Technique](db, "Techniques"),
			Related[model.QualitySafetyStandard](db, "QualitySafety"),
			Related[model.WhyChooseUs](db, "Reasons"),
			Related[model.Faq](db, "Faqs"),
		},
		BeforeWrite: func(_ context.Context, s *model.ContractingService) error {
			defaultMainService(&s.MainServiceID, model.MainServiceContracting)
			return nil
		},
	}
}

func defaultMainService(id **string, fallback string) {
	if *id == nil || **id == "" {
		v := fallback
		*id = &v
	}
}
