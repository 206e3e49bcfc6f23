package handler

import (
	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles what the API handlers are built from.
type Services struct {
	Catalog  *service.Catalog
	Roles    service.RoleService
	Accounts service.AccountService
	Search   service.SearchService
	Audit    service.AuditService
	Stats    service.StatisticsService
}

// Register mounts every API route on router.
func Register(router *gin.RouterGroup, svc Services, gate Gate) {
	for _, r := range Registrars(svc, gate) {
		r.RegisterRoutes(router)
	}
}

func Registrars(svc Services, gate Gate) []Registrar {
	c := svc.Catalog
	crud := permission.CrudKeys
	settings := permission.ManageKeys(permission.Settings)

	return []Registrar{
		NewAccountHandler(svc.Accounts, gate),
		NewRoleHandler(svc.Roles, gate),
		NewSearchHandler(svc.Search),
		NewAuditHandler(svc.Audit, gate),
		NewStatisticsHandler(svc.Stats, gate),

		NewContentHandler(Resource[model.Role]{Path: "roles", Keys: permission.ManageKeys(permission.Roles), Service: c.Roles,
			Bind: BindPayload[model.Role, service.RoleInput]()}, gate),

		NewContentHandler(Resource[model.Image]{Path: "images", Keys: crud(permission.Images), Service: c.Images, Public: true}, gate),
		NewContentHandler(Resource[model.RichContent]{Path: "rich-contents", Keys: crud(permission.Images), Service: c.RichContents}, gate),

		NewContentHandler(Resource[model.ProjectType]{Path: "project-types", Keys: crud(permission.Projects), Service: c.ProjectTypes, Public: true}, gate),
		NewContentHandler(Resource[model.ProjectStatus]{Path: "project-statuses", Keys: crud(permission.Projects), Service: c.ProjectStatuses, Public: true}, gate),
		NewContentHandler(Resource[model.Project]{Path: "projects", Keys: crud(permission.Projects), Service: c.Projects, Public: true, Slugged: true}, gate),

		NewContentHandler(Resource[model.Partner]{Path: "partners", Keys: crud(permission.Partners), Service: c.Partners, Public: true}, gate),
		NewContentHandler(Resource[model.Supplier]{Path: "suppliers", Keys: crud(permission.Suppliers), Service: c.Suppliers}, gate),

		NewContentHandler(Resource[model.ArticleCategory]{Path: "article-categories", Keys: crud(permission.Articles), Service: c.ArticleCategories, Public: true, Slugged: true}, gate),
		NewContentHandler(Resource[model.Author]{Path: "authors", Keys: crud(permission.Articles), Service: c.Authors}, gate),
		NewContentHandler(Resource[model.Article]{Path: "articles", Keys: crud(permission.Articles), Service: c.Articles, Public: true, Slugged: true,
			Bind: BindPayload[model.Article, service.ArticleInput]()}, gate),

		NewContentHandler(Resource[model.ProductCategory]{Path: "product-categories", Keys: crud(permission.Products), Service: c.ProductCategories, Public: true}, gate),
		NewContentHandler(Resource[model.PropertyCategory]{Path: "property-categories", Keys: crud(permission.Products), Service: c.PropertyCategories}, gate),
		NewContentHandler(Resource[model.Property]{Path: "properties", Keys: crud(permission.Products), Service: c.Properties}, gate),
		NewContentHandler(Resource[model.Product]{Path: "products", Keys: crud(permission.Products), Service: c.Products, Public: true, Slugged: true,
			Bind: BindPayload[model.Product, service.ProductInput]()}, gate),

		NewContentHandler(Resource[model.MainService]{Path: "main-services", Keys: crud(permission.Services), Service: c.MainServices, Public: true, Slugged: true}, gate),
		NewContentHandler(Resource[model.Country]{Path: "countries", Keys: crud(permission.Services), Service: c.Countries}, gate),
		NewContentHandler(Resource[model.Usage]{Path: "usages", Keys: crud(permission.Services), Service: c.Usages}, gate),
		NewContentHandler(Resource[model.ImportMethod]{Path: "import-methods", Keys: crud(permission.Services), Service: c.ImportMethods}, gate),
		NewContentHandler(Resource[model.DeliveryMethod]{Path: "delivery-methods", Keys: crud(permission.Services), Service: c.DeliveryMethods}, gate),
		NewContentHandler(Resource[model.QualityWarrantyStandard]{Path: "quality-warranty-standards", Keys: crud(permission.Services), Service: c.QualityWarrantyStandards}, gate),
		NewContentHandler(Resource[model.QualitySafetyStandard]{Path: "quality-safety-standards", Keys: crud(permission.Services), Service: c.QualitySafetyStandards}, gate),
		NewContentHandler(Resource[model.BeneficiaryCategory]{Path: "beneficiary-categories", Keys: crud(permission.Services), Service: c.BeneficiaryCategories}, gate),
		NewContentHandler(Resource[model.Work]{Path: "works", Keys: crud(permission.Services), Service: c.Works}, gate),
		NewContentHandler(Resource[model.Material]{Path: "materials", Keys: crud(permission.Services), Service: c.Materials}, gate),
		NewContentHandler(Resource[model.Technique]{Path: "techniques", Keys: crud(permission.Services), Service: c.Techniques}, gate),
		NewContentHandler(Resource[model.Shipment]{Path: "shipments", Keys: crud(permission.Services), Service: c.Shipments,
			Bind: BindPayload[model.Shipment, service.ShipmentInput]()}, gate),
		NewContentHandler(Resource[model.ImportService]{Path: "import-services", Keys: crud(permission.Services), Service: c.ImportServices, Public: true, Slugged: true,
			Bind: BindPayload[model.ImportService, service.ImportServiceInput]()}, gate),
		NewContentHandler(Resource[model.ContractingService]{Path: "contracting-services", Keys: crud(permission.Services), Service: c.ContractingServices, Public: true, Slugged: true,
			Bind: BindPayload[model.ContractingService, service.ContractingServiceInput]()}, gate),
		NewContentHandler(Resource[model.WhyChooseUs]{Path: "why-choose-us", Keys: crud(permission.Services), Service: c.WhyChooseUs, Public: true}, gate),

		NewContentHandler(Resource[model.Faq]{Path: "faqs", Keys: crud(permission.Faqs), Service: c.Faqs, Public: true}, gate),

		NewContentHandler(Resource[model.ContactInfo]{Path: "contact-info", Keys: settings, Service: c.ContactInfo, Public: true}, gate),
		NewContentHandler(Resource[model.SocialMediaAccount]{Path: "social-media", Keys: settings, Service: c.SocialMedia, Public: true}, gate),
		NewContentHandler(Resource[model.OrganizationGoal]{Path: "organization-goals", Keys: settings, Service: c.OrganizationGoals, Public: true}, gate),
		NewContentHandler(Resource[model.WorkPrinciple]{Path: "work-principles", Keys: settings, Service: c.WorkPrinciples, Public: true}, gate),
		NewContentHandler(Resource[model.GeneralPolicy]{Path: "general-policies", Keys: settings, Service: c.GeneralPolicies, Public: true}, gate),
		NewContentHandler(Resource[model.Vision]{Path: "visions", Keys: settings, Service: c.Visions, Public: true}, gate),
		NewContentHandler(Resource[model.Mission]{Path: "missions", Keys: settings, Service: c.Missions, Public: true}, gate),
		NewContentHandler(Resource[model.CompanyValue]{Path: "company-values", Keys: settings, Service: c.CompanyValues, Public: true}, gate),
		NewContentHandler(Resource[model.Strength]{Path: "strengths", Keys: settings, Service: c.Strengths, Public: true}, gate),
		NewContentHandler(Resource[model.Experience]{Path: "experiences", Keys: settings, Service: c.Experiences, Public: true}, gate),
		NewContentHandler(Resource[model.Commitment]{Path: "commitments", Keys: settings, Service: c.Commitments, Public: true}, gate),
	}
}
