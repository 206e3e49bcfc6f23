package service

import "contracting-cms/internal/model"

type RoleInput struct {
	model.Role
	PermissionIDs []string `json:"permission_ids"`
}

func (in *RoleInput) Entity() *model.Role { return &in.Role }
func (in *RoleInput) Relations() Relations {
	return Relations{"Permissions": in.PermissionIDs}
}

type ArticleInput struct {
	model.Article
	ImageIDs []string `json:"image_ids"`
}

func (in *ArticleInput) Entity() *model.Article { return &in.Article }
func (in *ArticleInput) Relations() Relations {
	return Relations{"Images": in.ImageIDs}
}

type ProductInput struct {
	model.Product
	ImageIDs []string `json:"image_ids"`
}

func (in *ProductInput) Entity() *model.Product { return &in.Product }
func (in *ProductInput) Relations() Relations {
	return Relations{"Images": in.ImageIDs}
}

type ShipmentInput struct {
	model.Shipment
	ImageIDs []string `json:"image_ids"`
}

func (in *ShipmentInput) Entity() *model.Shipment { return &in.Shipment }
func (in *ShipmentInput) Relations() Relations {
	return Relations{"Images": in.ImageIDs}
}

type ImportServiceInput struct {
	model.ImportService
	CountryIDs         []string `json:"country_ids"`
	SupplierIDs        []string `json:"supplier_ids"`
	BeneficiaryIDs     []string `json:"beneficiary_ids"`
	UsageIDs           []string `json:"usage_ids"`
	ImportMethodIDs    []string `json:"import_method_ids"`
	DeliveryMethodIDs  []string `json:"delivery_method_ids"`
	QualityWarrantyIDs []string `json:"quality_warranty_ids"`
	ShipmentIDs        []string `json:"shipment_ids"`
	WhyChooseUsIDs     []string `json:"why_choose_us_ids"`
	FaqIDs             []string `json:"faq_ids"`
}

func (in *ImportServiceInput) Entity() *model.ImportService { return &in.ImportService }
func (in *ImportServiceInput) Relations() Relations {
	return Relations{
		"Countries":         in.CountryIDs,
		"Suppliers":         in.SupplierIDs,
		"Beneficiaries":     in.BeneficiaryIDs,
		"Usages":            in.UsageIDs,
		"ImportMethods":     in.ImportMethodIDs,
		"DeliveryMethods":   in.DeliveryMethodIDs,
		"QualityWarranties": in.QualityWarrantyIDs,
		"Shipments":         in.ShipmentIDs,
		"Reasons":           in.WhyChooseUsIDs,
		"Faqs":              in.FaqIDs,
	}
}

type ContractingServiceInput struct {
	model.ContractingService
	ProjectIDs       []string `json:"project_ids"`
	IncludedWorkIDs  []string `json:"included_work_ids"`
	ExcludedWorkIDs  []string `json:"excluded_work_ids"`
	MaterialIDs      []string `json:"material_ids"`
	TechniqueIDs     []string `json:"technique_ids"`
	QualitySafetyIDs []string `json:"quality_safety_ids"`
	WhyChooseUsIDs   []string `json:"why_choose_us_ids"`
	FaqIDs           []string `json:"faq_ids"`
}

func (in *ContractingServiceInput) Entity() *model.ContractingService {
	return &in.ContractingService
}
func (in *ContractingServiceInput) Relations() Relations {
	return Relations{
		"Projects":      in.ProjectIDs,
		"IncludedWorks": in.IncludedWorkIDs,
		"ExcludedWorks": in.ExcludedWorkIDs,
		"Materials":     in.MaterialIDs,
		"Techniques":    in.TechniqueIDs,
		"QualitySafety": in.QualitySafetyIDs,
		"Reasons":       in.WhyChooseUsIDs,
		"Faqs":          in.FaqIDs,
	}
}
