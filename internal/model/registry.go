package model

// All returns every model in migration order.
func All() []any {
	return []any{
		&Image{}, &RichContent{},
		&Permission{}, &Role{}, &Account{},
		&ProjectType{}, &ProjectStatus{}, &Project{},
		&Partner{}, &Supplier{},
		&ArticleCategory{}, &Author{}, &Article{},
		&ProductCategory{}, &PropertyCategory{}, &Property{}, &Product{}, &ProductDetail{},
		&MainService{}, &Country{}, &Usage{}, &ImportMethod{}, &DeliveryMethod{},
		&QualityWarrantyStandard{}, &QualitySafetyStandard{}, &BeneficiaryCategory{},
		&Work{}, &Material{}, &Technique{}, &Shipment{},
		&WhyChooseUs{}, &Faq{},
		&ImportService{}, &ContractingService{},
		&ContactInfo{}, &SocialMediaAccount{},
		&OrganizationGoal{}, &WorkPrinciple{}, &GeneralPolicy{}, &Vision{}, &Mission{},
		&CompanyValue{}, &Strength{}, &Experience{}, &Commitment{},
		&AuditLog{},
	}
}
