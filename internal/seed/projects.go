package seed

import "contracting-cms/internal/model"

func ProjectStatuses() []model.ProjectStatus {
	rows := []struct{ id, en, ar string }{
		{"status_planning", "Planning", "التخطيط"},
		{"status_in_progress", "In Progress", "قيد التنفيذ"},
		{"status_completed", "Completed", "مكتمل"},
		{"status_on_hold", "On Hold", "معلق"},
	}
	out := make([]model.ProjectStatus, 0, len(rows))
	for _, r := range rows {
		s := model.ProjectStatus{TitleEn: r.en, TitleAr: r.ar}
		s.ID = r.id
		out = append(out, s)
	}
	return out
}

func ProjectTypes() []model.ProjectType {
	rows := []model.ProjectType{
		{TitleEn: "Commercial", TitleAr: "تجاري", DescriptionEn: "Commercial buildings and facilities", DescriptionAr: "المباني والمرافق التجارية"},
		{TitleEn: "Residential", TitleAr: "سكني", DescriptionEn: "Residential homes and apartments", DescriptionAr: "المنازل والشقق السكنية"},
		{TitleEn: "Industrial", TitleAr: "صناعي", DescriptionEn: "Industrial facilities and warehouses", DescriptionAr: "المنشآت الصناعية والمستودعات"},
		{TitleEn: "Infrastructure", TitleAr: "البنية التحتية", DescriptionEn: "Roads, bridges, and utilities", DescriptionAr: "الطرق والجسور والمرافق"},
	}
	for i, id := range []string{"type_commercial", "type_residential", "type_industrial", "type_infrastructure"} {
		rows[i].ID = id
	}
	return rows
}

func ptr[T any](v T) *T { return &v }

// Projects are sample portfolio entries so a fresh site is not empty.
func Projects() []model.Project {
	rows := []model.Project{
		{
			TitleEn:         "Al Faisaliah Tower Renovation",
			TitleAr:         "تجديد برج الفيصلية",
			SlugEn:          "al-faisaliah-tower-renovation",
			SlugAr:          "تجديد-برج-الفيصلية",
			DescriptionEn:   "Major renovation project for Al Faisaliah Tower including facade improvements and interior upgrades.",
			DescriptionAr:   "مشروع تجديد كبير لبرج الفيصلية يشمل تحسينات الواجهة والتحديثات الداخلية.",
			LocationEn:      "Riyadh, Saudi Arabia",
			LocationAr:      "الرياض، المملكة العربية السعودية",
			Year:            ptr(2024),
			ProjectTypeID:   ptr("type_commercial"),
			ProjectStatusID: ptr("status_completed"),
		},
		{
			TitleEn:         "King Abdullah Financial District",
			TitleAr:         "مركز الملك عبدالله المالي",
			SlugEn:          "king-abdullah-financial-district",
			SlugAr:          "مركز-الملك-عبدالله-المالي",
			DescriptionEn:   "Construction of commercial towers in the King Abdullah Financial District.",
			DescriptionAr:   "بناء أبراج تجارية في مركز الملك عبدالله المالي.",
			LocationEn:      "Riyadh, Saudi Arabia",
			LocationAr:      "الرياض، المملكة العربية السعودية",
			Year:            ptr(2023),
			ProjectTypeID:   ptr("type_commercial"),
			ProjectStatusID: ptr("status_in_progress"),
		},
		{
			TitleEn:         "Jeddah Corniche Residential Complex",
			TitleAr:         "مجمع كورنيش جدة السكني",
			SlugEn:          "jeddah-corniche-residential",
			SlugAr:          "مجمع-كورنيش-جدة-السكني",
			DescriptionEn:   "Luxury residential complex on Jeddah Corniche with sea views.",
			DescriptionAr:   "مجمع سكني فاخر على كورنيش جدة مع إطلالات بحرية.",
			LocationEn:      "Jeddah, Saudi Arabia",
			LocationAr:      "جدة، المملكة العربية السعودية",
			Year:            ptr(2024),
			ProjectTypeID:   ptr("type_residential"),
			ProjectStatusID: ptr("status_in_progress"),
		},
		{
			TitleEn:         "Dammam Industrial Zone",
			TitleAr:         "المنطقة الصناعية بالدمام",
			SlugEn:          "dammam-industrial-zone",
			SlugAr:          "المنطقة-الصناعية-بالدمام",
			DescriptionEn:   "Development of warehouses and manufacturing facilities in Dammam.",
			DescriptionAr:   "تطوير مستودعات ومرافق تصنيع في الدمام.",
			LocationEn:      "Dammam, Saudi Arabia",
			LocationAr:      "الدمام، المملكة العربية السعودية",
			Year:            ptr(2022),
			ProjectTypeID:   ptr("type_industrial"),
			ProjectStatusID: ptr("status_completed"),
		},
		{
			TitleEn:         "Riyadh Metro Station",
			TitleAr:         "محطة مترو الرياض",
			SlugEn:          "riyadh-metro-station",
			SlugAr:          "محطة-مترو-الرياض",
			DescriptionEn:   "Construction of metro station and surrounding infrastructure.",
			DescriptionAr:   "بناء محطة مترو والبنية التحتية المحيطة.",
			LocationEn:      "Riyadh, Saudi Arabia",
			LocationAr:      "الرياض، المملكة العربية السعودية",
			Year:            ptr(2023),
			ProjectTypeID:   ptr("type_infrastructure"),
			ProjectStatusID: ptr("status_completed"),
		},
	}
	// Stable ids keep re-runs from inserting the samples twice.
	for i := range rows {
		rows[i].ID = "project_" + rows[i].SlugEn
	}
	return rows
}

// MainServices are the two service lines import and contracting services
// attach to.
func MainServices() []model.MainService {
	rows := []model.MainService{
		{
			TitleEn:       "Import Services",
			TitleAr:       "خدمات الاستيراد",
			DescriptionEn: "Sourcing and importing construction materials from trusted suppliers worldwide",
			DescriptionAr: "توريد واستيراد مواد البناء من موردين موثوقين حول العالم",
		},
		{
			TitleEn:       "Contracting Services",
			TitleAr:       "خدمات المقاولات",
			DescriptionEn: "End-to-end contracting for commercial, residential and infrastructure projects",
			DescriptionAr: "مقاولات متكاملة للمشاريع التجارية والسكنية ومشاريع البنية التحتية",
		},
	}
	rows[0].ID = model.MainServiceImport
	rows[1].ID = model.MainServiceContracting
	for i := range rows {
		_ = rows[i].FillSlugs() // titles above always slug
	}
	return rows
}
