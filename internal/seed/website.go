package seed

import (
	"strings"

	"contracting-cms/internal/model"
	"contracting-cms/pkg/slug"
)

func stableID(prefix, title string) string {
	return prefix + "_" + strings.ReplaceAll(slug.Make(title), "-", "_")
}

func ContactInfo() []model.ContactInfo {
	rows := []model.ContactInfo{
		{Type: model.ContactEmail, Value: "info@alshubaily.com", LabelEn: "General Inquiries", LabelAr: "الاستفسارات العامة"},
		{Type: model.ContactEmail, Value: "sales@alshubaily.com", LabelEn: "Sales", LabelAr: "المبيعات"},
		{Type: model.ContactPhone, Value: "+966 11 XXX XXXX", LabelEn: "Main Office", LabelAr: "المكتب الرئيسي"},
		{Type: model.ContactPhone, Value: "+966 5X XXX XXXX", LabelEn: "Mobile", LabelAr: "الجوال"},
		{Type: model.ContactWhatsApp, Value: "+966 5X XXX XXXX", LabelEn: "WhatsApp Support", LabelAr: "دعم الواتساب"},
	}
	for i := range rows {
		rows[i].ID = stableID("contact", rows[i].LabelEn)
	}
	return rows
}

func SocialMedia() []model.SocialMediaAccount {
	rows := []model.SocialMediaAccount{
		{Platform: "facebook", URL: "https://facebook.com/alshubaily", Username: "@alshubaily"},
		{Platform: "twitter", URL: "https://twitter.com/alshubaily", Username: "@alshubaily"},
		{Platform: "instagram", URL: "https://instagram.com/alshubaily", Username: "@alshubaily"},
		{Platform: "linkedin", URL: "https://linkedin.com/company/alshubaily", Username: "alshubaily"},
		{Platform: "youtube", URL: "https://youtube.com/@alshubaily", Username: "@alshubaily"},
	}
	for i := range rows {
		rows[i].ID = "social_" + rows[i].Platform
	}
	return rows
}

type sectionRow struct {
	id string
	model.Section
}

func sections(prefix string, rows ...model.Section) []sectionRow {
	out := make([]sectionRow, 0, len(rows))
	for _, s := range rows {
		out = append(out, sectionRow{id: stableID(prefix, s.TitleEn), Section: s})
	}
	return out
}

// Website holds the "about us" blocks of a fresh site.
type Website struct {
	Goals       []model.OrganizationGoal
	Principles  []model.WorkPrinciple
	Policies    []model.GeneralPolicy
	Visions     []model.Vision
	Missions    []model.Mission
	Values      []model.CompanyValue
	Strengths   []model.Strength
	Experiences []model.Experience
	Commitments []model.Commitment
}

func build[T any](rows []sectionRow, wrap func(model.Base, model.Section) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, wrap(model.Base{ID: r.id}, r.Section))
	}
	return out
}

func WebsiteSections() Website {
	return Website{
		Goals: build(sections("goal",
			model.Section{TitleEn: "Industry Leadership", TitleAr: "الريادة في القطاع", DescriptionEn: "To become the leading contracting company in Saudi Arabia", DescriptionAr: "أن نصبح شركة المقاولات الرائدة في المملكة العربية السعودية"},
			model.Section{TitleEn: "Customer Satisfaction", TitleAr: "رضا العملاء", DescriptionEn: "Achieve highest levels of customer satisfaction", DescriptionAr: "تحقيق أعلى مستويات رضا العملاء"},
			model.Section{TitleEn: "Sustainable Growth", TitleAr: "النمو المستدام", DescriptionEn: "Ensure sustainable business growth while maintaining quality", DescriptionAr: "ضمان نمو الأعمال المستدام مع الحفاظ على الجودة"},
		), func(b model.Base, s model.Section) model.OrganizationGoal { return model.OrganizationGoal{Base: b, Section: s} }),

		Principles: build(sections("principle",
			model.Section{TitleEn: "Quality First", TitleAr: "الجودة أولاً", DescriptionEn: "We prioritize quality in every project we undertake", DescriptionAr: "نعطي الأولوية للجودة في كل مشروع نقوم به"},
			model.Section{TitleEn: "Integrity", TitleAr: "النزاهة", DescriptionEn: "We conduct business with honesty and transparency", DescriptionAr: "نمارس الأعمال بصدق وشفافية"},
			model.Section{TitleEn: "Safety Standards", TitleAr: "معايير السلامة", DescriptionEn: "We maintain the highest safety standards on all sites", DescriptionAr: "نحافظ على أعلى معايير السلامة في جميع المواقع"},
		), func(b model.Base, s model.Section) model.WorkPrinciple { return model.WorkPrinciple{Base: b, Section: s} }),

		Policies: build(sections("policy",
			model.Section{TitleEn: "Environmental Policy", TitleAr: "السياسة البيئية", DescriptionEn: "Committed to minimizing environmental impact", DescriptionAr: "ملتزمون بتقليل التأثير البيئي"},
			model.Section{TitleEn: "Health & Safety Policy", TitleAr: "سياسة الصحة والسلامة", DescriptionEn: "Zero tolerance for safety violations", DescriptionAr: "عدم التسامح مع انتهاكات السلامة"},
			model.Section{TitleEn: "Quality Policy", TitleAr: "سياسة الجودة", DescriptionEn: "Continuous improvement in all processes", DescriptionAr: "التحسين المستمر في جميع العمليات"},
		), func(b model.Base, s model.Section) model.GeneralPolicy { return model.GeneralPolicy{Base: b, Section: s} }),

		Visions: build(sections("vision",
			model.Section{TitleEn: "Our Vision", TitleAr: "رؤيتنا", DescriptionEn: "To be the most trusted name in construction and contracting across the Middle East", DescriptionAr: "أن نكون الاسم الأكثر ثقة في البناء والمقاولات في الشرق الأوسط"},
		), func(b model.Base, s model.Section) model.Vision { return model.Vision{Base: b, Section: s} }),

		Missions: build(sections("mission",
			model.Section{TitleEn: "Our Mission", TitleAr: "رسالتنا", DescriptionEn: "To deliver exceptional construction services that exceed client expectations while maintaining the highest standards of safety and quality", DescriptionAr: "تقديم خدمات بناء استثنائية تتجاوز توقعات العملاء مع الحفاظ على أعلى معايير السلامة والجودة"},
		), func(b model.Base, s model.Section) model.Mission { return model.Mission{Base: b, Section: s} }),

		Values: build(sections("value",
			model.Section{TitleEn: "Excellence", TitleAr: "التميز", DescriptionEn: "Striving for excellence in everything we do", DescriptionAr: "السعي للتميز في كل ما نقوم به"},
			model.Section{TitleEn: "Innovation", TitleAr: "الابتكار", DescriptionEn: "Embracing new technologies and methods", DescriptionAr: "تبني التقنيات والأساليب الجديدة"},
			model.Section{TitleEn: "Teamwork", TitleAr: "العمل الجماعي", DescriptionEn: "Collaborating for success", DescriptionAr: "التعاون من أجل النجاح"},
			model.Section{TitleEn: "Respect", TitleAr: "الاحترام", DescriptionEn: "Treating everyone with dignity and respect", DescriptionAr: "معاملة الجميع بكرامة واحترام"},
		), func(b model.Base, s model.Section) model.CompanyValue { return model.CompanyValue{Base: b, Section: s} }),

		Strengths: build(sections("strength",
			model.Section{TitleEn: "Skilled Workforce", TitleAr: "القوى العاملة الماهرة", DescriptionEn: "Highly trained and experienced team members", DescriptionAr: "أعضاء فريق مدربين وذوي خبرة عالية"},
			model.Section{TitleEn: "Modern Equipment", TitleAr: "المعدات الحديثة", DescriptionEn: "State-of-the-art construction equipment", DescriptionAr: "أحدث معدات البناء"},
			model.Section{TitleEn: "Strong Partnerships", TitleAr: "الشراكات القوية", DescriptionEn: "Established relationships with leading suppliers", DescriptionAr: "علاقات راسخة مع الموردين الرائدين"},
		), func(b model.Base, s model.Section) model.Strength { return model.Strength{Base: b, Section: s} }),

		Experiences: build(sections("experience",
			model.Section{TitleEn: "25+ Years Experience", TitleAr: "خبرة 25+ سنة", DescriptionEn: "Over two decades of successful project delivery", DescriptionAr: "أكثر من عقدين من تسليم المشاريع الناجحة"},
			model.Section{TitleEn: "500+ Projects", TitleAr: "500+ مشروع", DescriptionEn: "Successfully completed over 500 projects", DescriptionAr: "أكملنا بنجاح أكثر من 500 مشروع"},
			model.Section{TitleEn: "Major Clients", TitleAr: "العملاء الرئيسيين", DescriptionEn: "Trusted by government and private sector", DescriptionAr: "موثوق من القطاعين الحكومي والخاص"},
		), func(b model.Base, s model.Section) model.Experience { return model.Experience{Base: b, Section: s} }),

		Commitments: build(sections("commitment",
			model.Section{TitleEn: "On-Time Delivery", TitleAr: "التسليم في الوقت المحدد", DescriptionEn: "We commit to meeting project deadlines", DescriptionAr: "نلتزم بالوفاء بالمواعيد النهائية للمشاريع"},
			model.Section{TitleEn: "Budget Compliance", TitleAr: "الالتزام بالميزانية", DescriptionEn: "Projects delivered within agreed budgets", DescriptionAr: "تسليم المشاريع ضمن الميزانيات المتفق عليها"},
			model.Section{TitleEn: "After-Sales Support", TitleAr: "دعم ما بعد البيع", DescriptionEn: "Continued support after project completion", DescriptionAr: "الدعم المستمر بعد اكتمال المشروع"},
		), func(b model.Base, s model.Section) model.Commitment { return model.Commitment{Base: b, Section: s} }),
	}
}
