package seed

import (
	"strings"

	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"
)

const (
	RoleAdmin  = "role_admin"
	RoleEditor = "role_editor"
	RoleAuthor = "role_author"
	RoleViewer = "role_viewer"
)

func perm(group, action, nameEn, nameAr string) model.Permission {
	p := model.Permission{Key: permission.Key(group, action), NameEn: nameEn, NameAr: nameAr}
	p.ID = "perm_" + group + "_" + action
	return p
}

// Permissions is the full permission catalog.
func Permissions() []model.Permission {
	return []model.Permission{
		perm(permission.Accounts, permission.ActionView, "View Accounts", "عرض الحسابات"),
		perm(permission.Accounts, permission.ActionCreate, "Create Accounts", "إنشاء حسابات"),
		perm(permission.Accounts, permission.ActionEdit, "Edit Accounts", "تعديل الحسابات"),
		perm(permission.Accounts, permission.ActionDelete, "Delete Accounts", "حذف الحسابات"),

		perm(permission.Roles, permission.ActionView, "View Roles", "عرض الأدوار"),
		perm(permission.Roles, permission.ActionManage, "Manage Roles", "إدارة الأدوار"),

		perm(permission.Images, permission.ActionView, "View Images", "عرض الصور"),
		perm(permission.Images, permission.ActionCreate, "Upload Images", "رفع الصور"),
		perm(permission.Images, permission.ActionEdit, "Edit Images", "تعديل الصور"),
		perm(permission.Images, permission.ActionDelete, "Delete Images", "حذف الصور"),

		perm(permission.Projects, permission.ActionView, "View Projects", "عرض المشاريع"),
		perm(permission.Projects, permission.ActionCreate, "Create Projects", "إنشاء مشاريع"),
		perm(permission.Projects, permission.ActionEdit, "Edit Projects", "تعديل المشاريع"),
		perm(permission.Projects, permission.ActionDelete, "Delete Projects", "حذف المشاريع"),

		perm(permission.Partners, permission.ActionView, "View Partners", "عرض الشركاء"),
		perm(permission.Partners, permission.ActionCreate, "Create Partners", "إضافة شركاء"),
		perm(permission.Partners, permission.ActionEdit, "Edit Partners", "تعديل الشركاء"),
		perm(permission.Partners, permission.ActionDelete, "Delete Partners", "حذف الشركاء"),

		perm(permission.Suppliers, permission.ActionView, "View Suppliers", "عرض الموردين"),
		perm(permission.Suppliers, permission.ActionCreate, "Create Suppliers", "إضافة موردين"),
		perm(permission.Suppliers, permission.ActionEdit, "Edit Suppliers", "تعديل الموردين"),
		perm(permission.Suppliers, permission.ActionDelete, "Delete Suppliers", "حذف الموردين"),

		perm(permission.Articles, permission.ActionView, "View Articles", "عرض المقالات"),
		perm(permission.Articles, permission.ActionCreate, "Create Articles", "إنشاء مقالات"),
		perm(permission.Articles, permission.ActionEdit, "Edit Articles", "تعديل المقالات"),
		perm(permission.Articles, permission.ActionDelete, "Delete Articles", "حذف المقالات"),

		perm(permission.Products, permission.ActionView, "View Products", "عرض المنتجات"),
		perm(permission.Products, permission.ActionCreate, "Create Products", "إنشاء منتجات"),
		perm(permission.Products, permission.ActionEdit, "Edit Products", "تعديل المنتجات"),
		perm(permission.Products, permission.ActionDelete, "Delete Products", "حذف المنتجات"),

		perm(permission.Services, permission.ActionView, "View Services", "عرض الخدمات"),
		perm(permission.Services, permission.ActionCreate, "Create Services", "إنشاء خدمات"),
		perm(permission.Services, permission.ActionEdit, "Edit Services", "تعديل الخدمات"),
		perm(permission.Services, permission.ActionDelete, "Delete Services", "حذف الخدمات"),

		perm(permission.Faqs, permission.ActionView, "View FAQs", "عرض الأسئلة الشائعة"),
		perm(permission.Faqs, permission.ActionCreate, "Create FAQs", "إنشاء أسئلة شائعة"),
		perm(permission.Faqs, permission.ActionEdit, "Edit FAQs", "تعديل الأسئلة الشائعة"),
		perm(permission.Faqs, permission.ActionDelete, "Delete FAQs", "حذف الأسئلة الشائعة"),

		perm(permission.Settings, permission.ActionView, "View Settings", "عرض الإعدادات"),
		perm(permission.Settings, permission.ActionManage, "Manage Settings", "إدارة الإعدادات"),
	}
}

func role(id, nameEn, nameAr, descEn, descAr string) model.Role {
	r := model.Role{NameEn: nameEn, NameAr: nameAr, DescriptionEn: descEn, DescriptionAr: descAr}
	r.ID = id
	return r
}

// Roles are the four starting roles. They are ordinary rows afterwards and
// can be edited or removed from the dashboard.
func Roles() []model.Role {
	return []model.Role{
		role(RoleAdmin, "Administrator", "مدير النظام", "Full access to all system features", "وصول كامل لجميع ميزات النظام"),
		role(RoleEditor, "Editor", "محرر", "Can create, edit, and publish content", "يمكنه إنشاء وتحرير ونشر المحتوى"),
		role(RoleAuthor, "Author", "كاتب", "Can create and edit own content", "يمكنه إنشاء وتحرير المحتوى الخاص به"),
		role(RoleViewer, "Viewer", "مشاهد", "Can view content in the dashboard", "يمكنه عرض المحتوى في لوحة التحكم"),
	}
}

// grantRules decide which permission keys each starting role receives.
var grantRules = map[string]func(key string) bool{
	RoleAdmin: func(string) bool { return true },
	RoleEditor: func(key string) bool {
		switch {
		case strings.HasSuffix(key, ".delete"):
			return false
		case strings.HasPrefix(key, permission.Accounts+".") && key != permission.Key(permission.Accounts, permission.ActionView):
			return false
		case strings.HasPrefix(key, permission.Roles+"."):
			return false
		}
		return key != permission.Key(permission.Settings, permission.ActionManage)
	},
	RoleAuthor: func(key string) bool {
		if strings.HasSuffix(key, ".delete") {
			return false
		}
		for _, group := range []string{permission.Accounts, permission.Roles, permission.Settings} {
			if strings.HasPrefix(key, group+".") {
				return false
			}
		}
		return true
	},
	RoleViewer: func(key string) bool { return strings.HasSuffix(key, ".view") },
}

// Grants maps each starting role to the ids of the permissions it holds.
func Grants(perms []model.Permission) map[string][]string {
	out := make(map[string][]string, len(grantRules))
	for roleID, allow := range grantRules {
		for _, p := range perms {
			if allow(p.Key) {
				out[roleID] = append(out[roleID], p.ID)
			}
		}
	}
	return out
}
