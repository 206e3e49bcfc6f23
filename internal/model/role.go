package model

// Role groups permissions. Accounts hold any number of roles and their
// effective permissions are the union across all of them.
type Role struct {
	Base
	NameEn        string       `gorm:"type:text;not null" json:"name_en" binding:"required"`
	NameAr        string       `gorm:"type:text;not null" json:"name_ar" binding:"required"`
	DescriptionEn string       `gorm:"type:text" json:"description_en"`
	DescriptionAr string       `gorm:"type:text" json:"description_ar"`
	Permissions   []Permission `gorm:"many2many:role_permissions;constraint:OnDelete:CASCADE" json:"permissions,omitempty"`
}

func (Role) References() []Reference {
	return []Reference{
		junction("role_permissions", "role_id"),
		junction("account_roles", "role_id"),
	}
}

// Permission is a single grant identified by a dotted key such as "projects.edit".
type Permission struct {
	Base
	Key           string `gorm:"type:text;uniqueIndex;not null" json:"key" binding:"required"`
	NameEn        string `gorm:"type:text;not null" json:"name_en" binding:"required"`
	NameAr        string `gorm:"type:text;not null" json:"name_ar" binding:"required"`
	DescriptionEn string `gorm:"type:text" json:"description_en"`
	DescriptionAr string `gorm:"type:text" json:"description_ar"`
}

func (Permission) References() []Reference {
	return []Reference{junction("role_permissions", "permission_id")}
}
