package model

// Account is the dashboard-side profile of a user authenticated by the
// external identity provider. AuthUserID is the provider's subject.
type Account struct {
	Base
	AuthUserID    string  `gorm:"type:text;uniqueIndex;not null" json:"auth_user_id"`
	DisplayNameEn string  `gorm:"type:text" json:"display_name_en"`
	DisplayNameAr string  `gorm:"type:text" json:"display_name_ar"`
	AvatarURL     *string `gorm:"type:text" json:"avatar_url"`
	Roles         []Role  `gorm:"many2many:account_roles;constraint:OnDelete:CASCADE" json:"roles,omitempty"`
}

func (Account) References() []Reference {
	return []Reference{
		junction("account_roles", "account_id"),
		nullable("authors", "account_id"),
		nullable("audit_logs", "account_id"),
	}
}
