package model

import "gorm.io/datatypes"

const (
	ActionCreate           = "CREATE"
	ActionUpdate           = "UPDATE"
	ActionDelete           = "DELETE"
	ActionReplaceRoles     = "REPLACE_ROLES"
	ActionReplacePerms     = "REPLACE_PERMISSIONS"
	ActionProvisionAccount = "PROVISION_ACCOUNT"
)

// AuditLog records who changed which dashboard entity and when.
type AuditLog struct {
	Base
	AccountID *string        `gorm:"type:text;index" json:"account_id"` // nil for seeding and system writes
	Account   *Account       `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL" json:"account,omitempty"`
	Action    string         `gorm:"type:varchar(50);not null;index" json:"action"`
	Entity    string         `gorm:"type:varchar(64);not null;index" json:"entity"`
	EntityID  string         `gorm:"type:text;index" json:"entity_id"`
	Details   datatypes.JSON `json:"details"`
}
