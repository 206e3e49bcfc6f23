package permission

// Actions a permission key can end with.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
	ActionManage = "manage"
)

// Permission groups, the first half of every key.
const (
	Accounts  = "accounts"
	Roles     = "roles"
	Images    = "images"
	Projects  = "projects"
	Partners  = "partners"
	Suppliers = "suppliers"
	Articles  = "articles"
	Products  = "products"
	Services  = "services"
	Faqs      = "faqs"
	Settings  = "settings"
)

// Key joins a group and an action, e.g. Key(Projects, ActionEdit) is "projects.edit".
func Key(group, action string) string {
	return group + "." + action
}

// KeySet names the key each CRUD operation on a resource requires.
type KeySet struct {
	View   string
	Create string
	Edit   string
	Delete string
}

// CrudKeys is the view/create/edit/delete set of a content group.
func CrudKeys(group string) KeySet {
	return KeySet{
		View:   Key(group, ActionView),
		Create: Key(group, ActionCreate),
		Edit:   Key(group, ActionEdit),
		Delete: Key(group, ActionDelete),
	}
}

// ManageKeys gates every write behind a single ".manage" key, as used by
// roles and site settings.
func ManageKeys(group string) KeySet {
	manage := Key(group, ActionManage)
	return KeySet{
		View:   Key(group, ActionView),
		Create: manage,
		Edit:   manage,
		Delete: manage,
	}
}
