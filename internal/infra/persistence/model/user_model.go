package model

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RoleName    string `gorm:"type:varchar(50);not null;uniqueIndex:ux_roles_name"`
	Description string `gorm:"type:varchar(256)"`

	CommonFieldModel `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserModel mirrors the 'users' table. Roles are linked through 'user_roles'.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	UserName     string `gorm:"type:varchar(50);not null;uniqueIndex:ux_users_user_name"`
	FullName     string `gorm:"type:varchar(256)"`
	Email        string `gorm:"type:varchar(256);not null;uniqueIndex:ux_users_email"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	CommonFieldModel `gorm:"embedded"`

	Roles []RoleModel `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists every persistence model, in dependency order.
func All() []any {
	return []any{
		&CountryModel{},
		&CityModel{},
		&AddressModel{},
		&CompanyModel{},
		&RoleModel{},
		&UserModel{},
	}
}
