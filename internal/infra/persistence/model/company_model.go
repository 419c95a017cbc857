package model

// CompanyModel mirrors the 'companies' table.
type CompanyModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CompanyName string `gorm:"type:varchar(256);not null;uniqueIndex:ux_companies_name"`
	ShortName   string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(256)"`
	Phone       string `gorm:"type:varchar(20)"`
	Website     string `gorm:"type:varchar(256)"`

	CommonFieldModel `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
