package entity

// Setting is one key/value pair of shop-wide configuration (company name,
// address, printer type, ...)
type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
