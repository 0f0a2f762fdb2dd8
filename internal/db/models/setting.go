package models

// SettingsID is the fixed primary key of the settings row.
const SettingsID = 1

// EmptySettings is the blob stored when the settings were never written.
const EmptySettings = "{}"

// Settings is the singleton row holding the site settings as an opaque json blob.
type Settings struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement:false"`
	DataJSON string `gorm:"column:data_json;not null"`
}

// TableName implements gorm tabler.
func (Settings) TableName() string {
	return "settings"
}
