package model

// SettingsID is the fixed key of the singleton settings row.
const SettingsID uint = 1

type Settings struct {
	ID     uint    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name   *string `gorm:"size:255" json:"name"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
	Cover  *string `json:"cover"`
}

func (Settings) TableName() string {
	return "settings"
}
