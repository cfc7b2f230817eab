// internal/models/setting.go
package models

type SiteSetting struct {
	BaseModel
	Key   string `json:"key" gorm:"size:100;not null;uniqueIndex"`
	Value string `json:"value" gorm:"type:text"`
}
