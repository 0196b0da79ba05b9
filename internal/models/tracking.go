package models

// TrackingSetting is a key/value row for analytics configuration.
// Currently the only key in use is "gtm_id".
type TrackingSetting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex" json:"key"`
	Value string `json:"value"`
}

// TrackingSettingGTMKey is the key holding the tag-manager container id.
const TrackingSettingGTMKey = "gtm_id"
