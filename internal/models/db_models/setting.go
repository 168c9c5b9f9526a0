package db_models

// Setting is one key/value row of the settings table. Plans are stored under
// the travel_plans key as a single JSON document.
type Setting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex;size:128;not null"`
	Value string `gorm:"type:text;not null"`
}

func (Setting) TableName() string { return "settings" }
