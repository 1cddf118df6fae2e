package models

import "time"

type ActivityType string

const (
	ActivityLogin           ActivityType = "LOGIN"
	ActivityLogout          ActivityType = "LOGOUT"
	ActivityRegister        ActivityType = "REGISTER"
	ActivityInventoryAdd    ActivityType = "INVENTORY_ADD"
	ActivityInventoryDelete ActivityType = "INVENTORY_DELETE"
)

// Activity is one row of the append-only user activity trail. UserID is
// not a foreign key: the trail outlives whatever it points at.
type Activity struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	UserID      uint         `json:"user_id" gorm:"index;not null"`
	Type        ActivityType `json:"activity_type" gorm:"column:activity_type;size:50;not null"`
	Description string       `json:"activity_description" gorm:"column:activity_description;type:text"`
	CreatedAt   time.Time    `json:"created_at" gorm:"index"`

	// filled by joins when listing, never written
	Username string `json:"username,omitempty" gorm:"->;-:migration"`
}

func (Activity) TableName() string {
	return "user_activity"
}
