package db_models

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

func ParseUserStatus(s string) (UserStatus, bool) {
	switch UserStatus(s) {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return UserStatus(s), true
	}
	return "", false
}

// User stores customer details with Indian-format contact fields
// (10-digit phone starting 6-9, 6-digit pincode).
type User struct {
	BaseModel
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Name        string     `gorm:"not null" json:"name"`
	PhoneNumber string     `gorm:"not null" json:"phoneNumber"`
	Address     string     `gorm:"not null" json:"address"`
	City        string     `gorm:"not null" json:"city"`
	State       string     `gorm:"not null" json:"state"`
	Pincode     string     `gorm:"not null" json:"pincode"`
	Status      UserStatus `gorm:"not null" json:"status"`

	Subscriptions []Subscription `gorm:"foreignKey:UserID" json:"-"`
}
