package entity

// User is the local mirror of an identity-provider account.
type User struct {
	ID            int64  `gorm:"primaryKey"`
	SubUUID       string `gorm:"not null;uniqueIndex"`
	Username      string `gorm:"not null"`
	Email         string `gorm:"not null"`
	EmailVerified bool   `gorm:"not null"`
	Admin         bool   `gorm:"not null;default:false"`
	Active        bool   `gorm:"not null;default:true"`
	CreatedAt     int64  `gorm:"not null"`
	UpdatedAt     int64  `gorm:"not null;autoUpdateTime:false"`
}
