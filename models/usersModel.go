package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. STAFF is the default tier; DOCTOR unlocks financials,
// activity logs and user administration.
const (
	RoleStaff  = "STAFF"
	RoleDoctor = "DOCTOR"
)

// ValidRole reports whether role is one of the two supported tiers.
func ValidRole(role string) bool {
	return role == RoleStaff || role == RoleDoctor
}

// User represents a clinic login
type User struct {
	UUID       string    `gorm:"primaryKey;column:uuid" json:"uuid"`
	Email      string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Screenname string    `gorm:"size:100;not null;column:screenname" json:"screenname"`
	Password   string    `gorm:"size:255;not null;column:password" json:"-"`
	Role       string    `gorm:"size:20;not null;check:role IN ('STAFF', 'DOCTOR');column:role" json:"role"`
	Approved   bool      `gorm:"not null;default:false;column:approved" json:"approved"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// ActivityLog is an append-only record of a user action. Rows are written as
// a side effect of mutations and never updated or deleted.
type ActivityLog struct {
	LogID     int64     `gorm:"primaryKey;autoIncrement;column:log_id" json:"log_id"`
	UserUUID  string    `gorm:"column:user_uuid;not null;index" json:"user_uuid"`
	Action    string    `gorm:"type:text;not null;column:action" json:"action"`
	CreatedAt time.Time `gorm:"autoCreateTime;index;column:created_at" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// SeedUsers ensures the bootstrap doctor account exists so a fresh install
// is not locked out of the DOCTOR-only screens.
func SeedUsers(db *gorm.DB, doctorUUID, doctorEmail, hashedPassword string) error {
	if doctorEmail == "" {
		return nil
	}
	doctor := User{
		UUID:       doctorUUID,
		Email:      doctorEmail,
		Screenname: "doctor",
		Password:   hashedPassword,
		Role:       RoleDoctor,
		Approved:   true,
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Where(User{Email: doctorEmail}).FirstOrCreate(&doctor).Error
	})
}
