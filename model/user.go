package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StaffUser is an administrative account (director or secretary)
// @Description Staff account
type StaffUser struct {
	gorm.Model
	Nom      string `json:"nom" gorm:"size:100;not null" example:"Moh"`
	Prenom   string `json:"prenom" gorm:"size:100" example:"Imad"`
	Email    string `json:"email" gorm:"size:191;uniqueIndex;not null" example:"moh@gmail.com"`
	Password string `json:"-" gorm:"size:255;not null"`
	Role     string `json:"role" gorm:"size:32;not null" example:"Directeur"`
}

// TableName keeps the historical table name.
func (StaffUser) TableName() string {
	return "users"
}

// DoctorAccount is the login of a doctor registered through signup
// @Description Doctor account
type DoctorAccount struct {
	gorm.Model
	Nom        string `json:"nom" gorm:"size:100;not null" example:"Benali"`
	Prenom     string `json:"prenom" gorm:"size:100;not null" example:"Karim"`
	Telephone  string `json:"telephone" gorm:"size:30" example:"0550123456"`
	Email      string `json:"email" gorm:"size:191;uniqueIndex;not null" example:"benali@clinique.dz"`
	Specialite string `json:"specialite" gorm:"size:100" example:"Cardiologie"`
	Password   string `json:"-" gorm:"size:255;not null"`
}

// TableName keeps the historical table name.
func (DoctorAccount) TableName() string {
	return "medecins"
}

// Account kinds stored on sessions.
const (
	AccountStaff  = "staff"
	AccountDoctor = "doctor"
)

// Session is a login session of a staff or doctor account.
type Session struct {
	gorm.Model
	SessionToken string    `json:"session_token" gorm:"size:512;uniqueIndex;not null"`
	AccountKind  string    `json:"account_kind" gorm:"size:16;not null"`
	AccountID    uint      `json:"account_id" gorm:"not null;index"`
	Email        string    `json:"email" gorm:"size:191;index"`
	Role         string    `json:"role" gorm:"size:32"`
	ClientIP     string    `json:"client_ip" gorm:"size:45"`
	UserAgent    string    `json:"user_agent" gorm:"size:512"`
	ExpiresAt    time.Time `json:"expires_at" gorm:"index"`
}

// SeedStaff is a default staff account; Password is plaintext and hashed by the caller.
type SeedStaff struct {
	Nom      string
	Prenom   string
	Email    string
	Password string
	Role     string
}

// DefaultStaff lists the accounts created by the seed command.
func DefaultStaff() []SeedStaff {
	return []SeedStaff{
		{Nom: "Moh", Prenom: "Imad", Email: "moh@gmail.com", Password: "dirc1", Role: RoleDirecteur},
		{Nom: "Arhman", Prenom: "Hoda", Email: "hoda@gmail.com", Password: "sec1", Role: RoleSecretaire},
	}
}

// SeedStaffUsers creates the default staff accounts that do not exist yet.
// hash turns a plaintext password into its stored form.
func SeedStaffUsers(db *gorm.DB, hash func(string) (string, error)) error {
	for _, s := range DefaultStaff() {
		var existing StaffUser
		err := db.Where("email = ?", s.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		hashed, err := hash(s.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", s.Email, err)
		}
		user := StaffUser{Nom: s.Nom, Prenom: s.Prenom, Email: s.Email, Password: hashed, Role: s.Role}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", s.Email, err)
		}
	}
	return nil
}
