package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Doctor statuses and defaults.
const (
	DoctorDisponible     = "Disponible"
	DoctorEnConsultation = "En Consultation"
	DoctorUnknown        = "Inconnu"
)

// Doctor is an entry of the doctors directory
// @Description Doctor information
type Doctor struct {
	ID         uint      `json:"id" gorm:"primaryKey" example:"1"`
	Name       string    `json:"name" gorm:"size:100;not null" example:"Benali"`
	Speciality string    `json:"speciality" gorm:"size:100;not null;default:'Inconnu'" example:"Médecine Générale"`
	Status     string    `json:"status" gorm:"size:50;not null;default:'Disponible'" example:"Disponible"`
	Patients   int       `json:"patients" gorm:"not null;default:0" example:"45"`
	Email      *string   `json:"email,omitempty" gorm:"size:191;uniqueIndex" example:"benali@clinique.dz"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// DefaultDoctors is the directory content of a fresh installation.
func DefaultDoctors() []Doctor {
	return []Doctor{
		{ID: 1, Name: "Benali", Speciality: "Médecine Générale", Status: DoctorDisponible, Patients: 45},
		{ID: 2, Name: "Meziane", Speciality: "Pédiatrie", Status: DoctorEnConsultation, Patients: 38},
	}
}

// SeedDoctors inserts the default doctors when the directory is empty.
func SeedDoctors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Doctor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, d := range DefaultDoctors() {
		d := d
		if err := db.Create(&d).Error; err != nil {
			return fmt.Errorf("failed to seed doctor %s: %w", d.Name, err)
		}
	}
	return nil
}
