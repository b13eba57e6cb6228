package model

import "time"

// Layouts of the appointment date and time columns.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02 15:04"
)

// RendezVous represents an appointment
// @Description Appointment information
type RendezVous struct {
	ID         uint      `json:"id_rdv" gorm:"primaryKey;column:id_rdv" example:"1"`
	IDPatient  string    `json:"id_patient" gorm:"column:id_patient;size:50;not null;index" example:"PT001"`
	NomPatient string    `json:"nom_patient" gorm:"column:nom_patient;size:100;not null" example:"Ahmed Benali"`
	IDMedecin  string    `json:"id_medecin" gorm:"column:id_medecin;size:50" example:"1"`
	NomMedecin string    `json:"nom_medecin" gorm:"column:nom_medecin;size:100" example:"Dr. Benali"`
	DateRdv    string    `json:"date_rdv" gorm:"column:date_rdv;size:10;not null;index" example:"2025-01-15"`
	Heure      string    `json:"heure" gorm:"column:heure;size:5;not null" example:"09:30"`
	Motif      string    `json:"motif" gorm:"column:motif;type:text" example:"Consultation générale"`
	Statut     string    `json:"statut" gorm:"column:statut;size:20;not null;default:'En attente'" example:"En attente"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName keeps the historical table name.
func (RendezVous) TableName() string {
	return "rendez_vous"
}

// At returns the appointment date-time in loc.
func (r RendezVous) At(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, r.DateRdv+" "+r.Heure, loc)
}
