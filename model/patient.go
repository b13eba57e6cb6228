package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultPhoto is the photo reference of patients without an uploaded picture.
const DefaultPhoto = "default.jpg"

// Patient represents a patient record
// @Description Patient information
type Patient struct {
	ID            string    `json:"id" gorm:"primaryKey;size:10" example:"PT001"`
	Nom           string    `json:"nom" gorm:"size:50;not null;index" example:"Benali"`
	Prenom        string    `json:"prenom" gorm:"size:50;not null" example:"Ahmed"`
	NomComplet    string    `json:"nom_complet" gorm:"-" example:"Ahmed Benali"`
	DateNaissance string    `json:"date_naissance" gorm:"size:20;not null" example:"1985-04-12"`
	Sexe          string    `json:"sexe" gorm:"size:10;not null" example:"M"`
	Telephone     string    `json:"telephone" gorm:"size:30;not null" example:"0550123456"`
	Email         string    `json:"email" gorm:"size:100" example:"ahmed@example.com"`
	Adresse       string    `json:"adresse" gorm:"size:200;not null" example:"12 rue Didouche Mourad, Alger"`
	GroupeSanguin string    `json:"groupe_sanguin" gorm:"size:5;not null" example:"A+"`
	Allergies     string    `json:"allergies" gorm:"type:text" example:"Pénicilline"`
	Maladies      string    `json:"maladies" gorm:"type:text" example:"Asthme"`
	Photo         string    `json:"photo" gorm:"size:255;default:'default.jpg'" example:"default.jpg"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	Observations []Observation `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Ordonnances  []Ordonnance  `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// FullName returns "prenom nom".
func (p Patient) FullName() string {
	return strings.TrimSpace(p.Prenom + " " + p.Nom)
}

// AfterFind fills the derived full name.
func (p *Patient) AfterFind(tx *gorm.DB) error {
	p.NomComplet = p.FullName()
	return nil
}

// AfterSave fills the derived full name after create and update.
func (p *Patient) AfterSave(tx *gorm.DB) error {
	p.NomComplet = p.FullName()
	return nil
}

// Age returns the age in whole years at now, or false when the birth date is not YYYY-MM-DD.
func (p Patient) Age(now time.Time) (int, bool) {
	born, err := time.Parse(DateLayout, p.DateNaissance)
	if err != nil {
		return 0, false
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, true
}

// PatientDetail is the single-patient view with its observations and prescriptions.
type PatientDetail struct {
	Patient
	Observations []Observation `json:"observations"`
	Ordonnances  []Ordonnance  `json:"ordonnances"`
}

// Observation is a dated clinical note appended to a patient
// @Description Observation information
type Observation struct {
	ID        uint      `json:"id" gorm:"primaryKey" example:"1"`
	Date      string    `json:"date" gorm:"size:20;not null" example:"2025-01-15"`
	Texte     string    `json:"texte" gorm:"type:text;not null" example:"Tension normale"`
	AuteurID  string    `json:"auteur_id" gorm:"size:10;default:'D001'" example:"D001"`
	PatientID string    `json:"patient_id" gorm:"size:10;not null;index" example:"PT001"`
	CreatedAt time.Time `json:"-"`
}

// Ordonnance is a prescription
// @Description Prescription information
type Ordonnance struct {
	ID          string    `json:"id" gorm:"primaryKey;size:10" example:"ORD001"`
	Date        string    `json:"date" gorm:"size:20;not null" example:"2025-01-15"`
	Medicaments string    `json:"medicaments" gorm:"type:text;not null" example:"Paracétamol 1g, 3 fois par jour"`
	PatientID   string    `json:"patient_id" gorm:"size:10;not null;index" example:"PT001"`
	CreatedAt   time.Time `json:"-"`
}

// MedicationLines splits the medication text into trimmed non-empty lines.
func (o Ordonnance) MedicationLines() []string {
	var lines []string
	for _, l := range strings.Split(o.Medicaments, "\n") {
		if m := strings.TrimSpace(l); m != "" {
			lines = append(lines, m)
		}
	}
	return lines
}
