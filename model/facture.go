package model

import (
	"encoding/json"
	"time"
)

// Facture represents an invoice
// @Description Invoice information
type Facture struct {
	ID               uint       `json:"id_facture" gorm:"primaryKey;column:id_facture" example:"1"`
	NumeroFacture    string     `json:"numero_facture" gorm:"column:numero_facture;size:32;uniqueIndex;not null" example:"INV-2023-001"`
	IDPatient        string     `json:"id_patient" gorm:"column:id_patient;size:50;not null;index" example:"PT001"`
	NomPatient       string     `json:"nom_patient" gorm:"column:nom_patient;size:100;not null" example:"Ahmed Benali"`
	Montant          float64    `json:"montant" gorm:"column:montant;not null" example:"1000"`
	RemboursementPct float64    `json:"remboursement_pct" gorm:"column:remboursement_pct;not null;default:0" example:"20"`
	Remboursement    float64    `json:"remboursement" gorm:"column:remboursement;not null;default:0" example:"200"`
	ResteAPayer      float64    `json:"reste_a_payer" gorm:"column:reste_a_payer;not null" example:"800"`
	Statut           string     `json:"statut" gorm:"column:statut;size:20;not null;default:'En attente'" example:"En attente"`
	DateCreation     time.Time  `json:"date_creation" gorm:"column:date_creation;not null;index"`
	DatePaiement     *time.Time `json:"date_paiement" gorm:"column:date_paiement"`
	UpdatedAt        time.Time  `json:"-"`
}

// TableName keeps the historical table name.
func (Facture) TableName() string {
	return "factures"
}

// MarshalJSON renders the creation day as YYYY-MM-DD and the payment
// timestamp as YYYY-MM-DD HH:MM (null when unpaid).
func (f Facture) MarshalJSON() ([]byte, error) {
	type alias Facture
	var paid *string
	if f.DatePaiement != nil {
		s := f.DatePaiement.Format(DateTimeLayout)
		paid = &s
	}
	return json.Marshal(struct {
		alias
		DateCreation string  `json:"date_creation"`
		DatePaiement *string `json:"date_paiement"`
	}{
		alias:        alias(f),
		DateCreation: f.DateCreation.Format(DateLayout),
		DatePaiement: paid,
	})
}
