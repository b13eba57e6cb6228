package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequence prefixes.
const (
	PatientPrefix    = "PT"
	OrdonnancePrefix = "ORD"
)

// Sequence keeps the last number handed out for a code prefix.
type Sequence struct {
	gorm.Model
	Prefix string `json:"prefix" gorm:"uniqueIndex;size:64;not null"`
	Number int    `json:"number" gorm:"not null;default:0"`
}

// NextCode increments the counter of prefix and returns the formatted code,
// e.g. NextCode(tx, "PT", 3) -> "PT001". It must run inside the caller's
// transaction so the code and the row that uses it commit together.
func NextCode(tx *gorm.DB, prefix string, width int) (string, error) {
	var seq Sequence
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("prefix = ?", prefix).
		First(&seq).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		seq = Sequence{Prefix: prefix, Number: 1}
		if err := tx.Create(&seq).Error; err != nil {
			return "", fmt.Errorf("create sequence %s: %w", prefix, err)
		}
	case err != nil:
		return "", fmt.Errorf("load sequence %s: %w", prefix, err)
	default:
		seq.Number++
		if err := tx.Model(&seq).Update("number", seq.Number).Error; err != nil {
			return "", fmt.Errorf("advance sequence %s: %w", prefix, err)
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, seq.Number), nil
}

// InvoicePrefix returns the numbering prefix of invoices for a year tag.
func InvoicePrefix(yearTag string) string {
	return "INV-" + yearTag + "-"
}
