package model

import (
	"errors"
	"strings"
)

const maxIDLength = 50

var (
	ErrEmptyID   = errors.New("identifier is required")
	ErrIDTooLong = errors.New("identifier is too long")
)

// PatientID identifies a patient across services. Values come from other
// services as strings of uncertain origin and are never treated as numbers.
type PatientID string

// DoctorID identifies a doctor across services.
type DoctorID string

func parseID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrEmptyID
	}
	if len(id) > maxIDLength {
		return "", ErrIDTooLong
	}
	return id, nil
}

// ParsePatientID validates a patient identifier received at the HTTP boundary.
func ParsePatientID(raw string) (PatientID, error) {
	id, err := parseID(raw)
	return PatientID(id), err
}

// ParseDoctorID validates a doctor identifier received at the HTTP boundary.
func ParseDoctorID(raw string) (DoctorID, error) {
	id, err := parseID(raw)
	return DoctorID(id), err
}

func (id PatientID) String() string { return string(id) }

func (id DoctorID) String() string { return string(id) }
