package model

import (
	"fmt"

	"github.com/ariebrainware/clinique/config"
	"gorm.io/gorm"
)

// Tables returns the models stored by service.
func Tables(service string) ([]interface{}, error) {
	switch service {
	case config.ServiceRDV:
		return []interface{}{&RendezVous{}, &Facture{}, &Sequence{}}, nil
	case config.ServicePatients:
		return []interface{}{&Patient{}, &Observation{}, &Ordonnance{}, &Sequence{}}, nil
	case config.ServiceDoctors:
		return []interface{}{&Doctor{}}, nil
	case config.ServiceAuth:
		return []interface{}{&StaffUser{}, &DoctorAccount{}, &Session{}, &SecurityLog{}}, nil
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}
}

// Migrate creates or updates the tables of service.
func Migrate(db *gorm.DB, service string) error {
	tables, err := Tables(service)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("migrate %s tables: %w", service, err)
	}
	return nil
}
