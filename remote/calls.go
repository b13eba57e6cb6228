package remote

import (
	"context"
	"net/http"
	"time"

	"github.com/ariebrainware/clinique/ledger"
)

// TodayAppointments lists today's appointments of the rdv service, or nil.
func (c *Client) TodayAppointments(ctx context.Context) []map[string]any {
	var out []map[string]any
	if err := c.get(ctx, TargetRDV, "today_appointments", "/api/rdv/today", &out); err != nil {
		c.fallback(TargetRDV, "today_appointments", err)
		return nil
	}
	return out
}

// LastAppointment returns the most recent appointment of a patient, or nil
// when there is none or the rdv service is unavailable.
func (c *Client) LastAppointment(ctx context.Context, patientID string) map[string]any {
	var out map[string]any
	if err := c.get(ctx, TargetRDV, "last_appointment", "/api/rdv/patient/"+escape(patientID)+"/last", &out); err != nil {
		c.fallback(TargetRDV, "last_appointment", err)
		return nil
	}
	if v, ok := out["last_rdv"]; ok && v == nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Patients lists every patient, or nil.
func (c *Client) Patients(ctx context.Context) []map[string]any {
	var out []map[string]any
	if err := c.get(ctx, TargetPatients, "patients", "/api/patients", &out); err != nil {
		c.fallback(TargetPatients, "patients", err)
		return nil
	}
	return out
}

// Patient returns one patient record, or nil.
func (c *Client) Patient(ctx context.Context, id string) map[string]any {
	var out map[string]any
	if err := c.get(ctx, TargetPatients, "patient", "/api/patients/"+escape(id), &out); err != nil {
		c.fallback(TargetPatients, "patient", err)
		return nil
	}
	return out
}

// PatientOrdonnances lists the prescriptions of a patient; empty on failure.
func (c *Client) PatientOrdonnances(ctx context.Context, id string) []map[string]any {
	var out []map[string]any
	if err := c.get(ctx, TargetPatients, "ordonnances", "/api/patients/"+escape(id)+"/ordonnances", &out); err != nil {
		c.fallback(TargetPatients, "ordonnances", err)
		return []map[string]any{}
	}
	if out == nil {
		out = []map[string]any{}
	}
	return out
}

// Doctors lists the doctors directory, or nil.
func (c *Client) Doctors(ctx context.Context) []map[string]any {
	var out []map[string]any
	if err := c.get(ctx, TargetDoctors, "doctors", "/api/doctors", &out); err != nil {
		c.fallback(TargetDoctors, "doctors", err)
		return nil
	}
	return out
}

// RevenueStats returns the current-year revenue of the rdv service, zeroed on failure.
func (c *Client) RevenueStats(ctx context.Context, now time.Time) ledger.YearStats {
	var out ledger.YearStats
	if err := c.get(ctx, TargetRDV, "stats", "/api/stats", &out); err != nil {
		c.fallback(TargetRDV, "stats", err)
		return ledger.EmptyYearStats(now.Year())
	}
	if len(out.RevenusMensuels) != 12 {
		months := make([]float64, 12)
		copy(months, out.RevenusMensuels)
		out.RevenusMensuels = months
	}
	return out
}

// RevenueHistory returns the yearly revenue history, empty on failure.
func (c *Client) RevenueHistory(ctx context.Context) []ledger.YearHistory {
	var out []ledger.YearHistory
	if err := c.get(ctx, TargetRDV, "stats_history", "/api/stats/historique", &out); err != nil {
		c.fallback(TargetRDV, "stats_history", err)
		return []ledger.YearHistory{}
	}
	if out == nil {
		out = []ledger.YearHistory{}
	}
	return out
}

// DoctorRegistration is the directory entry created for a new doctor account.
type DoctorRegistration struct {
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
	Status     string `json:"status"`
	Email      string `json:"email,omitempty"`
}

// RegisterDoctor adds a doctor to the directory. Unlike the read calls its
// failure is returned, since an account must not exist without its directory entry.
func (c *Client) RegisterDoctor(ctx context.Context, reg DoctorRegistration) error {
	return c.do(ctx, TargetDoctors, "register_doctor", http.MethodPost, "/api/doctors", reg, nil)
}
