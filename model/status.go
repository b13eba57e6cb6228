package model

// Appointment statuses.
const (
	RdvEnAttente = "En attente"
	RdvConfirme  = "Confirmé"
	RdvEnCours   = "En cours"
	RdvTermine   = "Terminé"
	RdvAnnule    = "Annulé"
)

// Invoice statuses.
const (
	FactureEnAttente = "En attente"
	FacturePayee     = "Payée"
	FactureAnnulee   = "Annulée"
)

// Staff roles. Doctor accounts log in with RoleDocteur.
const (
	RoleDirecteur  = "Directeur"
	RoleSecretaire = "Secrétaire"
	RoleDocteur    = "Docteur"
)

var appointmentStatuses = map[string]struct{}{
	RdvEnAttente: {}, RdvConfirme: {}, RdvEnCours: {}, RdvTermine: {}, RdvAnnule: {},
}

var invoiceStatuses = map[string]struct{}{
	FactureEnAttente: {}, FacturePayee: {}, FactureAnnulee: {},
}

// IsAppointmentStatus reports whether s is a known appointment status.
func IsAppointmentStatus(s string) bool {
	_, ok := appointmentStatuses[s]
	return ok
}

// IsInvoiceStatus reports whether s is a known invoice status.
func IsInvoiceStatus(s string) bool {
	_, ok := invoiceStatuses[s]
	return ok
}

// IsStaffRole reports whether role may be given to a staff account.
func IsStaffRole(role string) bool {
	return role == RoleDirecteur || role == RoleSecretaire
}
