package ledger

import (
	"strings"
	"time"

	"github.com/ariebrainware/clinique/model"
)

// InvoiceRequest carries the fields of a new invoice.
type InvoiceRequest struct {
	IDPatient        string  `json:"id_patient" example:"PT001"`
	NomPatient       string  `json:"nom_patient" example:"Ahmed Benali"`
	Montant          Amount `json:"montant" swaggertype:"number" example:"1000"`
	RemboursementPct Amount `json:"remboursement_pct" swaggertype:"number" example:"20"`
}

// InvoicePatch is a partial invoice update; nil fields keep the stored value.
type InvoicePatch struct {
	Montant          *Amount `json:"montant,omitempty" swaggertype:"number"`
	RemboursementPct *Amount `json:"remboursement_pct,omitempty" swaggertype:"number"`
	Statut           *string `json:"statut,omitempty"`
}

// MarksPaid reports whether the patch asks for the paid status.
func (p InvoicePatch) MarksPaid() bool {
	return p.Statut != nil && strings.TrimSpace(*p.Statut) == model.FacturePayee
}

// Amounts is the split of an invoice amount between insurer and patient.
type Amounts struct {
	Montant          float64
	RemboursementPct float64
	Remboursement    float64
	ResteAPayer      float64
}

// ComputeAmounts returns reimbursement = amount × pct / 100 and
// remaining = amount − reimbursement.
func ComputeAmounts(montant, pct float64) (Amounts, error) {
	if montant <= 0 {
		return Amounts{}, invalid(MsgInvalidAmount)
	}
	if pct < 0 || pct > 100 {
		return Amounts{}, invalid(MsgInvalidPct)
	}
	remboursement := montant * pct / 100
	return Amounts{
		Montant:          montant,
		RemboursementPct: pct,
		Remboursement:    remboursement,
		ResteAPayer:      montant - remboursement,
	}, nil
}

func (a Amounts) applyTo(f *model.Facture) {
	f.Montant = a.Montant
	f.RemboursementPct = a.RemboursementPct
	f.Remboursement = a.Remboursement
	f.ResteAPayer = a.ResteAPayer
}

// NewInvoice builds an unnumbered invoice. It is paid at creation when nothing
// remains to pay.
func NewInvoice(req InvoiceRequest, now time.Time) (model.Facture, error) {
	idPatient := strings.TrimSpace(req.IDPatient)
	nomPatient := strings.TrimSpace(req.NomPatient)
	if idPatient == "" || nomPatient == "" {
		return model.Facture{}, invalid(MsgPatientRequired)
	}
	amounts, err := ComputeAmounts(float64(req.Montant), float64(req.RemboursementPct))
	if err != nil {
		return model.Facture{}, err
	}

	f := model.Facture{
		IDPatient:    idPatient,
		NomPatient:   nomPatient,
		Statut:       model.FactureEnAttente,
		DateCreation: now,
	}
	amounts.applyTo(&f)
	if f.ResteAPayer == 0 {
		paidAt := now
		f.Statut = model.FacturePayee
		f.DatePaiement = &paidAt
	}
	return f, nil
}

// ApplyInvoiceUpdate merges patch into current. A paid invoice is immutable and
// an invoice can only be paid once the patient has a terminated appointment.
// The payment time is stamped on the transition to paid.
func ApplyInvoiceUpdate(current model.Facture, patch InvoicePatch, hasTerminatedAppointment bool, now time.Time) (model.Facture, error) {
	if current.Statut == model.FacturePayee {
		return current, invalid(MsgPaidImmutable)
	}

	next := current
	if patch.Statut != nil {
		next.Statut = strings.TrimSpace(*patch.Statut)
	}
	if !model.IsInvoiceStatus(next.Statut) {
		return current, invalid(MsgInvalidInvoiceStatus)
	}
	if next.Statut == model.FacturePayee && !hasTerminatedAppointment {
		return current, invalid(MsgPaidNeedsTerminated)
	}

	montant, pct := current.Montant, current.RemboursementPct
	if patch.Montant != nil {
		montant = float64(*patch.Montant)
	}
	if patch.RemboursementPct != nil {
		pct = float64(*patch.RemboursementPct)
	}
	amounts, err := ComputeAmounts(montant, pct)
	if err != nil {
		return current, err
	}
	amounts.applyTo(&next)

	if next.Statut == model.FacturePayee {
		paidAt := now
		next.DatePaiement = &paidAt
	}
	return next, nil
}
