// Package document renders printable clinic documents.
package document

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// DefaultDoctor is printed when the prescribing doctor is unknown.
const DefaultDoctor = "Dr. Médecin Généraliste"

// Ordonnance is the content of a printed prescription.
type Ordonnance struct {
	PatientName string
	Age         int
	HasAge      bool
	Date        string
	Doctor      string
	Medications []string
}

// Filename is the attachment name of the prescription of patient nom.
func Filename(nom, ordonnanceID string) string {
	return fmt.Sprintf("Ordonnance_%s_%s.pdf", nom, ordonnanceID)
}

// OrdonnancePDF writes o as a one-page A4 PDF.
func OrdonnancePDF(w io.Writer, o Ordonnance) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 28, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle("Ordonnance", true)
	pdf.AddPage()
	// Core fonts are cp1252; accents need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr("ORDONNANCE MÉDICALE"), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	patient := o.PatientName
	if o.HasAge {
		patient = fmt.Sprintf("%s (%d ans)", patient, o.Age)
	}
	doctor := o.Doctor
	if doctor == "" {
		doctor = DefaultDoctor
	}
	labelled(pdf, tr, "Patient : ", patient)
	labelled(pdf, tr, "Date : ", o.Date)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr("Médecin : "+doctor), "", 1, "L", false, 0, "")
	pdf.Ln(14)

	const width = 170
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.25)
	pdf.SetFillColor(211, 211, 211)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(width, 9, tr("Médicament / Posologie"), "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, med := range o.Medications {
		pdf.SetX(20)
		pdf.MultiCell(width, 12, "    "+tr(med), "1", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render ordonnance: %w", err)
	}
	return nil
}

func labelled(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(pdf.GetStringWidth(tr(label)), 7, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(value), "", 1, "L", false, 0, "")
}
