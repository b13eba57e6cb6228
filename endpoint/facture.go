package endpoint

import (
	"net/http"

	"github.com/ariebrainware/clinique/ledger"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgInvoiceNotFound = MsgResourceNotFound

const invoiceNumberWidth = 3

func (e *Env) invoiceYearTag() string {
	if e.Config != nil && e.Config.InvoiceYearTag != "" {
		return e.Config.InvoiceYearTag
	}
	return "2023"
}

// ListFactures godoc
// @Summary      List invoices
// @Description  Every invoice, most recently created first
// @Tags         Factures
// @Produce      json
// @Success      200 {array}  model.Facture
// @Failure      500 {object} util.APIError
// @Router       /api/factures [get]
func (e *Env) ListFactures(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	factures := []model.Facture{}
	if err := db.Order("date_creation DESC").Order("id_facture DESC").Find(&factures).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve invoices", Err: err})
		return
	}
	c.JSON(http.StatusOK, factures)
}

// GetFacture godoc
// @Summary      Get an invoice
// @Tags         Factures
// @Produce      json
// @Param        id path int true "Invoice id"
// @Success      200 {object} model.Facture
// @Failure      404 {object} util.APIError
// @Router       /api/factures/{id} [get]
func (e *Env) GetFacture(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgInvoiceNotFound)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var f model.Facture
	if err := db.First(&f, id).Error; err != nil {
		respondError(c, err, msgInvoiceNotFound, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, f)
}

// CreateFacture godoc
// @Summary      Create an invoice
// @Description  The patient needs an appointment. Invoices with nothing left to pay are created paid.
// @Tags         Factures
// @Accept       json
// @Produce      json
// @Param        request body ledger.InvoiceRequest true "Invoice"
// @Success      201 {object} model.Facture
// @Failure      400 {object} util.APIError
// @Failure      500 {object} util.APIError
// @Router       /api/factures [post]
func (e *Env) CreateFacture(c *gin.Context) {
	var req ledger.InvoiceRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}
	f, err := ledger.NewInvoice(req, e.now())
	if err != nil {
		respondError(c, err, msgInvoiceNotFound, "Failed to create invoice")
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var rdvCount int64
		if err := tx.Model(&model.RendezVous{}).Where("id_patient = ?", f.IDPatient).Count(&rdvCount).Error; err != nil {
			return err
		}
		if rdvCount == 0 {
			return &ledger.ValidationError{Msg: ledger.MsgAppointmentRequired}
		}
		numero, err := model.NextCode(tx, model.InvoicePrefix(e.invoiceYearTag()), invoiceNumberWidth)
		if err != nil {
			return err
		}
		f.NumeroFacture = numero
		return tx.Create(&f).Error
	})
	if err != nil {
		respondError(c, err, msgInvoiceNotFound, "Failed to create invoice")
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Invoice created", Data: f})
}

// UpdateFacture godoc
// @Summary      Update an invoice
// @Description  Paid invoices are immutable; paying requires a terminated appointment of the patient
// @Tags         Factures
// @Accept       json
// @Produce      json
// @Param        id path int true "Invoice id"
// @Param        request body ledger.InvoicePatch true "Fields to change"
// @Success      200 {object} model.Facture
// @Failure      400 {object} util.APIError
// @Failure      404 {object} util.APIError
// @Router       /api/factures/{id} [put]
func (e *Env) UpdateFacture(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgInvoiceNotFound)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var patch ledger.InvoicePatch
	if !bindJSONOrRespond(c, &patch, "Invalid request body") {
		return
	}

	var updated model.Facture
	err := db.Transaction(func(tx *gorm.DB) error {
		var current model.Facture
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		hasTerminated := false
		if patch.MarksPaid() {
			var n int64
			err := tx.Model(&model.RendezVous{}).
				Where("id_patient = ? AND statut = ?", current.IDPatient, model.RdvTermine).
				Count(&n).Error
			if err != nil {
				return err
			}
			hasTerminated = n > 0
		}
		next, err := ledger.ApplyInvoiceUpdate(current, patch, hasTerminated, e.now())
		if err != nil {
			return err
		}
		if err := tx.Save(&next).Error; err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		respondError(c, err, msgInvoiceNotFound, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteFacture godoc
// @Summary      Delete an invoice
// @Tags         Factures
// @Produce      json
// @Param        id path int true "Invoice id"
// @Success      200 {object} util.MessageResponse
// @Failure      404 {object} util.APIError
// @Router       /api/factures/{id} [delete]
func (e *Env) DeleteFacture(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgInvoiceNotFound)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	res := db.Delete(&model.Facture{}, id)
	if res.Error != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete invoice", Err: res.Error})
		return
	}
	if res.RowsAffected == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: msgInvoiceNotFound, Err: gorm.ErrRecordNotFound})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Invoice deleted successfully"})
}

// PatientFactures godoc
// @Summary      Invoices of a patient
// @Tags         Factures
// @Produce      json
// @Param        id path string true "Patient id"
// @Success      200 {array} model.Facture
// @Router       /api/factures/patient/{id} [get]
func (e *Env) PatientFactures(c *gin.Context) {
	patientID, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	factures := []model.Facture{}
	if err := db.Where("id_patient = ?", patientID.String()).Order("date_creation DESC").Find(&factures).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve invoices", Err: err})
		return
	}
	c.JSON(http.StatusOK, factures)
}

// Stats godoc
// @Summary      Current-year revenue
// @Description  Monthly revenue of paid invoices for the current year
// @Tags         Stats
// @Produce      json
// @Success      200 {object} ledger.YearStats
// @Router       /api/stats [get]
func (e *Env) Stats(c *gin.Context) {
	invoices, ok := paidInvoices(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ledger.CurrentYearRevenue(invoices, e.now().Year()))
}

// StatsHistory godoc
// @Summary      Revenue history
// @Description  Monthly revenue of paid invoices per year, most recent year first
// @Tags         Stats
// @Produce      json
// @Success      200 {array} ledger.YearHistory
// @Router       /api/stats/historique [get]
func (e *Env) StatsHistory(c *gin.Context) {
	invoices, ok := paidInvoices(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ledger.RevenueHistory(invoices))
}

func paidInvoices(c *gin.Context) ([]model.Facture, bool) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return nil, false
	}
	var invoices []model.Facture
	if err := db.Where("statut = ?", model.FacturePayee).Find(&invoices).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to compute statistics", Err: err})
		return nil, false
	}
	return invoices, true
}
