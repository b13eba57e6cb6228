package ledger

import (
	"testing"
	"time"

	"github.com/ariebrainware/clinique/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidOn(montant float64, y int, m time.Month, d int) model.Facture {
	at := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	return model.Facture{Montant: montant, Statut: model.FacturePayee, DatePaiement: &at}
}

func sampleInvoices() []model.Facture {
	return []model.Facture{
		paidOn(100, 2025, time.January, 3),
		paidOn(50.25, 2025, time.January, 20),
		paidOn(300, 2025, time.December, 31),
		paidOn(1000, 2024, time.June, 1),
		paidOn(10, 2023, time.February, 2),
		{Montant: 999, Statut: model.FacturePayee},
		{Montant: 777, Statut: model.FactureEnAttente},
	}
}

func TestCurrentYearRevenue(t *testing.T) {
	stats := CurrentYearRevenue(sampleInvoices(), 2025)

	assert.Equal(t, 2025, stats.AnneeCourante)
	require.Len(t, stats.RevenusMensuels, 12)
	assert.InDelta(t, 150.25, stats.RevenusMensuels[0], 1e-9)
	assert.Equal(t, 300.0, stats.RevenusMensuels[11])
	assert.Equal(t, 450.25, stats.RevenuTotal)
	assert.Equal(t, 5, stats.TotalFactures)
}

func TestCurrentYearRevenue_SkipsPaidWithoutTimestamp(t *testing.T) {
	stats := CurrentYearRevenue([]model.Facture{{Montant: 999, Statut: model.FacturePayee}}, 2025)
	assert.Zero(t, stats.TotalFactures)
	assert.Zero(t, stats.RevenuTotal)
}

func TestCurrentYearRevenue_MonthsSumToTotal(t *testing.T) {
	var invoices []model.Facture
	for i := 0; i < 40; i++ {
		invoices = append(invoices, paidOn(float64(i)*13.37+0.01, 2025, time.Month(i%12+1), i%28+1))
	}
	stats := CurrentYearRevenue(invoices, 2025)

	var sum float64
	for _, m := range stats.RevenusMensuels {
		sum += m
	}
	assert.InDelta(t, stats.RevenuTotal, sum, 0.005)
}

func TestCurrentYearRevenue_Empty(t *testing.T) {
	stats := CurrentYearRevenue(nil, 2025)
	assert.Equal(t, EmptyYearStats(2025), stats)
}

func TestRevenueHistory(t *testing.T) {
	history := RevenueHistory(sampleInvoices())

	require.Len(t, history, 3)
	assert.Equal(t, []int{2025, 2024, 2023}, []int{history[0].Annee, history[1].Annee, history[2].Annee})
	assert.Equal(t, 450.25, history[0].Total)
	assert.Equal(t, 1000.0, history[1].Mensuel[5])
	assert.Equal(t, 10.0, history[2].Total)

	for _, y := range history {
		require.Len(t, y.Mensuel, 12)
		var sum float64
		for _, m := range y.Mensuel {
			sum += m
		}
		assert.InDelta(t, y.Total, sum, 0.005)
	}
}

func TestRevenueHistory_SkipsUnpaid(t *testing.T) {
	history := RevenueHistory([]model.Facture{{Montant: 5, Statut: model.FacturePayee}, {Montant: 5, Statut: model.FactureEnAttente}})
	assert.Empty(t, history)
	assert.NotNil(t, history)
}
