package ledger

import (
	"math"
	"sort"

	"github.com/ariebrainware/clinique/model"
)

// YearStats is the current-year revenue summary served by /api/stats.
type YearStats struct {
	RevenuTotal     float64   `json:"revenu_total" example:"12500.5"`
	AnneeCourante   int       `json:"annee_courante" example:"2025"`
	RevenusMensuels []float64 `json:"revenus_mensuels"`
	TotalFactures   int       `json:"total_factures" example:"14"`
}

// YearHistory is one year of the revenue history.
type YearHistory struct {
	Annee   int       `json:"annee" example:"2024"`
	Total   float64   `json:"total" example:"40210"`
	Mensuel []float64 `json:"mensuel"`
}

// EmptyYearStats is the zeroed summary of year.
func EmptyYearStats(year int) YearStats {
	return YearStats{AnneeCourante: year, RevenusMensuels: make([]float64, 12)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func paid(f model.Facture) bool {
	return f.Statut == model.FacturePayee && f.DatePaiement != nil
}

// CurrentYearRevenue sums the amount of paid invoices per month of year.
// TotalFactures counts every paid invoice regardless of year. Invoices without
// a payment time are left out.
func CurrentYearRevenue(invoices []model.Facture, year int) YearStats {
	stats := EmptyYearStats(year)
	var total float64
	for _, f := range invoices {
		if !paid(f) {
			continue
		}
		stats.TotalFactures++
		if f.DatePaiement.Year() != year {
			continue
		}
		stats.RevenusMensuels[int(f.DatePaiement.Month())-1] += f.Montant
		total += f.Montant
	}
	stats.RevenuTotal = round2(total)
	return stats
}

// RevenueHistory groups paid invoices by payment year, most recent first.
// Invoices without a payment time are left out.
func RevenueHistory(invoices []model.Facture) []YearHistory {
	byYear := map[int][]float64{}
	for _, f := range invoices {
		if !paid(f) {
			continue
		}
		y := f.DatePaiement.Year()
		months, ok := byYear[y]
		if !ok {
			months = make([]float64, 12)
			byYear[y] = months
		}
		months[int(f.DatePaiement.Month())-1] += f.Montant
	}

	out := make([]YearHistory, 0, len(byYear))
	for y, months := range byYear {
		var total float64
		for _, m := range months {
			total += m
		}
		out = append(out, YearHistory{Annee: y, Total: round2(total), Mensuel: months})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Annee > out[j].Annee })
	return out
}
