// Package stats derives the dashboard chart series from a bounded sample of
// payments. Every function is pure and total: odd input lands in a default
// bucket or is left out, never an error.
package stats

import (
	"sort"
	"time"

	"payment-admin/internal/entities"
)

const UnknownOperator = "Inconnu"

const (
	ColorSuccess = "#10b981"
	ColorFailed  = "#ef4444"
	ColorPending = "#f59e0b"
)

type StatusCount struct {
	Label  string                 `json:"label"`
	Status entities.PaymentStatus `json:"status"`
	Count  int                    `json:"count"`
	Color  string                 `json:"color"`
}

type OperatorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ByStatus counts payments as success, failed or pending, in that order.
// Any other status value is pending. Empty buckets are omitted.
func ByStatus(payments []entities.Payment) []StatusCount {
	var success, failed, pending int
	for _, p := range payments {
		switch p.PaymentStatus {
		case entities.PaymentSuccess:
			success++
		case entities.PaymentFailed:
			failed++
		default:
			pending++
		}
	}

	all := []StatusCount{
		{Label: StatusLabel(entities.PaymentSuccess), Status: entities.PaymentSuccess, Count: success, Color: ColorSuccess},
		{Label: StatusLabel(entities.PaymentFailed), Status: entities.PaymentFailed, Count: failed, Color: ColorFailed},
		{Label: StatusLabel(entities.PaymentPending), Status: entities.PaymentPending, Count: pending, Color: ColorPending},
	}
	out := make([]StatusCount, 0, len(all))
	for _, sc := range all {
		if sc.Count > 0 {
			out = append(out, sc)
		}
	}
	return out
}

// ByOperator counts payments per operator name in first-seen order.
func ByOperator(payments []entities.Payment) []OperatorCount {
	index := make(map[string]int)
	out := make([]OperatorCount, 0)
	for _, p := range payments {
		name := p.OperatorName()
		if name == "" {
			name = UnknownOperator
		}
		if i, ok := index[name]; ok {
			out[i].Count++
			continue
		}
		index[name] = len(out)
		out = append(out, OperatorCount{Name: name, Count: 1})
	}
	return out
}

// ByDay counts payments per calendar day, ascending. Payments whose date does
// not start with a valid YYYY-MM-DD are skipped; see Undated.
func ByDay(payments []entities.Payment) []DayCount {
	counts := make(map[string]int)
	for _, p := range payments {
		day, ok := dayKey(p.PaymentDate)
		if !ok {
			continue
		}
		counts[day]++
	}

	out := make([]DayCount, 0, len(counts))
	for day, count := range counts {
		out = append(out, DayCount{Date: day, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Undated returns how many payments ByDay leaves out.
func Undated(payments []entities.Payment) int {
	n := 0
	for _, p := range payments {
		if _, ok := dayKey(p.PaymentDate); !ok {
			n++
		}
	}
	return n
}

func dayKey(ts string) (string, bool) {
	if len(ts) < len(time.DateOnly) {
		return "", false
	}
	day := ts[:len(time.DateOnly)]
	if _, err := time.Parse(time.DateOnly, day); err != nil {
		return "", false
	}
	return day, true
}

// StatusLabel is the display label of a payment status.
func StatusLabel(status entities.PaymentStatus) string {
	switch status {
	case entities.PaymentSuccess:
		return "Réussi"
	case entities.PaymentFailed:
		return "Échoué"
	}
	return "En attente"
}
