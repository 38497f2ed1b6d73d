package services

import (
	"MedicareClinic/models"
	"MedicareClinic/repositories"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DailyBreakdownRow is one date's totals across both ledgers.
type DailyBreakdownRow struct {
	Date         string  `json:"date"`
	TotalVisits  int     `json:"total_visits"`
	DrugVisits   int     `json:"drug_visits"`
	NewPatients  int     `json:"new_patients"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DailySnapshot is the current-day dashboard: fee totals plus a
// payment-method split.
type DailySnapshot struct {
	Date                 string             `json:"date"`
	ConsultationFeeTotal float64            `json:"consultation_fee_total"`
	DrugFeeTotal         float64            `json:"drug_fee_total"`
	ProcedureFeeTotal    float64            `json:"procedure_fee_total"`
	TotalRevenue         float64            `json:"total_revenue"`
	NewPatients          int                `json:"new_patients"`
	PaymentBreakdown     map[string]float64 `json:"payment_breakdown"`
}

// MonthlyBreakdownRow is one calendar month's totals.
type MonthlyBreakdownRow struct {
	Month           string  `json:"month"`
	TotalVisits     int     `json:"total_visits"`
	DrugVisits      int     `json:"drug_visits"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgDailyRevenue float64 `json:"avg_daily_revenue"`
	NewPatients     int     `json:"new_patients"`
	GoogleReferrals int     `json:"google_referrals"`
}

type StatsService struct {
	visitRepo    repositories.VisitRepository
	medicineRepo repositories.MedicineRepository
}

func NewStatsService(visitRepo repositories.VisitRepository, medicineRepo repositories.MedicineRepository) *StatsService {
	return &StatsService{visitRepo: visitRepo, medicineRepo: medicineRepo}
}

func (s *StatsService) DailyBreakdown(ctx context.Context) ([]DailyBreakdownRow, error) {
	visits, err := s.visitRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visits for daily breakdown: %w", err)
	}
	medicines, err := s.medicineRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch medicine records for daily breakdown: %w", err)
	}
	return BuildDailyBreakdown(visits, medicines), nil
}

func (s *StatsService) TodaySnapshot(ctx context.Context, date string) (*DailySnapshot, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	visits, err := s.visitRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visits for daily snapshot: %w", err)
	}
	medicines, err := s.medicineRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch medicine records for daily snapshot: %w", err)
	}
	snapshot := BuildDailySnapshot(date, visits, medicines)
	return &snapshot, nil
}

func (s *StatsService) MonthlyBreakdown(ctx context.Context) ([]MonthlyBreakdownRow, error) {
	visits, err := s.visitRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visits for monthly breakdown: %w", err)
	}
	medicines, err := s.medicineRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch medicine records for monthly breakdown: %w", err)
	}
	return BuildMonthlyBreakdown(visits, medicines), nil
}

// BuildDailyBreakdown folds both ledgers into per-date totals, newest date
// first. It is a pure function of its inputs.
func BuildDailyBreakdown(visits []models.Visit, medicines []models.Medicine) []DailyBreakdownRow {
	buckets := make(map[string]*DailyBreakdownRow)
	bucket := func(date string) *DailyBreakdownRow {
		row, ok := buckets[date]
		if !ok {
			row = &DailyBreakdownRow{Date: date}
			buckets[date] = row
		}
		return row
	}

	for _, v := range visits {
		row := bucket(v.Date)
		row.TotalVisits++
		row.TotalRevenue += v.TotalFee()
		if v.IsNew() {
			row.NewPatients++
		}
	}
	for _, m := range medicines {
		row := bucket(m.Date)
		row.DrugVisits++
		row.TotalRevenue += m.DrugFee
	}

	rows := make([]DailyBreakdownRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})
	return rows
}

// BuildDailySnapshot totals a single day's rows. Payment methods outside
// cash/card/gpay (combined entries like "Cash+Card") fall into no bucket.
func BuildDailySnapshot(date string, visits []models.Visit, medicines []models.Medicine) DailySnapshot {
	snapshot := DailySnapshot{
		Date: date,
		PaymentBreakdown: map[string]float64{
			"cash": 0,
			"card": 0,
			"gpay": 0,
		},
	}

	for _, v := range visits {
		snapshot.ConsultationFeeTotal += v.ConsultationFee
		snapshot.DrugFeeTotal += v.DrugFee
		snapshot.ProcedureFeeTotal += v.ProcedureFee
		snapshot.TotalRevenue += v.TotalFee()
		if v.IsNew() {
			snapshot.NewPatients++
		}
		addPaymentBucket(snapshot.PaymentBreakdown, v.PaymentMethod, v.TotalFee())
	}
	for _, m := range medicines {
		snapshot.DrugFeeTotal += m.DrugFee
		snapshot.TotalRevenue += m.DrugFee
		addPaymentBucket(snapshot.PaymentBreakdown, m.PaymentMethod, m.DrugFee)
	}

	return snapshot
}

func addPaymentBucket(buckets map[string]float64, method string, amount float64) {
	key := strings.ToLower(strings.TrimSpace(method))
	if _, ok := buckets[key]; ok {
		buckets[key] += amount
	}
}

// BuildMonthlyBreakdown folds both ledgers into per-month totals, newest
// month first. Average daily revenue divides by the month's calendar length,
// not by the number of days the clinic actually opened.
func BuildMonthlyBreakdown(visits []models.Visit, medicines []models.Medicine) []MonthlyBreakdownRow {
	buckets := make(map[string]*MonthlyBreakdownRow)
	bucket := func(month string) *MonthlyBreakdownRow {
		row, ok := buckets[month]
		if !ok {
			row = &MonthlyBreakdownRow{Month: month}
			buckets[month] = row
		}
		return row
	}

	for _, v := range visits {
		month, ok := monthOf(v.Date)
		if !ok {
			continue
		}
		row := bucket(month)
		row.TotalVisits++
		row.TotalRevenue += v.TotalFee()
		if v.IsNew() {
			row.NewPatients++
		}
		if strings.Contains(strings.ToLower(v.Referral), "google") {
			row.GoogleReferrals++
		}
	}
	for _, m := range medicines {
		month, ok := monthOf(m.Date)
		if !ok {
			continue
		}
		row := bucket(month)
		row.DrugVisits++
		row.TotalRevenue += m.DrugFee
	}

	rows := make([]MonthlyBreakdownRow, 0, len(buckets))
	for _, row := range buckets {
		row.AvgDailyRevenue = row.TotalRevenue / float64(daysInMonth(row.Month))
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month > rows[j].Month
	})
	return rows
}

// monthOf extracts the YYYY-MM prefix of a YYYY-MM-DD date.
func monthOf(date string) (string, bool) {
	if len(date) < 7 {
		return "", false
	}
	return date[:7], true
}

func daysInMonth(month string) int {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 30
	}
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
