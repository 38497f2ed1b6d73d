package services

import (
	"MedicareClinic/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDailyBreakdown(t *testing.T) {
	visits := []models.Visit{
		{VisitID: 1, Date: "2026-08-30", ConsultationFee: 500, DrugFee: 200, ProcedureFee: 0, NewOld: models.PatientStatusNew},
		{VisitID: 2, Date: "2026-08-30", ConsultationFee: 300, DrugFee: 0, ProcedureFee: 100, NewOld: models.PatientStatusOld},
		{VisitID: 3, Date: "2026-08-29", ConsultationFee: 400, NewOld: "New"},
	}
	medicines := []models.Medicine{
		{MedID: 1, Date: "2026-08-30", DrugFee: 150},
		{MedID: 2, Date: "2026-08-28", DrugFee: 75},
	}

	rows := BuildDailyBreakdown(visits, medicines)

	assert.Len(t, rows, 3)
	assert.Equal(t, "2026-08-30", rows[0].Date)
	assert.Equal(t, 2, rows[0].TotalVisits)
	assert.Equal(t, 1, rows[0].DrugVisits)
	assert.Equal(t, 1, rows[0].NewPatients)
	assert.Equal(t, 1250.0, rows[0].TotalRevenue)

	// Legacy rows spelling out "New" still count as new patients.
	assert.Equal(t, "2026-08-29", rows[1].Date)
	assert.Equal(t, 1, rows[1].NewPatients)
	assert.Equal(t, 400.0, rows[1].TotalRevenue)

	// A date with only drug purchases still gets a bucket.
	assert.Equal(t, "2026-08-28", rows[2].Date)
	assert.Equal(t, 0, rows[2].TotalVisits)
	assert.Equal(t, 1, rows[2].DrugVisits)
	assert.Equal(t, 75.0, rows[2].TotalRevenue)
}

func TestBuildDailyBreakdownIsPure(t *testing.T) {
	visits := []models.Visit{
		{VisitID: 1, Date: "2026-08-30", ConsultationFee: 500, NewOld: "N"},
	}
	medicines := []models.Medicine{
		{MedID: 1, Date: "2026-08-30", DrugFee: 150},
	}

	first := BuildDailyBreakdown(visits, medicines)
	second := BuildDailyBreakdown(visits, medicines)
	assert.Equal(t, first, second)
}

func TestBuildDailyBreakdownEmpty(t *testing.T) {
	rows := BuildDailyBreakdown(nil, nil)
	assert.Empty(t, rows)
}

func TestBuildDailySnapshot(t *testing.T) {
	visits := []models.Visit{
		{VisitID: 1, ConsultationFee: 500, DrugFee: 200, ProcedureFee: 300, PaymentMethod: "Cash", NewOld: "N"},
		{VisitID: 2, ConsultationFee: 400, PaymentMethod: "GPay", NewOld: "O"},
	}
	medicines := []models.Medicine{
		{MedID: 1, DrugFee: 100, PaymentMethod: "card"},
	}

	snapshot := BuildDailySnapshot("2026-08-30", visits, medicines)

	assert.Equal(t, 900.0, snapshot.ConsultationFeeTotal)
	assert.Equal(t, 300.0, snapshot.DrugFeeTotal)
	assert.Equal(t, 300.0, snapshot.ProcedureFeeTotal)
	assert.Equal(t, 1500.0, snapshot.TotalRevenue)
	assert.Equal(t, 1, snapshot.NewPatients)
	assert.Equal(t, 1000.0, snapshot.PaymentBreakdown["cash"])
	assert.Equal(t, 400.0, snapshot.PaymentBreakdown["gpay"])
	assert.Equal(t, 100.0, snapshot.PaymentBreakdown["card"])
}

func TestBuildDailySnapshotExcludesCombinedPaymentMethods(t *testing.T) {
	visits := []models.Visit{
		{VisitID: 1, ConsultationFee: 600, PaymentMethod: "Cash+Card", NewOld: "O"},
		{VisitID: 2, ConsultationFee: 200, PaymentMethod: "Cash", NewOld: "O"},
	}

	snapshot := BuildDailySnapshot("2026-08-30", visits, nil)

	// The combined method contributes to revenue but to no bucket.
	assert.Equal(t, 800.0, snapshot.TotalRevenue)
	assert.Equal(t, 200.0, snapshot.PaymentBreakdown["cash"])
	assert.Equal(t, 0.0, snapshot.PaymentBreakdown["card"])
	assert.Equal(t, 0.0, snapshot.PaymentBreakdown["gpay"])
}

func TestBuildMonthlyBreakdown(t *testing.T) {
	visits := []models.Visit{
		{VisitID: 1, Date: "2026-02-01", ConsultationFee: 280, NewOld: "N", Referral: "Google Maps"},
		{VisitID: 2, Date: "2026-02-15", ConsultationFee: 300, NewOld: "O", Referral: "Friend"},
		{VisitID: 3, Date: "2026-01-10", ConsultationFee: 100, NewOld: "N"},
	}
	medicines := []models.Medicine{
		{MedID: 1, Date: "2026-02-20", DrugFee: 120},
	}

	rows := BuildMonthlyBreakdown(visits, medicines)

	assert.Len(t, rows, 2)
	assert.Equal(t, "2026-02", rows[0].Month)
	assert.Equal(t, 2, rows[0].TotalVisits)
	assert.Equal(t, 1, rows[0].DrugVisits)
	assert.Equal(t, 700.0, rows[0].TotalRevenue)
	// 2026 is not a leap year, February has 28 days.
	assert.InDelta(t, 25.0, rows[0].AvgDailyRevenue, 0.001)
	assert.Equal(t, 1, rows[0].NewPatients)
	assert.Equal(t, 1, rows[0].GoogleReferrals)

	assert.Equal(t, "2026-01", rows[1].Month)
	assert.Equal(t, 100.0, rows[1].TotalRevenue)
}

func TestStatsServiceDailyBreakdownFetches(t *testing.T) {
	visitRepo := &MockVisitRepository{
		ListAllFunc: func(ctx context.Context) ([]models.Visit, error) {
			return []models.Visit{{VisitID: 1, Date: "2026-08-30", ConsultationFee: 500, NewOld: "N"}}, nil
		},
	}
	medicineRepo := &MockMedicineRepository{
		ListAllFunc: func(ctx context.Context) ([]models.Medicine, error) {
			return []models.Medicine{{MedID: 1, Date: "2026-08-30", DrugFee: 150}}, nil
		},
	}

	service := NewStatsService(visitRepo, medicineRepo)
	rows, err := service.DailyBreakdown(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 650.0, rows[0].TotalRevenue)
}
