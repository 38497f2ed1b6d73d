package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitTotalFee(t *testing.T) {
	visit := Visit{ConsultationFee: 500, DrugFee: 200, ProcedureFee: 300}
	assert.Equal(t, 1000.0, visit.TotalFee())

	assert.Equal(t, 0.0, Visit{}.TotalFee())
}

func TestVisitIsNew(t *testing.T) {
	assert.True(t, Visit{NewOld: "N"}.IsNew())
	assert.True(t, Visit{NewOld: "New"}.IsNew(), "legacy spelled-out tag")
	assert.True(t, Visit{NewOld: " new "}.IsNew())
	assert.False(t, Visit{NewOld: "O"}.IsNew())
	assert.False(t, Visit{NewOld: "Old"}.IsNew())
	assert.False(t, Visit{NewOld: ""}.IsNew())
}

func TestPatientAge(t *testing.T) {
	patient := Patient{YearOfBirth: 1988}
	assert.Equal(t, 38, patient.Age(2026))
}

func TestLookupTable(t *testing.T) {
	for _, kind := range LookupKinds {
		table, err := LookupTable(kind)
		assert.NoError(t, err)
		assert.NotEmpty(t, table)
		assert.NotEmpty(t, BaseOptions(kind), "every kind ships a base list")
	}

	_, err := LookupTable("dosage")
	assert.Error(t, err)
}
