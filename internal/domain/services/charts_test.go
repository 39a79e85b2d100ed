package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

func TestChartData(t *testing.T) {
	catalog := sampleCatalog(t)
	records := []entities.HistoryRecord{
		{ActivityName: "Movie night", Date: "2024-01-05", CostPerPerson: entities.Float64(100)},
		{ActivityName: "Picnic", Date: "2024-01-20", CostPerPerson: entities.Float64(300)},
		{ActivityName: "Movie night", Date: "2024-02-02", CostPerPerson: entities.Float64(100)},
		{ActivityName: "Bowling", Date: "2024-02-10", CostPerPerson: entities.Float64(50)},
		{ActivityName: "Board games", Date: "2024-02-11"},
		{ActivityName: "Board games", Date: "not a date", CostPerPerson: entities.Float64(10)},
	}

	data := ChartData(catalog, records, "", "")

	assert.Equal(t, []entities.Count{
		{Value: "Board games", Count: 2},
		{Value: "Movie night", Count: 2},
		{Value: "Bowling", Count: 1},
		{Value: "Picnic", Count: 1},
	}, data.Activities)

	assert.Equal(t, []entities.Count{
		{Value: "games", Count: 2},
		{Value: "relaxed", Count: 2},
		{Value: "food", Count: 1},
	}, data.Tags)

	assert.Equal(t, []entities.MonthlySpend{
		{Month: "2024-01", Amount: 400},
		{Month: "2024-02", Amount: 150},
	}, data.Monthly)

	require.NotNil(t, data.Overlap)
	assert.Equal(t, "bf", data.Overlap.First)
	assert.Equal(t, "gf", data.Overlap.Second)
	assert.Equal(t, 2, data.Overlap.OnlyFirst)
	assert.Equal(t, 1, data.Overlap.OnlySec)
	assert.Equal(t, 2, data.Overlap.Both)
	assert.Equal(t, 5, data.Overlap.Total())
}

func TestChartData_ExplicitPeople(t *testing.T) {
	catalog := sampleCatalog(t)
	records := []entities.HistoryRecord{
		{ActivityName: "Picnic", Date: "2024-01-20"},
	}

	data := ChartData(catalog, records, "gf", "bf")

	require.NotNil(t, data.Overlap)
	assert.Equal(t, "gf", data.Overlap.First)
	assert.Equal(t, 1, data.Overlap.OnlyFirst)
	assert.Equal(t, 0, data.Overlap.OnlySec)
}

func TestChartData_SameDateCountsOnce(t *testing.T) {
	catalog := sampleCatalog(t)
	records := []entities.HistoryRecord{
		{ActivityName: "Movie night", Date: "2024-01-05"},
		{ActivityName: "Movie night", Date: "2024-01-05"},
	}

	data := ChartData(catalog, records, "", "")

	require.NotNil(t, data.Overlap)
	assert.Equal(t, 1, data.Overlap.Both)
	assert.Equal(t, []entities.Count{{Value: "Movie night", Count: 2}}, data.Activities)
}

func TestChartData_Empty(t *testing.T) {
	data := ChartData(nil, nil, "", "")

	assert.Empty(t, data.Activities)
	assert.Empty(t, data.Tags)
	assert.Empty(t, data.Monthly)
	assert.Nil(t, data.Overlap)
}

func TestChartData_NoLikedDates(t *testing.T) {
	catalog := sampleCatalog(t)

	data := ChartData(catalog, history("Bowling"), "", "")

	assert.Nil(t, data.Overlap)
	assert.Equal(t, []entities.Count{{Value: "Bowling", Count: 1}}, data.Activities)
}
