package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officina/internal/entities"
)

func testCatalog() *entities.WorkshopCatalog {
	return &entities.WorkshopCatalog{
		Services: []entities.ServiceDef{
			{ID: "MOT", Name: "MOT", DurationHours: 6},
			{ID: "OilChange", Name: "Oil Change", DurationHours: 1},
		},
		Repairs: []entities.RepairDef{
			{ID: "Brakes", Name: "Brakes", DurationHours: 1, Dependency: "MOT"},
			{ID: "Exhaust", Name: "Exhaust", DurationHours: 2},
		},
		Workshops: []entities.Workshop{weekdayWorkshop()},
	}
}

func jobIDs(jobs []entities.Job) []string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestBuildJobOrderServicesFirst(t *testing.T) {
	jobs := buildJobOrder(testCatalog(), []string{"OilChange", "MOT"}, []string{"Exhaust"})
	assert.Equal(t, []string{"OilChange", "MOT", "Exhaust"}, jobIDs(jobs))
}

func TestBuildJobOrderInjectsDependency(t *testing.T) {
	jobs := buildJobOrder(testCatalog(), nil, []string{"Brakes"})
	require.Equal(t, []string{"MOT", "Brakes"}, jobIDs(jobs))
	assert.Equal(t, entities.JobKindService, jobs[0].Kind)
	assert.Equal(t, entities.JobKindRepair, jobs[1].Kind)
	assert.Equal(t, 7, totalJobHours(jobs))
}

func TestBuildJobOrderDependencyNotDuplicated(t *testing.T) {
	jobs := buildJobOrder(testCatalog(), []string{"MOT"}, []string{"Brakes"})
	assert.Equal(t, []string{"MOT", "Brakes"}, jobIDs(jobs))
}

func TestBuildJobOrderDropsUnknownIDs(t *testing.T) {
	jobs := buildJobOrder(testCatalog(), []string{"Nope", "MOT"}, []string{"AlsoNope"})
	assert.Equal(t, []string{"MOT"}, jobIDs(jobs))
}

func TestBuildJobOrderDeduplicatesRepeats(t *testing.T) {
	jobs := buildJobOrder(testCatalog(), []string{"MOT", "MOT"}, []string{"Brakes", "Brakes"})
	assert.Equal(t, []string{"MOT", "Brakes"}, jobIDs(jobs))
}

func TestBuildJobOrderDependencyPrecedesRepair(t *testing.T) {
	// dependency must sit at a strictly earlier index, whatever the request order
	jobs := buildJobOrder(testCatalog(), []string{"OilChange"}, []string{"Exhaust", "Brakes"})
	ids := jobIDs(jobs)
	motIdx, brakesIdx := -1, -1
	for i, id := range ids {
		switch id {
		case "MOT":
			motIdx = i
		case "Brakes":
			brakesIdx = i
		}
	}
	require.NotEqual(t, -1, motIdx)
	require.NotEqual(t, -1, brakesIdx)
	assert.Less(t, motIdx, brakesIdx)
}
