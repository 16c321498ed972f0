package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officina/internal/entities"
)

const catalogJSON = `{
  "services": [{"id": "MOT", "name": "MOT", "durationHours": 6}],
  "repairs": [{"id": "Brakes", "name": "Brakes", "durationHours": 1, "dependency": "MOT"}],
  "workshops": [
    {
      "id": "w1",
      "name": "Test Workshop",
      "workingHours": {"startHour": 9, "endHour": 17},
      "workingDays": [1, 2, 3, 4, 5],
      "bays": [
        {
          "id": "Bay-1",
          "capabilities": [
            {"type": "service", "id": "MOT", "days": [1, 2, 3, 4, 5]},
            {"type": "repair", "id": "Brakes", "days": [1, 2, 3, 4, 5]}
          ]
        }
      ]
    }
  ]
}`

func writeCatalogFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestFileCatalogLoadJSON(t *testing.T) {
	path := writeCatalogFile(t, "catalog.json", catalogJSON)
	catalog, err := NewFileCatalog(path).Load()
	require.NoError(t, err)

	require.Len(t, catalog.Services, 1)
	assert.Equal(t, "MOT", catalog.Services[0].ID)
	assert.Equal(t, 6, catalog.Services[0].DurationHours)
	require.Len(t, catalog.Repairs, 1)
	assert.Equal(t, "MOT", catalog.Repairs[0].Dependency)
	require.Len(t, catalog.Workshops, 1)

	w := catalog.Workshops[0]
	assert.Equal(t, 9, w.WorkingHours.StartHour)
	assert.Equal(t, 17, w.WorkingHours.EndHour)
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, w.WorkingDays)
	require.Len(t, w.Bays, 1)
	require.Len(t, w.Bays[0].Capabilities, 2)
	assert.Equal(t, entities.JobKindService, w.Bays[0].Capabilities[0].Kind)
}

func TestFileCatalogLoadYAML(t *testing.T) {
	yaml := `
services:
  - id: MOT
    name: MOT
    durationHours: 6
repairs: []
workshops:
  - id: w1
    name: Test
    workingHours:
      startHour: 8
      endHour: 16
    workingDays: [1, 2]
    bays: []
`
	path := writeCatalogFile(t, "catalog.yaml", yaml)
	catalog, err := NewFileCatalog(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 8, catalog.Workshops[0].WorkingHours.StartHour)
}

func TestFileCatalogMissingFile(t *testing.T) {
	_, err := NewFileCatalog(filepath.Join(t.TempDir(), "nope.json")).Load()
	assert.Error(t, err)
}

func TestValidateCatalog(t *testing.T) {
	base := func() *entities.WorkshopCatalog {
		c, err := NewFileCatalog(writeCatalogFile(t, "c.json", catalogJSON)).Load()
		require.NoError(t, err)
		return c
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateCatalog(base()))
	})
	t.Run("no workshops", func(t *testing.T) {
		c := base()
		c.Workshops = nil
		assert.Error(t, ValidateCatalog(c))
	})
	t.Run("no services", func(t *testing.T) {
		c := base()
		c.Services = nil
		assert.Error(t, ValidateCatalog(c))
	})
	t.Run("inverted working hours", func(t *testing.T) {
		c := base()
		c.Workshops[0].WorkingHours = entities.WorkingHours{StartHour: 17, EndHour: 9}
		assert.Error(t, ValidateCatalog(c))
	})
	t.Run("dangling repair dependency", func(t *testing.T) {
		c := base()
		c.Repairs[0].Dependency = "Missing"
		assert.Error(t, ValidateCatalog(c))
	})
	t.Run("invalid capability kind", func(t *testing.T) {
		c := base()
		c.Workshops[0].Bays[0].Capabilities[0].Kind = "paint"
		assert.Error(t, ValidateCatalog(c))
	})
	t.Run("invalid weekday", func(t *testing.T) {
		c := base()
		c.Workshops[0].WorkingDays = []time.Weekday{7}
		assert.Error(t, ValidateCatalog(c))
	})
}

type flakyLoader struct {
	catalog *entities.WorkshopCatalog
	fail    bool
}

func (l *flakyLoader) Load() (*entities.WorkshopCatalog, error) {
	if l.fail {
		return nil, errors.New("backing store down")
	}
	return l.catalog, nil
}

func TestCatalogProviderFailsFastOnInvalidInitialLoad(t *testing.T) {
	_, err := NewCatalogProvider(&flakyLoader{catalog: &entities.WorkshopCatalog{}})
	assert.Error(t, err)
}

func TestCatalogProviderKeepsCacheOnFailedReload(t *testing.T) {
	good, err := NewFileCatalog(writeCatalogFile(t, "c.json", catalogJSON)).Load()
	require.NoError(t, err)

	loader := &flakyLoader{catalog: good}
	provider, err := NewCatalogProvider(loader)
	require.NoError(t, err)
	require.Same(t, good, provider.Catalog())

	loader.fail = true
	assert.Error(t, provider.Reload())
	assert.Same(t, good, provider.Catalog())
}
