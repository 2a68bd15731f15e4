package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
)

const catalogYAML = `
hotends:
  volcano:
    max_volumetric_flow: 24.0
    response_time: 0.12
  standard:
    max_volumetric_flow: 11.0
    response_time: 0.09
materials:
  tpu_shore_85:
    name: TPU Shore 85
    shore_hardness: 85
`

func TestParseCatalogExtendsBuiltins(t *testing.T) {
	c, err := Parse([]byte(catalogYAML))
	require.NoError(t, err)

	h, err := c.Hotend("volcano")
	require.NoError(t, err)
	assert.Equal(t, 24.0, h.MaxVolumetricFlow)
	assert.Equal(t, 0.12, h.ResponseTime)

	m, err := c.Material("tpu_shore_85")
	require.NoError(t, err)
	assert.Equal(t, "TPU Shore 85", m.Name)
	assert.Equal(t, 85.0, m.ShoreHardness)

	// Built-ins remain available next to the file's entries.
	_, err = c.Material("pla")
	assert.NoError(t, err)
}

func TestParseCatalogShadowsBuiltin(t *testing.T) {
	c, err := Parse([]byte(catalogYAML))
	require.NoError(t, err)

	h, err := c.Hotend("standard")
	require.NoError(t, err)
	assert.Equal(t, 11.0, h.MaxVolumetricFlow)
}

func TestParseCatalogDefaultsMaterialLabel(t *testing.T) {
	c, err := Parse([]byte("materials:\n  tpu_72:\n    shore_hardness: 72\n"))
	require.NoError(t, err)

	m, err := c.Material("tpu_72")
	require.NoError(t, err)
	assert.Equal(t, "tpu_72", m.Name)
}

func TestParseCatalogRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("hotends:\n  bad:\n    max_volumetric_flow: -3\n    response_time: 0.05\n"))
	assert.True(t, errors.Is(err, errors.ErrProfileCatalog), "got %v", err)

	_, err = Parse([]byte("materials:\n  bad:\n    shore_hardness: 150\n"))
	assert.True(t, errors.Is(err, errors.ErrProfileCatalog), "got %v", err)
}

func TestParseCatalogRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("hotends:\n  x:\n    max_flow: 10\n"))
	assert.True(t, errors.Is(err, errors.ErrProfileCatalog), "got %v", err)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	_, err = c.Hotend("volcano")
	assert.NoError(t, err)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, errors.ErrProfileCatalog), "got %v", err)
}

func TestCatalogUnknownNames(t *testing.T) {
	c := Builtin()
	_, err := c.Hotend("volcano")
	assert.True(t, errors.Is(err, errors.ErrProfileCatalog), "got %v", err)
	_, err = c.Material("nylon")
	assert.True(t, errors.Is(err, errors.ErrProfileCatalog), "got %v", err)
}
