package knowledge

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netadvisor/internal/domain"
)

func loadTestBase(t *testing.T) *Base {
	t.Helper()
	data, err := os.ReadFile("testdata/dataset.json")
	require.NoError(t, err)
	base, err := Parse(data)
	require.NoError(t, err)
	return base
}

func TestParseFlattensTree(t *testing.T) {
	base := loadTestBase(t)

	assert.Equal(t, []string{"Cisco", "Juniper", "F5"}, base.Vendors())

	commands := base.Commands()
	require.Len(t, commands, 5)

	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Set Hostname", "Enable SSH", "Enable Password", "SSH ACL", "Set System Name"}, names)

	t.Run("device path starts with vendor", func(t *testing.T) {
		assert.Equal(t, "Cisco/Router", commands[0].DevicePath)
		assert.Equal(t, "Juniper/Firewall", commands[4].DevicePath)
	})

	t.Run("security commands carry their level", func(t *testing.T) {
		assert.Equal(t, "basic", commands[2].Level)
		assert.Equal(t, "advanced", commands[3].Level)
		assert.Equal(t, domain.CategorySecurity, commands[3].Category)
	})

	t.Run("vendor-named nested key is not descended", func(t *testing.T) {
		assert.NotContains(t, names, "Phantom")
	})
}

func TestDocumentRendering(t *testing.T) {
	base := loadTestBase(t)

	t.Run("setup documents", func(t *testing.T) {
		docs := base.Documents("Cisco", domain.CategorySetup)
		require.Len(t, docs, 2)
		assert.Equal(t,
			"Vendor: Cisco\nDevice: Cisco/Router\nType: Setup\nName: Set Hostname\nDescription: assign a hostname\nCommand: hostname [device_name]\n",
			docs[0].Text)
	})

	t.Run("security documents default recommendations to None", func(t *testing.T) {
		docs := base.Documents("Cisco", domain.CategorySecurity)
		require.Len(t, docs, 2)
		assert.Contains(t, docs[0].Text, "Security Level: basic")
		assert.Contains(t, docs[0].Text, "Recommendations: None\n")
		assert.Contains(t, docs[1].Text, "Recommendations: Pair with VTY line restrictions\n")
	})

	t.Run("empty scopes have no documents", func(t *testing.T) {
		assert.Empty(t, base.Documents("Juniper", domain.CategorySecurity))
		assert.Empty(t, base.Documents("F5", domain.CategorySetup))
		assert.Empty(t, base.Documents("F5", domain.CategorySecurity))
	})
}

func TestParseRejectsMalformedDataset(t *testing.T) {
	_, err := Parse([]byte(`{"devices": {}}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`not json`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"vendors": {"Cisco": {"setup": "not a list"}}}`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.json")
	assert.Error(t, err)
}
