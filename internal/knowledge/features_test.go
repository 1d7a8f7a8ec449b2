package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"netadvisor/internal/domain"
)

func TestFeatureListSecurity(t *testing.T) {
	base := loadTestBase(t)

	out := base.FeatureList([]string{"Cisco"}, domain.CategorySecurity, "")
	assert.Contains(t, out, "✨ Security Features for Cisco:")
	assert.Contains(t, out, "🔐 Router - Basic Level:")
	assert.Contains(t, out, "🔐 Router - Advanced Level:")
	assert.Contains(t, out, "- Enable Password: protect privileged mode")
	assert.Contains(t, out, "- SSH ACL: restrict ssh sources")
	assert.Contains(t, out, featureListFooter)
}

func TestFeatureListLevelFilter(t *testing.T) {
	base := loadTestBase(t)

	out := base.FeatureList([]string{"Cisco"}, domain.CategorySecurity, "advanced")
	assert.Contains(t, out, "SSH ACL")
	assert.NotContains(t, out, "Enable Password")

	t.Run("filter matches case-insensitively", func(t *testing.T) {
		out := base.FeatureList([]string{"Cisco"}, domain.CategorySecurity, "Advanced")
		assert.Contains(t, out, "SSH ACL")
	})
}

func TestFeatureListSetup(t *testing.T) {
	base := loadTestBase(t)

	out := base.FeatureList([]string{"Cisco", "Juniper"}, domain.CategorySetup, "")
	assert.Contains(t, out, "✨ Setup Features for Cisco:")
	assert.Contains(t, out, "✨ Setup Features for Juniper:")
	assert.Contains(t, out, "🔐 Router :")
	assert.Contains(t, out, "- Set Hostname: assign a hostname")
	assert.Contains(t, out, "- Set System Name: assign a system name")
}

func TestFeatureListUnknownVendorSkipped(t *testing.T) {
	base := loadTestBase(t)

	out := base.FeatureList([]string{"Arista"}, domain.CategorySecurity, "")
	assert.Equal(t, featureListFooter, out)
}
