package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"netadvisor/internal/domain"
)

func TestClassifyRuleOrder(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  intent
	}{
		{"irrelevant keyword", "tell me a joke", intentReject},
		{"irrelevant wins over everything else", "tell me a joke about cisco ssh setup", intentReject},
		{"greeting", "hello", intentGreet},
		{"preview keyword", "preview of dos protection", intentPreview},
		{"impact keyword", "impact of enable ssh", intentPreview},
		{"config verb", "enable ssh on gigabit0", intentScenario},
		{"disable verb", "disable telnet access", intentScenario},
		{"setup contains the verb set", "setup features for cisco", intentScenario},
		{"security features", "security features for cisco", intentFeatures},
		{"default retrieval", "ssh hardening for cisco", intentRetrieve},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify(tc.query).intent)
		})
	}
}

func TestClassifyFeatures(t *testing.T) {
	d := classify("security features for cisco")
	assert.Equal(t, intentFeatures, d.intent)
	assert.Equal(t, domain.CategorySecurity, d.category)
	assert.Empty(t, d.levelFilter)

	t.Run("level filter", func(t *testing.T) {
		d := classify("advanced security features for cisco")
		assert.Equal(t, intentFeatures, d.intent)
		assert.Equal(t, "advanced", d.levelFilter)

		d = classify("basic security features for cisco")
		assert.Equal(t, "basic", d.levelFilter)
	})

	t.Run("features without category falls back to retrieval", func(t *testing.T) {
		d := classify("fortinet features")
		assert.Equal(t, intentRetrieve, d.intent)
		assert.Equal(t, domain.CategorySecurity, d.category)
	})
}

func TestRetrieveCategoryInference(t *testing.T) {
	assert.Equal(t, domain.CategorySecurity, retrieveDecision("ssh hardening").category)
	assert.Equal(t, domain.CategorySetup, retrieveDecision("initial setup steps").category)
	assert.Equal(t, domain.CategorySetup, retrieveDecision("how to configure vlans").category)
}
