package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"netadvisor/internal/domain"
)

func testRegistry() []domain.Command {
	return []domain.Command{
		{
			Vendor:      "Cisco",
			Category:    domain.CategorySetup,
			Name:        "Enable SSH",
			Description: "turn on secure shell",
			Template:    "ssh enable on [interface]",
		},
		{
			Vendor:      "Cisco",
			Category:    domain.CategorySetup,
			Name:        "Set Hostname",
			Description: "assign a hostname",
			Template:    "hostname [device_name]",
		},
	}
}

func TestSynthesizeMatchByName(t *testing.T) {
	s := NewSynthesizer(testRegistry(), PatternFiller{})

	out := s.Synthesize("please enable ssh on gigabit0")
	assert.True(t, strings.HasPrefix(out, scenarioHeader))
	assert.Contains(t, out, "Enable SSH")
	// "interface" does not occur in the query, so the token stays bracketed.
	assert.Contains(t, out, "ssh enable on [interface]")
	assert.NotContains(t, out, "Set Hostname")
}

func TestSynthesizeMatchByDescription(t *testing.T) {
	s := NewSynthesizer(testRegistry(), PatternFiller{})

	out := s.Synthesize("I want to turn on secure shell here")
	assert.Contains(t, out, "Enable SSH")
}

func TestSynthesizeFillsLocatedPlaceholder(t *testing.T) {
	s := NewSynthesizer(testRegistry(), PatternFiller{})

	// "[device_name]" resolves via the "device name" pattern located in the
	// query; the aligned span substitutes the token.
	out := s.Synthesize("set hostname using the device name value")
	assert.Contains(t, out, "Set Hostname\nhostname device name")
}

func TestSynthesizeNoMatchReturnsGuidance(t *testing.T) {
	s := NewSynthesizer(testRegistry(), PatternFiller{})

	out := s.Synthesize("configure something unheard of")
	assert.Equal(t, scenarioGuidance, out)
}

func TestPatternFiller(t *testing.T) {
	f := PatternFiller{}

	t.Run("substitutes the located span with original casing", func(t *testing.T) {
		got := f.Fill("ping [ip_address]", "check the IP Address now")
		assert.Equal(t, "ping IP Address", got)
	})

	t.Run("unlocated tokens stay bracketed", func(t *testing.T) {
		got := f.Fill("ssh enable on [interface]", "please enable ssh on gigabit0")
		assert.Equal(t, "ssh enable on [interface]", got)
	})

	t.Run("multiple tokens resolve independently", func(t *testing.T) {
		got := f.Fill("snmp host [ip address] community [community]", "set snmp for ip address 10.0.0.1")
		assert.Equal(t, "snmp host ip address community [community]", got)
	})

	t.Run("empty token is left alone", func(t *testing.T) {
		got := f.Fill("odd [] template", "anything")
		assert.Equal(t, "odd [] template", got)
	})
}
