package advisor

import (
	"regexp"
	"strings"

	"netadvisor/internal/domain"
)

const (
	scenarioHeader   = "Here are the configuration commands based on your scenario:\n\n"
	scenarioGuidance = "I understood that you're trying to configure something, but I need a bit more detail. Try using keywords like SSH, VLAN, hostname, or IP."
)

// Synthesizer matches a free-text scenario against the command registry and
// renders concrete commands with placeholders filled from the query.
type Synthesizer struct {
	registry []domain.Command
	filler   domain.SlotFiller
}

// NewSynthesizer creates a synthesizer over the flat command registry.
func NewSynthesizer(registry []domain.Command, filler domain.SlotFiller) *Synthesizer {
	return &Synthesizer{registry: registry, filler: filler}
}

// Synthesize returns "name\nfilled-command" blocks for every registry command
// whose name or description occurs in the query, or a fixed guidance string
// when nothing matched.
func (s *Synthesizer) Synthesize(query string) string {
	q := strings.ToLower(query)
	var matched []string
	for _, cmd := range s.registry {
		if !matchesScenario(cmd, q) {
			continue
		}
		matched = append(matched, cmd.Name+"\n"+s.filler.Fill(cmd.Template, query))
	}
	if len(matched) == 0 {
		return scenarioGuidance
	}
	return scenarioHeader + strings.Join(matched, "\n\n")
}

func matchesScenario(cmd domain.Command, q string) bool {
	if cmd.Name != "" && strings.Contains(q, strings.ToLower(cmd.Name)) {
		return true
	}
	return cmd.Description != "" && strings.Contains(q, strings.ToLower(cmd.Description))
}

var placeholderPattern = regexp.MustCompile(`\[([^\[\]]*)\]`)

// PatternFiller resolves placeholders by pure textual pattern location: the
// token's label (underscores replaced by spaces) is searched for in the
// query, and the located span substitutes the token. No validation of the
// extracted value is attempted; unlocated tokens stay bracketed.
type PatternFiller struct{}

// Fill implements domain.SlotFiller.
func (PatternFiller) Fill(template, query string) string {
	lower := strings.ToLower(query)
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		label := strings.ReplaceAll(token[1:len(token)-1], "_", " ")
		if label == "" {
			return token
		}
		if i := strings.Index(lower, strings.ToLower(label)); i >= 0 {
			return query[i : i+len(label)]
		}
		return token
	})
}
