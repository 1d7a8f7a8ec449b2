package advisor

import (
	"strings"

	"netadvisor/internal/domain"
)

// intent is the handling path a query is routed to.
type intent int

const (
	intentReject intent = iota
	intentGreet
	intentPreview
	intentScenario
	intentFeatures
	intentRetrieve
)

// decision is the classifier outcome: an intent plus the parameters the
// handling path needs.
type decision struct {
	intent      intent
	category    domain.Category
	levelFilter string
}

// Keyword tables. All checks are substring checks over the lowercased query.
var (
	irrelevantKeywords = []string{
		"joke", "weather", "powerpoint", "excel", "word", "story", "open",
		"time", "date", "calendar", "meme", "music", "restaurant", "movie",
		"tell me", "funny", "game",
	}
	greetingTokens = []string{"hello", "hi", "hey"}
	configVerbs    = []string{"set", "enable", "disable", "configure"}
)

// classify routes a normalized query through the rule table. Rules are
// evaluated in order and the first match wins.
func classify(q string) decision {
	switch {
	case containsAny(q, irrelevantKeywords):
		return decision{intent: intentReject}
	case containsAny(q, greetingTokens):
		return decision{intent: intentGreet}
	case strings.Contains(q, "preview") || strings.Contains(q, "impact"):
		return decision{intent: intentPreview}
	case containsAny(q, configVerbs):
		return decision{intent: intentScenario}
	case strings.Contains(q, "features"):
		switch {
		case strings.Contains(q, "security"):
			return decision{intent: intentFeatures, category: domain.CategorySecurity, levelFilter: levelFilter(q)}
		case strings.Contains(q, "setup"):
			return decision{intent: intentFeatures, category: domain.CategorySetup}
		}
		// "features" without a category keyword falls through to retrieval
		// rather than producing no response.
		return retrieveDecision(q)
	default:
		return retrieveDecision(q)
	}
}

func retrieveDecision(q string) decision {
	category := domain.CategorySecurity
	if strings.Contains(q, "setup") || strings.Contains(q, "configure") {
		category = domain.CategorySetup
	}
	return decision{intent: intentRetrieve, category: category}
}

func levelFilter(q string) string {
	switch {
	case strings.Contains(q, "advanced"):
		return "advanced"
	case strings.Contains(q, "basic"):
		return "basic"
	}
	return ""
}

func containsAny(q string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}
