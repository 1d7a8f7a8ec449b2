package advisor

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"netadvisor/internal/domain"
	"netadvisor/internal/knowledge"
)

// DefaultUserID is the sentinel used when a request carries no user id.
const DefaultUserID = "default_user"

// searchK is the number of documents retrieved per resolved vendor.
const searchK = 5

// Fixed replies.
const (
	scopeReminder     = "⚠️ Sorry, I can only assist you with network setup and security topics related to setting up or securing any of the devices across the 5 platforms"
	greetingReply     = "Hello! How can I assist you with network setup or security today?"
	nothingFound      = "Sorry, I couldn't find anything useful for that request."
	previewPrefix     = "🔍 **Preview:**\n"
	previewFailPrefix = "⚠️ Failed to generate preview: "
)

// Service is the application core: it classifies a query and runs the
// matching handling path against the knowledge base, the vector indexes, the
// scenario synthesizer or the preview generator.
type Service struct {
	base      *knowledge.Base
	searcher  domain.Searcher
	resolver  *Resolver
	synth     *Synthesizer
	previewer domain.Previewer
	logger    *zap.Logger
}

// New wires a Service from its collaborators.
func New(base *knowledge.Base, searcher domain.Searcher, resolver *Resolver, synth *Synthesizer, previewer domain.Previewer, logger *zap.Logger) *Service {
	return &Service{
		base:      base,
		searcher:  searcher,
		resolver:  resolver,
		synth:     synth,
		previewer: previewer,
		logger:    logger,
	}
}

// Ask answers one query. The returned list is never empty on success; every
// degraded path yields a fixed explanatory string instead of an error.
func (s *Service) Ask(ctx context.Context, query, userID string) ([]string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if userID == "" {
		userID = DefaultUserID
	}
	d := classify(q)
	s.logger.Debug("classified query", zap.Int("intent", int(d.intent)), zap.String("user", userID))

	switch d.intent {
	case intentReject:
		return []string{scopeReminder}, nil
	case intentGreet:
		return []string{greetingReply}, nil
	case intentPreview:
		return []string{s.preview(ctx, q)}, nil
	case intentScenario:
		return []string{s.synth.Synthesize(q)}, nil
	case intentFeatures:
		vendors := s.resolver.Detect(q, userID)
		return []string{s.base.FeatureList(vendors, d.category, d.levelFilter)}, nil
	default:
		return s.retrieve(ctx, q, userID, d.category)
	}
}

// retrieve runs the default vector-retrieval path: k documents per resolved
// vendor, concatenated in vendor order.
func (s *Service) retrieve(ctx context.Context, q, userID string, category domain.Category) ([]string, error) {
	var results []string
	for _, vendor := range s.resolver.Detect(q, userID) {
		texts, err := s.searcher.Search(ctx, vendor, category, q, searchK)
		if err != nil {
			return nil, err
		}
		results = append(results, texts...)
	}
	if len(results) == 0 {
		return []string{nothingFound}, nil
	}
	return results, nil
}

// preview degrades to an inline warning string on any failure; the request
// itself still succeeds. One attempt, no retry.
func (s *Service) preview(ctx context.Context, q string) string {
	text, err := s.previewer.Preview(ctx, q)
	if err != nil {
		s.logger.Warn("preview generation failed", zap.Error(err))
		return previewFailPrefix + err.Error()
	}
	return previewPrefix + strings.TrimSpace(text)
}
