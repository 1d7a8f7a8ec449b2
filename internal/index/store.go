package index

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"netadvisor/internal/domain"
	"netadvisor/internal/knowledge"
)

type scope struct {
	vendor   string
	category domain.Category
}

// Store owns one in-memory similarity index per (vendor, category) pair.
// Indexes are built once at startup and never mutated; a scope with no
// documents simply has no index, which is a valid state.
type Store struct {
	embedder domain.Embedder
	indexes  map[scope]*memoryIndex
}

type memoryIndex struct {
	texts   []string
	vectors [][]float32
}

// Build prepares the embedder over the full corpus and constructs one index
// per non-empty (vendor, category). Blocking; runs before any query is
// served.
func Build(ctx context.Context, base *knowledge.Base, embedder domain.Embedder, logger *zap.Logger) (*Store, error) {
	categories := []domain.Category{domain.CategorySetup, domain.CategorySecurity}

	var corpus []string
	for _, vendor := range base.Vendors() {
		for _, cat := range categories {
			for _, doc := range base.Documents(vendor, cat) {
				corpus = append(corpus, doc.Text)
			}
		}
	}
	if err := embedder.Prepare(ctx, corpus); err != nil {
		return nil, fmt.Errorf("prepare embedder: %w", err)
	}

	s := &Store{embedder: embedder, indexes: make(map[scope]*memoryIndex)}
	for _, vendor := range base.Vendors() {
		for _, cat := range categories {
			docs := base.Documents(vendor, cat)
			if len(docs) == 0 {
				continue
			}
			texts := make([]string, len(docs))
			for i, doc := range docs {
				texts[i] = doc.Text
			}
			vectors, err := embedder.EmbedBatch(ctx, texts)
			if err != nil {
				return nil, fmt.Errorf("embed %s/%s documents: %w", vendor, cat, err)
			}
			s.indexes[scope{vendor: vendor, category: cat}] = &memoryIndex{texts: texts, vectors: vectors}
			logger.Info("built index",
				zap.String("vendor", vendor),
				zap.String("category", string(cat)),
				zap.Int("documents", len(docs)))
		}
	}
	return s, nil
}

// Search returns the k most similar document texts for the scope, best
// first. Empty when no index exists for the scope or k is not positive.
func (s *Store) Search(ctx context.Context, vendor string, category domain.Category, query string, k int) ([]string, error) {
	idx, ok := s.indexes[scope{vendor: vendor, category: category}]
	if !ok || k <= 0 {
		return nil, nil
	}
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return idx.search(vec, k), nil
}

// search ranks all documents by dot product (vectors are L2-normalized) and
// returns the top k texts. Ties keep insertion order.
func (idx *memoryIndex) search(query []float32, k int) []string {
	scores := make([]float32, len(idx.vectors))
	for i, v := range idx.vectors {
		scores[i] = dot(v, query)
	}
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	if k > len(order) {
		k = len(order)
	}
	out := make([]string, 0, k)
	for _, i := range order[:k] {
		out = append(out, idx.texts[i])
	}
	return out
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
