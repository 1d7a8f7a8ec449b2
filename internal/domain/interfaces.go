package domain

import "context"

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
// Vectors are L2-normalized so cosine similarity reduces to a dot product.
type Embedder interface {
	Name() string
	Prepare(ctx context.Context, corpus []string) error
	Dimension() int
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Searcher answers similarity queries scoped to one vendor and category.
// An absent index for a scope yields an empty result, not an error.
type Searcher interface {
	Search(ctx context.Context, vendor string, category Category, query string, k int) ([]string, error)
}

// Previewer produces a free-text benefits/recommendations summary for a
// security feature described by the query.
type Previewer interface {
	Preview(ctx context.Context, query string) (string, error)
}

// SlotFiller fills [placeholder] tokens in a command template from the query
// text. Tokens with no locatable value stay in the output unchanged.
type SlotFiller interface {
	Fill(template, query string) string
}

// Advisor is the operation exposed by the application core: one query in,
// an ordered list of result strings out.
type Advisor interface {
	Ask(ctx context.Context, query, userID string) ([]string, error)
}
