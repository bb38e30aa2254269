package matcher

import (
	"context"
	"math"
	"strings"
	"sync"
	"unicode"

	"github.com/go-pkgz/lgr"

	"github.com/chatradar/chatradar/pkg/domain"
)

// DefaultThreshold is the global minimum cosine similarity for semantic matches,
// used when a tenant has no override.
const DefaultThreshold = 0.55

const (
	maxChunks = 6  // derived short fragments per message
	maxTokens = 40 // distinct normalized word tokens per message
)

// Result is a single keyword hit. Similarity is nil for exact (substring)
// matches and set to the best cosine similarity for semantic matches.
type Result struct {
	Keyword    string
	Similarity *float64
}

// Matcher evaluates messages against keyword rules, combining case-insensitive
// substring matching with embedding-based semantic similarity.
type Matcher struct {
	cache    *Cache
	embedder Embedder

	mu          sync.RWMutex
	threshold   float64
	minTopicPct int
}

// New creates a matcher. The cache holds keyword vectors, the embedder produces
// per-message vectors. threshold of 0 falls back to DefaultThreshold.
func New(cache *Cache, embedder Embedder, threshold float64) *Matcher {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{cache: cache, embedder: embedder, threshold: threshold}
}

// SetThreshold replaces the default similarity threshold, applied to matches
// from the next message on. Zero falls back to DefaultThreshold.
func (m *Matcher) SetThreshold(t float64) {
	if t == 0 {
		t = DefaultThreshold
	}
	m.mu.Lock()
	m.threshold = t
	m.mu.Unlock()
}

// SetMinTopicPercent replaces the default minimum topic match percent used
// when a tenant has no override. Zero disables the floor.
func (m *Matcher) SetMinTopicPercent(pct int) {
	m.mu.Lock()
	m.minTopicPct = pct
	m.mu.Unlock()
}

// Match evaluates all rules against the message and returns at most one result
// per distinct keyword text. Semantic rules degrade to exact substring matching
// when the embedding backend is unavailable.
func (m *Matcher) Match(ctx context.Context, rules []domain.KeywordRule, message string, settings domain.MatcherSettings) []Result {
	if message == "" || len(rules) == 0 {
		return nil
	}
	folded := strings.ToLower(message)

	// exclusion words suppress the keyword before any matching
	active := make([]domain.KeywordRule, 0, len(rules))
	for _, r := range rules {
		if r.Text == "" || excluded(r, folded) {
			continue
		}
		active = append(active, r)
	}
	if len(active) == 0 {
		return nil
	}

	msgVectors := m.messageVectors(ctx, active, message)

	m.mu.RLock()
	threshold := m.threshold
	minTopicPct := m.minTopicPct
	m.mu.RUnlock()
	if settings.Threshold > 0 {
		threshold = settings.Threshold
	}
	if settings.MinTopicPercent > 0 {
		minTopicPct = settings.MinTopicPercent
	}

	var results []Result
	seen := map[string]int{} // keyword -> index in results
	add := func(keyword string, sim *float64) {
		if idx, ok := seen[keyword]; ok {
			// prefer the semantic result when both paths hit the same keyword
			if results[idx].Similarity == nil && sim != nil {
				results[idx].Similarity = sim
			}
			return
		}
		seen[keyword] = len(results)
		results = append(results, Result{Keyword: keyword, Similarity: sim})
	}

	for _, r := range active {
		if r.Semantic && len(msgVectors) > 0 {
			if kv := m.cache.Get(r.Text); kv != nil {
				best := 0.0
				for _, v := range msgVectors {
					if s := Cosine(kv, v); s > best {
						best = s
					}
				}
				if best < threshold {
					continue
				}
				if minTopicPct > 0 && int(math.Round(best*100)) < minTopicPct {
					continue
				}
				score := best
				add(r.Text, &score)
				continue
			}
			// keyword vector missing, fall through to exact
		}
		if strings.Contains(folded, strings.ToLower(r.Text)) {
			add(r.Text, nil)
		}
	}

	return results
}

// messageVectors embeds the message probes needed by semantic rules. Returns
// nil when no semantic rules are active or the backend is unavailable, which
// degrades those rules to exact matching.
func (m *Matcher) messageVectors(ctx context.Context, rules []domain.KeywordRule, message string) [][]float32 {
	var keywords []string
	for _, r := range rules {
		if r.Semantic {
			keywords = append(keywords, r.Text)
		}
	}
	if len(keywords) == 0 {
		return nil
	}
	if m.embedder == nil {
		return nil // semantic matching not configured
	}

	m.cache.Update(ctx, keywords)
	if !m.cache.Available() {
		return nil
	}

	probes := buildProbes(message)
	vectors, err := m.embedder.Embed(ctx, probes)
	if err != nil || len(vectors) == 0 {
		if err != nil {
			lgr.Printf("[WARN] message embedding failed, falling back to exact matching: %v", err)
		}
		return nil
	}
	return vectors
}

// buildProbes derives the texts to embed for one message: the full message,
// up to maxChunks short fragments (sentences plus 3-5 word sliding windows)
// and up to maxTokens distinct normalized word tokens.
func buildProbes(message string) []string {
	probes := []string{message}

	chunks := 0
	for _, s := range splitSentences(message) {
		if chunks == maxChunks {
			break
		}
		if s != message && len(strings.Fields(s)) > 1 {
			probes = append(probes, s)
			chunks++
		}
	}

	words := strings.Fields(message)
	for size := 3; size <= 5 && chunks < maxChunks; size++ {
		for i := 0; i+size <= len(words) && chunks < maxChunks; i++ {
			probes = append(probes, strings.Join(words[i:i+size], " "))
			chunks++
		}
	}

	seen := map[string]struct{}{}
	for _, w := range words {
		if len(seen) == maxTokens {
			break
		}
		token := normalizeToken(w)
		if len([]rune(token)) < 3 {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		probes = append(probes, token)
	}

	return probes
}

// splitSentences breaks a message into sentence-like fragments
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == ';' || r == '\n'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// normalizeToken lowercases a word and strips non-letter/digit runes
func normalizeToken(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// excluded reports whether any of the rule's exclusion words appears in the
// case-folded message
func excluded(r domain.KeywordRule, foldedMessage string) bool {
	for _, w := range r.Exclusions {
		if w == "" {
			continue
		}
		if strings.Contains(foldedMessage, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// Cosine computes cosine similarity between two vectors. Zero-norm vectors
// yield 0, never a division by zero. Mismatched lengths yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
