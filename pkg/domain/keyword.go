package domain

// KeywordRule is a tenant-owned match condition. Rules are immutable once loaded
// into a scan cycle and refreshed from the store on the next cycle.
type KeywordRule struct {
	Text       string
	Semantic   bool
	Exclusions []string
}

// MatcherSettings holds per-tenant matching overrides. Zero values mean
// "use the global default".
type MatcherSettings struct {
	Threshold       float64 // minimum cosine similarity for semantic matches
	MinTopicPercent int     // floor on round(similarity*100), 0 disables
}

// ChatWatch maps one platform chat to the tenants entitled to its matches.
// Rebuilt from scratch on every filter reload, never mutated incrementally.
type ChatWatch struct {
	PlatformChatID string
	Title          string
	Handle         string
	Watchers       []int64
}

// ScannerStatus is the operational state exposed for one platform scanner
type ScannerStatus struct {
	Platform    string `json:"platform"`
	Running     bool   `json:"running"`
	MultiTenant bool   `json:"multiTenant"`
	TenantID    *int64 `json:"tenantId,omitempty"`
}
