// Package directory is a file-backed source of tenants, chats and keyword
// rules. Production deployments put a real account system behind the scanner
// contracts, the directory file serves standalone and self-hosted setups and
// can be edited without restarting the process.
package directory

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/chatradar/chatradar/pkg/domain"
	"github.com/chatradar/chatradar/pkg/scanner"
)

// Tenant is one monitored account in the directory file
type Tenant struct {
	ID              int64         `yaml:"id"`
	Disabled        bool          `yaml:"disabled"`
	Threshold       float64       `yaml:"threshold"`
	MinTopicPercent int           `yaml:"min_topic_percent"`
	Keywords        []Keyword     `yaml:"keywords"`
	Notifications   Notifications `yaml:"notifications"`
}

// Keyword is one keyword rule of a tenant
type Keyword struct {
	Text       string   `yaml:"text"`
	Semantic   bool     `yaml:"semantic"`
	Exclusions []string `yaml:"exclusions"`
	Disabled   bool     `yaml:"disabled"`
}

// Notifications is a tenant's delivery policy
type Notifications struct {
	Email          bool   `yaml:"email"`
	Telegram       bool   `yaml:"telegram"`
	Mode           string `yaml:"mode"` // all, leads, digest, disabled
	EmailAddress   string `yaml:"email_address"`
	TelegramTarget string `yaml:"telegram_target"`
}

// Chat is one watched chat in the directory file
type Chat struct {
	ID          int64   `yaml:"id"`
	Platform    string  `yaml:"platform"`
	NativeID    string  `yaml:"native_id"`
	Handle      string  `yaml:"handle"`
	InviteToken string  `yaml:"invite_token"`
	Title       string  `yaml:"title"`
	Global      bool    `yaml:"global"`
	Owner       int64   `yaml:"owner"`
	Watchers    []int64 `yaml:"watchers"`
	Disabled    bool    `yaml:"disabled"`
}

// fileData is the directory file layout
type fileData struct {
	Tenants []Tenant `yaml:"tenants"`
	Chats   []Chat   `yaml:"chats"`
}

// Directory answers scanner and notifier store queries from the loaded file.
// Safe for concurrent use, Reload swaps the whole snapshot.
type Directory struct {
	path string

	mu      sync.RWMutex
	tenants map[int64]Tenant
	chats   []Chat
}

// Load reads and parses the directory file
func Load(path string) (*Directory, error) {
	d := &Directory{path: path}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload re-reads the directory file and replaces the current snapshot
func (d *Directory) Reload() error {
	data, err := os.ReadFile(d.path) //nolint:gosec // file path comes from config
	if err != nil {
		return fmt.Errorf("read directory file: %w", err)
	}

	var parsed fileData
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse directory file: %w", err)
	}

	tenants := make(map[int64]Tenant, len(parsed.Tenants))
	for _, tn := range parsed.Tenants {
		if tn.ID == 0 {
			return fmt.Errorf("tenant without id in directory file")
		}
		tenants[tn.ID] = tn
	}

	d.mu.Lock()
	d.tenants = tenants
	d.chats = parsed.Chats
	d.mu.Unlock()
	return nil
}

// ListEnabledChats returns the platform's enabled chats as scanner refs
func (d *Directory) ListEnabledChats(_ context.Context, platform string) ([]scanner.ChatRef, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var refs []scanner.ChatRef
	for _, c := range d.chats {
		if c.Disabled || c.Platform != platform {
			continue
		}
		refs = append(refs, scanner.ChatRef{
			ID:            c.ID,
			NativeID:      c.NativeID,
			Handle:        c.Handle,
			InviteToken:   c.InviteToken,
			Title:         c.Title,
			IsGlobal:      c.Global,
			OwnerTenantID: c.Owner,
		})
	}
	return refs, nil
}

// ListWatchers returns enabled watcher tenants of a global chat
func (d *Directory) ListWatchers(_ context.Context, chatID int64) ([]int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, c := range d.chats {
		if c.ID != chatID {
			continue
		}
		var watchers []int64
		for _, id := range c.Watchers {
			if tn, ok := d.tenants[id]; ok && !tn.Disabled {
				watchers = append(watchers, id)
			}
		}
		return watchers, nil
	}
	return nil, fmt.Errorf("chat %d not found", chatID)
}

// Permitted reports whether the tenant exists and is not disabled
func (d *Directory) Permitted(_ context.Context, tenantID int64) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	tn, ok := d.tenants[tenantID]
	return ok && !tn.Disabled, nil
}

// ListEnabledKeywords returns the tenant's active keyword rules
func (d *Directory) ListEnabledKeywords(_ context.Context, tenantID int64) ([]domain.KeywordRule, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	tn, ok := d.tenants[tenantID]
	if !ok {
		return nil, fmt.Errorf("tenant %d not found", tenantID)
	}

	var rules []domain.KeywordRule
	for _, kw := range tn.Keywords {
		if kw.Disabled || kw.Text == "" {
			continue
		}
		rules = append(rules, domain.KeywordRule{
			Text:       kw.Text,
			Semantic:   kw.Semantic,
			Exclusions: kw.Exclusions,
		})
	}
	return rules, nil
}

// MatcherSettings returns the tenant's matching overrides, zero values mean
// "use global defaults"
func (d *Directory) MatcherSettings(_ context.Context, tenantID int64) (domain.MatcherSettings, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	tn, ok := d.tenants[tenantID]
	if !ok {
		return domain.MatcherSettings{}, fmt.Errorf("tenant %d not found", tenantID)
	}
	return domain.MatcherSettings{Threshold: tn.Threshold, MinTopicPercent: tn.MinTopicPercent}, nil
}

// GetNotificationPolicy returns the tenant's delivery policy
func (d *Directory) GetNotificationPolicy(_ context.Context, tenantID int64) (domain.NotificationPolicy, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	tn, ok := d.tenants[tenantID]
	if !ok {
		return domain.NotificationPolicy{}, fmt.Errorf("tenant %d not found", tenantID)
	}

	mode := domain.NotificationMode(tn.Notifications.Mode)
	switch mode {
	case domain.NotifyAll, domain.NotifyLeads, domain.NotifyDigest, domain.NotifyDisabled:
	case "":
		mode = domain.NotifyAll
	default:
		return domain.NotificationPolicy{}, fmt.Errorf("unknown notification mode %q for tenant %d", tn.Notifications.Mode, tenantID)
	}

	return domain.NotificationPolicy{
		EmailEnabled:    tn.Notifications.Email,
		TelegramEnabled: tn.Notifications.Telegram,
		Mode:            mode,
		Email:           tn.Notifications.EmailAddress,
		TelegramTarget:  tn.Notifications.TelegramTarget,
	}, nil
}
