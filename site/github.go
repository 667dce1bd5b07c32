// GitHub stats widget data: fetched server-side, cached for 30 minutes,
// degrading to the last good value and then to a static fallback.
package site

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/MaRkS1234567/MySite-web/internal/logging"
)

// LanguageStat is one language with its repository count.
type LanguageStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats is the aggregated profile data shown on the CV page.
type Stats struct {
	Repos         int            `json:"repos"`
	YearsOnGitHub int            `json:"years_on_github"`
	TopLanguages  []LanguageStat `json:"top_languages"`
}

// FallbackStats is shown when the API is unreachable and no fetched
// value exists yet.
var FallbackStats = Stats{
	Repos:         40,
	YearsOnGitHub: 4,
	TopLanguages: []LanguageStat{
		{Name: "TypeScript", Count: 8},
		{Name: "Python", Count: 6},
		{Name: "JavaScript", Count: 4},
		{Name: "CSS", Count: 2},
	},
}

const statsCacheKey = "github_stats"

// StatsProvider fetches and caches GitHub profile stats.
type StatsProvider struct {
	username string
	baseURL  string
	client   *http.Client
	cache    *expirable.LRU[string, Stats]

	mu    sync.Mutex
	stale *Stats
}

// NewStatsProvider creates a provider for one profile with the given TTL.
func NewStatsProvider(username string, ttl time.Duration) *StatsProvider {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &StatsProvider{
		username: username,
		baseURL:  "https://api.github.com",
		client:   &http.Client{Timeout: 10 * time.Second},
		cache:    expirable.NewLRU[string, Stats](1, nil, ttl),
	}
}

// Get returns fresh stats when cached, otherwise fetches. Fetch failures
// fall back to the last good value, then to the static fallback; the
// page never errors because the widget does not load.
func (p *StatsProvider) Get(ctx context.Context) Stats {
	if stats, ok := p.cache.Get(statsCacheKey); ok {
		return stats
	}

	stats, err := p.fetch(ctx)
	if err != nil {
		logging.Warn("github stats fetch failed", zap.Error(err))
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.stale != nil {
			return *p.stale
		}
		return FallbackStats
	}

	p.cache.Add(statsCacheKey, stats)
	p.mu.Lock()
	p.stale = &stats
	p.mu.Unlock()
	return stats
}

type githubUser struct {
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

type githubRepo struct {
	Language string `json:"language"`
}

func (p *StatsProvider) fetch(ctx context.Context) (Stats, error) {
	var user githubUser
	if err := p.getJSON(ctx, fmt.Sprintf("%s/users/%s", p.baseURL, p.username), &user); err != nil {
		return Stats{}, err
	}

	var repos []githubRepo
	url := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", p.baseURL, p.username)
	if err := p.getJSON(ctx, url, &repos); err != nil {
		return Stats{}, err
	}

	langCount := map[string]int{}
	for _, repo := range repos {
		if repo.Language != "" {
			langCount[repo.Language]++
		}
	}

	top := make([]LanguageStat, 0, len(langCount))
	for name, count := range langCount {
		top = append(top, LanguageStat{Name: name, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > 4 {
		top = top[:4]
	}

	return Stats{
		Repos:         user.PublicRepos,
		YearsOnGitHub: time.Now().Year() - user.CreatedAt.Year(),
		TopLanguages:  top,
	}, nil
}

func (p *StatsProvider) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github API returned %d for %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
