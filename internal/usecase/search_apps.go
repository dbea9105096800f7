package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/loomos/loomshell/internal/domain"
)

// SearchAppsInput contains the parameters for searching the registry.
// Fields are ordered to minimize memory padding.
type SearchAppsInput struct {
	Query    string          // Free text, may be empty
	Category domain.Category // Empty or CategoryAll means no filter
	Sort     domain.SortMode // Empty uses the configured sort mode
	Search   string          // Empty uses the configured search mode
}

// SearchAppsOutput contains the matching apps.
type SearchAppsOutput struct {
	Apps   []*domain.AppDefinition
	Cached bool // Results came from the search cache
}

// SearchApps is the use case behind the launcher result list and `apps`.
// Fields are ordered to minimize memory padding.
type SearchApps struct {
	registry *domain.Registry
	usage    domain.UsageRepository
	cache    domain.SearchCache // Optional
	logger   domain.Logger
	config   domain.LauncherConfig
}

// NewSearchApps creates a new SearchApps use case.
func NewSearchApps(
	registry *domain.Registry,
	usage domain.UsageRepository,
	cache domain.SearchCache,
	logger domain.Logger,
	config domain.LauncherConfig,
) *SearchApps {
	return &SearchApps{
		registry: registry,
		usage:    usage,
		cache:    cache,
		logger:   logger,
		config:   config,
	}
}

// Execute filters, orders and returns the apps matching the input.
func (uc *SearchApps) Execute(_ context.Context, in SearchAppsInput) (*SearchAppsOutput, error) {
	category := in.Category
	if category == "" {
		category = domain.CategoryAll
	}
	if category != domain.CategoryAll && !category.IsValid() {
		return nil, fmt.Errorf("%q: %w", category, domain.ErrUnknownCategory)
	}

	mode := in.Sort
	if mode == "" {
		mode = uc.config.Sort
	}
	if _, err := domain.ParseSortMode(string(mode)); err != nil {
		return nil, fmt.Errorf("%q: %w", mode, err)
	}

	search := in.Search
	if search == "" {
		search = uc.config.Search
	}
	switch search {
	case "", domain.SearchSubstring:
		search = domain.SearchSubstring
	case domain.SearchFuzzy:
	default:
		return nil, fmt.Errorf("%q: %w", search, domain.ErrInvalidSearchMode)
	}

	key := domain.SearchKey{
		Query:     in.Query,
		Category:  category,
		Search:    search,
		Sort:      mode,
		ShowAdmin: uc.config.ShowAdmin,
	}
	// Usage changes with every launch, so usage-ordered results are never cached.
	cacheable := uc.cache != nil && !mode.DependsOnUsage()
	if cacheable {
		if apps, ok := uc.cache.Get(key); ok {
			return &SearchAppsOutput{Apps: apps, Cached: true}, nil
		}
	}

	candidates := uc.registry.ByCategory(category)
	if !uc.config.ShowAdmin {
		candidates = withoutAdmin(candidates)
	}

	var apps []*domain.AppDefinition
	query := strings.TrimSpace(in.Query)
	if search == domain.SearchFuzzy && query != "" {
		// Fuzzy results are ordered by relevance; the sort mode does not apply.
		apps = fuzzyMatch(candidates, query)
	} else {
		apps = domain.FilterApps(candidates, query, domain.CategoryAll)
		apps = domain.SortApps(apps, mode, uc.loadUsage(mode))
	}

	if cacheable {
		uc.cache.Put(key, apps)
	}
	return &SearchAppsOutput{Apps: apps}, nil
}

// loadUsage returns launch statistics when the sort mode needs them.
// A failing usage store degrades to registry order rather than failing the search.
func (uc *SearchApps) loadUsage(mode domain.SortMode) domain.UsageMap {
	if !mode.DependsOnUsage() || uc.usage == nil {
		return nil
	}
	usage, err := uc.usage.Load()
	if err != nil {
		uc.logger.Warn("", "usecase", fmt.Sprintf("load usage: %v", err))
		return nil
	}
	return usage
}

func withoutAdmin(apps []*domain.AppDefinition) []*domain.AppDefinition {
	out := make([]*domain.AppDefinition, 0, len(apps))
	for _, app := range apps {
		if !app.RequiresAdmin {
			out = append(out, app)
		}
	}
	return out
}

// appSource exposes title plus keywords of each app to the fuzzy matcher.
type appSource []*domain.AppDefinition

func (s appSource) String(i int) string {
	return s[i].Title + " " + strings.Join(s[i].Keywords, " ")
}

func (s appSource) Len() int {
	return len(s)
}

// fuzzyMatch ranks apps whose title starts with the query first, then by score.
func fuzzyMatch(apps []*domain.AppDefinition, query string) []*domain.AppDefinition {
	matches := fuzzy.FindFrom(query, appSource(apps))
	lower := strings.ToLower(query)

	sort.SliceStable(matches, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(apps[matches[i].Index].Title), lower)
		pj := strings.HasPrefix(strings.ToLower(apps[matches[j].Index].Title), lower)
		if pi != pj {
			return pi
		}
		return matches[i].Score > matches[j].Score
	})

	out := make([]*domain.AppDefinition, 0, len(matches))
	for _, m := range matches {
		out = append(out, apps[m.Index])
	}
	return out
}
