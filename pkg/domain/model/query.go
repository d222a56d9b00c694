package model

import (
	"cmp"
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type RepositorySortKey string

const (
	SortByUpdated RepositorySortKey = "updated"
	SortByStars   RepositorySortKey = "stars"
	SortByForks   RepositorySortKey = "forks"
	SortByName    RepositorySortKey = "name"
)

var repositorySortKeys = []RepositorySortKey{
	SortByUpdated,
	SortByStars,
	SortByForks,
	SortByName,
}

// ParseRepositorySortKey converts a caller supplied sort key. Empty string
// falls back to SortByUpdated.
func ParseRepositorySortKey(v string) (RepositorySortKey, error) {
	if v == "" {
		return SortByUpdated, nil
	}

	key := RepositorySortKey(v)
	if !slices.Contains(repositorySortKeys, key) {
		return "", goerr.Wrap(ErrInvalidSortKey, "unsupported sort key", goerr.V("sort", v))
	}
	return key, nil
}

// RepositoryQuery is a caller-side filter and ordering applied to normalized
// repository records.
type RepositoryQuery struct {
	Language string
	SortBy   RepositorySortKey
}

// Apply returns a new slice filtered by language and sorted by SortBy. Sorting
// is stable, so ties keep their input order. The input slice is not modified.
func (x RepositoryQuery) Apply(repos []*Repository) []*Repository {
	result := lo.Filter(repos, func(repo *Repository, _ int) bool {
		if x.Language == "" {
			return true
		}
		return repo.Language != nil && *repo.Language == x.Language
	})

	switch x.SortBy {
	case SortByStars:
		slices.SortStableFunc(result, func(a, b *Repository) int {
			return cmp.Compare(b.StargazersCount, a.StargazersCount)
		})

	case SortByForks:
		slices.SortStableFunc(result, func(a, b *Repository) int {
			return cmp.Compare(b.ForksCount, a.ForksCount)
		})

	case SortByName:
		// Collator keeps internal buffers and must not be shared across goroutines
		c := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(result, func(a, b *Repository) int {
			return c.CompareString(a.Name, b.Name)
		})

	default:
		slices.SortStableFunc(result, func(a, b *Repository) int {
			return parseUpdatedAt(b.UpdatedAt).Compare(parseUpdatedAt(a.UpdatedAt))
		})
	}

	return result
}

func parseUpdatedAt(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// RepositoryLanguages returns sorted, de-duplicated primary languages.
func RepositoryLanguages(repos []*Repository) []string {
	languages := lo.Uniq(lo.FilterMap(repos, func(repo *Repository, _ int) (string, bool) {
		if repo.Language == nil || *repo.Language == "" {
			return "", false
		}
		return *repo.Language, true
	}))
	slices.Sort(languages)
	return languages
}
