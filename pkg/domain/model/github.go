package model

// GitHubAPIRepository is the subset of an upstream repository object that the
// repository feed consumes. Nullable upstream fields stay as pointers.
type GitHubAPIRepository struct {
	ID              int64
	Name            string
	Description     *string
	HTMLURL         string
	Homepage        *string
	Language        *string
	StargazersCount int
	ForksCount      int
	UpdatedAt       string
	Topics          []string
	Fork            bool
	Archived        bool
}

// Repository is a display-ready repository record.
type Repository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	HTMLURL         string   `json:"html_url"`
	Homepage        *string  `json:"homepage"`
	Language        *string  `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	UpdatedAt       string   `json:"updated_at"`
	Topics          []string `json:"topics"`
}

// NewRepository normalizes an upstream repository. Optional fields absent
// upstream become nil (homepage) or an empty slice (topics).
func NewRepository(src *GitHubAPIRepository) *Repository {
	repo := &Repository{
		ID:              src.ID,
		Name:            src.Name,
		Description:     src.Description,
		HTMLURL:         src.HTMLURL,
		Language:        src.Language,
		StargazersCount: src.StargazersCount,
		ForksCount:      src.ForksCount,
		UpdatedAt:       src.UpdatedAt,
		Topics:          []string{},
	}

	if src.Homepage != nil && *src.Homepage != "" {
		homepage := *src.Homepage
		repo.Homepage = &homepage
	}
	if len(src.Topics) > 0 {
		repo.Topics = append(repo.Topics, src.Topics...)
	}

	return repo
}

// Valid reports whether mandatory fields are present.
func (x *Repository) Valid() bool {
	return x != nil && x.ID != 0 && x.Name != ""
}
