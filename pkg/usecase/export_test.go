package usecase

// Export unexported functions for testing
func (x *UseCase) RepositoryCacheKeyForTest() string { return x.repositoryCacheKey() }
func (x *UseCase) ArticleCacheKeyForTest() string    { return x.articleCacheKey() }
func (x *UseCase) ArticleFeedURLForTest() string     { return x.articleFeedURL() }
