package cli

import (
	"context"

	"github.com/asaleem9/folio/pkg/cli/config"
	"github.com/asaleem9/folio/pkg/infra"
	"github.com/asaleem9/folio/pkg/usecase"
)

// feedConfig gathers the flag groups needed to pull the repository and
// article feeds.
type feedConfig struct {
	github config.GitHub
	medium config.Medium
	cache  config.Cache
}

// newUseCase wires the configured clients into a use case. The returned
// function releases resources held by the clients.
func (x *feedConfig) newUseCase(ctx context.Context, infraOptions ...infra.Option) (*usecase.UseCase, func(), error) {
	ghClient, err := x.github.New()
	if err != nil {
		return nil, nil, err
	}

	cache, closeCache, err := x.cache.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	infraOptions = append([]infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithFeedSource(x.medium.New()),
		infra.WithCache(cache),
	}, infraOptions...)

	var ucOptions []usecase.Option
	ucOptions = append(ucOptions, x.github.UseCaseOptions()...)
	ucOptions = append(ucOptions, x.medium.UseCaseOptions()...)
	ucOptions = append(ucOptions, x.cache.UseCaseOptions()...)

	return usecase.New(infra.New(infraOptions...), ucOptions...), closeCache, nil
}
