package main

import (
	"context"

	"github.com/fwojciec/enrzones"
	enrhttp "github.com/fwojciec/enrzones/http"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	airac, err := cycle(deps, c.AIRAC)
	if err != nil {
		return err
	}

	base := c.BaseURL
	if base == "" {
		base = enrhttp.BaseURL
	}
	pages := c.Pages
	if len(pages) == 0 {
		pages = []string{enrhttp.DefaultFile}
	}

	sources := make([]source, len(pages))
	for i, page := range pages {
		url := enrhttp.PageURL(base, airac, page)
		sources[i] = source{
			name: documentName(url),
			load: func(ctx context.Context) ([]byte, error) {
				return deps.Fetcher.Fetch(ctx, url)
			},
		}
	}
	deps.Logger.Info("fetching", "airac", airac.ID(), "effective", airac.String(), "pages", len(pages))
	return c.OutputFlags.run(deps, sources)
}

// cycle resolves --airac, defaulting to the cycle in effect now.
func cycle(deps *Dependencies, date string) (enrzones.AIRAC, error) {
	if date == "" {
		return enrzones.NewAIRAC(deps.Now()), nil
	}
	return enrzones.ParseAIRAC(date)
}
