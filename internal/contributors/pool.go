package contributors

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/temirov/pluginwho/internal/repos/shared"
)

type repositoryTask[Result any] func(executionContext context.Context, repository shared.Repository) (Result, error)

// runOrdered applies task to every repository with at most workers in flight.
// Results are indexed by scan position. The first error cancels the remaining tasks.
func runOrdered[Result any](executionContext context.Context, workers int, repositories []shared.Repository, task repositoryTask[Result]) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(repositories))
	group, groupContext := errgroup.WithContext(executionContext)
	group.SetLimit(workers)

	for repositoryIndex, repository := range repositories {
		group.Go(func() error {
			if contextError := groupContext.Err(); contextError != nil {
				return contextError
			}
			result, taskError := task(groupContext, repository)
			if taskError != nil {
				return taskError
			}
			results[repositoryIndex] = result
			return nil
		})
	}

	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	return results, nil
}
