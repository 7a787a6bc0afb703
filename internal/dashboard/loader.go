// internal/dashboard/loader.go
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mwiater/revlens/internal/analytics"
	"github.com/mwiater/revlens/internal/warehouse"
)

// Loader drives refreshes against a warehouse session.
type Loader struct {
	querier    warehouse.Querier
	authorizer warehouse.Authorizer
	scopes     []string
}

// NewLoader builds a loader over the given warehouse session and the read
// scopes it must hold.
func NewLoader(querier warehouse.Querier, authorizer warehouse.Authorizer, scopes []string) *Loader {
	return &Loader{querier: querier, authorizer: authorizer, scopes: scopes}
}

// Authorize requests the required read scopes. A denial is ErrScopesDenied;
// a failure to ask at all is an AuthError.
func (l *Loader) Authorize(ctx context.Context) error {
	grant, err := l.authorizer.RequestScopes(ctx, l.scopes)
	if err != nil {
		return &AuthError{Err: err}
	}
	if !grant.HasRequiredScopes {
		return ErrScopesDenied
	}
	return nil
}

// Load runs the revenue and mix-adjusted queries concurrently, validates
// both result shapes, and decodes them into a fresh snapshot. If either
// query fails the whole refresh fails and no partial snapshot is returned.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	var revenueRows, mixRows []warehouse.Row

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := l.run(gctx, "revenue", warehouse.RevenueQuery, warehouse.ValidateRevenueResults)
		revenueRows = rows
		return err
	})
	g.Go(func() error {
		rows, err := l.run(gctx, "mix-adjusted win rate", warehouse.MixAdjustedQuery, warehouse.ValidateMixAdjustedResults)
		mixRows = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		RevenueRows: analytics.DecodeRevenueRows(revenueRows),
		MixRows:     analytics.DecodeMixRows(mixRows),
	}
	snapshot.TeamFilter = analytics.NewFilter(analytics.Teams(snapshot.RevenueRows))
	return snapshot, nil
}

// LoadCohorts runs the hiring cohort query. It is separate from Load
// because the hiring tab fetches lazily on first visit.
func (l *Loader) LoadCohorts(ctx context.Context) (*CohortSnapshot, error) {
	rows, err := l.run(ctx, "hiring cohort", warehouse.HiringCohortQuery, warehouse.ValidateHiringCohortResults)
	if err != nil {
		return nil, err
	}

	snapshot := &CohortSnapshot{Rows: analytics.DecodeCohortRows(rows)}
	snapshot.RegionFilter = analytics.NewFilter(analytics.CohortRegions(snapshot.Rows))
	return snapshot, nil
}

func (l *Loader) run(ctx context.Context, label, sqlText string, validate func([]warehouse.Row) error) ([]warehouse.Row, error) {
	result, err := l.querier.Query(ctx, sqlText)
	if err != nil {
		return nil, &QueryError{Label: label, Err: err}
	}
	if err := validate(result.Results); err != nil {
		return nil, &QueryError{Label: label, Err: err}
	}
	return result.Results, nil
}
