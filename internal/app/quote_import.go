package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/platform/logging"
)

// importPlan is the outcome of checking an import payload against the store.
type importPlan struct {
	add    []domain.Quote
	result domain.ImportResult
}

// skip reports whether q collides with any quote in existing or already
// planned, by id or by text and author.
func (p *importPlan) skip(q domain.Quote, existing []domain.Quote) bool {
	for _, lists := range [][]domain.Quote{existing, p.add} {
		for _, e := range lists {
			if e.ID == q.ID || e.SameText(q) {
				return true
			}
		}
	}

	return false
}

// Import merges a JSON array of quotes into the gallery. Elements that fail
// validation are counted as invalid; elements whose id or text and author
// already exist, in the store or earlier in the payload, are skipped.
// A payload that is not a JSON array is rejected and nothing is written.
func (s *QuoteService) Import(ctx context.Context, payload []byte) (domain.ImportResult, error) {
	op := Operation[[]byte, []json.RawMessage, *importPlan, domain.ImportResult]{
		Name: "quote.import",
		Validate: func(_ context.Context, payload []byte) error {
			if trimmed := bytes.TrimSpace(payload); len(trimmed) == 0 || trimmed[0] != '[' {
				return domain.NewValidationError("file", "import payload must be a JSON array")
			}

			return nil
		},
		Perform: func(_ context.Context, payload []byte) ([]json.RawMessage, error) {
			var elems []json.RawMessage
			if err := json.Unmarshal(payload, &elems); err != nil {
				return nil, domain.NewValidationError("file", "import payload must be a JSON array")
			}

			return elems, nil
		},
		Verify: func(ctx context.Context, _ []byte, elems []json.RawMessage) (*importPlan, error) {
			existing, err := s.store.List(ctx)
			if err != nil {
				return nil, err
			}

			plan := &importPlan{}

			for _, raw := range elems {
				var q domain.Quote
				if err := json.Unmarshal(raw, &q); err != nil {
					plan.result.Invalid++
					continue
				}

				q = q.Normalize()
				if err := q.Validate(); err != nil {
					plan.result.Invalid++
					continue
				}

				if q.ID == "" {
					q.ID = domain.NewQuoteID(s.now())
				}

				if plan.skip(q, existing) {
					plan.result.Skipped++
					continue
				}

				plan.add = append(plan.add, q)
			}

			return plan, nil
		},
		Archive: func(ctx context.Context, _ []byte, plan *importPlan) error {
			for _, q := range plan.add {
				err := s.store.Append(ctx, q)

				switch {
				case err == nil:
					plan.result.Added++
				case errors.Is(err, domain.ErrConflict):
					// Another writer took the id between Verify and Archive.
					plan.result.Skipped++
				default:
					return err
				}
			}

			return nil
		},
		Respond: func(_ context.Context, _ []byte, plan *importPlan) (domain.ImportResult, error) {
			return plan.result, nil
		},
	}

	result, err := Execute(ctx, s.exec, op, payload)
	if err != nil {
		return domain.ImportResult{}, err
	}

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "quotes imported",
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
		slog.Int("invalid", result.Invalid),
	)

	if result.Added > 0 {
		publish(ctx, s.events, s.logger, domain.NewChange(domain.EntityQuote, domain.ActionImported, ""))
	}

	return result, nil
}
