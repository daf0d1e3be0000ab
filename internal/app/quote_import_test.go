package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/platform/logging"
)

func TestQuoteService_Import(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    domain.ImportResult
		wantLen int
	}{
		{
			name:    "new quotes with and without ids",
			payload: `[{"id":"x1","quote":"为学日益","author":"老子"},{"quote":"知止而后有定","author":"曾子","category":"儒家"}]`,
			want:    domain.ImportResult{Added: 2},
			wantLen: 14,
		},
		{
			name:    "existing id is skipped",
			payload: `[{"id":"ym1","quote":"different text","author":"someone"}]`,
			want:    domain.ImportResult{Skipped: 1},
			wantLen: 12,
		},
		{
			name:    "existing text and author is skipped",
			payload: `[{"id":"other","quote":"知人者智，自知者明。","author":"老子"}]`,
			want:    domain.ImportResult{Skipped: 1},
			wantLen: 12,
		},
		{
			name:    "duplicates within the batch",
			payload: `[{"quote":"q","author":"a"},{"quote":" q ","author":"a"},{"id":"d","quote":"r","author":"b"},{"id":"d","quote":"s","author":"c"}]`,
			want:    domain.ImportResult{Added: 2, Skipped: 2},
			wantLen: 14,
		},
		{
			name:    "invalid elements are counted",
			payload: `[{"quote":"","author":"a"},{"quote":"q"},42,"text",{"quote":"ok","author":"b"}]`,
			want:    domain.ImportResult{Added: 1, Invalid: 4},
			wantLen: 13,
		},
		{
			name:    "empty array",
			payload: ` [] `,
			want:    domain.ImportResult{},
			wantLen: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, store := newQuoteService(t, domain.SeedQuotes())

			got, err := svc.Import(ctx, []byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			n, _ := store.Len(ctx)
			assert.Equal(t, tt.wantLen, n)
		})
	}
}

func TestQuoteService_ImportRejectsNonArray(t *testing.T) {
	for _, payload := range []string{`{"quote":"q","author":"a"}`, `not json`, ``, `[{"quote":`} {
		t.Run(payload, func(t *testing.T) {
			ctx := context.Background()
			svc, store := newQuoteService(t, domain.SeedQuotes())
			before, _ := store.List(ctx)

			_, err := svc.Import(ctx, []byte(payload))
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "import payload must be a JSON array", verr.Message)

			after, _ := store.List(ctx)
			assert.Equal(t, before, after)
		})
	}
}

func TestQuoteService_ImportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newQuoteService(t, nil)
	payload := []byte(`[{"quote":"q1","author":"a"},{"quote":"q2","author":"b"}]`)

	first, err := svc.Import(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Added)

	second, err := svc.Import(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportResult{Skipped: 2}, second)
}

func TestQuoteService_ImportLogsWithRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	ctx := logging.WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = logging.WithRequestID(ctx, "req-import-1")

	svc, _ := newQuoteService(t, nil)

	_, err := svc.Import(ctx, []byte(`[{"quote":"q1","author":"a"}]`))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"quotes imported"`)
	assert.Contains(t, buf.String(), `"request_id":"req-import-1"`)
}
