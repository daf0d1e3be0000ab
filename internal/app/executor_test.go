package app

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingOp(calls *[]ExecutionStep) Operation[string, int, int, string] {
	return Operation[string, int, int, string]{
		Name: "count",
		Validate: func(_ context.Context, in string) error {
			*calls = append(*calls, StepValidate)
			if in == "" {
				return errors.New("empty")
			}

			return nil
		},
		Perform: func(_ context.Context, in string) (int, error) {
			*calls = append(*calls, StepPerform)
			return len(in), nil
		},
		Verify: func(_ context.Context, _ string, n int) (int, error) {
			*calls = append(*calls, StepVerify)
			if n > 5 {
				return 0, errors.New("too long")
			}

			return n * 2, nil
		},
		Archive: func(context.Context, string, int) error {
			*calls = append(*calls, StepArchive)
			return nil
		},
		Respond: func(_ context.Context, in string, v int) (string, error) {
			*calls = append(*calls, StepRespond)
			return strings.Repeat(in, v), nil
		},
	}
}

func TestExecute_RunsEveryStep(t *testing.T) {
	var calls []ExecutionStep

	got, err := Execute(context.Background(), NewExecutor(discardLogger()), countingOp(&calls), "ab")
	require.NoError(t, err)

	assert.Equal(t, "abababab", got)
	assert.Equal(t, []ExecutionStep{StepValidate, StepPerform, StepVerify, StepArchive, StepRespond}, calls)
}

func TestExecute_StopsAtFailingStep(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantStep ExecutionStep
		ran      []ExecutionStep
	}{
		{"validate", "", StepValidate, []ExecutionStep{StepValidate}},
		{"verify", "abcdefg", StepVerify, []ExecutionStep{StepValidate, StepPerform, StepVerify}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []ExecutionStep

			_, err := Execute(context.Background(), NewExecutor(nil), countingOp(&calls), tt.input)
			require.Error(t, err)
			assert.True(t, IsExecutionError(err))

			step, ok := GetExecutionStep(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantStep, step)
			assert.Equal(t, tt.ran, calls)
		})
	}
}

func TestExecute_NilStepsAreSkipped(t *testing.T) {
	op := Operation[int, int, int, int]{Name: "noop"}

	got, err := Execute(context.Background(), NewExecutor(nil), op, 7)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestExecutionError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewArchiveError("write failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "archive failed: write failed: disk full", err.Error())

	_, ok := GetExecutionStep(cause)
	assert.False(t, ok)
}

func TestParallelPartialLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	fn := func(fail bool) func(context.Context) (int, error) {
		return func(context.Context) (int, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)

			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			time.Sleep(5 * time.Millisecond)

			if fail {
				return 0, errors.New("boom")
			}

			return 1, nil
		}
	}

	results := ParallelPartialLimit(context.Background(), 2, fn(false), fn(true), fn(false), fn(false), fn(true))
	require.Len(t, results, 5)

	for i, r := range results {
		if i == 1 || i == 4 {
			assert.Error(t, r.Err)
			continue
		}

		assert.NoError(t, r.Err)
		assert.Equal(t, 1, r.Value)
	}

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestParallelPartialLimit_NoFunctions(t *testing.T) {
	assert.Empty(t, ParallelPartialLimit[int](context.Background(), 4))
}
