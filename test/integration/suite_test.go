//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/memory"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	harness      *harness
	client       *http.Client
	response     *http.Response
	responseBody []byte
}

func newTestContext() *testContext {
	return &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (tc *testContext) reset() {
	if tc.harness != nil {
		tc.harness.Close()
		tc.harness = nil
	}

	tc.response = nil
	tc.responseBody = nil
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := newTestContext()

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()

		h, err := newHarness(memory.NewTodoMirror())
		if err != nil {
			return ctx, err
		}

		tc.harness = h

		return ctx, nil
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		tc.reset()
		return ctx, err
	})

	ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
	ctx.Step(`^the todo API is (up|down)$`, tc.theTodoAPIIs)
	ctx.Step(`^the todo API has a todo "([^"]*)"$`, tc.theTodoAPIHasATodo)
	ctx.Step(`^the todo API should hold (\d+) todos?$`, tc.theTodoAPIShouldHold)
	ctx.Step(`^I send (GET|POST|PUT|PATCH|DELETE) "([^"]*)"$`, tc.iSend)
	ctx.Step(`^I send (POST|PUT|PATCH) "([^"]*)" with body:$`, tc.iSendWithBody)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, tc.theResponseHeaderShouldContain)
	ctx.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, tc.theJSONFieldShouldBe)
	ctx.Step(`^the JSON list "([^"]*)" should have (\d+) items?$`, tc.theJSONListShouldHave)
}

func (tc *testContext) theServiceIsRunning() error {
	if err := tc.iSend(http.MethodGet, "/-/live"); err != nil {
		return err
	}

	return tc.theResponseStatusShouldBe(http.StatusOK)
}

func (tc *testContext) theTodoAPIIs(state string) error {
	tc.harness.api.SetDown(state == "down")
	return nil
}

func (tc *testContext) theTodoAPIHasATodo(title string) error {
	tc.harness.api.Add(title)
	return nil
}

func (tc *testContext) theTodoAPIShouldHold(n int) error {
	if got := tc.harness.api.Titles(); len(got) != n {
		return fmt.Errorf("expected %d remote todos, got %d: %v", n, len(got), got)
	}

	return nil
}

func (tc *testContext) iSend(method, path string) error {
	return tc.do(method, path, nil)
}

func (tc *testContext) iSendWithBody(method, path string, body *godog.DocString) error {
	return tc.do(method, path, strings.NewReader(body.Content))
}

func (tc *testContext) do(method, path string, body io.Reader) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, tc.harness.URL()+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp

	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return errors.New("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

func (tc *testContext) theResponseShouldContain(text string) error {
	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theResponseHeaderShouldContain(name, text string) error {
	if tc.response == nil {
		return errors.New("no response received")
	}

	if got := tc.response.Header.Get(name); !strings.Contains(got, text) {
		return fmt.Errorf("header %s is %q, want it to contain %q", name, got, text)
	}

	return nil
}

func (tc *testContext) theJSONFieldShouldBe(path, want string) error {
	v, err := tc.lookup(path)
	if err != nil {
		return err
	}

	if got := fmt.Sprint(v); got != want {
		return fmt.Errorf("field %s is %q, want %q", path, got, want)
	}

	return nil
}

func (tc *testContext) theJSONListShouldHave(path string, n int) error {
	v, err := tc.lookup(path)
	if err != nil {
		return err
	}

	list, ok := v.([]any)
	if !ok {
		return fmt.Errorf("field %s is not a list", path)
	}

	if len(list) != n {
		return fmt.Errorf("field %s has %d items, want %d", path, len(list), n)
	}

	return nil
}

// lookup walks a dotted path through the response JSON. Numeric segments
// index into lists; "." is the document root.
func (tc *testContext) lookup(path string) (any, error) {
	var doc any
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	if path == "." {
		return doc, nil
	}

	cur := doc

	for seg := range strings.SplitSeq(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, fmt.Errorf("field %s not found at %q", path, seg)
			}

			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("field %s: bad index %q", path, seg)
			}

			cur = node[i]
		default:
			return nil, fmt.Errorf("field %s: cannot descend into %q", path, seg)
		}
	}

	return cur, nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
