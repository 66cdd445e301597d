package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sortscope"
	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/generator"
)

func newTestHandler(opts ...Option) http.Handler {
	return NewHandler(sortscope.New(sortscope.WithSeed(1)), opts...)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthAndInfo(t *testing.T) {
	h := newTestHandler(WithVersion("1.2.3\n"))

	w := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/info", "")
	assert.JSONEq(t, `{"app":"sortscope-http","version":"1.2.3","algorithms":20}`, w.Body.String())
}

func TestListAlgorithms(t *testing.T) {
	h := newTestHandler()

	w := do(t, h, http.MethodGet, "/algorithms", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []domain.Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 20)
	assert.Equal(t, domain.AlgorithmBubble, all[0].ID)

	w = do(t, h, http.MethodGet, "/algorithms?category=linear", "")
	var linear []domain.Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &linear))
	assert.Len(t, linear, 3)
	for _, d := range linear {
		assert.Equal(t, domain.CategoryLinear, d.Category)
	}
}

func TestGetAlgorithm(t *testing.T) {
	h := newTestHandler()

	w := do(t, h, http.MethodGet, "/algorithms/quick", "")
	require.Equal(t, http.StatusOK, w.Code)
	var d domain.Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, "Quick Sort", d.Name)

	w = do(t, h, http.MethodGet, "/algorithms/sleep", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSort(t *testing.T) {
	h := newTestHandler()

	w := do(t, h, http.MethodPost, "/sort", `{"algorithm":"bubble","values":[5,3,1]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SortResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.AlgorithmBubble, resp.Algorithm)
	assert.False(t, resp.Fallback)
	assert.Equal(t, []int{1, 3, 5}, domain.Values(resp.Final))
	assert.Equal(t, 3, resp.Stats.Comparisons)
	assert.Equal(t, 3, resp.Stats.Swaps)
	assert.Equal(t, 9, resp.StepCount)
	assert.Len(t, resp.Steps, 9)
	assert.Equal(t, []int{5, 3, 1}, domain.Values(resp.Input))
}

func TestSort_FallbackAndNoSteps(t *testing.T) {
	h := newTestHandler()

	w := do(t, h, http.MethodPost, "/sort?steps=false", `{"algorithm":"sleep","values":[2,1]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SortResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Fallback)
	assert.Equal(t, "sleep", resp.Requested)
	assert.Equal(t, domain.AlgorithmBubble, resp.Algorithm)
	assert.Nil(t, resp.Steps)
	assert.Positive(t, resp.StepCount)
}

func TestSort_GeneratedInput(t *testing.T) {
	h := newTestHandler()

	w := do(t, h, http.MethodPost, "/sort?steps=false", `{"algorithm":"heap","size":12,"seed":7}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SortResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Final, 12)
	for _, e := range resp.Input {
		assert.GreaterOrEqual(t, e.Value, generator.DefaultMinValue)
		assert.LessOrEqual(t, e.Value, generator.DefaultMaxValue)
	}

	again := do(t, h, http.MethodPost, "/sort?steps=false", `{"algorithm":"heap","size":12,"seed":7}`)
	var resp2 SortResponse
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &resp2))
	assert.Equal(t, resp.Input, resp2.Input, "same seed generates the same input")
}

func TestSort_Rejects(t *testing.T) {
	h := newTestHandler(WithLimits(generator.Limits{MaxElements: 3, MinValue: 0, MaxValue: 100}))

	tests := []struct {
		name string
		body string
	}{
		{"Malformed", `{"algorithm":`},
		{"Too Many", `{"values":[1,2,3,4]}`},
		{"Out Of Range", `{"values":[1,200]}`},
		{"Size Too Large", `{"size":4}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/sort", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSort_DefaultLimitsCapSize(t *testing.T) {
	h := newTestHandler()

	w := do(t, h, http.MethodPost, "/sort", `{"algorithm":"stooge","size":256}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too many elements")

	values := strings.TrimSuffix(strings.Repeat("1,", generator.MaxElements+1), ",")
	w = do(t, h, http.MethodPost, "/sort", `{"algorithm":"bubble","values":[`+values+`]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/sort/stream?algorithm=stooge&size=256", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/sort?steps=false", fmt.Sprintf(`{"algorithm":"bubble","size":%d}`, generator.MaxElements))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	w := do(t, newTestHandler(), http.MethodOptions, "/sort", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsMount(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("sortscope_runs_total 1\n"))
	})

	w := do(t, newTestHandler(WithMetricsHandler(metrics)), http.MethodGet, "/metrics", "")
	assert.Equal(t, "sortscope_runs_total 1\n", w.Body.String())

	w = do(t, newTestHandler(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamSort(t *testing.T) {
	h := newTestHandler()

	w := do(t, h, http.MethodGet, "/sort/stream?algorithm=bubble&values=5,3,1&interval=0", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	events := map[string]int{}
	var last string
	sc := bufio.NewScanner(bytes.NewReader(w.Body.Bytes()))
	for sc.Scan() {
		line := sc.Text()
		if name, ok := strings.CutPrefix(line, "event: "); ok {
			events[name]++
		}
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			last = data
		}
	}
	assert.Equal(t, 1, events["ping"])
	assert.Equal(t, 9, events["step"])
	assert.Equal(t, 1, events["done"])
	assert.Contains(t, last, `"completed":true`)
}

func TestStreamSort_Compact(t *testing.T) {
	w := do(t, newTestHandler(), http.MethodGet, "/sort/stream?algorithm=bubble&values=5,3,1&interval=0&compact=true", "")
	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, "event: step\n"))
	assert.Equal(t, 8, strings.Count(body, "event: diff\n"))
}

func TestStreamSort_BadParams(t *testing.T) {
	h := newTestHandler()
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/sort/stream?values=a,b", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/sort/stream?interval=5s", "").Code)
}

func TestParseInterval(t *testing.T) {
	d, err := parseInterval("")
	require.NoError(t, err)
	assert.Equal(t, "100ms", d.String())

	d, err = parseInterval("25")
	require.NoError(t, err)
	assert.Equal(t, "25ms", d.String())

	d, err = parseInterval("0.2s")
	require.NoError(t, err)
	assert.Equal(t, "200ms", d.String())

	_, err = parseInterval("soon")
	assert.Error(t, err)
}
