package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_RegistersMetrics(t *testing.T) {
	p := NewProvider()

	p.RecordClassification("recipe", 5*time.Millisecond)
	p.RecordClassification("none", time.Millisecond)
	p.RecordEvaluation(10, 1, 2, 50*time.Millisecond)

	w := httptest.NewRecorder()
	p.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "screensift_predictions_total")
	assert.Contains(t, body, `label="recipe"`)
	assert.Contains(t, body, "screensift_samples_evaluated_total")
	assert.Contains(t, body, `outcome="unclassifiable"`)
	assert.Contains(t, body, "screensift_evaluation_duration_seconds")
}

func TestNilProviderIsSafe(t *testing.T) {
	var p *Provider

	p.RecordClassification("recipe", time.Millisecond)
	p.RecordEvaluation(1, 0, 0, time.Millisecond)

	ctx, span := p.StartSpan(context.Background(), "evaluate")
	assert.NotNil(t, ctx)
	span.End()
}
