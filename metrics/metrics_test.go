package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satindergrewal/watchface"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.Rendered(watchface.TimeSample{Hour: 1, Minute: 2, Second: 3})
	r.Rendered(watchface.TimeSample{Hour: 1, Minute: 2, Second: 4})
	r.Toggled(watchface.Hidden)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.FramesRendered))
	assert.Equal(t, 3724.0, testutil.ToFloat64(r.LastRender))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Gestures.WithLabelValues("hidden")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.DateVisible))

	r.Toggled(watchface.Shown)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.DateVisible))
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)
	r.Rendered(watchface.TimeSample{})

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "watchface_frames_rendered_total 1"))
}
