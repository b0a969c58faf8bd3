package sentryreport

import (
	"errors"
	"sync"
	"testing"

	"github.com/Station-Manager/logfacade"
	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (c *capture) beforeSend(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return event
}

func newHub(t *testing.T, c *capture) *sentry.Hub {
	t.Helper()
	client, err := sentry.NewClient(sentry.ClientOptions{
		SampleRate: 1.0,
		BeforeSend: c.beforeSend,
	})
	require.NoError(t, err)
	return sentry.NewHub(client, sentry.NewScope())
}

func TestCaptureException_SetsScope(t *testing.T) {
	c := &capture{}
	r := New(newHub(t, c))

	var gotID string
	calls := 0
	err := r.CaptureException(errors.New("boom"), logfacade.CaptureOptions{
		Level: "fatal",
		Extra: map[string]any{"trace": "stack here"},
		Tags:  map[string]string{"namespace": "App:feature/ui"},
	}, func(id string) {
		calls++
		gotID = id
	})
	require.NoError(t, err)

	require.Len(t, c.events, 1)
	ev := c.events[0]
	assert.Equal(t, sentry.LevelFatal, ev.Level)
	assert.Equal(t, "App:feature/ui", ev.Tags["namespace"])
	assert.Equal(t, "stack here", ev.Extra["trace"])
	require.NotEmpty(t, ev.Exception)
	assert.Equal(t, "boom", ev.Exception[len(ev.Exception)-1].Value)

	assert.Equal(t, 1, calls)
	assert.Equal(t, string(ev.EventID), gotID)
}

func TestCaptureException_ScopeDoesNotLeak(t *testing.T) {
	c := &capture{}
	r := New(newHub(t, c))

	require.NoError(t, r.CaptureException(errors.New("first"), logfacade.CaptureOptions{
		Tags: map[string]string{"namespace": "App:a"},
	}, nil))
	require.NoError(t, r.CaptureException(errors.New("second"), logfacade.CaptureOptions{}, nil))

	require.Len(t, c.events, 2)
	_, leaked := c.events[1].Tags["namespace"]
	assert.False(t, leaked)
}

func TestCaptureException_NilHub(t *testing.T) {
	r := New(nil)
	called := false
	err := r.CaptureException(errors.New("boom"), logfacade.CaptureOptions{}, func(string) { called = true })
	assert.NoError(t, err)
	assert.False(t, called)
}
