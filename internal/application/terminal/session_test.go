package terminal

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-weather/internal/application/screen"
	"go-weather/internal/domain/model/external"
)

type fakeScreen struct {
	mu        sync.Mutex
	state     screen.State
	listeners []screen.Listener
	calls     []string
	refreshOK bool
}

func (f *fakeScreen) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeScreen) Snapshot() screen.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeScreen) Subscribe(listener screen.Listener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, listener)
}

func (f *fakeScreen) ToggleSearch() {
	f.mu.Lock()
	f.state.ShowSearch = !f.state.ShowSearch
	f.mu.Unlock()
	f.record("toggle")
}

func (f *fakeScreen) ChangeText(text string) error {
	f.record("text:" + text)
	return nil
}

func (f *fakeScreen) Blur() {
	f.record("blur")
}

func (f *fakeScreen) SelectIndex(index int) error {
	f.record("select:" + strconv.Itoa(index))
	if index != 0 {
		return screen.ErrInvalidSelection
	}
	return nil
}

func (f *fakeScreen) Refresh() bool {
	f.record("refresh")
	return f.refreshOK
}

func (f *fakeScreen) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSession_DispatchesCommands(t *testing.T) {
	fake := &fakeScreen{}
	input := strings.Join([]string{"/search", "Lon", "/pick 1", "/pick 3", "/pick x", "/blur", "/refresh", "", "/quit", "/blur"}, "\n")
	out := &syncBuffer{}

	err := NewSession(fake, strings.NewReader(input), out).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"toggle", "text:Lon", "select:0", "select:2", "blur", "refresh"}, fake.recorded())
	assert.Contains(t, out.String(), "no search result 3")
	assert.Contains(t, out.String(), "usage: /pick N")
	assert.Contains(t, out.String(), "refresh already in progress")
}

func TestSession_TypingOpensSearch(t *testing.T) {
	fake := &fakeScreen{}

	err := NewSession(fake, strings.NewReader("Paris\n"), &syncBuffer{}).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"toggle", "text:Paris"}, fake.recorded())
}

func TestSession_RedrawsOnStateChange(t *testing.T) {
	fake := &fakeScreen{state: screen.State{Loading: true}}
	out := &syncBuffer{}
	reader, writer := io.Pipe()
	defer writer.Close()

	done := make(chan error, 1)
	go func() { done <- NewSession(fake, reader, out).Run(context.Background()) }()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "Loading weather...") }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		return len(fake.listeners) == 1
	}, time.Second, 5*time.Millisecond)

	fake.mu.Lock()
	listener := fake.listeners[0]
	fake.mu.Unlock()
	listener(screen.State{Weather: &external.WeatherForecastResponse{
		Location: &external.LocationDTO{Name: "Tokyo", Region: "Tokyo", Country: "Japan"},
		Current:  &external.CurrentDTO{TempC: 12, Condition: external.ConditionDTO{Text: "Clear"}},
	}})
	// identical states are drawn once
	listener(screen.State{Loading: true})
	listener(screen.State{Loading: true})

	assert.Contains(t, out.String(), "Tokyo")
	assert.Contains(t, out.String(), "[sun] 12 °C")
	assert.Equal(t, 2, strings.Count(out.String(), "Loading weather..."))

	_, _ = writer.Write([]byte("/quit\n"))
	require.NoError(t, <-done)
}

func TestSession_StopsOnContextCancel(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- NewSession(&fakeScreen{}, reader, &syncBuffer{}).Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("session did not stop")
	}
}
