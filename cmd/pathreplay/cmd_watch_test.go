package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the watch goroutines.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.b.String()
}

func triangleYAML(direct float64) []byte {
	return []byte(fmt.Sprintf(`
nodes:
  - {name: A, x: 0, y: 0}
  - {name: B, x: 100, y: 0}
  - {name: C, x: 50, y: 80}
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 2}
  - {from: A, to: C, weight: %g}
start: A
end: C
`, direct))
}

// chainYAML is A-B-C drawn with the B-C edge pointing back at B, so C is
// reachable from A only when the scene is undirected.
func chainYAML(header string) []byte {
	return []byte(header + `
nodes:
  - {name: A, x: 0, y: 0}
  - {name: B, x: 100, y: 0}
  - {name: C, x: 200, y: 0}
edges:
  - {from: A, to: B, weight: 1}
  - {from: C, to: B, weight: 2}
start: A
end: C
`)
}

// startWatch runs the watch command on file until the test ends.
func startWatch(t *testing.T, file string) (*syncBuffer, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	out := &syncBuffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--no-color", "watch", file, "--debounce", "20ms"})

	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	stop := func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watch did not stop after cancel")
		}
	}

	return out, stop
}

func TestWatch_DroppedDirectedKeyFallsBackToConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(file, chainYAML("directed: false"), 0o644))

	out, stop := startWatch(t, file)
	defer stop()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "A → B → C")
	}, 5*time.Second, 10*time.Millisecond)

	// Without the key the config default (directed) applies again.
	require.NoError(t, os.WriteFile(file, chainYAML(""), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "no path to C")
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatch_RerunsOnChange(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(file, triangleYAML(5), 0o644))

	out, stop := startWatch(t, file)
	defer stop()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "A → B → C")
	}, 5*time.Second, 10*time.Millisecond)

	// The direct edge now beats the detour.
	require.NoError(t, os.WriteFile(file, triangleYAML(2), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "A → C")
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatch_MissingScene(t *testing.T) {
	_, err := execute(t, "watch", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
