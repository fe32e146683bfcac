package tracelog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLevels = []Level{LevelAll, LevelFinest, LevelFiner, LevelFine, LevelInfo, LevelOutput, LevelError}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(WithLevel(level), WithConsole(&buf)), &buf
}

func TestLogger_GateIsInclusive(t *testing.T) {
	for _, threshold := range allLevels {
		for _, msgLevel := range allLevels {
			l, buf := newTestLogger(threshold)
			require.NoError(t, l.LogAt("m", msgLevel))

			if msgLevel >= threshold {
				assert.Equal(t, "m\n", buf.String(), "level %d at threshold %d should be written", msgLevel, threshold)
			} else {
				assert.Empty(t, buf.String(), "level %d at threshold %d should be suppressed", msgLevel, threshold)
			}
		}
	}
}

func TestLogger_ThresholdFine(t *testing.T) {
	l, buf := newTestLogger(LevelFine)

	require.NoError(t, l.LogAt("x", LevelFinest))
	assert.Empty(t, buf.String())

	require.NoError(t, l.LogAt("x", LevelOutput))
	assert.Equal(t, "x\n", buf.String())
}

func TestLogger_LogDefaultLevel(t *testing.T) {
	l, buf := newTestLogger(LevelFine)
	require.NoError(t, l.Log("shown"))

	l.SetLevel(LevelOutput)
	require.NoError(t, l.Log("hidden"))

	assert.Equal(t, "shown\n", buf.String())
}

func TestLogger_Blank(t *testing.T) {
	l, buf := newTestLogger(LevelFine)
	require.NoError(t, l.SetIndent(1))
	require.NoError(t, l.Blank())
	assert.Equal(t, "   \n", buf.String())
}

func TestLogger_CurrentIndent(t *testing.T) {
	l, buf := newTestLogger(LevelFine)
	require.NoError(t, l.SetIndent(2))
	require.NoError(t, l.Log("nested"))
	assert.Equal(t, "      nested\n", buf.String())
}

func TestLogger_LogIndentDoesNotChangeState(t *testing.T) {
	l, buf := newTestLogger(LevelFine)
	require.NoError(t, l.SetIndent(1))

	require.NoError(t, l.LogIndent("deep", LevelFine, 3))
	assert.Equal(t, 1, l.Indent())

	require.NoError(t, l.LogIndentDefault("zero", 0))
	assert.Equal(t, "         deep\nzero\n", buf.String())
}

func TestLogger_LogIndentRejectsNegative(t *testing.T) {
	l, buf := newTestLogger(LevelFine)
	err := l.LogIndent("x", LevelOutput, -1)
	require.ErrorIs(t, err, ErrInvalidIndent)
	assert.Empty(t, buf.String())
}

func TestLogger_HugeIndentIsRejected(t *testing.T) {
	l, buf := newTestLogger(LevelAll)

	for _, indent := range []int{MaxIndent + 1, math.MaxInt / 2, math.MaxInt} {
		require.NotPanics(t, func() {
			err := l.LogIndent("x", LevelOutput, indent)
			require.ErrorIs(t, err, ErrInvalidIndent)
		}, "indent %d", indent)
	}
	assert.Empty(t, buf.String())

	require.NoError(t, l.LogIndent("x", LevelOutput, MaxIndent))
	assert.Equal(t, strings.Repeat(DefaultIndentUnit, MaxIndent)+"x\n", buf.String())
}

func TestLogger_LogKindIndent(t *testing.T) {
	l, buf := newTestLogger(LevelFiner)
	require.NoError(t, l.SetIndent(1))

	require.NoError(t, l.LogKindIndent("setData(int)", KindMethod, 2))
	require.NoError(t, l.LogKindIndent("t = 5", KindDebug, 0))
	require.NoError(t, l.LogKindIndent("A::A()", KindConstructor, 2))
	assert.Equal(t, "      Called setData(int)\nt = 5\n", buf.String())
	assert.Equal(t, 1, l.Indent(), "explicit indent must not change state")

	require.ErrorIs(t, l.LogKindIndent("x", KindMethod, -1), ErrInvalidIndent)
}

func TestLogger_LogKind(t *testing.T) {
	tests := []struct {
		name      string
		threshold Level
		kind      Kind
		msg       string
		want      string
	}{
		{"method at finer", LevelFiner, KindMethod, "setData(int)", "Called setData(int)\n"},
		{"method above finer", LevelFine, KindMethod, "setData(int)", ""},
		{"constructor at finest", LevelFinest, KindConstructor, "A::A()", "Called A::A()\n"},
		{"constructor at finer", LevelFiner, KindConstructor, "A::A()", ""},
		{"operator at all", LevelAll, KindOperator, "A::operator=()", "Called A::operator=()\n"},
		{"debug is unprefixed", LevelFiner, KindDebug, "t = 5", "t = 5\n"},
		{"unknown kind uses default", LevelFine, Kind(42), "plain", "plain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestLogger(tt.threshold)
			require.NoError(t, l.LogKind(tt.msg, tt.kind))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Logf(t *testing.T) {
	l, buf := newTestLogger(LevelFiner)

	require.NoError(t, l.Finest("hidden %d", 1))
	require.NoError(t, l.Finer("count: %d", 42))
	require.NoError(t, l.Fine("name: %s", "test"))
	require.NoError(t, l.Info("info"))
	require.NoError(t, l.Output("out"))
	require.NoError(t, l.Error("err %v", errors.New("boom")))

	assert.Equal(t, "count: 42\nname: test\ninfo\nout\nerr boom\n", buf.String())
}

func TestLogger_FileSinkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.log")
	l := New()
	require.NoError(t, l.AddSink(path))
	require.NoError(t, l.SetIndent(2))

	require.NoError(t, l.Log("first"))
	require.NoError(t, l.Log("second"))
	require.NoError(t, l.RemoveSink(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "      first\n      second\n", string(content))
}

func TestLogger_ConsoleFallback(t *testing.T) {
	l, console := newTestLogger(LevelFine)
	path := filepath.Join(t.TempDir(), "f.log")

	require.NoError(t, l.Log("to console"))
	assert.Equal(t, "to console\n", console.String())

	require.NoError(t, l.AddSink(path))
	require.NoError(t, l.Log("to file"))
	assert.Equal(t, "to console\n", console.String(), "console must be silent while a sink is registered")

	require.NoError(t, l.RemoveSink(path))
	require.NoError(t, l.Log("back to console"))
	assert.Equal(t, "to console\nback to console\n", console.String())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "to file\n", string(content))
}

func TestLogger_SinkWriteFailureContinuesFanOut(t *testing.T) {
	var a, c bytes.Buffer
	l := New()
	require.NoError(t, l.AddWriter("a", &a))
	require.NoError(t, l.AddWriter("b", failWriter{}))
	require.NoError(t, l.AddWriter("c", &c))

	err := l.Log("line")
	require.Error(t, err)

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	require.Len(t, werr.Failures, 1)
	assert.Equal(t, "b", werr.Failures[0].Sink)
	assert.Contains(t, err.Error(), "disk full")

	assert.Equal(t, "line\n", a.String())
	assert.Equal(t, "line\n", c.String())
}

func TestLogger_ConsoleWriteFailure(t *testing.T) {
	l := New(WithConsole(failWriter{}))

	err := l.Log("line")
	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, ConsoleName, werr.Failures[0].Sink)
}

func TestLogger_SuppressedIsNotFailure(t *testing.T) {
	l := New(WithLevel(LevelOutput), WithConsole(failWriter{}))

	assert.False(t, l.Enabled(LevelFine))
	assert.NoError(t, l.Log("suppressed"), "suppressed message must not touch the console")
	assert.Error(t, l.LogAt("written", LevelOutput))
}

func TestLogger_ClosedSinkInSnapshotIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	require.NoError(t, l.AddWriter("a", &buf))

	sinks := l.snapshot()
	require.NoError(t, l.RemoveSink("a"))

	assert.ErrorIs(t, sinks[0].WriteLine("late\n"), ErrSinkClosed)
	assert.Empty(t, buf.String())
}

func TestLogger_ConcurrentWritesAcrossSinks(t *testing.T) {
	const (
		goroutines = 8
		perG       = 250
		sinkCount  = 3
	)

	dir := t.TempDir()
	l := New()
	paths := make([]string, sinkCount)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("sink-%d.log", i))
		require.NoError(t, l.AddSink(paths[i]))
	}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				if err := l.LogAt(fmt.Sprintf("g%d-%d", g, i), LevelOutput); err != nil {
					t.Errorf("LogAt: %v", err)
				}
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, l.Close())

	for _, path := range paths {
		lines := readLines(t, path)
		assert.Len(t, lines, goroutines*perG, path)

		seen := make(map[string]bool, len(lines))
		for _, line := range lines {
			assert.True(t, strings.HasPrefix(line, "g"), "corrupt line %q", line)
			assert.False(t, seen[line], "duplicate line %q", line)
			seen[line] = true
		}
	}
}

func TestLogger_ConcurrentConfiguration(t *testing.T) {
	var console bytes.Buffer
	l := New(WithConsole(&console))
	dir := t.TempDir()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if err := l.Log("msg"); err != nil {
					t.Errorf("Log: %v", err)
					return
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.log", i%5))
		_ = l.AddSink(path)
		l.SetLevel(allLevels[i%len(allLevels)])
		_ = l.SetIndent(i % 4)
		_ = l.RemoveSink(path)
	}
	close(stop)
	wg.Wait()

	require.NoError(t, l.Close())
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return lines
}
