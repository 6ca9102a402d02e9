package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/gatelog/internal/json"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newCommand(&out, &errOut)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommand_PrintsToTerminal(t *testing.T) {
	out, _, err := run(t, "--level=info", "info", "hello", `{"a":1}`, "plain")
	require.NoError(t, err)

	assert.Contains(t, out, "[INFO] hello")
	assert.Contains(t, out, "\"a\": 1")
	assert.Contains(t, out, "plain")
}

func TestCommand_BelowThresholdIsSilent(t *testing.T) {
	out, errOut, err := run(t, "--level=error", "warn", "quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestCommand_WarnGoesToErrOut(t *testing.T) {
	_, errOut, err := run(t, "--level=trace", "warn", "careful")
	require.NoError(t, err)
	assert.Contains(t, errOut, "[WARN] careful")
}

func TestCommand_EnvLevel(t *testing.T) {
	t.Setenv("GATELOG_LEVEL", "debug")
	out, _, err := run(t, "debug", "from env")
	require.NoError(t, err)
	assert.Contains(t, out, "[DEBUG] from env")
}

func TestCommand_FlagBeatsEnv(t *testing.T) {
	t.Setenv("GATELOG_LEVEL", "trace")
	out, _, err := run(t, "--level=error", "debug", "hidden")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCommand_SendsToServer(t *testing.T) {
	var (
		mu   sync.Mutex
		body map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		_ = json.Unmarshal(b, &body)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, _, err := run(t, "--server-level=warn", "--server-url="+srv.URL, "error", "boom", "ctx")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, body)
	assert.Equal(t, "ERROR", body["level"])
	assert.Equal(t, `"boom"`, body["message"])
	assert.Equal(t, []any{"ctx"}, body["extras"])
}

func TestCommand_ServerFromEnvOnly(t *testing.T) {
	hits := make(chan map[string]any, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(b, &body)
		hits <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	t.Setenv("GATELOG_SERVER_LEVEL", "trace")
	t.Setenv("GATELOG_SERVER_URL", srv.URL)

	_, _, err := run(t, "error", "boom")
	require.NoError(t, err)

	require.Len(t, hits, 1)
	body := <-hits
	assert.Equal(t, "ERROR", body["level"])
	assert.Equal(t, `"boom"`, body["message"])
}

func TestCommand_EnvAndFlagsCombine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	t.Setenv("GATELOG_LEVEL", "trace")
	out, _, err := run(t, "--server-url="+srv.URL, "debug", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "[DEBUG] x")
}

func TestCommand_Consoles(t *testing.T) {
	for _, name := range consoles {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, "--console="+name, "--level=info", "info", "via "+name)
			require.NoError(t, err)
			assert.Contains(t, out, "via "+name)
		})
	}
}

func TestCommand_Errors(t *testing.T) {
	_, _, err := run(t, "--console=nope", "info", "x")
	assert.ErrorContains(t, err, "unknown console")

	_, _, err = run(t, "--level=loud", "info", "x")
	assert.Error(t, err)

	_, _, err = run(t, "shout", "x")
	assert.Error(t, err)

	_, _, err = run(t, "info")
	assert.Error(t, err)
}

func TestDecodeExtras(t *testing.T) {
	got := decodeExtras([]string{`{"k":"v"}`, "[1,2]", "{not json", "42"})
	assert.Equal(t, map[string]any{"k": "v"}, got[0])
	assert.Equal(t, []any{float64(1), float64(2)}, got[1])
	assert.Equal(t, "{not json", got[2])
	assert.Equal(t, "42", got[3])
}
