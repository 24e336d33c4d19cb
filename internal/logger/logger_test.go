package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ErrorsAreCopied(t *testing.T) {
	var out, errOut bytes.Buffer
	log := New(EnvLocal, &out, &errOut)

	log.Info("page rendered", slog.String("path", "/crm"))
	log.Error("export failed", slog.String("op", "test"))

	assert.Contains(t, out.String(), "page rendered")
	assert.Contains(t, out.String(), "export failed")
	assert.NotContains(t, errOut.String(), "page rendered")
	assert.Contains(t, errOut.String(), "export failed")
}

func TestNew_WithAttrsReachesBothHandlers(t *testing.T) {
	var out, errOut bytes.Buffer
	log := New(EnvLocal, &out, &errOut).With(slog.String("op", "handler.page"))

	log.Error("boom")

	assert.Contains(t, out.String(), "op=handler.page")
	assert.Contains(t, errOut.String(), "op=handler.page")
}

func TestNew_DevIsJSON(t *testing.T) {
	var out bytes.Buffer
	New(EnvDev, &out, nil).Debug("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &rec))
	assert.Equal(t, "hello", rec["msg"])
}

func TestNew_ProdSkipsDebug(t *testing.T) {
	var out bytes.Buffer
	New(EnvProd, &out, nil).Debug("hidden")
	assert.Empty(t, out.String())
}

func TestSetup_WritesErrorFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")

	Setup(EnvProd, path).Error("disk full")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "disk full"))
}
