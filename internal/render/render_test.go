package render

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeView(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRenderSubstitutions(t *testing.T) {
	dir := t.TempDir()
	writeView(t, dir, "dashboard.html", "<p>{{.Message}}</p><p>{{.UserID}}:{{.Username}}</p>")

	rec := httptest.NewRecorder()
	err := New(dir).Render(rec, "dashboard.html", ViewData{
		Message:  "Welcome, Alice!",
		UserID:   "42",
		Username: "Alice",
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "Welcome, Alice!")
	assert.Contains(t, body, "42:Alice")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestRenderAbsentValuesEmpty(t *testing.T) {
	dir := t.TempDir()
	writeView(t, dir, "login.html", "msg=[{{.Message}}]")

	rec := httptest.NewRecorder()
	require.NoError(t, New(dir).Render(rec, "login.html", ViewData{}))
	assert.Equal(t, "msg=[]", rec.Body.String())
}

func TestRenderEscapesValues(t *testing.T) {
	dir := t.TempDir()
	writeView(t, dir, "login.html", "{{.Message}}")

	rec := httptest.NewRecorder()
	require.NoError(t, New(dir).Render(rec, "login.html", ViewData{Message: "<script>"}))
	assert.NotContains(t, rec.Body.String(), "<script>")
}

func TestRenderMissingView(t *testing.T) {
	rec := httptest.NewRecorder()
	err := New(t.TempDir()).Render(rec, "ghost.html", ViewData{})
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
