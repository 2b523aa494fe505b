package render

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePDF(t *testing.T, data []byte) *ledongthuc.Reader {
	t.Helper()
	r, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return r
}

func plainText(t *testing.T, r *ledongthuc.Reader) string {
	t.Helper()
	plain, err := r.GetPlainText()
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = io.Copy(&buf, plain)
	require.NoError(t, err)
	return buf.String()
}

func TestRender_EmptyText(t *testing.T) {
	out, err := NewRenderer().Render("")

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, 1, parsePDF(t, out).NumPage())
}

func TestRender_Lines(t *testing.T) {
	out, err := NewRenderer().Render("Summary\n\nBuilt services")

	require.NoError(t, err)
	r := parsePDF(t, out)
	assert.Equal(t, 1, r.NumPage())

	text := plainText(t, r)
	assert.Contains(t, text, "Summary")
	assert.Contains(t, text, "Built services")
}

func TestRender_Paginates(t *testing.T) {
	lines := make([]string, 120)
	for i := range lines {
		lines[i] = "Line of generated content"
	}

	out, err := NewRenderer().Render(strings.Join(lines, "\n"))

	require.NoError(t, err)
	assert.Greater(t, parsePDF(t, out).NumPage(), 1)
}

func TestRender_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("wrapped words ", 200)

	out, err := NewRenderer().Render(long)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, parsePDF(t, out).NumPage(), 1)
}

func TestRender_NonLatin1Characters(t *testing.T) {
	out, err := NewRenderer().Render("Résumé → 日本語 ✓ emoji 🚀")

	require.NoError(t, err)
	assert.Equal(t, 1, parsePDF(t, out).NumPage())
}

func TestRender_NoTempFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)

	_, err := NewRenderer().Render("Summary\nBuilt services")
	require.NoError(t, err)

	_, err = (&Renderer{FontFamily: "NoSuchFont", FontSize: 11, LineHeight: 8, BlankLineHeight: 4}).Render("x")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRender_Failure(t *testing.T) {
	r := NewRenderer()
	r.FontFamily = "NoSuchFont"

	out, err := r.Render("Summary")

	assert.Nil(t, out)
	require.Error(t, err)

	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, KindPDFGeneration, rerr.Kind)
	assert.NotNil(t, rerr.Unwrap())
	assert.True(t, strings.HasPrefix(err.Error(), "Error generating PDF: "))
}

func TestToLatin1(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain ascii", want: "plain ascii"},
		{in: "café", want: "caf\xe9"},
		{in: "a→b", want: "a?b"},
		{in: "日本", want: "??"},
		{in: "🚀", want: "?"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToLatin1(tt.in))
		})
	}
}
