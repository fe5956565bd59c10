package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"borders.md":         {Data: []byte("# Borders\n\nSix edges.")},
		"sizes.txt":          {Data: []byte("auto, fixed and star")},
		"option-width.md":    {Data: []byte("# --width")},
		"nested/styles.md":   {Data: []byte("# Styles")},
		"config.toml":        {Data: []byte("ignored = true")},
		"nested/notes.draft": {Data: []byte("ignored")},
	}
}

func TestScanTopics(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"borders", "option-width", "sizes", "styles"}, tm.ListTopics())

	topic, ok := tm.GetTopic("borders")
	require.True(t, ok)
	assert.Equal(t, "# Borders\n\nSix edges.", topic.Content)
	assert.Equal(t, "borders.md", topic.FilePath)

	_, ok = tm.GetTopic("config")
	assert.False(t, ok)
}

func TestScanTopicsCustomExtensions(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{Extensions: []string{".toml"}})
	require.NoError(t, tm.scanTopics())
	assert.Equal(t, []string{"config"}, tm.ListTopics())
}

func TestScanTopicsNilFS(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"width", "--width", "-width", "option-width"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-width", topic.Name)
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return strings.ToUpper(content) + format
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "grid", Short: "test root"}
	root.AddCommand(&cobra.Command{Use: "render", Short: "render things", Run: func(*cobra.Command, []string) {}})
	return root
}

func run(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestHelpCommandShowsTopic(t *testing.T) {
	root := newRoot()
	_, err := InitializeWithOptions(root, testFS(), Options{Renderer: upperRenderer{}})
	require.NoError(t, err)

	assert.Equal(t, "# BORDERS\n\nSIX EDGES..md", run(t, root, "help", "borders"))
}

func TestHelpCommandListsTopics(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	out := run(t, root, "help", "topics")
	assert.Contains(t, out, "General topics:\n  borders\n  sizes\n  styles\n")
	assert.Contains(t, out, "Option topics:\n  --width\n")
	assert.Contains(t, out, "Use 'grid help <topic>'")
}

func TestHelpCommandNoTopics(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, fstest.MapFS{})
	require.NoError(t, err)

	assert.Contains(t, run(t, root, "help", "topics"), "No help topics available.")
}

func TestHelpCommandFallsBackToCommands(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	assert.Contains(t, run(t, root, "help", "render"), "render things")
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x", (&PlainRenderer{}).Render("# x", ".md"))
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer(40)
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererRendersMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Title\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}
