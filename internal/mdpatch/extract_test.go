package mdpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWrite(t *testing.T) {
	doc := "# Example\n\n```python file=app.py\nprint(\"hi\")\n```\n"

	plan, err := Extract([]byte(doc), "README.md")
	require.NoError(t, err)
	require.Len(t, plan, 1)

	inst := plan[0]
	assert.Equal(t, KindWrite, inst.Kind)
	assert.Equal(t, "app.py", inst.Target)
	assert.Equal(t, "README.md", inst.Doc)
	assert.Equal(t, "print(\"hi\")", inst.Content)
}

func TestExtractWriteMultiline(t *testing.T) {
	doc := "```go file=main.go\npackage main\n\nfunc main() {}\n```\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "package main\n\nfunc main() {}", plan[0].Content)
}

func TestExtractTildeFence(t *testing.T) {
	doc := "~~~text file=note.txt\nhello\n~~~\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "hello", plan[0].Content)
}

func TestExtractLongFence(t *testing.T) {
	doc := "`````md file=inner.md\n```\nnested\n```\n`````\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "```\nnested\n```", plan[0].Content)
}

func TestExtractCRLFDocument(t *testing.T) {
	doc := "```python file=app.py\r\nprint(\"hi\")\r\n```\r\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "print(\"hi\")", plan[0].Content)
}

func TestExtractNoTrailingNewline(t *testing.T) {
	doc := "```file=a.txt\nhi\n```"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "hi", plan[0].Content)
}

func TestExtractDropsBlocksWithoutFile(t *testing.T) {
	doc := "```python\nprint(\"just an example\")\n```\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestExtractReplacePair(t *testing.T) {
	for name, doc := range map[string]string{
		"from first": "``` from file=app.py\nold\n```\n\n``` to file=app.py\nnew\n```\n",
		"to first":   "``` to file=app.py\nnew\n```\n\n``` from file=app.py\nold\n```\n",
	} {
		t.Run(name, func(t *testing.T) {
			plan, err := Extract([]byte(doc), "doc")
			require.NoError(t, err)
			require.Len(t, plan, 1)

			inst := plan[0]
			assert.Equal(t, KindReplace, inst.Kind)
			assert.Equal(t, "app.py", inst.Target)
			assert.Equal(t, "old", inst.From)
			assert.Equal(t, "new", inst.To)
		})
	}
}

func TestExtractModeCaseInsensitive(t *testing.T) {
	doc := "``` FROM file=a\nx\n```\n``` To file=a\ny\n```\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, KindReplace, plan[0].Kind)
}

func TestExtractUnpairedHalvesDropped(t *testing.T) {
	doc := "``` from file=a.py\nx\n```\n\n``` to file=b.py\ny\n```\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestExtractLaterHalfOverwrites(t *testing.T) {
	doc := "``` from file=a\nfirst\n```\n" +
		"``` from file=a\nsecond\n```\n" +
		"``` to file=a\nnew\n```\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "second", plan[0].From)
}

func TestExtractWritesPrecedeReplaces(t *testing.T) {
	doc := "``` from file=a\nx\n```\n" +
		"``` to file=a\ny\n```\n" +
		"```python file=b.py\nbody\n```\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, KindWrite, plan[0].Kind)
	assert.Equal(t, "b.py", plan[0].Target)
	assert.Equal(t, KindReplace, plan[1].Kind)
	assert.Equal(t, "a", plan[1].Target)
}

func TestExtractReplaceCompletionOrder(t *testing.T) {
	// Pair "b" completes before pair "a" even though "a" appears first.
	doc := "``` from file=a\na1\n```\n" +
		"``` from file=b\nb1\n```\n" +
		"``` to file=b\nb2\n```\n" +
		"``` to file=a\na2\n```\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "b", plan[0].Target)
	assert.Equal(t, "a", plan[1].Target)
}

func TestExtractIgnoresUnknownTokens(t *testing.T) {
	doc := "```python from file=app.py linenums title=x\nold\n```\n``` to file=app.py\nnew\n```\n"

	plan, err := Extract([]byte(doc), "doc")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, KindReplace, plan[0].Kind)
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		header string
		file   string
		mode   mode
	}{
		{"python file=app.py", "app.py", modeNone},
		{"from file=app.py", "app.py", modeFrom},
		{"go TO file=x/y.go", "x/y.go", modeTo},
		{"file=with=equals", "with=equals", modeNone},
		{"python", "", modeNone},
		{"", "", modeNone},
		{"to from file=a", "a", modeFrom},
	}

	for _, tt := range tests {
		d := parseHeader(tt.header)
		assert.Equal(t, tt.file, d.file, tt.header)
		assert.Equal(t, tt.mode, d.mode, tt.header)
	}
}
