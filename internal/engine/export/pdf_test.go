package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPDF(t *testing.T) {
	artifact, err := Render("TOOLBOX MEETING RECORD\nDate: 2026-01-05\n  S1. Safe work ☑", "tbm-42")
	require.NoError(t, err)

	assert.Equal(t, "tbm-42.pdf", artifact.Filename)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF")), "artifact must be a PDF stream")
}

// 长文档自动追加续页
func TestRenderPaginatesLongDocument(t *testing.T) {
	long := strings.Repeat("checklist line\n", 400)

	artifact, err := Render(long, "long")
	require.NoError(t, err)
	// fpdf 在页对象中记录 /Page 数量，多页文档必然大于单页产物
	short, err := Render("one line", "short")
	require.NoError(t, err)
	assert.Greater(t, len(artifact.Data), len(short.Data))
}

func TestRenderEmptyDocument(t *testing.T) {
	artifact, err := Render("", "empty")
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Data)
}
