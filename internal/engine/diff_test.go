package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 同一文本对比自身：所有行 unchanged
func TestDiffStability(t *testing.T) {
	text := "line one\nline two\n\nline four"
	report := DiffLines(text, text)

	require.Len(t, report, 4)
	for i, d := range report {
		assert.Equal(t, i, d.Index)
		assert.Equal(t, DiffUnchanged, d.Kind)
	}
}

func TestDiffModifiedLine(t *testing.T) {
	original := "Date: ______\nTime: ______"
	current := "Date: 2026-01-05\nTime: ______"

	report := DiffLines(original, current)
	require.Len(t, report, 2)
	assert.Equal(t, DiffModified, report[0].Kind)
	assert.Equal(t, "Date: 2026-01-05", report[0].Content)
	assert.Equal(t, DiffUnchanged, report[1].Kind)
}

// 原行为空、当前有内容：added
func TestDiffAddedLine(t *testing.T) {
	original := "header\n\nfooter"
	current := "header\nnew remark\nfooter"

	report := DiffLines(original, current)
	require.Len(t, report, 3)
	assert.Equal(t, DiffAdded, report[1].Kind)
}

// 短的一侧用空行补齐：尾部新增行报 added
func TestDiffPadsShorterSide(t *testing.T) {
	original := "only line"
	current := "only line\nappended"

	report := DiffLines(original, current)
	require.Len(t, report, 2)
	assert.Equal(t, DiffUnchanged, report[0].Kind)
	assert.Equal(t, DiffAdded, report[1].Kind)
	assert.Equal(t, "appended", report[1].Content)
}

// 位置对比是既定行为：插入导致后续整体下移时呈现为一串 modified
func TestDiffPositionalCascade(t *testing.T) {
	original := "alpha\nbeta\ngamma"
	current := "inserted\nalpha\nbeta\ngamma"

	report := DiffLines(original, current)
	require.Len(t, report, 4)
	assert.Equal(t, DiffModified, report[0].Kind)
	assert.Equal(t, DiffModified, report[1].Kind)
	assert.Equal(t, DiffModified, report[2].Kind)
	assert.Equal(t, DiffAdded, report[3].Kind)
}

// 删减内容后当前行为空：按位置判定为 modified（原行非空）
func TestDiffClearedLineIsModified(t *testing.T) {
	report := DiffLines("content", "")
	require.Len(t, report, 1)
	assert.Equal(t, DiffModified, report[0].Kind)
	assert.Equal(t, "", report[0].Content)
}
