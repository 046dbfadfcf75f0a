package engine

import "strings"

// DiffKind 行级变更分类
type DiffKind string

const (
	DiffUnchanged DiffKind = "unchanged"
	DiffAdded     DiffKind = "added"
	DiffModified  DiffKind = "modified"
)

// DiffLine 一行的变更分类与当前内容
type DiffLine struct {
	Index   int      `json:"index"`
	Kind    DiffKind `json:"kind"`
	Content string   `json:"content"`
}

// DiffLines 按行号位置对比 original 与 current
// 短的一侧用空行补齐后逐位置比较：同位置内容相同为 unchanged，
// 原行为空则为 added，否则为 modified。
// 有意不做编辑距离对齐——下游高亮按行号稳定索引渲染预览，
// 插入导致的整体下移呈现为一串 modified 是既定行为，不要“修复”。
func DiffLines(original, current string) []DiffLine {
	origLines := strings.Split(original, "\n")
	currLines := strings.Split(current, "\n")

	total := len(origLines)
	if len(currLines) > total {
		total = len(currLines)
	}

	report := make([]DiffLine, 0, total)
	for i := 0; i < total; i++ {
		var origLine, currLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(currLines) {
			currLine = currLines[i]
		}

		kind := DiffUnchanged
		if origLine != currLine {
			if origLine == "" {
				kind = DiffAdded
			} else {
				kind = DiffModified
			}
		}
		report = append(report, DiffLine{Index: i, Kind: kind, Content: currLine})
	}
	return report
}
