// Package export 导出协调器：把当前文档文本按预览同款排版渲染为多页 A4 PDF
// 只消费最终文本，不新增任何状态；失败时不返回部分产物
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"k8s.io/klog/v2"
)

// Artifact 导出产物：字节流 + 建议文件名
type Artifact struct {
	Data     []byte
	Filename string
}

// 版面参数：A4 纵向，等宽字体逐行排版，与屏幕预览一致
const (
	fontFamily = "Courier"
	fontSize   = 9.0
	lineHeight = 4.2
	marginTop  = 12.0
	marginSide = 10.0
)

// 核心字体不含复选框符号，落纸前替换为 ASCII 等价形式
var glyphReplacer = strings.NewReplacer(
	"☑", "[x]",
	"☐", "[ ]",
)

// Render 渲染文档文本为分页 PDF
// 自动分页：未排完的内容继续追加标准页。任何渲染失败都整体报错。
func Render(documentText, baseName string) (*Artifact, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginSide, marginTop, marginSide)
	pdf.SetAutoPageBreak(true, marginTop)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range strings.Split(documentText, "\n") {
		pdf.CellFormat(0, lineHeight, tr(glyphReplacer.Replace(line)), "", 1, "L", false, 0, "")
	}

	if pdf.Err() {
		klog.Errorf("PDF 渲染失败: %v", pdf.Error())
		return nil, fmt.Errorf("pdf rendering failed: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}

	return &Artifact{
		Data:     buf.Bytes(),
		Filename: baseName + ".pdf",
	}, nil
}
