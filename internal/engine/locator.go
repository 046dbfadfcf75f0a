package engine

import "strings"

// 文档文本中的占位符与符号约定
const (
	GlyphChecked   = "☑"
	GlyphUnchecked = "☐"

	// 签名/照片槽位在模板中的初始占位符
	SignaturePlaceholder = "[[sign-here]]"
	PhotoPlaceholder     = "[[photo-here]]"

	// 已嵌入图片引用的标记格式：[[img:<label>|<ref>]]
	// 以字段标签为键，便于重新定位后替换而不是重复嵌入
	imgMarkerPrefix = "[[img:"
	imgMarkerClose  = "]]"

	// 标量值为空时写入的定宽空白占位，保证表格版式不被破坏
	blankRun = "______________"
)

// Span 文档文本中属于某字段的字节区间 [Start, End)
type Span struct {
	Start int
	End   int
}

// Locate 在文档文本中查找字段的可替换区间
// 找不到不是错误：该版式尚未给这个字段留出槽位时，字段保持未绑定。
// 所有模式都以标签锚点开始，占位符只在锚点所在行内查找。
func Locate(text string, field FieldDefinition) (Span, bool) {
	anchorIdx := strings.Index(text, field.Pattern.Anchor)
	if anchorIdx < 0 {
		return Span{}, false
	}

	start := anchorIdx + len(field.Pattern.Anchor)
	lineEnd := start
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		lineEnd = start + nl
	} else {
		lineEnd = len(text)
	}
	line := text[start:lineEnd]

	switch field.Type {
	case ValueCheckbox:
		return locateGlyph(line, start)
	case ValueSignature:
		return locateImageSlot(line, start, field.Label, SignaturePlaceholder)
	case ValueImage:
		return locateImageSlot(line, start, field.Label, PhotoPlaceholder)
	case ValuePersonRow:
		return Span{Start: start, End: lineEnd}, true
	default:
		if field.Pattern.Stop != "" {
			if stopIdx := strings.Index(line, field.Pattern.Stop); stopIdx >= 0 {
				return Span{Start: start, End: start + stopIdx}, true
			}
		}
		return Span{Start: start, End: lineEnd}, true
	}
}

// locateGlyph 在行内查找第一个复选框符号（已勾选或未勾选均可替换）
func locateGlyph(line string, base int) (Span, bool) {
	checked := strings.Index(line, GlyphChecked)
	unchecked := strings.Index(line, GlyphUnchecked)

	idx := checked
	glyph := GlyphChecked
	if idx < 0 || (unchecked >= 0 && unchecked < idx) {
		idx = unchecked
		glyph = GlyphUnchecked
	}
	if idx < 0 {
		return Span{}, false
	}
	return Span{Start: base + idx, End: base + idx + len(glyph)}, true
}

// locateImageSlot 查找签名/照片槽位
// 优先匹配已嵌入的图片标记（重新签名时替换旧引用），其次匹配初始占位符
func locateImageSlot(line string, base int, label, placeholder string) (Span, bool) {
	marker := imgMarkerPrefix + label + "|"
	if idx := strings.Index(line, marker); idx >= 0 {
		if tail := strings.Index(line[idx:], imgMarkerClose); tail >= 0 {
			return Span{Start: base + idx, End: base + idx + tail + len(imgMarkerClose)}, true
		}
	}
	if idx := strings.Index(line, placeholder); idx >= 0 {
		return Span{Start: base + idx, End: base + idx + len(placeholder)}, true
	}
	return Span{}, false
}
