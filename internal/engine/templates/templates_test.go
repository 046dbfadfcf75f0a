package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safedocs/backend/internal/engine"
)

// 每份内置模板必须分类回它自己的类型
func TestBuiltinTemplatesClassify(t *testing.T) {
	for _, kind := range engine.KnownKinds() {
		body, err := Body(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, engine.Classify(body), "template for %s", kind)
	}
}

// 每个字段的锚点都要能在对应模板中定位到槽位
// （定位失败合法，但内置模板与字段表必须完全对齐）
func TestBuiltinTemplatesCoverAllAnchors(t *testing.T) {
	for _, kind := range engine.KnownKinds() {
		body, err := Body(kind)
		require.NoError(t, err)
		fields, err := engine.FieldsFor(kind)
		require.NoError(t, err)

		for _, f := range fields {
			_, found := engine.Locate(body, f)
			assert.True(t, found, "field %s not locatable in %s template", f.Key, kind)
		}
	}
}

func TestAllReturnsFourTemplates(t *testing.T) {
	assert.Len(t, All(), 4)
}

// 场景：含 "Toolbox Meeting" 的文档分类为 TOOLBOX_MEETING，
// 绑定 tbm_supervisor_name 替换主管姓名槽位，20 个主题复选框原样保留
func TestToolboxScenario(t *testing.T) {
	body, err := Body(engine.KindToolboxMeeting)
	require.NoError(t, err)

	s, err := engine.NewSession(body)
	require.NoError(t, err)
	require.Equal(t, engine.KindToolboxMeeting, s.Kind())

	require.NoError(t, s.Bind("tbm_supervisor_name", "J. Tan"))

	assert.Contains(t, s.Text(), "Conducted By (Supervisor): J. Tan")
	assert.Equal(t, 20, strings.Count(s.Text(), engine.GlyphUnchecked))
}

// 场景：无法识别的文本分类为 UNKNOWN，字段表为空
func TestUnknownScenario(t *testing.T) {
	s, err := engine.NewSession("Daily Progress Report\nWeather: fine\n")
	require.NoError(t, err)
	assert.Equal(t, engine.KindUnknown, s.Kind())
	assert.Empty(t, s.Fields())
}

// 完整模板上的端到端回放确定性
func TestFullTemplateReplay(t *testing.T) {
	body, err := Body(engine.KindPermitToWork)
	require.NoError(t, err)

	s, err := engine.NewSession(body)
	require.NoError(t, err)

	require.NoError(t, s.Bind("ptw_permit_no", "PTW-2026-0042"))
	require.NoError(t, s.Bind("ptw_date", "2026-02-11"))
	require.NoError(t, s.Bind("ptw_permit_type", "Hot Work"))
	require.NoError(t, s.Bind("ptw_decl01", "true"))
	require.NoError(t, s.Bind("ptw_decl04", "true"))
	require.NoError(t, s.Bind("ptw_applicant_sign", "att://sig-1.png"))
	require.NoError(t, s.Bind("ptw_ref_photo", "att://photo-1.jpg"))

	replayed := engine.Replay(s.Original(), s.Fields(), s.Values())
	assert.Equal(t, s.Text(), replayed)
}
