package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsForCounts(t *testing.T) {
	cases := []struct {
		kind  TemplateKind
		count int
	}{
		// 7 个表头标量 + 20 个主题 + 10 行人员 + 2 签名 + 1 照片
		{KindToolboxMeeting, 40},
		// 3 个表头标量 + 12 个巡检项 + 备注 + 签名
		{KindSurveillanceChecklist, 17},
		// 7 个表头标量 + 8 个管控项 + 申请人 + 3 签名
		{KindWorkAtHeightPermit, 19},
		// 6 个表头标量 + 6 个声明项 + 申请人 + 2 签名 + 1 照片
		{KindPermitToWork, 16},
	}
	for _, tc := range cases {
		fields, err := FieldsFor(tc.kind)
		require.NoError(t, err)
		assert.Len(t, fields, tc.count, "kind %s", tc.kind)
	}
}

// UNKNOWN 不暴露任何可填字段，也不报错
func TestFieldsForUnknownKindIsEmpty(t *testing.T) {
	fields, err := FieldsFor(KindUnknown)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestFieldsForOutsideEnumeration(t *testing.T) {
	_, err := FieldsFor(TemplateKind("DAILY_SITE_DIARY"))
	assert.ErrorIs(t, err, ErrUnknownTemplateKind)
}

func TestFieldKeysUniqueAndStable(t *testing.T) {
	for _, kind := range KnownKinds() {
		fields, err := FieldsFor(kind)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, f := range fields {
			assert.False(t, seen[f.Key], "duplicate key %s in %s", f.Key, kind)
			seen[f.Key] = true
			assert.NotEmpty(t, f.Label, "field %s has no label", f.Key)
			assert.NotEmpty(t, f.Pattern.Anchor, "field %s has no anchor", f.Key)
		}
	}
}

// 单选字段必须带选项（名单驱动的 Job Reference 除外，由展示层补充）
func TestSelectFieldOptions(t *testing.T) {
	fields, err := FieldsFor(KindToolboxMeeting)
	require.NoError(t, err)

	trade, ok := FieldByKey(fields, "tbm_trade")
	require.True(t, ok)
	assert.Equal(t, ValueSelect, trade.Type)
	assert.NotEmpty(t, trade.Options)
}

// 调用方按注册顺序渲染，顺序本身是契约：抽查首尾字段
func TestToolboxFieldOrdering(t *testing.T) {
	fields, err := FieldsFor(KindToolboxMeeting)
	require.NoError(t, err)

	assert.Equal(t, "tbm_project", fields[0].Key)
	assert.Equal(t, "tbm_supervisor_name", fields[5].Key)
	assert.Equal(t, "tbm_subject01", fields[7].Key)
	assert.Equal(t, "tbm_att01", fields[27].Key)
	assert.Equal(t, "tbm_site_photo", fields[len(fields)-1].Key)
}
