package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alfex4936/mapsrpc/internal/model"
)

var tags = []model.LanguageTag{model.English, model.Thai, model.Japanese, model.Chinese, model.Unknown, "ko"}

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want model.LanguageTag
	}{
		{"Hello there, great food!", model.English},
		{"ร้านอาหารน่ากินมาก", model.Thai},
		{"とても美味しいです", model.Japanese},
		{"非常好吃的餐厅", model.Chinese},
		{"อาหารอร่อยมาก but the parking is bad", model.Thai},
		{"Great pad thai at this place, the ผัดไทย was amazing", model.English},
		{"๑๒๓๔๕", model.Thai},
		{"カレー", model.Japanese},
		{"12345 !!!", model.Unknown},
		{"맛있어요 정말", model.Unknown},
		{"ok", model.English},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.text), tc.text)
	}
}

func TestClassify_ShortTextIsUnknown(t *testing.T) {
	for _, text := range []string{"", " ", "a", "  ก  ", "\n\t", "あ"} {
		assert.Equal(t, model.Unknown, Classify(text), "%q", text)
		for _, tag := range tags {
			assert.False(t, ShouldInclude(text, tag), "%q/%s", text, tag)
		}
	}
}

func TestFilterText(t *testing.T) {
	assert.Equal(t, "Great  5/5!", FilterText("Great อาหาร 5/5!", model.English))
	assert.Equal(t, "Great อาหาร 5/5!", FilterText("Great อาหาร 5/5!", model.Thai))
	assert.Equal(t, "อร่อย ", FilterText("อร่อย 美味しい", model.Thai))
	assert.Equal(t, "美味しい OK", FilterText("美味しい😀 OK", model.Japanese))
	assert.Equal(t, "好吃 ", FilterText("好吃 しい", model.Chinese))
	assert.Equal(t, "café ✓", FilterText("café ✓", model.Unknown))
	assert.Equal(t, "café ✓", FilterText("café ✓", "ko"))
	assert.Equal(t, "line1\nline2\t", FilterText("line1\nline2\t", model.English))
}

func TestFilterText_Idempotent(t *testing.T) {
	samples := []string{
		"Great อาหาร 5/5!",
		"とても美味しいです 👍 Best ramen",
		"非常好吃的餐厅!!! ร้าน",
		"\xff\xfe broken utf8 ก",
		"",
	}
	for _, x := range samples {
		for _, tag := range tags {
			once := FilterText(x, tag)
			assert.Equal(t, once, FilterText(once, tag), "%q/%s", x, tag)
		}
	}
}

func TestShouldInclude(t *testing.T) {
	assert.True(t, ShouldInclude("Nice staff, good coffee at Café Amazon สาขา", model.English))
	assert.False(t, ShouldInclude("ร้านอาหารน่ากินมาก", model.English))
	assert.True(t, ShouldInclude("ร้านนี้ดีมาก recommended for families", model.Thai))
	assert.True(t, ShouldInclude("とても美味しいです", model.Japanese))
	assert.False(t, ShouldInclude("とても美味しいです", model.Chinese))
	assert.True(t, ShouldInclude("非常好吃的餐厅", model.Chinese))
	assert.True(t, ShouldInclude("12345 !!!", model.Unknown))
}

func TestShouldInclude_Reflexive(t *testing.T) {
	for _, x := range []string{
		"Hello there, great food!",
		"ร้านอาหารน่ากินมาก",
		"とても美味しいです",
		"非常好吃的餐厅",
		"맛있어요 정말",
		"Great pad thai at this place, the ผัดไทย was amazing",
	} {
		assert.True(t, ShouldInclude(x, Classify(x)), x)
	}
}
