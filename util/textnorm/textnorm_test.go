package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "nature", Label("  Nature "))
	assert.Equal(t, "golden hour", Label("Golden \t  HOUR"))
	assert.Equal(t, "", Label("   "))
	// 组合字符归一为预组合形式
	assert.Equal(t, "caf\u00e9", Label("Cafe\u0301"))
}

func TestLabels(t *testing.T) {
	got := Labels([]string{"Beach", "beach", " ", "Sunset", "BEACH "})
	assert.Equal(t, []string{"beach", "sunset"}, got)

	assert.NotNil(t, Labels(nil))
	assert.Empty(t, Labels(nil))
}

func TestTitleKeepsCase(t *testing.T) {
	assert.Equal(t, "Golden Hour", Title("  Golden Hour\n"))
}

func TestPinyin(t *testing.T) {
	assert.Equal(t, []string{"ri", "luo"}, Pinyin("日落 sunset"))
	assert.Nil(t, Pinyin("sunset"))
}

func TestMediaKind(t *testing.T) {
	tests := map[string]string{
		"https://ik.example.com/pins/a.jpg":             "image",
		"https://ik.example.com/pins/a.JPEG?tr=w-200":   "image",
		"https://ik.example.com/pins/a.png#frag":        "image",
		"https://ik.example.com/pins/clip.mp4":          "video",
		"https://ik.example.com/pins/clip.webm?tr=q-80": "video",
		"https://ik.example.com/pins/doc.pdf":           "",
		"https://ik.example.com/pins/noext":             "",
	}
	for url, want := range tests {
		assert.Equal(t, want, MediaKind(url), url)
	}
}
