package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeNameListBasic(t *testing.T) {
	got := decodeNameList(`{"productNames":["rice","soy sauce"]}`, 6, 100, "productNames")
	assert.Equal(t, []string{"rice", "soy sauce"}, got)
}

func TestDecodeNameListFallbackKey(t *testing.T) {
	got := decodeNameList(`{"products":["milk"]}`, 6, 100, "productNames", "products")
	assert.Equal(t, []string{"milk"}, got)
}

func TestDecodeNameListNoFallbackWhenKeyNotListed(t *testing.T) {
	got := decodeNameList(`{"products":["milk"]}`, 5, 100, "productNames")
	assert.Empty(t, got)
}

func TestDecodeNameListNonJSON(t *testing.T) {
	assert.Empty(t, decodeNameList("sorry, I can't help with that", 6, 100, "productNames"))
}

func TestDecodeNameListMissingKeyOrWrongShape(t *testing.T) {
	assert.Empty(t, decodeNameList(`{"other":[1]}`, 6, 100, "productNames"))
	assert.Empty(t, decodeNameList(`{"productNames":"just a string"}`, 6, 100, "productNames"))
	assert.Empty(t, decodeNameList(`["top","level","array"]`, 6, 100, "productNames"))
}

func TestDecodeNameListCapsAndTruncates(t *testing.T) {
	long := strings.Repeat("x", 500)
	names := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		names = append(names, long)
	}
	raw, _ := json.Marshal(map[string][]string{"productNames": names})

	got := decodeNameList(string(raw), 6, 100, "productNames")
	assert.Len(t, got, 6)
	for _, name := range got {
		assert.LessOrEqual(t, len([]rune(name)), 100)
	}
}

func TestDecodeNameListStringifiesElements(t *testing.T) {
	got := decodeNameList(`{"productNames":["rice",42,true]}`, 6, 100, "productNames")
	assert.Equal(t, []string{"rice", "42", "true"}, got)
}

func TestDecodeNameListStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"productNames\":[\"rice\"]}\n```"
	got := decodeNameList(raw, 6, 100, "productNames")
	assert.Equal(t, []string{"rice"}, got)
}

func TestDecodeStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, decodeStringList(`["a","b"]`))
	assert.Empty(t, decodeStringList(`{"not":"an array"}`))
	assert.Empty(t, decodeStringList("plain text"))
	assert.Empty(t, decodeStringList(""))
}

func TestTruncateRunesRespectsMultibyte(t *testing.T) {
	s := strings.Repeat("日", 150)
	got := truncateRunes(s, 100)
	assert.Equal(t, 100, len([]rune(got)))
}
