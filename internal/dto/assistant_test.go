package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItemLabelFallback(t *testing.T) {
	assert.Equal(t, "Milk", CartItem{Name: "Milk", ProductName: "Whole Milk"}.Label())
	assert.Equal(t, "Whole Milk", CartItem{ProductName: "Whole Milk"}.Label())
	assert.Equal(t, "item", CartItem{Category: "Dairy"}.Label())
}

func TestCartItemDecodeIgnoresUnknownFields(t *testing.T) {
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Milk","qty":3,"price":1.99}`), &item))
	assert.Equal(t, "Milk", item.Name)
}

func TestProductQAResponseFollowUpsSerializeAsArray(t *testing.T) {
	raw, err := json.Marshal(ProductQAResponse{
		Answer:            "a",
		Confidence:        0.9,
		FollowUpQuestions: []string{},
	})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"followUpQuestions":[]`)
}
