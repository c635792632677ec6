package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedgate/feed"
	"github.com/dmitrymomot/feedgate/pkg/validator"
)

func sampleResults() []feed.Result {
	return []feed.Result{
		{Index: 0, Item: &feed.Item{ProductID: "sku-0"}},
		{Index: 1, Violations: validator.Violations{
			{Path: "price.amount", Code: validator.CodeInvalidFormat, Message: "must be a non-negative decimal with at most 2 fractional digits"},
		}},
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	renderText(&buf, sampleResults())

	out := buf.String()
	assert.Contains(t, out, "record 0: ok (sku-0)")
	assert.Contains(t, out, "record 1: 1 violation(s)")
	assert.Contains(t, out, "price.amount")
	assert.Contains(t, out, "invalid_format")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, sampleResults()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.NotNil(t, decoded[0]["item"])
	assert.Nil(t, decoded[1]["item"])
}
