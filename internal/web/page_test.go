package web

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/huangsam/shotdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropdownEscapesValues(t *testing.T) {
	d := schema.Dropdown{
		ID:      "pick",
		Options: []schema.Selection{{Value: `<x"y>`, Kind: schema.TeamSelection}, {Value: "Leaders", Kind: schema.LeadersSelection}},
		Default: "Leaders",
		Width:   "100px",
	}
	var buf bytes.Buffer
	require.NoError(t, Dropdown(d).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `<option value="&lt;x&#34;y&gt;" data-kind="team">&lt;x&#34;y&gt;</option>`)
	assert.Contains(t, out, `<option value="Leaders" data-kind="leaders" selected>Leaders</option>`)
	assert.NotContains(t, out, `<x"y>`)
	assert.True(t, strings.HasPrefix(out, `<select id="pick" style="width: 100px;">`))
	assert.True(t, strings.HasSuffix(out, "</select>"))
}

func TestPageEmbedsConfig(t *testing.T) {
	layout := schema.PageLayout{
		Title:    "T & U",
		Dropdown: schema.Dropdown{ID: "dd", Default: "BOS", Width: "140px"},
		Graph:    schema.Graph{ID: "g", DisplayModeBar: true},
	}
	var buf bytes.Buffer
	require.NoError(t, Page(layout, "<p>hi</p>", "/static/plotly.js").Render(context.Background(), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>T &amp; U</title>")
	assert.Contains(t, out, `<script src="/static/plotly.js"></script>`)
	assert.Contains(t, out, `<div class="intro"><p>hi</p></div>`)
	assert.Contains(t, out, `<div id="g"></div>`)
	assert.Contains(t, out, `id="page-config"`)
	assert.Contains(t, out, `"default":"BOS"`)
	assert.Contains(t, out, `"displayModeBar":true`)
	assert.Contains(t, out, `<select id="dd" style="width: 140px;">`)
	assert.Contains(t, out, "Plotly.react")
	assert.True(t, strings.HasSuffix(out, "</script></body></html>"))
}

func TestPageHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := Page(schema.PageLayout{}, "", "").Render(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
