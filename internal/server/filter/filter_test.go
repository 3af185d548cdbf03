package filter

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
	"github.com/karonyt/MakeCountryDocument/pkg/errors"
)

var commandFacets = []catalogs.Facet{
	{Name: catalogs.FacetCategory, Values: []string{"国家管理", "領土管理"}},
	{Name: catalogs.FacetPermission, Values: []string{"player", "admin"}},
}

func TestParse(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/commands?q=country&category="+url.QueryEscape("国家管理")+"&limit=10&offset=5", nil)

	req, err := Parse(r, commandFacets)
	require.NoError(t, err)

	assert.Equal(t, "country", req.Query.Text)
	assert.Equal(t, "国家管理", req.Query.Facets[catalogs.FacetCategory])
	assert.Equal(t, 10, req.Limit)
	assert.Equal(t, 5, req.Offset)
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name       string
		values     url.Values
		wantText   string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", url.Values{}, "", DefaultLimit, 0},
		{"search alias", url.Values{"search": {"border"}}, "border", DefaultLimit, 0},
		{"q wins over search", url.Values{"q": {"a"}, "search": {"b"}}, "a", DefaultLimit, 0},
		{"limit capped", url.Values{"limit": {"5000"}}, "", MaxLimit, 0},
		{"zero limit", url.Values{"limit": {"0"}}, "", DefaultLimit, 0},
		{"negative limit", url.Values{"limit": {"-5"}}, "", DefaultLimit, 0},
		{"limit at max", url.Values{"limit": {"1000"}}, "", MaxLimit, 0},
		{"limit of one", url.Values{"limit": {"1"}}, "", 1, 0},
		{"bad limit", url.Values{"limit": {"lots"}}, "", DefaultLimit, 0},
		{"negative offset", url.Values{"offset": {"-3"}}, "", DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseValues(tt.values, commandFacets)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, req.Query.Text)
			assert.Equal(t, tt.wantLimit, req.Limit)
			assert.Equal(t, tt.wantOffset, req.Offset)
		})
	}
}

func TestRequestKeyEscapesText(t *testing.T) {
	text, err := ParseValues(url.Values{"q": {"country&category=国家管理"}}, commandFacets)
	require.NoError(t, err)
	facet, err := ParseValues(url.Values{"q": {"country"}, "category": {"国家管理"}}, commandFacets)
	require.NoError(t, err)

	assert.NotEqual(t, text.Key(), facet.Key())

	limit, err := ParseValues(url.Values{"q": {"x&limit=5"}}, commandFacets)
	require.NoError(t, err)
	short, err := ParseValues(url.Values{"q": {"x"}, "limit": {"5"}}, commandFacets)
	require.NoError(t, err)
	assert.NotEqual(t, limit.Key(), short.Key())
}

func TestParseWildcard(t *testing.T) {
	req, err := ParseValues(url.Values{"category": {"all"}}, commandFacets)
	require.NoError(t, err)
	assert.True(t, req.Query.IsEmpty())
}

func TestParseRejectsFacets(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"undeclared facet", url.Values{"rarity": {"rare"}}},
		{"value outside set", url.Values{"permission": {"owner"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValues(tt.values, commandFacets)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestWindow(t *testing.T) {
	entries := []int{1, 2, 3, 4, 5}

	page, info := Window(entries, Request{Limit: 2, Offset: 1})
	assert.Equal(t, []int{2, 3}, page)
	assert.Equal(t, PageInfo{Total: 5, Limit: 2, Offset: 1, Count: 2}, info)

	page, info = Window(entries, Request{Limit: 10, Offset: 4})
	assert.Equal(t, []int{5}, page)
	assert.Equal(t, 1, info.Count)

	page, info = Window(entries, Request{Limit: 10, Offset: 10})
	assert.Empty(t, page)
	assert.NotNil(t, page)
	assert.Equal(t, 5, info.Total)
}

func TestRequestKey(t *testing.T) {
	a, err := ParseValues(url.Values{"q": {"x"}, "category": {"all"}}, commandFacets)
	require.NoError(t, err)
	b, err := ParseValues(url.Values{"search": {"x"}}, commandFacets)
	require.NoError(t, err)
	assert.Equal(t, a.Key(), b.Key())
}
