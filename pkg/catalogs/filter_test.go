package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karonyt/MakeCountryDocument/pkg/errors"
)

func testCommands() []Command {
	return []Command{
		{
			Record:     Record{ID: "create-country", Name: "/country create", Description: "新しい国家を建設する", Category: "国家管理"},
			Usage:      "/country create <国名>",
			Permission: PermissionPlayer,
		},
		{
			Record:     Record{ID: "set-border", Name: "/border set", Description: "国境を設定する", Category: "領土管理"},
			Usage:      "/border set <x1> <z1> <x2> <z2>",
			Permission: PermissionAdmin,
		},
		{
			Record:     Record{ID: "country-info", Name: "/country info", Description: "国家の詳細情報を表示する", Category: "情報確認"},
			Permission: PermissionPlayer,
		},
	}
}

func ids[E Entry](entries []E) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Common().ID
	}
	return out
}

func TestFilter(t *testing.T) {
	commands := testCommands()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "empty query returns everything",
			query: Query{},
			want:  []string{"create-country", "set-border", "country-info"},
		},
		{
			name:  "name substring with wildcard category",
			query: NewQuery("country").With(FacetCategory, Wildcard),
			want:  []string{"create-country", "country-info"},
		},
		{
			name:  "name substring excludes non matching",
			query: NewQuery("border").With(FacetCategory, Wildcard),
			want:  []string{"set-border"},
		},
		{
			name:  "description substring",
			query: NewQuery("国境"),
			want:  []string{"set-border"},
		},
		{
			name:  "case insensitive",
			query: NewQuery("COUNTRY CREATE"),
			want:  []string{"create-country"},
		},
		{
			name:  "full width query folds to half width",
			query: NewQuery("ｃｏｕｎｔｒｙ"),
			want:  []string{"create-country", "country-info"},
		},
		{
			name:  "surrounding whitespace ignored",
			query: NewQuery("  border  "),
			want:  []string{"set-border"},
		},
		{
			name:  "category facet",
			query: NewQuery("").With(FacetCategory, "領土管理"),
			want:  []string{"set-border"},
		},
		{
			name:  "display wildcard",
			query: NewQuery("").With(FacetCategory, WildcardLabel),
			want:  []string{"create-country", "set-border", "country-info"},
		},
		{
			name:  "facets combine with text",
			query: NewQuery("country").With(FacetPermission, string(PermissionPlayer)),
			want:  []string{"create-country", "country-info"},
		},
		{
			name:  "facets and text must all hold",
			query: NewQuery("border").With(FacetPermission, string(PermissionPlayer)),
			want:  []string{},
		},
		{
			name:  "facet the entry does not carry",
			query: NewQuery("").With(FacetRarity, string(RarityRare)),
			want:  []string{},
		},
		{
			name:  "no match",
			query: NewQuery("does-not-match"),
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(commands, tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	commands := testCommands()
	q := NewQuery("country").With(FacetPermission, string(PermissionPlayer))

	once := Filter(commands, q)
	twice := Filter(once, q)
	assert.Equal(t, once, twice)
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter([]Command(nil), NewQuery("country"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	commands := testCommands()
	before := ids(commands)

	_ = Filter(commands, NewQuery("border"))
	assert.Equal(t, before, ids(commands))
}

func TestQueryWithCopies(t *testing.T) {
	base := NewQuery("x").With(FacetCategory, "国家管理")
	derived := base.With(FacetCategory, "領土管理")

	assert.Equal(t, "国家管理", base.Facets[FacetCategory])
	assert.Equal(t, "領土管理", derived.Facets[FacetCategory])
}

func TestQueryIsEmpty(t *testing.T) {
	assert.True(t, Query{}.IsEmpty())
	assert.True(t, NewQuery("  ").With(FacetCategory, Wildcard).IsEmpty())
	assert.False(t, NewQuery("a").IsEmpty())
	assert.False(t, NewQuery("").With(FacetCategory, "国家管理").IsEmpty())
}

func TestQueryKey(t *testing.T) {
	a := NewQuery(" country ").With(FacetPermission, "admin").With(FacetCategory, "国家管理")
	b := NewQuery("country").With(FacetCategory, "国家管理").With(FacetPermission, "admin").With(FacetRarity, Wildcard)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), NewQuery("country").Key())
}

func TestQueryKeyEscapesText(t *testing.T) {
	tests := []struct {
		name  string
		text  Query
		facet Query
	}{
		{
			name:  "facet syntax in text",
			text:  NewQuery("country&category=国家管理"),
			facet: NewQuery("country").With(FacetCategory, "国家管理"),
		},
		{
			name:  "separator in text",
			text:  NewQuery("a|category=b"),
			facet: NewQuery("a").With(FacetCategory, "b"),
		},
		{
			name:  "equals in facet value",
			text:  NewQuery("").With(FacetCategory, "x&q=y"),
			facet: NewQuery("y").With(FacetCategory, "x"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, tt.text.Key(), tt.facet.Key())
		})
	}
}

func TestFilterEmptyQueryCopies(t *testing.T) {
	commands := testCommands()
	got := Filter(commands, Query{})
	require.Len(t, got, len(commands))

	got[0] = Command{Record: Record{ID: "changed"}}
	assert.NotEqual(t, "changed", commands[0].ID)
}

func TestQueryValidate(t *testing.T) {
	facets := []Facet{
		{Name: FacetCategory, Values: []string{"国家管理", "領土管理"}},
		{Name: FacetPermission, Values: []string{"player", "admin"}},
	}

	require.NoError(t, NewQuery("x").Validate(facets))
	require.NoError(t, NewQuery("").With(FacetCategory, Wildcard).Validate(facets))
	require.NoError(t, NewQuery("").With(FacetCategory, "領土管理").Validate(facets))

	err := NewQuery("").With(FacetRarity, "rare").Validate(facets)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	err = NewQuery("").With(FacetCategory, "unknown").Validate(facets)
	require.Error(t, err)
	var verr *errors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "category", verr.Field)
	assert.Equal(t, "unknown", verr.Value)
}

func TestFold(t *testing.T) {
	assert.Equal(t, fold("Country"), fold("COUNTRY"))
	assert.Equal(t, fold("country"), fold("ｃｏｕｎｔｒｙ"))
	assert.Equal(t, fold("カタカナ"), fold("ｶﾀｶﾅ"))
	assert.True(t, containsFolded("anything", ""))
}
