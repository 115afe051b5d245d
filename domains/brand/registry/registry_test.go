package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classpoint/brandkit/domains/brand/config"
)

func TestNewWithSeeds(t *testing.T) {
	r, err := NewWithSeeds()
	require.NoError(t, err)

	require.Equal(t, []string{"crescent", "greenvalley", "stjoseph"}, r.IDs())

	doc, ok := r.Lookup("crescent")
	require.True(t, ok)
	require.Equal(t, "Crescent Public School", doc.Name)
	require.Equal(t, "both", doc.Auth.Type)
}

func TestSeedDocumentsMatchSchema(t *testing.T) {
	v, err := config.NewValidator()
	require.NoError(t, err)

	seeds, err := SeedDocuments()
	require.NoError(t, err)
	require.NotEmpty(t, seeds)

	for id, payload := range seeds {
		require.NoError(t, v.Validate(payload), "seed %q must pass the authoring schema", id)
	}
}

func TestRegisterOverwritesWithoutMerge(t *testing.T) {
	r := New()
	r.Register("demo", config.Document{Name: "Demo School", Tagline: "hello"})
	r.Register("demo", config.Document{Name: "Renamed School"})

	doc, ok := r.Lookup("demo")
	require.True(t, ok)
	require.Equal(t, "Renamed School", doc.Name)
	require.Empty(t, doc.Tagline, "replacement must not merge with the previous document")
}

func TestLookupMissing(t *testing.T) {
	r := New()
	_, ok := r.Lookup("nonexistent")
	require.False(t, ok)
}
