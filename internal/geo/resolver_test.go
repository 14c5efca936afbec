package geo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGeoTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS zip_locations (
  zip TEXT PRIMARY KEY,
  state_code TEXT NOT NULL,
  county TEXT NOT NULL
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestNormalizeZip(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"33301", "33301", false},
		{" 33301 ", "33301", false},
		{"33301-4000", "33301", false},
		{"3330", "", true},
		{"abcde", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizeZip(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestDBResolverResolvesKnownZip(t *testing.T) {
	db := setupGeoTestDB(t)
	require.NoError(t, db.Exec(
		`INSERT INTO zip_locations (zip, state_code, county) VALUES ('33301', 'FL', 'Broward')`,
	).Error)

	resolver, err := NewDBResolver(db)
	require.NoError(t, err)

	loc, err := resolver.ResolveZip(context.Background(), "33301-4000")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "FL", loc.StateCode)
	assert.Equal(t, "Florida", loc.StateName)
	assert.Equal(t, "Broward", loc.County)
}

func TestDBResolverUnknownZipIsNotAnError(t *testing.T) {
	db := setupGeoTestDB(t)
	resolver, err := NewDBResolver(db)
	require.NoError(t, err)

	loc, err := resolver.ResolveZip(context.Background(), "99999")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestNormalizeState(t *testing.T) {
	code, name, ok := NormalizeState("fl")
	require.True(t, ok)
	assert.Equal(t, "FL", code)
	assert.Equal(t, "Florida", name)

	code, name, ok = NormalizeState("Florida")
	require.True(t, ok)
	assert.Equal(t, "FL", code)
	assert.Equal(t, "Florida", name)

	_, _, ok = NormalizeState("Atlantis")
	assert.False(t, ok)
}
