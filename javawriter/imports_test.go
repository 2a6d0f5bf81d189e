package javawriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/javagen/errors"
)

func TestShortName(t *testing.T) {
	tests := []struct {
		fqn  string
		want string
	}{
		{"java.util.List", "List"},
		{"java.util.Map.Entry", "Entry"},
		{"com.example.Outer$Inner", "Outer$Inner"},
		{"Foo", "Foo"},
		{"java.util.*", "*"},
	}
	for _, tt := range tests {
		t.Run(tt.fqn, func(t *testing.T) {
			got, err := shortName(tt.fqn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortName_Malformed(t *testing.T) {
	for _, fqn := range []string{"", "java.util.List<String>", "java util.List", "java.util.List;"} {
		t.Run(fqn, func(t *testing.T) {
			_, err := shortName(fqn)
			assert.True(t, errors.IsMalformedName(err), "shortName(%q) = %v", fqn, err)
		})
	}
}

func TestImportTable(t *testing.T) {
	table := newImportTable()

	short, err := table.add("java.util.List")
	require.NoError(t, err)
	assert.Equal(t, "List", short)

	_, err = table.add("java.util.List")
	assert.True(t, errors.IsDuplicateImport(err))

	// Same short name, different package: accepted.
	_, err = table.add("java.awt.List")
	require.NoError(t, err)

	got, ok := table.lookup("java.awt.List")
	assert.True(t, ok)
	assert.Equal(t, "List", got)

	_, ok = table.lookup("java.util.Map")
	assert.False(t, ok)

	assert.True(t, table.hasShortName("List"))
	assert.False(t, table.hasShortName("Map"))
	assert.Equal(t, 2, table.len())
	assert.Equal(t, []Import{
		{Name: "java.util.List", ShortName: "List"},
		{Name: "java.awt.List", ShortName: "List"},
	}, table.entries())
}

func TestImportTable_CheckDoesNotRegister(t *testing.T) {
	table := newImportTable()

	short, err := table.check("java.util.Map")
	require.NoError(t, err)
	assert.Equal(t, "Map", short)
	assert.Equal(t, 0, table.len())
}
