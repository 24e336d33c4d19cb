package sample

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/internal/storage"
)

func TestDefault_PercentagesInRange(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()

	a.Customers[0].Name = "changed"

	assert.Equal(t, "Acme Corporation", b.Customers[0].Name)
}

func TestDecode_EmptyInputKeepsDefaults(t *testing.T) {
	ds, err := Decode(strings.NewReader("  \n"))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), ds); diff != "" {
		t.Fatalf("dataset mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_ReplacesOnlyNamedSections(t *testing.T) {
	src := `
customers:
  - id: 10
    name: Fixture Co
    contact: Jane Roe
    email: jane@fixture.test
    status: Active
`
	ds, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	want := []storage.Customer{{ID: 10, Name: "Fixture Co", Contact: "Jane Roe", Email: "jane@fixture.test", Status: "Active"}}
	if diff := cmp.Diff(want, ds.Customers); diff != "" {
		t.Fatalf("customers mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, Default().Sales, ds.Sales)
	assert.Equal(t, Default().Integrations, ds.Integrations)
}

func TestDecode_RejectsOutOfRangeProgress(t *testing.T) {
	src := `
projects:
  - id: 1
    name: Broken
    progress: 120
`
	_, err := Decode(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project 1")
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("customerz: []\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("integrations:\n  - id: jira\n    name: Jira\n    status: disconnected\n"), 0o600))

	ds, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, ds.Integrations, 1)
	assert.Equal(t, "jira", ds.Integrations[0].ID)
	assert.Nil(t, ds.Integrations[0].LastSync)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
