package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/orgtree/pkg/adapters/file"
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/ports"
	"github.com/aretw0/orgtree/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orgYAML = `
kind: composite
value: 1
label: Company
children:
  - kind: composite
    value: 2
    label: Engineering
    children:
      - value: 4
      - value: 5
  - kind: composite
    value: 2
    children:
      - value: 6
`

const orgJSON = `{
  "kind": "composite",
  "value": 2,
  "children": [{"value": 4}, {"value": 5}]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Contract(t *testing.T) {
	ports.RunDefinitionLoaderContract(t, file.NewLoader(writeFile(t, "org.yaml", orgYAML)), 20)
}

func TestLoader_YAML(t *testing.T) {
	loader := file.NewLoader(writeFile(t, "org.yml", orgYAML))

	def, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Company", def.Label)
	require.Len(t, def.Children, 2)
	assert.Equal(t, "Engineering", def.Children[0].Label)
	assert.Equal(t, domain.KindLeaf, def.Children[0].Children[1].ResolvedKind())
}

func TestLoader_JSON(t *testing.T) {
	loader := file.NewLoader(writeFile(t, "org.json", orgJSON))

	def, err := loader.Load(context.Background())
	require.NoError(t, err)

	root, _, err := schema.Build(*def)
	require.NoError(t, err)
	assert.Equal(t, 11, root.AggregateValue())
	assert.Equal(t, "Composite(Section+Section)", root.DisplayName())
}

func TestLoader_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := file.NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(ctx)
	assert.ErrorIs(t, err, file.ErrNotFound)

	_, err = file.NewLoader(writeFile(t, "org.toml", "value = 1")).Load(ctx)
	assert.ErrorIs(t, err, file.ErrUnsupportedFormat)

	_, err = file.NewLoader(writeFile(t, "bad.yaml", "value: [1")).Load(ctx)
	assert.Error(t, err)

	_, err = file.NewLoader(writeFile(t, "frac.json", `{"value": 4.5}`)).Load(ctx)
	assert.Error(t, err, "fractional values are rejected")

	_, err = file.NewLoader(writeFile(t, "extra.yaml", "value: 1\nbudget: 3\n")).Load(ctx)
	assert.Error(t, err, "unknown keys are rejected")

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = file.NewLoader(writeFile(t, "org.yaml", orgYAML)).Load(canceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "YAML Twenty Digits", file: "big.yaml", body: "value: 99999999999999999999\n"},
		{name: "YAML Above Int64", file: "uint.yaml", body: "value: 18446744073709551615\n"},
		{name: "JSON Exponent", file: "big.json", body: `{"kind":"leaf","value":1e20}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := file.NewLoader(writeFile(t, tt.file, tt.body)).Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "out of range")
		})
	}

	def, err := file.Parse([]byte(`{"kind":"leaf","value":1e20}`), ".json")
	assert.Nil(t, def)
	assert.ErrorContains(t, err, "out of range")
}

func TestSave_RoundTrip(t *testing.T) {
	src, err := file.Parse([]byte(orgYAML), ".yaml")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "org.yaml")
	require.NoError(t, file.Save(path, *src))

	// Overwrite must succeed too.
	require.NoError(t, file.Save(path, *src))

	got, err := file.NewLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *src, *got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestMarshal(t *testing.T) {
	def := schema.Definition{
		Kind:     domain.KindComposite,
		Value:    2,
		Children: []schema.Definition{{Kind: domain.KindLeaf, Value: 4}},
	}

	out, err := file.Marshal(def)
	require.NoError(t, err)

	want := "kind: composite\nvalue: 2\nchildren:\n  - kind: leaf\n    value: 4\n"
	assert.Equal(t, want, string(out))
}
