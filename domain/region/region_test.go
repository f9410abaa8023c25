package region

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/box-annotator/domain/annotation"
)

func TestDecodeSeeds_ArrayAndObject(t *testing.T) {
	want := []annotation.Region{
		{Left: 10, Top: 10, Right: 50, Bottom: 60, Label: "Bar"},
		{Left: 5, Top: 6, Right: 1, Bottom: 2},
	}
	arr := `[{"left":10,"top":10,"right":50,"bottom":60,"label":"Bar"},{"left":5,"top":6,"right":1,"bottom":2}]`
	got, err := DecodeSeeds(strings.NewReader(arr))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = DecodeSeeds(strings.NewReader(`{"regions":` + arr + `}`))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeSeeds_EmptyAndMalformed(t *testing.T) {
	got, err := DecodeSeeds(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = DecodeSeeds(strings.NewReader(`[{"left":"x"}]`))
	assert.Error(t, err)
}

func TestLoadSeeds(t *testing.T) {
	got, err := LoadSeeds("")
	require.NoError(t, err)
	assert.Nil(t, got)

	path := filepath.Join(t.TempDir(), "seeds.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"left":1,"top":2,"right":3,"bottom":4}]`), 0o644))
	got, err = LoadSeeds(path)
	require.NoError(t, err)
	assert.Equal(t, []annotation.Region{{Left: 1, Top: 2, Right: 3, Bottom: 4}}, got)

	_, err = LoadSeeds(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o644))
	_, err = LoadSeeds(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestTrial_WriteShape(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tr := NewTrial("cat.png", "Box the cats", start, start.Add(1500*time.Millisecond), []annotation.Region{
		{Left: 60, Top: 100, Right: 100, Bottom: 140, Label: "Foo"},
	})
	var buf bytes.Buffer
	require.NoError(t, tr.Write(&buf))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "cat.png", doc["image"])
	assert.Equal(t, "Box the cats", doc["prompt"])
	assert.EqualValues(t, 1500, doc["rt"])
	regions := doc["regions"].([]any)
	require.Len(t, regions, 1)
	assert.Equal(t, map[string]any{"left": 60.0, "top": 100.0, "right": 100.0, "bottom": 140.0, "label": "Foo"}, regions[0])
}

func TestTrial_NoRegionsIsEmptyArray(t *testing.T) {
	now := time.Now()
	tr := NewTrial("x.png", "", now, now.Add(-time.Second), nil)
	assert.Zero(t, tr.RT)
	var buf bytes.Buffer
	require.NoError(t, tr.Write(&buf))
	assert.Contains(t, buf.String(), `"regions": []`)
	assert.NotContains(t, buf.String(), `"prompt"`)
}

func TestTrial_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	now := time.Now()
	require.NoError(t, NewTrial("a.png", "", now, now, nil).Save(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"image": "a.png"`)

	assert.Error(t, NewTrial("a.png", "", now, now, nil).Save(filepath.Join(t.TempDir(), "no", "dir", "out.json")))
}
