package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestReadData(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a/one.txt": "hello ",
		"a/two.txt": "compression ",
		"b/three":   "world",
	})

	t.Run("concatenates in list order", func(t *testing.T) {
		data, err := ReadData(dir, []string{"b/three", "a/one.txt", "a/two.txt"})
		require.NoError(t, err)
		require.Equal(t, "worldhello compression ", string(data))
	})

	t.Run("length is the sum of file lengths", func(t *testing.T) {
		files := []string{"a/one.txt", "a/two.txt", "b/three"}
		data, err := ReadData(dir, files)
		require.NoError(t, err)

		total := 0
		for _, f := range files {
			fi, err := os.Stat(filepath.Join(dir, f))
			require.NoError(t, err)
			total += int(fi.Size())
		}
		require.Len(t, data, total)
	})

	t.Run("same file listed twice", func(t *testing.T) {
		data, err := ReadData(dir, []string{"b/three", "b/three"})
		require.NoError(t, err)
		require.Equal(t, "worldworld", string(data))
	})

	t.Run("empty list", func(t *testing.T) {
		data, err := ReadData(dir, nil)
		require.NoError(t, err)
		require.Empty(t, data)
	})

	t.Run("missing file is named", func(t *testing.T) {
		data, err := ReadData(dir, []string{"a/one.txt", "a/missing.txt", "b/three"})
		require.Error(t, err)
		require.Nil(t, data)
		require.Contains(t, err.Error(), filepath.Join(dir, "a/missing.txt"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory instead of file", func(t *testing.T) {
		data, err := ReadData(dir, []string{"a"})
		require.Error(t, err)
		require.Nil(t, data)
		require.Contains(t, err.Error(), filepath.Join(dir, "a"))
	})
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"small/x": "0123456789",
		"small/y": "abc",
		"large/z": "zzzzzzzzzzzzzzzzzzzz",
	})

	specs := []Spec{
		{Name: "small", Files: []string{"small/x", "small/y"}, Size: 13},
		{Name: "large", Files: []string{"large/z"}, Size: 20},
	}

	t.Run("loads in spec order", func(t *testing.T) {
		corpora, err := Read(dir, specs)
		require.NoError(t, err)
		require.Len(t, corpora, 2)
		assert.Equal(t, "small", corpora[0].Name)
		assert.Equal(t, "0123456789abc", string(corpora[0].Data))
		assert.Equal(t, "large", corpora[1].Name)
		assert.Len(t, corpora[1].Data, 20)
	})

	t.Run("size mismatch names the corpus", func(t *testing.T) {
		bad := []Spec{specs[0], {Name: "large", Files: []string{"large/z"}, Size: 21}}
		corpora, err := Read(dir, bad)
		require.ErrorIs(t, err, ErrUnexpectedSize)
		require.Nil(t, corpora)
		require.Contains(t, err.Error(), "large")
		require.Contains(t, err.Error(), "20 bytes, want 21")
	})

	t.Run("missing file fails whole load", func(t *testing.T) {
		bad := []Spec{specs[0], {Name: "gone", Files: []string{"gone/file"}, Size: 1}}
		corpora, err := Read(dir, bad)
		require.Error(t, err)
		require.Nil(t, corpora)
		require.Contains(t, err.Error(), "gone corpus")
		require.Contains(t, err.Error(), filepath.Join(dir, "gone/file"))
	})
}

func TestReadCorpora_MissingDirectory(t *testing.T) {
	dir := t.TempDir()

	corpora, err := ReadCorpora(dir)
	require.Error(t, err)
	require.Nil(t, corpora)
	require.Contains(t, err.Error(), filepath.Join(dir, "canterbury/alice29.txt"))
}

func TestStandard(t *testing.T) {
	require.Len(t, Standard, 3)

	names := make([]string, 0, len(Standard))
	for _, s := range Standard {
		names = append(names, s.Name)
		require.NotEmpty(t, s.Files)
		require.Positive(t, s.Size)
	}
	require.Equal(t, []string{"canterbury", "canterbury-large", "silesia"}, names)

	require.Equal(t, 2_810_784, Standard[0].Size)
	require.Equal(t, 11_159_482, Standard[1].Size)
	require.Equal(t, 211_938_580, Standard[2].Size)
	require.Len(t, Standard[0].Files, 11)
	require.Len(t, Standard[1].Files, 3)
	require.Len(t, Standard[2].Files, 12)
}

func TestCorpus_SizeAndDigest(t *testing.T) {
	c := Corpus{Name: "c", Data: make([]byte, 2_500_000)}
	require.InDelta(t, 2.5, c.SizeMB(), 1e-12)

	other := Corpus{Name: "other name", Data: make([]byte, 2_500_000)}
	require.Equal(t, c.Digest(), other.Digest())

	other.Data = append([]byte(nil), other.Data...)
	other.Data[0] = 1
	require.NotEqual(t, c.Digest(), other.Digest())
}
