package resolve

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmfont-resolver/internal/atlas"
	"bmfont-resolver/internal/diagnostic"
	"bmfont-resolver/internal/glyphfs"
	"bmfont-resolver/internal/glyphfs/glyphfstest"
	"bmfont-resolver/internal/manifest"
	"bmfont-resolver/internal/selection"
)

const fontDir = "font"

var fontTarget = selection.Target{Dir: fontDir, FontName: "font"}

// countingFS records how often a folder was listed.
type countingFS struct {
	*glyphfstest.FS
	reads int
}

func (c *countingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	c.reads++
	return c.FS.ReadDir(name)
}

func newFixture(t *testing.T, mapping *string, images ...string) (*glyphfs.Scanner, *countingFS) {
	t.Helper()

	mem := glyphfstest.New().AddDir(fontDir).AddFiles(fontDir, images...)
	if mapping != nil {
		mem.AddFile(filepath.Join(fontDir, "chars.txt"), *mapping)
	}

	fsys := &countingFS{FS: mem}

	s, err := glyphfs.NewScanner(fsys, "")
	require.NoError(t, err)

	return s, fsys
}

func ptr(s string) *string { return &s }

func chars(res *manifest.Result) string {
	return string(res.Manifest.Chars())
}

func stems(res *manifest.Result) []string {
	out := []string{}
	for _, img := range res.Manifest.Images() {
		out = append(out, img.Stem)
	}

	return out
}

func TestFilenameResolver_SingleCharacterFiles(t *testing.T) {
	s, _ := newFixture(t, nil, "b.png", "a.png", "字.png", "7.png")

	res, diags := NewFilenameResolver(s, nil).Resolve(fontTarget)
	require.NotNil(t, res)
	require.True(t, diags.IsValid())

	assert.Equal(t, 4, res.Manifest.Len())
	assert.Equal(t, "ba字7", chars(res))
	assert.Equal(t, fontDir, res.OutputPath)
	assert.Equal(t, "font", res.FontName)
	assert.Empty(t, diags.Warnings)
}

func TestFilenameResolver_SkipsMultiCharacterNames(t *testing.T) {
	s, _ := newFixture(t, nil, "dot.png", "b.png", "ab.png", "a.png", "readme.txt")

	res, diags := NewFilenameResolver(s, nil).Resolve(fontTarget)
	require.NotNil(t, res)
	assert.True(t, diags.IsValid())

	assert.Equal(t, "ba", chars(res))
	assert.Equal(t, []string{"b", "a"}, stems(res))

	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, diagnostic.KindSkippedFile, diags.Warnings[0].Kind)
	assert.Equal(t, filepath.Join(fontDir, "dot.png"), diags.Warnings[0].File)
	assert.Equal(t, filepath.Join(fontDir, "ab.png"), diags.Warnings[1].File)
}

func TestFilenameResolver_NothingQualifies(t *testing.T) {
	s, _ := newFixture(t, nil, "comma.png", "period.png")

	res, diags := NewFilenameResolver(s, nil).Resolve(fontTarget)
	require.NotNil(t, res)
	assert.True(t, diags.IsValid())
	assert.Zero(t, res.Manifest.Len())
	assert.Len(t, diags.Warnings, 2)
}

func TestFilenameResolver_UnreadableFolder(t *testing.T) {
	s, fsys := newFixture(t, nil, "a.png")
	fsys.FailReadDir(fontDir, errors.New("permission denied"))

	res, diags := NewFilenameResolver(s, nil).Resolve(fontTarget)
	assert.Nil(t, res)
	assert.Equal(t, []diagnostic.Kind{diagnostic.KindReadFailure}, diags.ErrorKinds())
}

func TestMappingTableResolver_Success(t *testing.T) {
	s, _ := newFixture(t, ptr("// digits\r\nzero\t0\r\none\t1\r\ndot\t.\r\n"), "one.png", "dot.png", "zero.png")

	res, diags := NewMappingTableResolver(s, nil).Resolve(fontTarget)
	require.True(t, diags.IsValid(), diags.Error())
	require.NotNil(t, res)

	assert.Equal(t, "1.0", chars(res))
	assert.Equal(t, []string{"one", "dot", "zero"}, stems(res))
	assert.Equal(t, fontDir, res.OutputPath)
	assert.Equal(t, "font", res.FontName)
}

func TestMappingTableResolver_ByteOrderMark(t *testing.T) {
	for _, mapping := range []string{"\uFEFF// digits\r\nzero\t0\r\n", "\uFEFFzero\t0\r\n"} {
		s, _ := newFixture(t, ptr(mapping), "zero.png")

		res, diags := NewMappingTableResolver(s, nil).Resolve(fontTarget)
		require.True(t, diags.IsValid(), diags.Error())
		require.NotNil(t, res)
		assert.Equal(t, "0", chars(res))
	}
}

func TestMappingTableResolver_MissingFileSkipsScan(t *testing.T) {
	s, fsys := newFixture(t, nil, "a.png")

	res, diags := NewMappingTableResolver(s, nil).Resolve(fontTarget)
	assert.Nil(t, res)
	assert.Equal(t, []diagnostic.Kind{diagnostic.KindMissingMappingFile}, diags.ErrorKinds())
	assert.Equal(t, filepath.Join(fontDir, "chars.txt"), diags.Errors[0].File)
	assert.Zero(t, fsys.reads)
}

func TestMappingTableResolver_ParseErrorsSkipScan(t *testing.T) {
	mapping := "a\tx\tz\n" + "b\tyy\n" + "c\tz\n" + "d\n"
	s, fsys := newFixture(t, &mapping, "a.png", "b.png", "c.png", "d.png")

	res, diags := NewMappingTableResolver(s, nil).Resolve(fontTarget)
	assert.Nil(t, res)
	assert.Equal(t, []diagnostic.Kind{
		diagnostic.KindMalformedLine,
		diagnostic.KindInvalidCharacterValue,
		diagnostic.KindMalformedLine,
	}, diags.ErrorKinds())
	assert.Equal(t, 1, diags.Errors[0].Line)
	assert.Equal(t, 2, diags.Errors[1].Line)
	assert.Equal(t, 4, diags.Errors[2].Line)
	assert.Zero(t, fsys.reads, "no image lookup after a failed parse")
}

func TestMappingTableResolver_UnmappedFile(t *testing.T) {
	s, _ := newFixture(t, ptr("a\t1\n"), "a.png", "b.png")

	res, diags := NewMappingTableResolver(s, nil).Resolve(fontTarget)
	assert.Nil(t, res)
	require.Equal(t, []diagnostic.Kind{diagnostic.KindUnmappedFile}, diags.ErrorKinds())
	assert.Equal(t, filepath.Join(fontDir, "b.png"), diags.Errors[0].File)
	assert.Contains(t, diags.Errors[0].Message, `"b"`)
}

func TestMappingTableResolver_AccumulatesUnmappedWithSuggestions(t *testing.T) {
	s, _ := newFixture(t, ptr("zero\t0\none\t1\n"), "zer0.png", "one.png", "two.png")

	res, diags := NewMappingTableResolver(s, nil).Resolve(fontTarget)
	assert.Nil(t, res)
	require.Len(t, diags.Errors, 2)

	assert.Equal(t, filepath.Join(fontDir, "zer0.png"), diags.Errors[0].File)
	assert.Equal(t, []string{"zero"}, diags.Errors[0].Suggestions)
	assert.Equal(t, filepath.Join(fontDir, "two.png"), diags.Errors[1].File)
}

func TestMappingTableResolver_DuplicateCharactersAllowed(t *testing.T) {
	s, _ := newFixture(t, ptr("a\t1\nb\t1\n"), "a.png", "b.png")

	res, diags := NewMappingTableResolver(s, nil).Resolve(fontTarget)
	require.True(t, diags.IsValid())
	require.NotNil(t, res)
	assert.Equal(t, "11", chars(res))
}

func TestMappingTableResolver_StaleEntriesIgnored(t *testing.T) {
	s, _ := newFixture(t, ptr("a\t1\nold\t0\nb\t2\ngone\t3\n"), "b.png", "a.png")

	res, diags := NewMappingTableResolver(s, nil).Resolve(fontTarget)
	require.True(t, diags.IsValid())
	assert.Equal(t, "21", chars(res))

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.KindUnusedMapping, diags.Infos[0].Kind)
	assert.Equal(t, "2 mapping entries match no image: old, gone", diags.Infos[0].Message)
	assert.Equal(t, filepath.Join(fontDir, "chars.txt"), diags.Infos[0].File)
}

func TestMappingTableResolver_NoUnusedEntries(t *testing.T) {
	s, _ := newFixture(t, ptr("a\t1\n"), "a.png")

	_, diags := NewMappingTableResolver(s, nil).Resolve(fontTarget)
	require.True(t, diags.IsValid())
	assert.Empty(t, diags.Infos)
}

func TestMappingTableResolver_CustomMappingFile(t *testing.T) {
	mem := glyphfstest.New().
		AddFiles(fontDir, "a.png").
		AddFile(filepath.Join(fontDir, "glyphs.tsv"), "a\tA\n")

	s, err := glyphfs.NewScanner(mem, "")
	require.NoError(t, err)

	strategy, err := New(StrategyChars, s, Options{MappingFile: "glyphs.tsv", SuggestionLimit: 1})
	require.NoError(t, err)

	res, diags := strategy.Resolve(fontTarget)
	require.True(t, diags.IsValid())
	assert.Equal(t, "A", chars(res))
}

func TestCheckCount(t *testing.T) {
	var ok diagnostic.Diagnostics
	checkCount(2, 2, fontDir, &ok)
	assert.True(t, ok.IsValid())

	var bad diagnostic.Diagnostics
	checkCount(3, 2, fontDir, &bad)
	require.Equal(t, []diagnostic.Kind{diagnostic.KindCountMismatch}, bad.ErrorKinds())
	assert.Contains(t, bad.Errors[0].Message, "found 3 images but resolved 2")
}

func TestNew(t *testing.T) {
	s, _ := newFixture(t, nil)

	f, err := New(StrategyFilename, s, Options{})
	require.NoError(t, err)
	assert.Equal(t, StrategyFilename, f.Name())
	assert.IsType(t, &FilenameResolver{}, f)

	c, err := New(StrategyChars, s, Options{})
	require.NoError(t, err)
	assert.Equal(t, StrategyChars, c.Name())

	mt := c.(*MappingTableResolver)
	assert.Equal(t, "chars.txt", mt.MappingFile)
	assert.Equal(t, DefaultSuggestionLimit, mt.SuggestionLimit)

	_, err = New("guess", s, Options{})
	assert.ErrorContains(t, err, `unknown strategy "guess"`)
}

type recordingBuilder struct {
	calls []atlas.Command
	err   error
}

func (b *recordingBuilder) Build(cmd atlas.Command) error {
	b.calls = append(b.calls, cmd)
	return b.err
}

func folderHandle(name string) selection.Handle {
	return selection.Handle{ID: name, Name: name, Kind: selection.KindFolder}
}

func TestRunner_HandsOffParallelArrays(t *testing.T) {
	s, _ := newFixture(t, ptr("b\tB\na\tA\n"), "b.png", "a.png")
	builder := &recordingBuilder{}

	runner := &Runner{Dirs: s, Builder: builder}

	res, diags, err := runner.Run(NewMappingTableResolver(s, nil), []selection.Handle{folderHandle(fontDir)})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, diags.IsValid())

	require.Len(t, builder.calls, 1)
	cmd := builder.calls[0]
	assert.Equal(t, []rune{'B', 'A'}, cmd.Chars)
	require.Len(t, cmd.Images, 2)
	assert.Equal(t, "b", cmd.Images[0].Stem)
	assert.Equal(t, "a", cmd.Images[1].Stem)
	assert.Equal(t, fontDir, cmd.OutputDir)
	assert.Equal(t, fontDir, cmd.FontName)
}

func TestRunner_SelectionErrorSkipsEverything(t *testing.T) {
	s, fsys := newFixture(t, ptr("a\t1\n"), "a.png")
	builder := &recordingBuilder{}
	runner := &Runner{Dirs: s, Builder: builder}

	selections := map[string][]selection.Handle{
		"none":    nil,
		"two":     {folderHandle(fontDir), folderHandle(fontDir)},
		"texture": {{ID: filepath.Join(fontDir, "a.png"), Name: "a", Kind: selection.KindTexture}},
	}

	for name, handles := range selections {
		t.Run(name, func(t *testing.T) {
			for _, strategy := range []Strategy{NewFilenameResolver(s, nil), NewMappingTableResolver(s, nil)} {
				res, diags, err := runner.Run(strategy, handles)
				require.Error(t, err)
				assert.Nil(t, res)
				assert.Equal(t, []diagnostic.Kind{diagnostic.KindSelectionError}, diags.ErrorKinds())

				var report *diagnostic.ReportError
				require.ErrorAs(t, err, &report)
				assert.True(t, report.Has(diagnostic.KindSelectionError))
			}

			assert.Zero(t, fsys.reads)
			assert.Empty(t, builder.calls)
		})
	}
}

func TestRunner_FailedResolutionSkipsBuild(t *testing.T) {
	s, _ := newFixture(t, ptr("a\t1\n"), "a.png", "b.png")
	builder := &recordingBuilder{}
	runner := &Runner{Dirs: s, Builder: builder}

	res, diags, err := runner.Run(NewMappingTableResolver(s, nil), []selection.Handle{folderHandle(fontDir)})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, []diagnostic.Kind{diagnostic.KindUnmappedFile}, diags.ErrorKinds())
	assert.Empty(t, builder.calls)
}

func TestRunner_SoftSkipStillBuilds(t *testing.T) {
	s, _ := newFixture(t, nil, "a.png", "ab.png")
	builder := &recordingBuilder{}
	runner := &Runner{Dirs: s, Builder: builder}

	res, diags, err := runner.Run(NewFilenameResolver(s, nil), []selection.Handle{folderHandle(fontDir)})
	require.NoError(t, err)
	assert.Equal(t, "a", chars(res))
	assert.Len(t, diags.Warnings, 1)
	assert.Len(t, builder.calls, 1)
}

func TestRunner_DryRunAndBuilderError(t *testing.T) {
	s, _ := newFixture(t, nil, "a.png")

	dry := &Runner{Dirs: s}
	res, _, err := dry.Run(NewFilenameResolver(s, nil), []selection.Handle{folderHandle(fontDir)})
	require.NoError(t, err)
	assert.Equal(t, "a", chars(res))

	boom := errors.New("packer crashed")
	failing := &Runner{Dirs: s, Builder: &recordingBuilder{err: boom}}
	_, _, err = failing.Run(NewFilenameResolver(s, nil), []selection.Handle{folderHandle(fontDir)})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
