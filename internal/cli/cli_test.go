package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/pretty"
	"github.com/bjaus/pretty/internal/cli"
	"github.com/bjaus/pretty/internal/decode"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStdinDefaultsToYAML(t *testing.T) {
	got, err := run(t, "a: 1\n")
	require.NoError(t, err)
	assert.Equal(t, "${\n\t:a(1)\n}\n", got)
}

func TestStdinMultipleDocuments(t *testing.T) {
	got, err := run(t, "true\n---\nhello\n")
	require.NoError(t, err)
	assert.Equal(t, "True\n\"hello\"\n", got)
}

func TestStdinFormatFlag(t *testing.T) {
	got, err := run(t, `[3, 1, 2]`, "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "$[\n\t1,\n\t2,\n\t3\n]\n", got)
}

func TestStdinBadFormat(t *testing.T) {
	_, err := run(t, "", "--format", "xml")
	require.ErrorIs(t, err, decode.ErrUnsupportedFormat)
}

func TestCompactFlags(t *testing.T) {
	got, err := run(t, `{"b": [2, 1], "a": true}`,
		"--format=json",
		"--indent=",
		"--pre-item-spacing=",
		"--post-item-spacing=",
		"--post-separator-spacing= ",
	)
	require.NoError(t, err)
	assert.Equal(t, "${:a, :b($[1, 2])}\n", got)
}

func TestEscapedIndentFlag(t *testing.T) {
	got, err := run(t, "[x]\n", `--indent=\t\t`)
	require.NoError(t, err)
	assert.Equal(t, "$[\n\t\t\"x\"\n]\n", got)
}

func TestMaxWidthFlag(t *testing.T) {
	got, err := run(t, "abcdefgh\n", "--max-width=4")
	require.NoError(t, err)
	assert.Equal(t, "\"abc…\"\n", got)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `[2, 1]`)
	b := writeFile(t, dir, "b.toml", "x = true\n")

	got, err := run(t, "", a, b, "--jobs=2")
	require.NoError(t, err)
	want := "# " + a + "\n$[\n\t1,\n\t2\n]\n" +
		"# " + b + "\n${\n\t:x\n}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleFileHasNoHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.yaml", "- 1\n")

	got, err := run(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "$[\n\t1\n]\n", got)
}

func TestFilesUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "hello")

	_, err := run(t, "", path)
	require.ErrorIs(t, err, decode.ErrUnsupportedFormat)
}

func TestFilesMissing(t *testing.T) {
	_, err := run(t, "", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFilesDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"a":`)

	_, err := run(t, "", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yaml", "indent: \"  \"\nformat: json\n")

	got, err := run(t, `{"a": 1}`, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "${\n  :a(1)\n}\n", got)
}

func TestConfigFileMissing(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := cli.LoadSettings(writeFile(t, t.TempDir(), "empty.yaml", "{}\n"), nil)
	require.NoError(t, err)

	def := pretty.DefaultConfig()
	assert.Equal(t, def.Indent, s.Indent)
	assert.Equal(t, def.PostSeparatorSpacing, s.PostSeparatorSpacing)
	assert.Equal(t, 0, s.MaxWidth)
	assert.Empty(t, s.Format)
	assert.GreaterOrEqual(t, s.Jobs, 1)
}

func TestLoadSettingsTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "max_width = 12\njobs = 3\n")
	s, err := cli.LoadSettings(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, s.MaxWidth)
	assert.Equal(t, 3, s.Jobs)
}

func TestLoadSettingsPrecedence(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "indent: file\nformat: toml\nmax_width: 5\n")
	t.Setenv("PRETTYDUMP_INDENT", `\t\t`)
	t.Setenv("PRETTYDUMP_FORMAT", "json")

	flags := cli.NewRootCmd().Flags()
	require.NoError(t, flags.Parse([]string{"--format=yaml"}))

	s, err := cli.LoadSettings(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "\t\t", s.Indent, "env overrides file")
	assert.Equal(t, "yaml", s.Format, "flag overrides env")
	assert.Equal(t, 5, s.MaxWidth, "file overrides default")
}

func TestLoadSettingsBadEscape(t *testing.T) {
	t.Setenv("PRETTYDUMP_INDENT", `\q`)
	_, err := cli.LoadSettings(writeFile(t, t.TempDir(), "c.yaml", "{}\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent")
}

func TestSettingsOptions(t *testing.T) {
	s := cli.Settings{Indent: "  ", PostSeparatorSpacing: " ", MaxWidth: 3}
	r := pretty.New(s.Options()...)
	assert.Equal(t, "  ", r.Config().Indent)
	assert.Equal(t, `"ab…"`, r.Render("abcdef", 0))
}
