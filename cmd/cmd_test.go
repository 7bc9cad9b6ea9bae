package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/searchcraft"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runnerProfile = `
[player]
name = "bafv4"
uuid = "069a79f4-44e9-4726-a5be-fca90e38aaf5"

[keybindings]
attack = "MouseLeft"
sprint = "ControlLeft"
drop = "KeyG"

[remaps]
CapsLock = "ControlLeft"

[mouse]
dpi = 800
sensitivity = 74.0

[[search_craft]]
name = "boat"
keys = ["KeyB", "KeyO"]
`

const otherProfile = `
player:
  name: speedy_01
keybindings:
  attack: MouseLeft
  drop: KeyQ
`

// isolate points the config lookup at an empty directory and clears
// environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("MCKEYS_PROFILE_DIR", "")
	t.Setenv("MCKEYS_PROFILE", "")
	t.Setenv("MCKEYS_COLOR", "")
	return dir
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestKeysDisplayCmd(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "keys", "display", "KeyW", "ControlLeft", "ArrowUp")
	require.NoError(t, err)
	assert.Contains(t, out, "LCtrl")
	assert.Contains(t, out, "↑")

	out, err = runCmd(t, "keys", "display", "--json", "MouseLeft")
	require.NoError(t, err)
	var infos []keys.KeyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Equal(t, []keys.KeyInfo{{Code: "MouseLeft", Display: keys.MouseLeftLabel, Family: keys.FamilyMouse}}, infos)
}

func TestKeysCodeCmd(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "keys", "code", "--json", "LCtrl", "W", "↑")
	require.NoError(t, err)
	var infos []keys.KeyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "ControlLeft", infos[0].Code)
	assert.Equal(t, "KeyW", infos[1].Code)
	assert.Equal(t, "ArrowUp", infos[2].Code)
}

func TestKeysFormatCmd(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "keys", "format", "ControlLeft+KeyQ", "Digit1")
	require.NoError(t, err)
	assert.Equal(t, "LCtrl+Q\n1\n", out)
}

func TestKeysListCmd(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "keys", "list", "--family", "digit", "--json")
	require.NoError(t, err)
	var infos []keys.KeyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Len(t, infos, 10)

	out, err = runCmd(t, "keys", "list", "--family", "MODIFIER")
	require.NoError(t, err)
	assert.Contains(t, out, "MODIFIER")
	assert.Contains(t, out, "LShift")

	_, err = runCmd(t, "keys", "list", "--family", "bogus")
	assert.ErrorContains(t, err, "unknown key family")
}

func TestSearchBuildCmd(t *testing.T) {
	isolate(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"ControlLeft", "KeyQ"}, "LCtrl+Q\n"},
		{[]string{"KeyA", "KeyB"}, "AB\n"},
		{[]string{"--remap", "KeyA=KeyZ", "KeyA", "KeyB"}, "ZB\n"},
	}
	for _, tt := range tests {
		out, err := runCmd(t, append([]string{"search", "build"}, tt.args...)...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestSearchResolveCmd(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "search", "resolve", "LCtrl+Q", "--remap", "CapsLock=ControlLeft")
	require.NoError(t, err)
	assert.Equal(t, "CapsLock KeyQ\n", out)

	out, err = runCmd(t, "search", "resolve", "AB")
	require.NoError(t, err)
	assert.Equal(t, "KeyA KeyB\n", out)

	out, err = runCmd(t, "search", "resolve", "--json", "LCtrl+Q", "--remap", "CapsLock=ControlLeft")
	require.NoError(t, err)
	var got []resolvedKey
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []resolvedKey{
		{Token: "LCtrl", Code: "CapsLock", Display: "Caps"},
		{Token: "Q", Code: "KeyQ", Display: "Q"},
	}, got)
}

func TestSearchResolveUsesProfileRemaps(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "runner.toml", runnerProfile)

	out, err := runCmd(t, "search", "resolve", "LCtrl+Q", "--profile", path)
	require.NoError(t, err)
	assert.Equal(t, "CapsLock KeyQ\n", out)

	// --remap overrides the profile entry for the same source
	out, err = runCmd(t, "search", "resolve", "LCtrl+Q", "--profile", path, "--remap", "CapsLock=CapsLock")
	require.NoError(t, err)
	assert.Equal(t, "ControlLeft KeyQ\n", out)
}

func TestRemapCheckCmd(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "remap", "check", "--remap", "CapsLock=ControlLeft")
	require.NoError(t, err)
	assert.Contains(t, out, "No conflicts")

	out, err = runCmd(t, "remap", "check", "--remap", "CapsLock=ControlLeft,ShiftRight=ControlLeft")
	require.ErrorIs(t, err, errRemapConflicts)
	assert.Contains(t, out, "SHARED_TARGET")
	assert.Contains(t, out, "CapsLock, ShiftRight")
}

func TestRemapShowCmd(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "remap", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No remaps configured.")

	out, err = runCmd(t, "remap", "show", "--json", "--remap", "CapsLock=ControlLeft")
	require.NoError(t, err)
	var got remapShowOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, keys.DisplayMap{"LCtrl": "Caps"}, got.DisplayMap)
	require.Len(t, got.Remaps, 1)
	assert.Equal(t, "Caps", got.Remaps[0].SourceDisplay)
}

func TestDefaultProfileFromConfig(t *testing.T) {
	cfgDir := isolate(t)
	profiles := t.TempDir()
	writeFile(t, profiles, "runner.toml", runnerProfile)
	writeFile(t, cfgDir, "mckeys/config.toml", "profile_dir = \""+filepath.ToSlash(profiles)+"\"\ndefault_profile = \"runner\"\n")

	out, err := runCmd(t, "search", "resolve", "LCtrl+Q")
	require.NoError(t, err)
	assert.Equal(t, "CapsLock KeyQ\n", out)

	out, err = runCmd(t, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "bafv4")
}

func TestSearchCraftCmds(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "searchcraft", "encode", "boat")
	require.NoError(t, err)
	assert.Equal(t, "KeyB KeyO KeyA KeyT\n", out)

	out, err = runCmd(t, "sc", "encode", "--json", "a1!")
	require.NoError(t, err)
	var codes []string
	require.NoError(t, json.Unmarshal([]byte(out), &codes))
	assert.Equal(t, []string{"KeyA", "Digit1", "Char_!"}, codes)

	_, err = runCmd(t, "searchcraft", "encode", "boats")
	assert.ErrorIs(t, err, searchcraft.ErrInputTooLong)

	_, err = runCmd(t, "searchcraft", "encode", "a b")
	assert.ErrorIs(t, err, searchcraft.ErrIllegalCharacter)

	out, err = runCmd(t, "searchcraft", "decode", "KeyB", "KeyO", "Bogus", "KeyA", "KeyT")
	require.NoError(t, err)
	assert.Equal(t, "boat\n", out)
}

func TestProfileValidateCmd(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	good := writeFile(t, dir, "runner.toml", runnerProfile)
	bad := writeFile(t, dir, "bad.yaml", "player:\n  name: x\nmouse:\n  dpi: -1\n")

	out, err := runCmd(t, "profile", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, iconSuccess)

	out, err = runCmd(t, "profile", "validate", good, bad, filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, errInvalidProfiles)
	assert.Contains(t, out, "2 of 3")
}

func TestProfileShowCmd(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "runner.toml", runnerProfile)

	out, err := runCmd(t, "profile", "show", "--json", path)
	require.NoError(t, err)
	var got profileShowOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "bafv4", got.Player.Name)
	assert.Len(t, got.Bindings, 3)
	require.Len(t, got.SearchCraft, 1)
	assert.Equal(t, "bo", got.SearchCraft[0].Input)

	out, err = runCmd(t, "profile", "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "BINDINGS")
	assert.Contains(t, out, "CHANGED FROM DEFAULT")
	// sprint is pressed with Caps Lock through the remap
	assert.Contains(t, out, "Caps")

	_, err = runCmd(t, "profile", "show")
	assert.ErrorContains(t, err, "no profile given")
}

func TestProfileSchemaCmd(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "profile.schema.json")

	_, err := runCmd(t, "profile", "schema", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "Minecraft Keybinding Profile", schema["title"])
}

func TestStatsCmd(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, dir, "runner.toml", runnerProfile)
	writeFile(t, dir, "other.yaml", otherProfile)
	writeFile(t, dir, "broken.json", "{")

	out, err := runCmd(t, "stats", "--json", dir)
	require.NoError(t, err)

	// the load warning for broken.json precedes the report on the shared buffer
	start := bytes.IndexByte([]byte(out), '{')
	require.GreaterOrEqual(t, start, 0)
	var report stats.Report
	require.NoError(t, json.Unmarshal([]byte(out[start:]), &report))
	assert.Equal(t, 2, report.Summary.Profiles)
	assert.Equal(t, 1, report.Summary.WithRemaps)
	assert.ElementsMatch(t, []string{"bafv4", "speedy_01"}, report.Matrix.Players)

	out, err = runCmd(t, "stats", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "REMAPS")

	_, err = runCmd(t, "stats")
	assert.ErrorContains(t, err, "no profile_dir configured")
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "version", "--json")
	require.NoError(t, err)
	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestExplicitMissingConfigFails(t *testing.T) {
	isolate(t)

	_, err := runCmd(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "version")
	assert.Error(t, err)
}
