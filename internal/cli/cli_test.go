package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mesh-intelligence/herbarium/internal/paths"
	"github.com/mesh-intelligence/herbarium/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// runCLI executes a fresh root command with an isolated config directory.
func runCLI(t *testing.T, configDir string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	full := append([]string{"--config-dir", configDir}, args...)
	code := run(root, full, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{
			name:    "flower",
			args:    []string{"describe", "--min", "1", "--max", "2", "--stem", "--leaves", "--petals"},
			wantOut: types.MustPlantRecord(1, 2, true, true, true, false).String(),
		},
		{
			name:    "flag defaults give a tree when stem and bush are set",
			args:    []string{"describe", "--stem", "--bush"},
			wantOut: types.DefaultPlantRecord().String(),
		},
		{
			name:     "zero height",
			args:     []string{"describe", "--min", "0", "--stem"},
			wantCode: exitUserError,
			wantErr:  "height cannot be below zero",
		},
		{
			name:     "leaves without stem",
			args:     []string{"describe", "--leaves"},
			wantCode: exitUserError,
			wantErr:  "cannot have leaves or petals without a stem",
		},
		{
			name:     "nothing set",
			args:     []string{"describe"},
			wantCode: exitUserError,
			wantErr:  "this is not a plant",
		},
		{
			name:     "bad flag value",
			args:     []string{"describe", "--min", "tall"},
			wantCode: exitUserError,
			wantErr:  "invalid argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, dir, tt.args...)
			assert.Equal(t, tt.wantCode, res.code, "stderr: %s", res.stderr)
			if tt.wantOut != "" {
				assert.Equal(t, tt.wantOut+"\n", res.stdout)
			}
			if tt.wantErr != "" {
				assert.Contains(t, res.stderr, tt.wantErr)
				assert.Empty(t, res.stdout)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	res := runCLI(t, t.TempDir(), "default")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, types.DefaultPlantRecord().String()+"\n", res.stdout)
	assert.Contains(t, res.stdout, "minimum height:10")
	assert.Contains(t, res.stdout, "maximum height: 30")
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		a, b     string
		wantCode int
		want     string
	}{
		{name: "equal", a: "10,30,stem,bush", b: "10, 30, bush, stem", want: "equal"},
		{name: "less by minimum", a: "5,30,stem", b: "10,30,stem", want: "less"},
		{name: "greater by bush", a: "10,30,stem,bush", b: "10,30,stem", want: "greater"},
		{name: "invalid plant", a: "10,30", b: "10,30,stem", wantCode: exitUserError},
		{name: "unknown flag", a: "10,30,roots", b: "10,30,stem", wantCode: exitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, dir, "compare", tt.a, tt.b)
			require.Equal(t, tt.wantCode, res.code, res.stderr)
			if tt.wantCode != exitSuccess {
				return
			}
			lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
			require.Len(t, lines, 3)
			assert.Equal(t, tt.want, lines[0])
			assert.True(t, strings.HasPrefix(lines[1], "hash a: "))
			assert.True(t, strings.HasPrefix(lines[2], "hash b: "))
		})
	}
}

func TestCompareEqualPlantsShareHash(t *testing.T) {
	res := runCLI(t, t.TempDir(), "compare", "10,30,stem,bush", "10,30,bush,stem")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "hash a: 1239574857\nhash b: 1239574857\n")
}

func TestVersion(t *testing.T) {
	res := runCLI(t, t.TempDir(), "version")
	require.Equal(t, exitSuccess, res.code)
	assert.Equal(t, "herbarium v"+Version+"\nmodule: "+modulePath+"\n", res.stdout)
}

func TestConfigInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "herbarium")

	res := runCLI(t, dir, "config", "init")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Wrote")

	data, err := os.ReadFile(paths.ConfigFile(dir))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Equal(t, defaultLogFormat, cfg.LogFormat)

	res = runCLI(t, dir, "config", "init")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "already exists")
}

func TestConfigFileDrivesLogging(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(paths.ConfigFile(dir), []byte("log_level: debug\nlog_format: json\n"), 0o644))

	res := runCLI(t, dir, "describe", "--bush")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, `"msg":"plant built"`)

	res = runCLI(t, dir, "config", "show")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "log_level: debug")
	assert.Contains(t, res.stdout, "log_format: json")
}

func TestLogLevelFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(paths.ConfigFile(dir), []byte("log_level: error\n"), 0o644))

	res := runCLI(t, dir, "--log-level", "debug", "describe")
	require.Equal(t, exitUserError, res.code)
	assert.Contains(t, res.stderr, "plant rejected")
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("HERBARIUM_LOG_LEVEL", "debug")

	res := runCLI(t, t.TempDir(), "default")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, "default plant")
}

func TestBadConfigIsSystemError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(paths.ConfigFile(dir), []byte("log_level: [unclosed\n"), 0o644))

	res := runCLI(t, dir, "default")
	assert.Equal(t, exitSysError, res.code)
	assert.Contains(t, res.stderr, "read config")
}

func TestUnknownLogLevelIsSystemError(t *testing.T) {
	res := runCLI(t, t.TempDir(), "--log-level", "loud", "default")
	assert.Equal(t, exitSysError, res.code)
	assert.Contains(t, res.stderr, "unknown log level")
}
