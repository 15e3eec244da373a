package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/mnt/masters", "/mnt/masters"},
		{"single trailing slash", "/mnt/masters/", "/mnt/masters"},
		{"multiple trailing slashes", "/mnt/masters///", "/mnt/masters"},
		{"root path", "/", "/"},
		{"relative path", "output", "output"},
		{"relative with slash", "output/", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestParseMounts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "/mnt/a/", []string{"/mnt/a"}},
		{"two in order", "/mnt/b,/mnt/a", []string{"/mnt/b", "/mnt/a"}},
		{"spaces and empties", " /mnt/a , ,/mnt/b,", []string{"/mnt/a", "/mnt/b"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMounts(tt.in))
		})
	}
}

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.InputPath = "/in/sales.csv"
	cfg.Mounts = []string{"/mnt/masters"}
	cfg.ProbePath = "/usr/bin/ffprobe"
	cfg.OutputDir = "/out"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults with paths are valid", func(*Config) {}, ""},
		{"continue policy is valid", func(c *Config) { c.OnRowError = PolicyContinue }, ""},
		{"unknown policy", func(c *Config) { c.OnRowError = "skip" }, "row error policy"},
		{"unknown color mode", func(c *Config) { c.ColorMode = "sometimes" }, "color mode"},
		{"extension without dot", func(c *Config) { c.TableExt = "csv" }, "table extension"},
		{"no mounts", func(c *Config) { c.Mounts = nil }, "mount"},
		{"no probe", func(c *Config) { c.ProbePath = "" }, "ffprobe"},
		{"no input", func(c *Config) { c.InputPath = "" }, "need input path"},
		{"no output", func(c *Config) { c.OutputDir = "" }, "need input path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CheckOnlySkipsInputAndOutput(t *testing.T) {
	cfg := validConfig()
	cfg.CheckOnly = true
	cfg.InputPath = ""
	cfg.OutputDir = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		wantErr bool
	}{
		{"separate directories", "/data/in", "/data/out", false},
		{"output equals input", "/data/csv", "/data/csv", true},
		{"output inside input", "/data/csv", "/data/csv/output", true},
		{"output is parent of input", "/data/csv/sub", "/data/csv", false},
		{"similar prefix not nested", "/data/csv", "/data/csv2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.input, tt.output)
			assert.Equal(t, tt.wantErr, err != nil, "ValidatePaths(%q, %q) = %v", tt.input, tt.output, err)
		})
	}
}

func TestParseFlags_Positional(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{"in/", "/mnt/b,/mnt/a/", "/usr/bin/ffprobe", "out/"}, "test")
	require.NoError(t, err)

	assert.Equal(t, "in", cfg.InputPath)
	assert.Equal(t, []string{"/mnt/b", "/mnt/a"}, cfg.Mounts)
	assert.Equal(t, "/usr/bin/ffprobe", cfg.ProbePath)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, PolicyAbort, cfg.OnRowError)
	assert.NoError(t, cfg.Validate())
}

func TestParseFlags_WrongArgCount(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{"in", "/mnt/a", "/usr/bin/ffprobe"}, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 3 arguments")
}

func TestParseFlags_Options(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{
		"--keep-going", "--ext", "tsv", "--no-color", "-v", "--log", "/tmp/mg.log",
		"in", "/mnt/a", "ffprobe", "out",
	}, "test")
	require.NoError(t, err)

	assert.Equal(t, PolicyContinue, cfg.OnRowError)
	assert.Equal(t, ".tsv", cfg.TableExt)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/tmp/mg.log", cfg.LogFile)
}

func TestParseFlags_CheckWithTwoArgs(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{"--check", "/mnt/a,/mnt/b", "/usr/bin/ffprobe"}, "test")
	require.NoError(t, err)

	assert.True(t, cfg.CheckOnly)
	assert.Equal(t, []string{"/mnt/a", "/mnt/b"}, cfg.Mounts)
	assert.NoError(t, cfg.Validate())
}

func TestParseFlags_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("METAGETTER_ON_ROW_ERROR", "continue")
	t.Setenv("METAGETTER_TABLE_EXT", ".tsv")

	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"in", "/mnt/a", "ffprobe", "out"}, "test"))

	assert.Equal(t, PolicyContinue, cfg.OnRowError)
	assert.Equal(t, ".tsv", cfg.TableExt)
}

func TestParseFlags_FlagBeatsEnv(t *testing.T) {
	t.Setenv("METAGETTER_ON_ROW_ERROR", "continue")

	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"--on-row-error", "abort", "in", "/mnt/a", "ffprobe", "out"}, "test"))

	assert.Equal(t, PolicyAbort, cfg.OnRowError)
}

func TestParseFlags_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metagetter.yml")
	yml := "input: /data/csv\n" +
		"mounts:\n  - /mnt/masters\n  - /mnt/backup\n" +
		"ffprobe: /opt/ffprobe\n" +
		"output: /data/out\n" +
		"on_row_error: continue\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"--config", path}, "test"))

	assert.Equal(t, "/data/csv", cfg.InputPath)
	assert.Equal(t, []string{"/mnt/masters", "/mnt/backup"}, cfg.Mounts)
	assert.Equal(t, "/opt/ffprobe", cfg.ProbePath)
	assert.Equal(t, "/data/out", cfg.OutputDir)
	assert.Equal(t, PolicyContinue, cfg.OnRowError)
	assert.Equal(t, ".csv", cfg.TableExt)
	assert.NoError(t, cfg.Validate())
}

func TestExpandPaths_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg := validConfig()
	cfg.Mounts = []string{"~/media", "/mnt/abs"}
	cfg.OutputDir = "~/out"
	require.NoError(t, cfg.ExpandPaths())

	assert.Equal(t, []string{filepath.Join(home, "media"), "/mnt/abs"}, cfg.Mounts)
	assert.Equal(t, filepath.Join(home, "out"), cfg.OutputDir)
	assert.Equal(t, "/in/sales.csv", cfg.InputPath)
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".csv", cfg.TableExt)
	assert.Equal(t, PolicyAbort, cfg.OnRowError)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.CheckOnly)
}
