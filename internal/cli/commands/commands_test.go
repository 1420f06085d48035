package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctv/internal/cli"
	"ctv/internal/config"
	"ctv/internal/domain"
	"ctv/internal/storage"
	"ctv/internal/suite"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "ctv", SilenceUsage: true, SilenceErrors: true}
	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSuiteLoader_Load(t *testing.T) {
	cfg := config.New()
	loader := NewSuiteLoader(cfg, suite.NewFilter())

	t.Run("built-in table", func(t *testing.T) {
		entries, err := loader.Load()
		require.NoError(t, err)
		assert.Len(t, entries, 13)
	})

	t.Run("filtered", func(t *testing.T) {
		cfg.Flags.NameFilter = "RegFile"
		defer func() { cfg.Flags.NameFilter = "" }()

		entries, err := loader.Load()
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("suite file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tests:\n  - name: alu-add\n    type: alu\n"), 0644))
		cfg.Flags.SuiteFile = path
		defer func() { cfg.Flags.SuiteFile = "" }()

		entries, err := loader.Load()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "alu", entries[0].TypeTag)
	})
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "reference_output"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "regfile-zero.circ"), []byte("circ"), 0644))

	out, err := execute(t, "list", "-C", dir, "-f", "*zero*")
	require.NoError(t, err)
	assert.Equal(t, "Found 1 declared test(s):\n\n"+
		"└── RegFile $zero test [regfile] [no reference]\n"+
		"    └── regfile-zero.circ\n", out)
}

func TestRunCommand_SimulatorMissingAborts(t *testing.T) {
	t.Setenv(config.EnvJava, filepath.Join(t.TempDir(), "no-java"))
	dir := t.TempDir()

	out, err := execute(t, "run", "-C", dir, "--no-save")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALU add (with overflow) test")
	assert.Equal(t, "Testing files...\n", out)

	_, statErr := os.Stat(filepath.Join(dir, "storage"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStatsCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.ProjectPath = dir
	results := []domain.TestResult{
		{Entry: domain.Entry{Description: "ALU add"}, Verdict: domain.Verdict{Passed: true}},
		{Entry: domain.Entry{Description: "ALU sub", TypeTag: "alu"}, Verdict: domain.Verdict{Reason: domain.ReasonMismatch}},
	}
	require.NoError(t, storage.NewJSONStorage(cfg).Save(results, time.Second))

	out, err := execute(t, "stats", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "│ Failed Tests                    │ 1")
	assert.Contains(t, out, "└── ALU sub [alu]")
}

func TestFaillsCommand_NoResults(t *testing.T) {
	_, err := execute(t, "faills", "-C", t.TempDir())
	assert.Error(t, err)
}
