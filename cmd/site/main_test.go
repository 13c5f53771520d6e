package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"founder_calculators/pkg/config"
)

func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.Default()
	outputDir, contentDir, baseURL, listenAddr = "", "", "", ""
	buildFirst = false

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

func TestRunBuild(t *testing.T) {
	cmd, out := newTestCmd(t)
	outputDir = t.TempDir()
	contentDir = filepath.Join("..", "..", "content")
	baseURL = "https://calc.example.com"

	require.NoError(t, runBuild(cmd, nil))
	assert.Contains(t, out.String(), "Build ID:")
	assert.FileExists(t, filepath.Join(outputDir, "tools", "unit-economics", "index.html"))
	assert.FileExists(t, filepath.Join(outputDir, "articles", "tam-sam-som", "index.html"))

	sitemap, err := os.ReadFile(filepath.Join(outputDir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "https://calc.example.com/tools/cap-table/")
}

func TestRunBuild_NoContent(t *testing.T) {
	cmd, _ := newTestCmd(t)
	outputDir = t.TempDir()
	contentDir = t.TempDir()

	require.NoError(t, runBuild(cmd, nil))
	assert.FileExists(t, filepath.Join(outputDir, "articles", "index.html"))
}

func TestRunServe_MissingOutput(t *testing.T) {
	cmd, _ := newTestCmd(t)
	outputDir = filepath.Join(t.TempDir(), "missing")
	assert.Error(t, runServe(cmd, nil))
}

func TestSiteConfig_Overrides(t *testing.T) {
	newTestCmd(t)
	listenAddr = ":9999"
	s := siteConfig()
	assert.Equal(t, ":9999", s.ListenAddr)
	assert.Equal(t, config.Default().Site.OutputDir, s.OutputDir)
}
