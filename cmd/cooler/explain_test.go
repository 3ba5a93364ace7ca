package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExplainCommand_RendersGuidance(t *testing.T) {
	stdout, _, err := executeCommand(t, "explain", "surface", "--appearance", "light")
	require.NoError(t, err)
	require.Contains(t, stdout, "surface")
	require.Contains(t, stdout, "Cards")
	require.Contains(t, stdout, "#ffffff")
}

func TestExplainCommand_PlainStyle(t *testing.T) {
	stdout, _, err := executeCommand(t, "explain", "Primary", "--appearance", "dark", "--style", "plain", "--width", "40")
	require.NoError(t, err)
	require.Contains(t, stdout, "# primary")
	require.Contains(t, stdout, "## Use for")
	require.Contains(t, stdout, "`#60a5fa`")
}

func TestExplainCommand_UnknownRole(t *testing.T) {
	_, _, err := executeCommand(t, "explain", "accent")
	require.Error(t, err)
	require.Contains(t, err.Error(), "looking up role \"accent\"")
	require.Contains(t, err.Error(), "highlight")
}

func TestBuildMarkdownRendererFallsBackOnUnknownStyle(t *testing.T) {
	t.Parallel()

	render := buildMarkdownRenderer("does-not-exist", 20)
	require.Equal(t, "alpha beta", render("alpha beta"))
}
