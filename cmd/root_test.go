package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

func TestRootCmd_Structure(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}
	if rootCmd.Use != "tomato" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "tomato")
	}
}

func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCmd(rootCmd, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}
	if !strings.Contains(stdout, "focus timer") {
		t.Error("help output should describe the timer")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"add", "list", "done", "delete", "active", "log", "stats", "achievements", "config", "mcp"}

	registered := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		registered[sub.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"db", "json"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("rootCmd should have --%s flag", name)
		}
	}
}
