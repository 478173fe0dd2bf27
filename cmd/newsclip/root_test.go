package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCmdHasSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	want := map[string]bool{"collect": false, "keywords": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(buf.String(), "newsclip") {
		t.Errorf("version output = %q", buf.String())
	}
}
