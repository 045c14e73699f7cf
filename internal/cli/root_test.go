package cli

import (
	"bytes"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	dbFlag := root.PersistentFlags().Lookup("db")
	if dbFlag == nil {
		t.Fatal("expected --db flag to exist")
	}
}

func TestServeFlags(t *testing.T) {
	root := NewRootCmd()

	var serve bool
	for _, cmd := range root.Commands() {
		if cmd.Use == "serve" {
			serve = true
			portFlag := cmd.Flags().Lookup("port")
			if portFlag == nil {
				t.Fatal("expected --port flag on serve")
			}
			if portFlag.DefValue != "8080" {
				t.Errorf("expected --port default 8080, got %q", portFlag.DefValue)
			}
		}
	}
	if !serve {
		t.Fatal("expected serve command to exist")
	}
}

func TestVersionCommand(t *testing.T) {
	if _, err := executeCommand("version"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	if _, err := executeCommand("bogus"); err == nil {
		t.Error("expected error for unknown command")
	}
}
