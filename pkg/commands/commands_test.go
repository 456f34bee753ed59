package commands

import (
	"testing"
)

func TestVerbsRegisterJSONFlag(t *testing.T) {
	root := New()

	verbs := []string{"write", "today", "history", "stats", "prompts", "export", "import", "clear", "theme"}
	for _, verb := range verbs {
		cmd, _, err := root.Find([]string{verb})
		if err != nil {
			t.Fatalf("find %s: %v", verb, err)
		}
		if cmd.Flags().Lookup("json") == nil {
			t.Fatalf("%s is missing the --json flag", verb)
		}
	}
}

func TestOutputOptionsBoundToJSONFlag(t *testing.T) {
	root := New()
	cmd, _, err := root.Find([]string{"stats"})
	if err != nil {
		t.Fatalf("find stats: %v", err)
	}

	if err := cmd.Flags().Set("json", "true"); err != nil {
		t.Fatalf("set json flag: %v", err)
	}
	if !output.JSON {
		t.Fatalf("--json did not bind to OutputOptions")
	}
	output.JSON = false
}
