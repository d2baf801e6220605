package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func envLookup(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func TestFindEditor_Precedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"editor wins", map[string]string{"EDITOR": "ed", "VISUAL": "vis"}, "ed"},
		{"visual fallback", map[string]string{"VISUAL": "vis"}, "vis"},
		{"blank editor ignored", map[string]string{"EDITOR": "  ", "VISUAL": "vis"}, "vis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Composer{lookup: envLookup(tt.env)}
			if got := c.findEditor(); got != tt.want {
				t.Errorf("findEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_SplitsArguments(t *testing.T) {
	c := &Composer{lookup: envLookup(map[string]string{"EDITOR": "code --wait"})}

	cmd, err := c.Command("/tmp/x.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"code", "--wait", "/tmp/x.md"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("args = %v, want %v", cmd.Args, want)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, cmd.Args[i], want[i])
		}
	}
}

func TestCompose_ReturnsEditedText(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script editor")
	}

	script := filepath.Join(t.TempDir(), "fake-editor.sh")
	body := "#!/bin/sh\nprintf 'edited: ' > \"$1.tmp\"\ncat \"$1\" >> \"$1.tmp\"\nmv \"$1.tmp\" \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		t.Fatal(err)
	}

	c := &Composer{lookup: envLookup(map[string]string{"EDITOR": script})}
	got, err := c.Compose("hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "edited: hello" {
		t.Errorf("Compose() = %q, want %q", got, "edited: hello")
	}
}

func TestCompose_EditorFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script editor")
	}

	script := filepath.Join(t.TempDir(), "failing-editor.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0755); err != nil {
		t.Fatal(err)
	}

	c := &Composer{lookup: envLookup(map[string]string{"EDITOR": script})}
	if _, err := c.Compose("x"); err == nil {
		t.Error("expected error from failing editor")
	}
}
