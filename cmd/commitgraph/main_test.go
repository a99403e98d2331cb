package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const forkedScenario = `
start = "2024-01-01T00:00:00Z"
author = "Alice"

[[step]]
op = "commit"
message = "commit1"
[step.files]
"README.md" = "one"

[[step]]
op = "commit"
message = "commit2"
[step.files]
"README.md" = "two"

[[step]]
op = "branch"
name = "feature-branch"

[[step]]
op = "checkout"
name = "feature-branch"

[[step]]
op = "commit"
message = "commit3"
[step.files]
"README.md" = "three"

[[step]]
op = "checkout"
name = "main"

[[step]]
op = "commit"
message = "commit4"
[step.files]
"README.md" = "four"
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCLI executes the root command and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRunCLI(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("commitgraph %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestVersion(t *testing.T) {
	out := mustRunCLI(t, "version")
	if !strings.HasPrefix(out, "commitgraph ") {
		t.Errorf("version output = %q", out)
	}
}

func TestLogOneline(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	out := mustRunCLI(t, "-s", path, "log", "--oneline")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("log lines = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "commit4") || !strings.Contains(lines[0], "HEAD -> main") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "commit2") || !strings.Contains(lines[2], "commit1") {
		t.Errorf("log = %q", out)
	}
}

func TestLogLimitAndRevision(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	out := mustRunCLI(t, "-s", path, "log", "--oneline", "-n", "1", "feature-branch")
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, "commit3") {
		t.Errorf("log feature-branch -n 1 = %q", out)
	}
}

func TestLogEmptyScenario(t *testing.T) {
	path := writeScenario(t, "")
	out := mustRunCLI(t, "-s", path, "log")
	if strings.TrimSpace(out) != "no commits yet" {
		t.Errorf("log on empty scenario = %q", out)
	}
}

func TestMergeBaseCommand(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	base := strings.TrimSpace(mustRunCLI(t, "-s", path, "merge-base", "feature-branch", "main"))
	if len(base) != 40 {
		t.Fatalf("merge-base output = %q, want a 40-char hash", base)
	}

	show := mustRunCLI(t, "-s", path, "show", base)
	if !strings.Contains(show, "commit2") {
		t.Errorf("merge base is not commit2:\n%s", show)
	}
}

func TestStatsCommand(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	out := mustRunCLI(t, "-s", path, "stats")
	for _, want := range []string{"commits", "4", "branches", "2", "main"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestShowCommand(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	out := mustRunCLI(t, "-s", path, "show", "feature-branch")
	if !strings.Contains(out, "commit3") || !strings.Contains(out, "README.md") {
		t.Errorf("show output:\n%s", out)
	}
	if !strings.Contains(out, "parent ") {
		t.Errorf("show should list the parent:\n%s", out)
	}
}

func TestShowRecursive(t *testing.T) {
	path := writeScenario(t, `
[[step]]
op = "commit"
message = "nested"
[step.files]
"src/app/main.go" = "package main"
"README.md" = "hi"
`)
	out := mustRunCLI(t, "-s", path, "show", "-r")
	if !strings.Contains(out, "src/app/main.go") || !strings.Contains(out, "README.md") {
		t.Errorf("show -r output:\n%s", out)
	}
}

func TestDiffCommand(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	out := mustRunCLI(t, "-s", path, "diff")
	for _, want := range []string{"--- a/README.md", "-two", "+four"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff output missing %q:\n%s", want, out)
		}
	}

	out = mustRunCLI(t, "-s", path, "diff", "--stat", "feature-branch", "main")
	if strings.TrimSpace(out) != "~ README.md     (modified)" {
		t.Errorf("diff --stat = %q", out)
	}
}

func TestBranchAndReflogCommands(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	out := mustRunCLI(t, "-s", path, "branch")
	if !strings.Contains(out, "* main") || !strings.Contains(out, "feature-branch") {
		t.Errorf("branch output:\n%s", out)
	}

	out = mustRunCLI(t, "-s", path, "reflog", "main")
	if strings.Count(out, "\n") != 3 || !strings.Contains(out, "commit (initial)") {
		t.Errorf("reflog output:\n%s", out)
	}
}

func TestBranchCreateAndDelete(t *testing.T) {
	path := writeScenario(t, forkedScenario)

	out := mustRunCLI(t, "-s", path, "branch", "topic")
	if !strings.Contains(out, "created branch 'topic'") || !strings.Contains(out, "  topic ") {
		t.Errorf("branch topic output:\n%s", out)
	}

	out = mustRunCLI(t, "-s", path, "branch", "release", "feature-branch")
	if !strings.Contains(out, "created branch 'release'") || !strings.Contains(out, "  release ") {
		t.Errorf("branch release feature-branch output:\n%s", out)
	}

	out = mustRunCLI(t, "-s", path, "branch", "-d", "feature-branch")
	if !strings.Contains(out, "deleted branch 'feature-branch'") {
		t.Errorf("branch -d output:\n%s", out)
	}
	if strings.Contains(out, "  feature-branch ") {
		t.Errorf("deleted branch still listed:\n%s", out)
	}

	if _, err := runCLI(t, "-s", path, "branch", "-d", "main"); err == nil {
		t.Error("deleting the current branch should fail")
	}
	if _, err := runCLI(t, "-s", path, "branch", "-d", "ghost"); err == nil {
		t.Error("deleting an unknown branch should fail")
	}
	if _, err := runCLI(t, "-s", path, "branch", "x", "nope"); err == nil {
		t.Error("creating a branch at an unknown revision should fail")
	}
}

func TestSnapshotJSON(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	out := mustRunCLI(t, "-s", path, "snapshot")

	var snap struct {
		Nodes      []json.RawMessage `json:"nodes"`
		Edges      []json.RawMessage `json:"edges"`
		CurrentRef string            `json:"currentRef"`
	}
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("snapshot is not JSON: %v", err)
	}
	if len(snap.Nodes) != 4 || len(snap.Edges) != 3 || snap.CurrentRef != "main" {
		t.Errorf("snapshot: %d nodes, %d edges, currentRef %q", len(snap.Nodes), len(snap.Edges), snap.CurrentRef)
	}
}

func TestAnalyzeToFile(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	dest := filepath.Join(t.TempDir(), "report.yaml")
	mustRunCLI(t, "-s", path, "analyze", "-o", dest)

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hasCycle: false") {
		t.Errorf("report missing hasCycle:\n%s", data)
	}
}

func TestPathCommand(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	out := mustRunCLI(t, "-s", path, "path", "feature-branch", "main")
	if !strings.Contains(out, "2 edges") {
		t.Errorf("path output:\n%s", out)
	}
}

func TestDotCommand(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	out := mustRunCLI(t, "-s", path, "dot")
	if !strings.HasPrefix(out, "digraph G {") || strings.Count(out, "->") < 3 {
		t.Errorf("dot output:\n%s", out)
	}
}

func TestMissingScenarioFlag(t *testing.T) {
	if _, err := runCLI(t, "stats"); err == nil {
		t.Fatal("expected an error without --scenario")
	}
}

func TestUnknownRevision(t *testing.T) {
	path := writeScenario(t, forkedScenario)
	if _, err := runCLI(t, "-s", path, "show", "nope"); err == nil {
		t.Fatal("show nope should fail")
	}
	if _, err := runCLI(t, "-s", path, "merge-base", "nope", "main"); err == nil {
		t.Fatal("merge-base nope main should fail")
	}
}
