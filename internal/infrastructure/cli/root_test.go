package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

type testEnv struct {
	configPath string
	dbPath     string
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENAI_ORG_ID", "MOVIEREC_CLI_TEST_KEY", "MOVIEREC_CONFIG",
		"MOVIEREC_DB_PATH", "MOVIEREC_LOG_LEVEL", "HOST", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	clearEnv(t)

	dir := t.TempDir()
	env := testEnv{
		configPath: filepath.Join(dir, "movierec.yaml"),
		dbPath:     filepath.Join(dir, "movies.db"),
	}
	raw := "generative:\n  auth_env_var: MOVIEREC_CLI_TEST_KEY\n" +
		"storage:\n  database_path: " + env.dbPath + "\n" +
		"logging:\n  level: error\n"
	if err := os.WriteFile(env.configPath, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}
	return env
}

func run(t *testing.T, env testEnv, args ...string) (string, string, error) {
	t.Helper()
	var stderr bytes.Buffer
	root, closer := NewRootCmd(Options{ConfigPath: env.configPath, Stderr: &stderr})
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	if cerr := closer(context.Background()); cerr != nil && err == nil {
		err = cerr
	}
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, testEnv{}, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "movierec version ") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "Go version: ") {
		t.Fatalf("missing go version in %q", out)
	}
}

func TestRecommendFallsBackAndLogs(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := run(t, env, "recommend", "comedy", "night")
	if err != nil {
		t.Fatalf("recommend error: %v", err)
	}
	if !strings.Contains(out, "source: fallback") {
		t.Fatalf("expected fallback source in %q", out)
	}
	if !strings.Contains(out, "1. The Grand Budapest Hotel") || !strings.Contains(out, "5. Bridesmaids") {
		t.Fatalf("expected comedy list in %q", out)
	}

	out, _, err = run(t, env, "history", "list")
	if err != nil {
		t.Fatalf("history list error: %v", err)
	}
	if !strings.Contains(out, "| comedy night | The Grand Budapest Hotel, ") {
		t.Fatalf("expected logged entry in %q", out)
	}

	out, _, err = run(t, env, "history", "search", "budapest")
	if err != nil {
		t.Fatalf("history search error: %v", err)
	}
	if !strings.Contains(out, "comedy night") {
		t.Fatalf("expected search hit in %q", out)
	}
}

func TestRecommendJSONMatchesAPIBody(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := run(t, env, "recommend", "--json", "a horror film")
	if err != nil {
		t.Fatalf("recommend error: %v", err)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if body["source"] != "fallback" {
		t.Fatalf("source = %q", body["source"])
	}
	if !strings.HasPrefix(body["movies"], "The Shining, ") {
		t.Fatalf("movies = %q", body["movies"])
	}
}

func TestHistoryEmptyAndSearchValidation(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := run(t, env, "history", "list")
	if err != nil {
		t.Fatalf("history list error: %v", err)
	}
	if strings.TrimSpace(out) != "No history recorded yet." {
		t.Fatalf("unexpected output %q", out)
	}

	if _, _, err := run(t, env, "history", "search"); err == nil || !strings.Contains(err.Error(), "--query required") {
		t.Fatalf("expected query error, got %v", err)
	}
	if _, _, err := run(t, env, "history", "list", "--limit", "-1"); err == nil {
		t.Fatal("expected limit error")
	}
}

func TestTestOpenAIWithoutCredentialFails(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := run(t, env, "test-openai")
	if err == nil {
		t.Fatal("expected error without credential")
	}
	if !strings.Contains(out, "Status: FAILED") || !strings.Contains(out, "MOVIEREC_CLI_TEST_KEY") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDoctorReportsMissingCredential(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := run(t, env, "doctor")
	if err != nil {
		t.Fatalf("doctor error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[WARN] API key") {
		t.Fatalf("expected credential warning in %q", out)
	}
	if !strings.Contains(out, "[OK] Request log") {
		t.Fatalf("expected request log check in %q", out)
	}
}

func TestConfigInitShowAndDiff(t *testing.T) {
	clearEnv(t)
	env := testEnv{configPath: filepath.Join(t.TempDir(), "conf", "movierec.yaml")}

	out, _, err := run(t, env, "config", "init")
	if err != nil {
		t.Fatalf("config init error: %v", err)
	}
	if !strings.Contains(out, env.configPath) {
		t.Fatalf("unexpected output %q", out)
	}
	if _, _, err := run(t, env, "config", "init"); err == nil {
		t.Fatal("expected error when file exists")
	}
	if _, _, err := run(t, env, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force error: %v", err)
	}

	out, _, err = run(t, env, "config", "show")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out, "model_id: gpt-3.5-turbo") {
		t.Fatalf("expected default model in %q", out)
	}

	out, _, err = run(t, env, "config", "diff")
	if err != nil {
		t.Fatalf("config diff error: %v", err)
	}
	if strings.TrimSpace(out) != "No differences from default configuration." {
		t.Fatalf("unexpected diff %q", out)
	}

	out, _, err = run(t, env, "config", "validate")
	if err != nil || strings.TrimSpace(out) != "Configuration valid" {
		t.Fatalf("validate = %q, %v", out, err)
	}
}
