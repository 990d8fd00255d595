package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMainHelper is executed in a separate subprocess to call main() safely.
// It reconstructs os.Args based on the env var GO_HELPER_ARGS to avoid
// interference with the testing package's flags.
func TestMainHelper(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	// Rebuild os.Args as if the app was run directly
	helperArgs := os.Getenv("GO_HELPER_ARGS")
	if helperArgs != "" {
		os.Args = append([]string{"todo-exporter"}, strings.Split(helperArgs, "\x1f")...)
	} else {
		os.Args = []string{"todo-exporter"}
	}

	// Call the real main; it will call os.Exit(...) on failure
	main()
	os.Exit(0)
}

// runMain is a helper to spawn the current test binary and execute TestMainHelper
// which in turn calls the program's main().
func runMain(t *testing.T, args []string, extraEnv map[string]string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(os.Args[0], "-test.run", "^TestMainHelper$")

	env := os.Environ()
	env = append(env,
		"GO_WANT_HELPER_PROCESS=1",
		"GO_HELPER_ARGS="+strings.Join(args, "\x1f"),
		// Disable godotenv so tests don't pick up a local .env file
		"GODOTENV_DISABLE=1",
		"TODO_API_URL=http://127.0.0.1:9",
		"TODO_SOURCE=rest",
		"EXPORT_USERNAME=",
		"RESOLVE_USERNAME=",
		"SHOW_PROGRESS=",
		"VERBOSE=",
		"OUTPUT_DIR="+t.TempDir(),
	)
	for k, v := range extraEnv {
		env = append(env, k+"="+v)
	}
	cmd.Env = env

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err == nil {
		return outBuf.String(), errBuf.String(), 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return outBuf.String(), errBuf.String(), exitErr.ExitCode()
	}
	return outBuf.String(), errBuf.String(), -1
}

func TestMain_WrongArgumentCount_ExitsOneWithUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"1", "2"}, {"-x", "2"}} {
		stdout, stderr, code := runMain(t, args, nil)

		if code != 1 {
			t.Fatalf("args %v: expected exit code 1, got %d. Stderr: %s", args, code, stderr)
		}
		if stdout != "Usage: todo-exporter <USER_ID>\n" {
			t.Fatalf("args %v: expected usage message on stdout, got: %q", args, stdout)
		}
	}
}

func TestMain_NonIntegerUserID_ExitsOne(t *testing.T) {
	for _, arg := range []string{"abc", "-h", "-verbose"} {
		stdout, stderr, code := runMain(t, []string{arg}, nil)

		if code != 1 {
			t.Fatalf("%q: expected exit code 1, got %d. Stderr: %s", arg, code, stderr)
		}
		if stdout != "USER_ID must be an integer.\n" {
			t.Fatalf("%q: expected integer validation message on stdout, got: %q", arg, stdout)
		}
	}
}

func TestMain_NegativeUserID_IsExported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("userId"); got != "-5" {
			t.Errorf("expected userId=-5, got %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	stdout, stderr, code := runMain(t, []string{"-5"}, map[string]string{
		"TODO_API_URL": srv.URL,
		"OUTPUT_DIR":   dir,
	})

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d. Stderr: %s", code, stderr)
	}
	path := filepath.Join(dir, "-5.csv")
	if stdout != "Data exported to "+path+"\n" {
		t.Fatalf("unexpected confirmation: %q", stdout)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(b) != "USER_ID,USERNAME,TASK_COMPLETED_STATUS,TASK_TITLE\r\n" {
		t.Fatalf("expected header only, got %q", string(b))
	}
}

func TestMain_ExportError_ExitsOne(t *testing.T) {
	// Port 9 is typically closed; the fetch should fail immediately
	_, stderr, code := runMain(t, []string{"2"}, nil)

	if code != 1 {
		t.Fatalf("expected exit code 1 for export error, got %d. Output: %s", code, stderr)
	}
	if !strings.Contains(stderr, "Export fehlgeschlagen") {
		t.Fatalf("expected export error message, got: %s", stderr)
	}
}

func TestMain_Success_WritesFileAndConfirms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"completed": true, "title": "Task A"}, {"completed": false, "title": "Task B"}]`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	stdout, stderr, code := runMain(t, []string{"2"}, map[string]string{
		"TODO_API_URL": srv.URL,
		"OUTPUT_DIR":   dir,
	})

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d. Stderr: %s", code, stderr)
	}

	path := filepath.Join(dir, "2.csv")
	if stdout != "Data exported to "+path+"\n" {
		t.Fatalf("unexpected confirmation: %q", stdout)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	want := "USER_ID,USERNAME,TASK_COMPLETED_STATUS,TASK_TITLE\r\n2,Antonette,True,Task A\r\n2,Antonette,False,Task B\r\n"
	if string(b) != want {
		t.Fatalf("CSV mismatch\nwant: %q\ngot:  %q", want, string(b))
	}
}
