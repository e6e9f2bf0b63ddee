// ABOUTME: Integration tests for the practice CLI.
// ABOUTME: Builds the binary and drives it against an in-process fake API.
package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeAPI is a minimal in-memory rendition of the practice server,
// covering just the endpoints the workflow below touches.
type fakeAPI struct {
	mu         sync.Mutex
	nextID     int64
	categories []map[string]any
	exercises  []map[string]any
	sessions   []map[string]any
	history    []map[string]any
}

func (f *fakeAPI) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	collection := func(path, key string, items *[]map[string]any) {
		mux.HandleFunc("/api/v1/"+path, func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(map[string]any{
					key:           *items,
					"total_count": len(*items),
				})
			case http.MethodPost:
				var body map[string]any
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				body["id"] = f.id()
				*items = append(*items, body)
				json.NewEncoder(w).Encode(body)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		})
	}

	collection("categories", "categories", &f.categories)
	collection("tags", "tags", &[]map[string]any{})
	collection("exercises", "exercises", &f.exercises)
	collection("sessions", "sessions", &f.sessions)
	collection("history", "history_entries", &f.history)

	mux.HandleFunc("/api/v1/sessions/stats", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{
			"total_sessions":               len(f.sessions),
			"total_duration_seconds":       1800 * len(f.sessions),
			"avg_session_duration_seconds": 1800,
		})
	})

	mux.HandleFunc("/api/v1/sessions/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		idStr := strings.TrimPrefix(r.URL.Path, "/api/v1/sessions/")
		for _, s := range f.sessions {
			if fmt.Sprint(s["id"]) == idStr {
				if r.Method == http.MethodPatch {
					var body struct {
						Session map[string]any `json:"session"`
					}
					if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
						w.WriteHeader(http.StatusBadRequest)
						return
					}
					for k, v := range body.Session {
						if k != "id" {
							s[k] = v
						}
					}
				}
				json.NewEncoder(w).Encode(s)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	})

	return mux
}

func TestFullWorkflow(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "practice")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/practice")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	configDir := t.TempDir()
	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = append(os.Environ(),
			"PRACTICE_SERVER="+srv.URL+"/api/v1",
			"XDG_CONFIG_HOME="+configDir,
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Create a category and an exercise
	output, err := run("add", "category", "Technique")
	if err != nil {
		t.Fatalf("Failed to add category: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Created category") {
		t.Errorf("Expected 'Created category' in output, got: %s", output)
	}

	output, err = run("add", "exercise", "Spider chromatics", "--desc", "All four fingers")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Created exercise") {
		t.Errorf("Expected 'Created exercise' in output, got: %s", output)
	}

	// Listing shows the exercise
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Spider chromatics") {
		t.Errorf("Expected 'Spider chromatics' in list output, got: %s", output)
	}

	// Session lifecycle
	output, err = run("sessions", "start")
	if err != nil {
		t.Fatalf("Failed to start session: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Started session") {
		t.Errorf("Expected 'Started session' in output, got: %s", output)
	}

	output, err = run("sessions", "end")
	if err != nil {
		t.Fatalf("Failed to end session: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Ended session") {
		t.Errorf("Expected 'Ended session' in output, got: %s", output)
	}

	// Standalone practice log and history listing
	output, err = run("log", "2", "--bpm", "96")
	if err != nil {
		t.Fatalf("Failed to log practice: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged practice entry") {
		t.Errorf("Expected 'Logged practice entry' in output, got: %s", output)
	}

	output, err = run("history")
	if err != nil {
		t.Fatalf("Failed to list history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "96 bpm") {
		t.Errorf("Expected '96 bpm' in history output, got: %s", output)
	}

	// Aggregate stats
	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to fetch stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Sessions:") {
		t.Errorf("Expected 'Sessions:' in stats output, got: %s", output)
	}
}

func TestBootstrapsWithoutConfigFile(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "practice")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/practice")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	cmd := exec.Command(binary, "--help")
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+t.TempDir())
	done := make(chan error, 1)
	var out []byte
	go func() {
		var err error
		out, err = cmd.CombinedOutput()
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("help failed: %v\n%s", err, out)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("help command hung")
	}
	if !strings.Contains(string(out), "practice") {
		t.Errorf("Expected usage text, got: %s", out)
	}
}
