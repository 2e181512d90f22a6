package gdrive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/option"

	"asana-drive-backup/internal/backup/repository"
	"asana-drive-backup/internal/model"
	"asana-drive-backup/pkg/gdrive"
	"asana-drive-backup/pkg/gsheets"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeGoogle is an in-memory Drive + Sheets backend served over httptest.
type fakeGoogle struct {
	folders       map[string]string // name -> id
	folderCreates int
	moves         []string // "fileID->folderID"
	valueRanges   []string
	valueRows     map[string][][]any // range -> rows
	batchUpdates  int
}

func newFakeGoogle() *fakeGoogle {
	return &fakeGoogle{
		folders:   map[string]string{},
		valueRows: map[string][][]any{},
	}
}

func (f *fakeGoogle) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		// Drive: files.list
		case r.Method == http.MethodGet && path == "/files":
			q := r.URL.Query().Get("q")
			if !strings.Contains(q, "trashed = false") {
				t.Errorf("query must exclude trashed files: %q", q)
			}
			files := []map[string]string{}
			for name, id := range f.folders {
				if strings.Contains(q, fmt.Sprintf("name = '%s'", name)) {
					files = append(files, map[string]string{"id": id, "name": name})
				}
			}
			json.NewEncoder(w).Encode(map[string]any{"files": files})

		// Drive: files.create
		case r.Method == http.MethodPost && path == "/files":
			var file struct {
				Name     string `json:"name"`
				MimeType string `json:"mimeType"`
			}
			json.NewDecoder(r.Body).Decode(&file)
			f.folderCreates++
			id := fmt.Sprintf("folder-%d", f.folderCreates)
			f.folders[file.Name] = id
			json.NewEncoder(w).Encode(map[string]string{"id": id})

		// Drive: files.update (move)
		case r.Method == http.MethodPatch && strings.HasPrefix(path, "/files/"):
			fileID := strings.TrimPrefix(path, "/files/")
			f.moves = append(f.moves, fileID+"->"+r.URL.Query().Get("addParents"))
			json.NewEncoder(w).Encode(map[string]string{"id": fileID})

		// Sheets: spreadsheets.create
		case r.Method == http.MethodPost && path == "/v4/spreadsheets":
			json.NewEncoder(w).Encode(map[string]string{"spreadsheetId": "doc-1"})

		// Sheets: values.update
		case r.Method == http.MethodPut && strings.Contains(path, "/values/"):
			valueRange := path[strings.Index(path, "/values/")+len("/values/"):]
			var body struct {
				Values [][]any `json:"values"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			f.valueRanges = append(f.valueRanges, valueRange)
			f.valueRows[valueRange] = body.Values
			json.NewEncoder(w).Encode(map[string]any{})

		// Sheets: spreadsheets.batchUpdate
		case r.Method == http.MethodPost && strings.HasSuffix(path, ":batchUpdate"):
			f.batchUpdates++
			json.NewEncoder(w).Encode(map[string]any{})

		default:
			t.Errorf("unexpected request: %s %s", r.Method, path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestDestination(t *testing.T, ts *httptest.Server) *implDestination {
	ctx := context.Background()

	driveClient, err := gdrive.NewClient(ctx,
		option.WithEndpoint(ts.URL), option.WithHTTPClient(ts.Client()))
	if err != nil {
		t.Fatalf("drive client: %v", err)
	}
	sheetsClient, err := gsheets.NewClient(ctx,
		option.WithEndpoint(ts.URL), option.WithHTTPClient(ts.Client()))
	if err != nil {
		t.Fatalf("sheets client: %v", err)
	}

	return &implDestination{
		drive:  driveClient,
		sheets: sheetsClient,
		l:      &mockLogger{},
		now:    func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) },
	}
}

func TestEnsureFolder(t *testing.T) {
	fake := newFakeGoogle()
	ts := httptest.NewServer(fake.handler(t))
	defer ts.Close()

	dest := newTestDestination(t, ts)
	ctx := context.Background()

	first, err := dest.EnsureFolder(ctx, "Alpha - Asana Backup", "root-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := dest.EnsureFolder(ctx, "Alpha - Asana Backup", "root-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if first != second {
		t.Errorf("sequential calls returned different folders: %s vs %s", first, second)
	}
	if fake.folderCreates != 1 {
		t.Errorf("expected exactly one folder create, got %d", fake.folderCreates)
	}
}

func TestCreateTasksDocument(t *testing.T) {
	fake := newFakeGoogle()
	ts := httptest.NewServer(fake.handler(t))
	defer ts.Close()

	dest := newTestDestination(t, ts)
	ctx := context.Background()

	docID, err := dest.CreateTasksDocument(ctx, repository.CreateDocumentOptions{
		Title:    "Backup_2026-08-31",
		FolderID: "folder-1",
		Project:  model.Project{GID: "p1", Name: "Alpha", Owner: "Ada"},
		Tasks:    []model.Task{{Name: "Ship report", Completed: true}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if docID != "doc-1" {
		t.Errorf("unexpected document ID: %s", docID)
	}

	if len(fake.moves) != 1 || fake.moves[0] != "doc-1->folder-1" {
		t.Errorf("expected document moved into folder, got %v", fake.moves)
	}

	if len(fake.valueRanges) != 2 {
		t.Fatalf("expected 2 value writes, got %v", fake.valueRanges)
	}
	tasksRows := fake.valueRows[fake.valueRanges[0]]
	if len(tasksRows) != 2 {
		t.Errorf("expected header + 1 task row, got %d rows", len(tasksRows))
	}
	if tasksRows[1][1] != "Completed" {
		t.Errorf("expected Completed status, got %v", tasksRows[1][1])
	}
	infoRows := fake.valueRows[fake.valueRanges[1]]
	if len(infoRows) != 11 {
		t.Errorf("expected 11 project info rows, got %d", len(infoRows))
	}

	if fake.batchUpdates != 1 {
		t.Errorf("expected one formatting batch update, got %d", fake.batchUpdates)
	}
}

func TestDestinationNotConfigured(t *testing.T) {
	dest := New(&mockLogger{}, nil, nil)
	ctx := context.Background()

	if _, err := dest.EnsureFolder(ctx, "x", "root"); !errors.Is(err, repository.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := dest.CreateTasksDocument(ctx, repository.CreateDocumentOptions{}); !errors.Is(err, repository.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
