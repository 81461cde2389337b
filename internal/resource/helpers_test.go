package resource

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hatsmod/hats/internal/tabula"
)

type recordLogger struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	fatals []string
}

func (r *recordLogger) Infof(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordLogger) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

func (r *recordLogger) Fatalf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recordLogger) hasWarn(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.warns {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

// countingResource is a fyne.Resource that records how often it was read
type countingResource struct {
	name  string
	data  []byte
	reads atomic.Int32
}

func (c *countingResource) Name() string { return c.name }

func (c *countingResource) Content() []byte {
	c.reads.Add(1)
	return c.data
}

type bundleEntry struct {
	name string
	data []byte
}

func buildBundle(t *testing.T, entries ...bundleEntry) *countingResource {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			t.Fatalf("Failed to add bundle entry %s: %v", entry.name, err)
		}
		if entry.data != nil {
			if _, err := w.Write(entry.data); err != nil {
				t.Fatalf("Failed to write bundle entry %s: %v", entry.name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close bundle: %v", err)
	}
	return &countingResource{name: "hats.zip", data: buf.Bytes()}
}

// hatDoc returns a model document whose base part and nested child both sit at pivotY
func hatDoc(version int, pivotY float64) string {
	return fmt.Sprintf(`{"projName":"hat","authorName":"maker","projVersion":%d,"notes":[],`+
		`"parts":[{"name":"base","rotPY":%v,"boxes":[{"dimX":4,"dimY":4,"dimZ":4}],`+
		`"children":[{"name":"tip","rotPY":%v}]}]}`, version, pivotY, pivotY)
}

func hatArchive(t *testing.T, doc string) []byte {
	t.Helper()
	data, err := tabula.Build([]byte(doc), nil)
	if err != nil {
		t.Fatalf("Failed to build hat archive: %v", err)
	}
	return data
}

func writeHat(t *testing.T, path, doc string) {
	t.Helper()
	writeFile(t, path, hatArchive(t, doc))
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func newTestHandler(t *testing.T, dir string) (*Handler, *recordLogger) {
	t.Helper()
	logger := &recordLogger{}
	return NewHandler(Options{Dir: dir, Logger: logger}), logger
}
