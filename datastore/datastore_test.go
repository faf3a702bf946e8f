package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestStore(t *testing.T) (*DataStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store.json")
	ds, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { ds.Close() })
	return ds, path
}

func TestAddGetDelete(t *testing.T) {
	ds, _ := newTestStore(t)

	ds.Add("key", map[string]any{"v": "1"})
	value, exists := ds.Get("key")
	if !exists {
		t.Fatal("key missing after Add")
	}
	if m, ok := value.(map[string]any); !ok || m["v"] != "1" {
		t.Fatalf("value = %#v", value)
	}

	ds.Delete("key")
	if _, exists := ds.Get("key"); exists {
		t.Fatal("key present after Delete")
	}
}

func TestKeysSorted(t *testing.T) {
	ds, _ := newTestStore(t)

	ds.Add("b", 1)
	ds.Add("a", 2)
	ds.Add("c", 3)

	if got := ds.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("Keys = %v", got)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	ds, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ds.Add("guild", map[string]any{"count": "42"})
	if err := ds.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, exists := reopened.Get("guild")
	if !exists {
		t.Fatal("data lost across reopen")
	}
	if m, ok := value.(map[string]any); !ok || m["count"] != "42" {
		t.Fatalf("value = %#v", value)
	}
}

func TestRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := New(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestBackupRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ds, err := NewWithConfig(&Config{FilePath: path, BackupCount: 2})
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	defer ds.Close()

	for i := 0; i < 3; i++ {
		ds.Add("k", i)
		if err := ds.SaveToFile(); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	for _, backup := range []string{path + ".bak.1", path + ".bak.2"} {
		if _, err := os.Stat(backup); err != nil {
			t.Fatalf("missing backup %s: %v", backup, err)
		}
	}
	if _, err := os.Stat(path + ".bak.3"); !os.IsNotExist(err) {
		t.Fatalf("backup beyond BackupCount should not exist, stat err = %v", err)
	}
}

func TestSaveSkippedWhenUnchanged(t *testing.T) {
	ds, path := newTestStore(t)

	ds.Add("k", "v")
	if err := ds.SaveToFile(); err != nil {
		t.Fatalf("save: %v", err)
	}
	// remove the file behind the store's back; an unchanged save must not
	// recreate it because the checksum short-circuits
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := ds.SaveToFile(); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("unchanged save rewrote the file")
	}
}

func TestNewWithConfigValidation(t *testing.T) {
	if _, err := NewWithConfig(nil); err == nil {
		t.Fatal("nil config accepted")
	}
	if _, err := NewWithConfig(&Config{}); err == nil {
		t.Fatal("empty file path accepted")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	ds, _ := newTestStore(t)
	if err := ds.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := ds.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func ExampleDataStore() {
	dir, _ := os.MkdirTemp("", "datastore")
	defer os.RemoveAll(dir)

	ds, _ := New(filepath.Join(dir, "store.json"))
	defer ds.Close()

	ds.Add("greeting", "hello")
	value, _ := ds.Get("greeting")
	fmt.Println(value)
	// Output: hello
}
