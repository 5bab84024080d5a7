package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ktsuji/habitloop/internal/constants"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "habitloop.json")
	if err := os.WriteFile(storePath, []byte(`{"version":2,"tasks":[]}`), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(storePath), storePath
}

func TestCreateBackup(t *testing.T) {
	m, storePath := newTestManager(t)

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) {
		t.Errorf("backup name = %q, want %q prefix", name, constants.BackupFilePrefix)
	}
	if filepath.Ext(path) != ".json" {
		t.Errorf("backup extension = %q, want .json", filepath.Ext(path))
	}
	if filepath.Dir(path) != m.GetBackupDir() {
		t.Errorf("backup dir = %q, want %q", filepath.Dir(path), m.GetBackupDir())
	}

	want, _ := os.ReadFile(storePath)
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("backup content = %q, want %q", got, want)
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "habitloop.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("CreateBackup() on a missing store succeeded, want error")
	}
}

func TestListBackupsEmpty(t *testing.T) {
	m, _ := newTestManager(t)
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("ListBackups() = %d entries, want 0", len(backups))
	}
}

func TestListBackupsNewestFirstAndFiltered(t *testing.T) {
	m, _ := newTestManager(t)
	dir := m.GetBackupDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("%sfake-%d.json", constants.BackupFilePrefix, i)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
		ts := base.Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(path, ts, ts); err != nil {
			t.Fatal(err)
		}
	}

	// Neither of these should be listed.
	if err := os.WriteFile(filepath.Join(dir, "unrelated.json"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, constants.BackupFilePrefix+"dir"), 0700); err != nil {
		t.Fatal(err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("ListBackups() = %d entries, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups out of order: [%d] %v after [%d] %v",
				i, backups[i].Timestamp, i-1, backups[i-1].Timestamp)
		}
	}
	if backups[0].Size != 1 {
		t.Errorf("Size = %d, want 1", backups[0].Size)
	}
}

func TestCreateBackupRotates(t *testing.T) {
	m, _ := newTestManager(t)
	dir := m.GetBackupDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < constants.MaxBackups+2; i++ {
		name := fmt.Sprintf("%sfake-%02d.json", constants.BackupFilePrefix, i)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
			t.Fatal(err)
		}
		ts := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(path, ts, ts); err != nil {
			t.Fatal(err)
		}
	}

	created, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("ListBackups() after rotation = %d entries, want %d", len(backups), constants.MaxBackups)
	}
	if backups[0].Path != created {
		t.Errorf("newest backup = %q, want the just-created %q", backups[0].Path, created)
	}
	// The oldest fakes are the ones rotated out.
	for _, b := range backups {
		switch filepath.Base(b.Path) {
		case constants.BackupFilePrefix + "fake-00.json",
			constants.BackupFilePrefix + "fake-01.json",
			constants.BackupFilePrefix + "fake-02.json":
			t.Errorf("old backup %q survived rotation", b.Path)
		}
	}
}

func TestRestore(t *testing.T) {
	m, storePath := newTestManager(t)

	created, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	// Rename so the pre-restore snapshot cannot land on the same name.
	backupPath := filepath.Join(m.GetBackupDir(), constants.BackupFilePrefix+"keep.json")
	if err := os.Rename(created, backupPath); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(storePath, []byte(`{"version":2,"tasks":null}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(backupPath); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	got, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"version":2,"tasks":[]}` {
		t.Errorf("store after restore = %q, want original content", got)
	}

	// The overwritten store was snapshotted before the restore.
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	found := false
	for _, b := range backups {
		data, err := os.ReadFile(b.Path)
		if err != nil {
			continue
		}
		if string(data) == `{"version":2,"tasks":null}` {
			found = true
		}
	}
	if !found {
		t.Error("no snapshot of the pre-restore store found")
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	m, _ := newTestManager(t)
	if err := m.Restore(filepath.Join(m.GetBackupDir(), "nope.json")); err == nil {
		t.Error("Restore() with missing backup succeeded, want error")
	}
}
