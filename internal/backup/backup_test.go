package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func seedStorageFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	dbPath := seedStorageFile(t, "wellness.db", "storage-bytes")
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("reading backup failed: %v", err)
	}
	if string(data) != "storage-bytes" {
		t.Errorf("backup content = %q, want the storage bytes", data)
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup landed in %s, want %s", filepath.Dir(backupPath), mgr.GetBackupDir())
	}
}

func TestCreateBackup_MissingStorageFile(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "wellness.db"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error when the storage file does not exist")
	}
}

func TestCreateBackup_MatchesStorageExtension(t *testing.T) {
	dbPath := seedStorageFile(t, "wellness.json", "{}")
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup name %s should carry the storage file's extension", filepath.Base(backupPath))
	}
}

func TestCreateBackup_CollidingTimestampsGetUniqueNames(t *testing.T) {
	dbPath := seedStorageFile(t, "wellness.db", "v1")
	mgr := NewManager(dbPath)

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first CreateBackup failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}
	if first == second {
		t.Error("two backups in the same minute must get distinct names")
	}
}

func TestListBackups(t *testing.T) {
	dbPath := seedStorageFile(t, "wellness.db", "v1")
	mgr := NewManager(dbPath)

	// No backup dir yet
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups on empty failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want none", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup size should be recorded")
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := seedStorageFile(t, "wellness.db", "original")
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if err := os.WriteFile(dbPath, []byte("clobbered"), 0600); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, _ := os.ReadFile(dbPath)
	if string(data) != "original" {
		t.Errorf("restored content = %q, want original", data)
	}

	// The clobbered state was itself backed up before the restore
	backups, _ := mgr.ListBackups()
	foundClobbered := false
	for _, b := range backups {
		content, _ := os.ReadFile(b.Path)
		if string(content) == "clobbered" {
			foundClobbered = true
		}
	}
	if !foundClobbered {
		t.Error("the pre-restore state should be preserved as a backup")
	}
}

func TestRestoreBackup_MissingBackup(t *testing.T) {
	dbPath := seedStorageFile(t, "wellness.db", "v1")
	mgr := NewManager(dbPath)

	if err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), "nope.db")); err == nil {
		t.Error("expected error for a missing backup file")
	}
}
