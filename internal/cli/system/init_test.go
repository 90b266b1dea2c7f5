package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taskquest/taskquest/internal/cli"
	"github.com/taskquest/taskquest/internal/engine"
	"github.com/taskquest/taskquest/internal/storage"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := storage.NewSQLiteStore(dbPath)
	eng := engine.New(store)
	eng.SetUser("test")

	ctx := &cli.Context{
		Store:  store,
		Engine: eng,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, dbPath, cleanup
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("init command failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("storage file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed: %v", err)
	}
}

func TestInitCmd_Force(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	// Write some user state, then force-reset and verify it is gone.
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := ctx.Engine.LoadUser(); err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	ctx.Engine.AddTask("Doomed task", "")
	ctx.Engine.Flush()

	forced := &InitCmd{Force: true}
	if err := forced.Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("storage file missing after forced init")
	}

	fresh := storage.NewSQLiteStore(dbPath)
	if err := fresh.Load(); err != nil {
		t.Fatalf("load after forced init: %v", err)
	}
	defer fresh.Close()

	_, found, err := fresh.GetUserState("test")
	if err != nil {
		t.Fatalf("get user state: %v", err)
	}
	if found {
		t.Error("forced init should wipe existing user state")
	}
}

func TestMaskPassword(t *testing.T) {
	cases := map[string]string{
		"postgres://alice:hunter2@db:5432/tq": "postgres://alice:****@db:5432/tq",
		"postgres://alice@db:5432/tq":         "postgres://alice@db:5432/tq",
		"host=db user=alice password=hunter2": "host=db user=alice password=****",
	}
	for in, want := range cases {
		if got := maskPassword(in); got != want {
			t.Errorf("maskPassword(%q) = %q, want %q", in, got, want)
		}
	}
}
