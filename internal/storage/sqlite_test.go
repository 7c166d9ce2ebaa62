package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sneakout/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreMoney(t *testing.T) {
	store := openTestStore(t)

	money, err := store.Money()
	if err != nil {
		t.Fatalf("Money() failed: %v", err)
	}
	if money != 0 {
		t.Errorf("Expected fresh balance 0, got %d", money)
	}

	if err := store.AddMoney(150); err != nil {
		t.Fatalf("AddMoney() failed: %v", err)
	}
	if err := store.SpendMoney(50); err != nil {
		t.Fatalf("SpendMoney() failed: %v", err)
	}

	money, err = store.Money()
	if err != nil {
		t.Fatalf("Money() failed: %v", err)
	}
	if money != 100 {
		t.Errorf("Expected balance 100, got %d", money)
	}

	// Overdraw must be refused and leave the balance untouched
	if err := store.SpendMoney(500); err == nil {
		t.Error("Expected overdraw to fail")
	}
	money, _ = store.Money()
	if money != 100 {
		t.Errorf("Expected balance 100 after refused spend, got %d", money)
	}
}

func TestStoreUnlocks(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordUnlock("h-leg-0"); err != nil {
		t.Fatalf("RecordUnlock() failed: %v", err)
	}
	if err := store.RecordUnlock("h-leg-0"); err != nil {
		t.Fatalf("RecordUnlock() failed: %v", err)
	}
	if err := store.RecordUnlock("s-rare-3"); err != nil {
		t.Fatalf("RecordUnlock() failed: %v", err)
	}

	unlocks, err := store.Unlocks()
	if err != nil {
		t.Fatalf("Unlocks() failed: %v", err)
	}
	if len(unlocks) != 2 {
		t.Fatalf("Expected 2 unlocks, got %d", len(unlocks))
	}

	// Most-extracted first
	if unlocks[0].LootID != "h-leg-0" || unlocks[0].Count != 2 {
		t.Errorf("Expected h-leg-0 x2 first, got %s x%d", unlocks[0].LootID, unlocks[0].Count)
	}
	if unlocks[1].LootID != "s-rare-3" || unlocks[1].Count != 1 {
		t.Errorf("Expected s-rare-3 x1 second, got %s x%d", unlocks[1].LootID, unlocks[1].Count)
	}
}

func TestStoreConsumables(t *testing.T) {
	store := openTestStore(t)

	if err := store.AddConsumable(engine.ConsumableSpray); err != nil {
		t.Fatalf("AddConsumable() failed: %v", err)
	}
	if err := store.AddConsumable(engine.ConsumableSpray); err != nil {
		t.Fatalf("AddConsumable() failed: %v", err)
	}

	stock, err := store.Consumables()
	if err != nil {
		t.Fatalf("Consumables() failed: %v", err)
	}
	if stock[engine.ConsumableSpray] != 2 {
		t.Errorf("Expected 2 sprays, got %d", stock[engine.ConsumableSpray])
	}

	if err := store.SpendConsumable(engine.ConsumableSpray); err != nil {
		t.Fatalf("SpendConsumable() failed: %v", err)
	}

	// Spending a gadget that was never bought must fail
	if err := store.SpendConsumable(engine.ConsumableDie); err == nil {
		t.Error("Expected spending missing consumable to fail")
	}

	stock, _ = store.Consumables()
	if stock[engine.ConsumableSpray] != 1 {
		t.Errorf("Expected 1 spray left, got %d", stock[engine.ConsumableSpray])
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	records := []RunRecord{
		{Archetype: "home", Outcome: "victory", Payout: 88, Turns: 42, LootCount: 3},
		{Archetype: "school", Outcome: "game over", Payout: 0, Turns: 17, LootCount: 1},
		{Archetype: "company", Outcome: "victory", Payout: 128, Turns: 99, LootCount: 5},
	}
	for _, rec := range records {
		if _, err := store.RecordRun(rec); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Archetype != "company" {
		t.Errorf("Expected newest run first, got %s", runs[0].Archetype)
	}
	if runs[0].Payout != 128 {
		t.Errorf("Expected payout 128, got %d", runs[0].Payout)
	}
	if runs[1].Outcome != "game over" {
		t.Errorf("Expected second run outcome 'game over', got %s", runs[1].Outcome)
	}
}
