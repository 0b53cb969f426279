package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/quest-campus/lostfound/internal/db"
	"github.com/quest-campus/lostfound/internal/model"
)

func testReport(title, category string) *model.Item {
	return &model.Item{
		Title:       title,
		Description: "A description of the item",
		Category:    category,
		Location:    "Library entrance",
		ItemDate:    "2026-03-14",
		ContactInfo: "jane.doe@campus.edu",
	}
}

func mustCreate(t *testing.T, database *sql.DB, title, category string) *model.Item {
	t.Helper()
	item, err := CreateItem(context.Background(), database, testReport(title, category))
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	return item
}

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	in := testReport("Black wallet", model.CategoryLost)
	in.Status = model.StatusClaimed // must be ignored on create
	item, err := CreateItem(ctx, database, in)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if item.ID == 0 {
		t.Error("expected assigned id")
	}
	if item.Status != model.StatusPending {
		t.Errorf("expected status forced to pending, got %q", item.Status)
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Error("expected populated timestamps")
	}

	got, err := GetItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Title != "Black wallet" || got.Category != model.CategoryLost {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.ItemDate != "2026-03-14" {
		t.Errorf("expected item date preserved, got %q", got.ItemDate)
	}
	if got.ContactInfo != "jane.doe@campus.edu" {
		t.Errorf("expected contact info preserved, got %q", got.ContactInfo)
	}
}

func TestGetItemMissing(t *testing.T) {
	database := db.NewTestDB(t)

	item, err := GetItem(context.Background(), database, 999)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil for missing item, got %+v", item)
	}
}

func TestListItemsFiltersAndOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first := mustCreate(t, database, "Umbrella", model.CategoryLost)
	second := mustCreate(t, database, "Keys", model.CategoryFound)
	third := mustCreate(t, database, "Wallet", model.CategoryLost)
	if err := UpdateItemStatus(ctx, database, third.ID, model.StatusClaimed, model.CategoryFound); err != nil {
		t.Fatalf("UpdateItemStatus: %v", err)
	}

	all, err := ListItems(ctx, database, "", "")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}
	// Newest-first: the last created report comes back first.
	if all[0].ID != third.ID || all[2].ID != first.ID {
		t.Errorf("expected newest-first order, got ids %d,%d,%d", all[0].ID, all[1].ID, all[2].ID)
	}

	lost, err := ListItems(ctx, database, model.CategoryLost, "")
	if err != nil {
		t.Fatalf("ListItems(lost): %v", err)
	}
	if len(lost) != 1 || lost[0].ID != first.ID {
		t.Errorf("expected only the remaining lost item, got %+v", lost)
	}

	lostPending, err := ListItems(ctx, database, model.CategoryFound, model.StatusPending)
	if err != nil {
		t.Fatalf("ListItems(found,pending): %v", err)
	}
	if len(lostPending) != 1 || lostPending[0].ID != second.ID {
		t.Errorf("expected one found+pending item, got %+v", lostPending)
	}
}

func TestReplaceItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item := mustCreate(t, database, "Umbrella", model.CategoryLost)

	replacement := testReport("Red umbrella", model.CategoryFound)
	replacement.Status = model.StatusClaimed
	ok, err := ReplaceItem(ctx, database, item.ID, replacement)
	if err != nil {
		t.Fatalf("ReplaceItem: %v", err)
	}
	if !ok {
		t.Fatal("expected replace to hit an existing row")
	}

	got, _ := GetItem(ctx, database, item.ID)
	if got.Title != "Red umbrella" || got.Category != model.CategoryFound || got.Status != model.StatusClaimed {
		t.Errorf("replace not applied: %+v", got)
	}

	ok, err = ReplaceItem(ctx, database, 999, replacement)
	if err != nil {
		t.Fatalf("ReplaceItem(missing): %v", err)
	}
	if ok {
		t.Error("expected replace of missing item to report no rows")
	}
}

func TestUpdateItemStatusAtomicTwoFieldWrite(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item := mustCreate(t, database, "Wallet", model.CategoryLost)
	if err := UpdateItemStatus(ctx, database, item.ID, model.StatusClaimed, model.CategoryFound); err != nil {
		t.Fatalf("UpdateItemStatus: %v", err)
	}

	got, _ := GetItem(ctx, database, item.ID)
	if got.Status != model.StatusClaimed {
		t.Errorf("expected status claimed, got %q", got.Status)
	}
	if got.Category != model.CategoryFound {
		t.Errorf("expected category found, got %q", got.Category)
	}
}

func TestDeleteItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item := mustCreate(t, database, "Wallet", model.CategoryLost)

	deleted, err := DeleteItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to hit an existing row")
	}

	got, _ := GetItem(ctx, database, item.ID)
	if got != nil {
		t.Error("expected item gone after delete")
	}

	deleted, err = DeleteItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("DeleteItem(again): %v", err)
	}
	if deleted {
		t.Error("expected second delete to report no rows")
	}
}

func TestItemPhoto(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item := mustCreate(t, database, "Wallet", model.CategoryLost)

	ok, err := SetItemPhoto(ctx, database, item.ID, []byte("fake photo data"), "image/jpeg")
	if err != nil {
		t.Fatalf("SetItemPhoto: %v", err)
	}
	if !ok {
		t.Fatal("expected photo write to hit an existing row")
	}

	data, mime, err := GetItemPhoto(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItemPhoto: %v", err)
	}
	if string(data) != "fake photo data" {
		t.Errorf("expected photo data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}

	data, _, err = GetItemPhoto(ctx, database, 999)
	if err != nil {
		t.Fatalf("GetItemPhoto(missing): %v", err)
	}
	if data != nil {
		t.Error("expected nil data for missing item")
	}
}
