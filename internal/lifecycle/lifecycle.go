// Package lifecycle implements the item status state machine.
//
// A report moves between pending and claimed; resolved is end-of-life and is
// modeled as deletion rather than a stored terminal state, which keeps the
// board free of dead rows. Claiming a lost report reclassifies it as found:
// a claimed item is physically at the found desk, so it belongs on the found
// board. That flip is a business rule and lives only here; storage and
// validation stay agnostic to it.
package lifecycle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quest-campus/lostfound/internal/model"
	"github.com/quest-campus/lostfound/internal/store"
)

// Action tags a transition outcome.
type Action string

const (
	// ActionUpdated is an ordinary status rewrite (pending reset, or a
	// no-op rewrite of the current status).
	ActionUpdated Action = "updated"
	// ActionClaimed marks the claim transition, including the lost→found
	// category flip.
	ActionClaimed Action = "claimed"
	// ActionDeleted marks resolution: the record was removed and the result
	// carries its final snapshot.
	ActionDeleted Action = "deleted"
)

// Result is the tagged outcome of a transition, so callers cannot mistake a
// deletion for an ordinary update. For ActionDeleted, Item is the snapshot
// of the removed record; otherwise it is the rewritten record.
type Result struct {
	Action  Action
	Item    *model.Item
	Message string
}

// step is the pure transition decision for a (status, category) pair and a
// validated target status.
type step struct {
	remove   bool
	status   string
	category string
}

func decide(current *model.Item, target string) step {
	switch target {
	case model.StatusResolved:
		return step{remove: true}
	case model.StatusClaimed:
		category := current.Category
		if category == model.CategoryLost {
			category = model.CategoryFound
		}
		return step{status: model.StatusClaimed, category: category}
	default:
		return step{status: target, category: current.Category}
	}
}

// Apply executes a transition for the given report. The target must already
// have passed validation. Returns nil if the report does not exist; an equal
// target is not special-cased and simply rewrites the same values.
func Apply(ctx context.Context, db *sql.DB, id int64, target string) (*Result, error) {
	current, err := store.GetItem(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	next := decide(current, target)

	if next.remove {
		if _, err := store.DeleteItem(ctx, db, id); err != nil {
			return nil, err
		}
		return &Result{
			Action:  ActionDeleted,
			Item:    current,
			Message: "Item has been resolved and removed from the system.",
		}, nil
	}

	if err := store.UpdateItemStatus(ctx, db, id, next.status, next.category); err != nil {
		return nil, err
	}

	updated, err := store.GetItem(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("item %d vanished during status update", id)
	}

	if target == model.StatusClaimed {
		message := "Status updated to claimed."
		if current.Category == model.CategoryLost {
			message = "Status updated to claimed. Item moved from Lost to Found."
		}
		return &Result{Action: ActionClaimed, Item: updated, Message: message}, nil
	}

	return &Result{Action: ActionUpdated, Item: updated, Message: "Status updated successfully."}, nil
}
