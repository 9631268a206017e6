package record

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rec(id string) Record {
	return Record{ID: id, Values: map[string]string{"name": id}}
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestStore_AppendKeepsOrderAndDuplicates(t *testing.T) {
	store := NewStore()
	store.Append(rec("a"))
	store.Append(rec("b"))
	store.Append(rec("a"))

	if diff := cmp.Diff([]string{"a", "b", "a"}, ids(store.All())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_AppendCopiesValues(t *testing.T) {
	values := map[string]string{"name": "Sam"}
	store := NewStore()
	store.Append(Record{ID: "a", Values: values})

	values["name"] = "mutated"
	got, err := store.At(0)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if got.Values["name"] != "Sam" {
		t.Fatalf("stored record aliased caller map: %v", got.Values)
	}

	got.Values["name"] = "mutated again"
	again, _ := store.At(0)
	if again.Values["name"] != "Sam" {
		t.Fatalf("stored record aliased returned copy: %v", again.Values)
	}
}

func TestStore_RemoveAtShifts(t *testing.T) {
	store := NewStore(rec("a"), rec("b"), rec("c"))

	if err := store.RemoveAt(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, ids(store.All())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_RecallAtRemovesAndReturns(t *testing.T) {
	store := NewStore(rec("a"), rec("b"))

	got, err := store.RecallAt(0)
	if err != nil {
		t.Fatalf("recall: %v", err)
	}
	if got.ID != "a" || got.Values["name"] != "a" {
		t.Fatalf("unexpected recalled record %#v", got)
	}
	if store.Len() != 1 {
		t.Fatalf("expected length 1 after recall, got %d", store.Len())
	}
}

func TestStore_OutOfRange(t *testing.T) {
	store := NewStore(rec("a"))

	for _, index := range []int{-1, 1, 5} {
		if err := store.RemoveAt(index); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("remove %d: expected ErrOutOfRange, got %v", index, err)
		}
		if _, err := store.RecallAt(index); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("recall %d: expected ErrOutOfRange, got %v", index, err)
		}
		if _, err := store.At(index); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("at %d: expected ErrOutOfRange, got %v", index, err)
		}
	}
	if store.Len() != 1 {
		t.Fatalf("failed operations changed the store")
	}
}

func TestStore_RemovalReleasesVacatedSlot(t *testing.T) {
	store := NewStore(rec("a"), rec("b"), rec("c"))

	if err := store.RemoveAt(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := store.RecallAt(0); err != nil {
		t.Fatalf("recall: %v", err)
	}

	backing := store.records[:cap(store.records)]
	for i := store.Len(); i < len(backing); i++ {
		if backing[i].ID != "" || backing[i].Values != nil {
			t.Fatalf("slot %d still references %#v", i, backing[i])
		}
	}
}
