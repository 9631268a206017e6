package record

import (
	"errors"
	"fmt"
	"slices"
)

// ErrOutOfRange reports an index outside [0, Len()). Indices always come from
// enumerating the store, so this signals a caller bug rather than user error.
var ErrOutOfRange = errors.New("record: index out of range")

// Store is an ordered collection of records. It is not safe for concurrent
// use; the owning controller serialises access.
type Store struct {
	records []Record
}

// NewStore returns a store seeded with copies of records.
func NewStore(records ...Record) *Store {
	s := &Store{}
	for _, rec := range records {
		s.Append(rec)
	}
	return s
}

// Append adds a copy of rec to the end. Duplicates are permitted.
func (s *Store) Append(rec Record) {
	s.records = append(s.records, rec.Clone())
}

// RemoveAt deletes the record at index, shifting later records down.
func (s *Store) RemoveAt(index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.records = slices.Delete(s.records, index, index+1)
	return nil
}

// RecallAt removes and returns the record at index so it can be edited.
func (s *Store) RecallAt(index int) (Record, error) {
	if err := s.check(index); err != nil {
		return Record{}, err
	}
	rec := s.records[index]
	s.records = slices.Delete(s.records, index, index+1)
	return rec, nil
}

// At returns a copy of the record at index.
func (s *Store) At(index int) (Record, error) {
	if err := s.check(index); err != nil {
		return Record{}, err
	}
	return s.records[index].Clone(), nil
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns copies of every record in submission order.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, len(s.records))
	}
	return nil
}
