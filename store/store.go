// Package store implements the constrained entity store for the clinic
// schema. Every mutation is validated against the declared constraints
// (field checks, uniqueness, referential integrity) before any row is
// written, and delete cascades run inside the same transaction as the
// delete itself, so the declared invariants hold at every observable
// point.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store wraps a gorm connection with the clinic relationship registry.
type Store struct {
	db       *gorm.DB
	registry *Registry
}

// New creates a Store enforcing the relationships declared in registry.
func New(db *gorm.DB, registry *Registry) *Store {
	return &Store{db: db, registry: registry}
}

// Registry returns the relationship registry backing this store.
func (s *Store) Registry() *Registry {
	return s.registry
}

// named is implemented by all models via their gorm TableName method.
type named interface {
	TableName() string
}

// validator is implemented by models carrying field-level check rules.
type validator interface {
	Validate() error
}

// Create validates and inserts a single record atomically.
func (s *Store) Create(ctx context.Context, rec interface{}) error {
	return s.mutate(ctx, func(tx *gorm.DB) error {
		return s.createTx(tx, rec)
	})
}

// CreateAll validates and inserts several records in one transaction, in
// order. Either every record is inserted or none are.
func (s *Store) CreateAll(ctx context.Context, recs ...interface{}) error {
	return s.mutate(ctx, func(tx *gorm.DB) error {
		for _, rec := range recs {
			if err := s.createTx(tx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update re-validates every invariant the way Create does, excluding the
// record itself from uniqueness checks, then writes the full row.
// Primary keys are immutable; the row is addressed by the key the record
// carries.
func (s *Store) Update(ctx context.Context, rec interface{}) error {
	return s.mutate(ctx, func(tx *gorm.DB) error {
		return s.updateTx(tx, rec)
	})
}

// CreateWithUpdate validates and inserts rec, then revalidates and
// rewrites upd, in one transaction. Used where a single logical
// operation spans an insert and a dependent row rewrite, such as
// recording a payment and rolling it into its invoice.
func (s *Store) CreateWithUpdate(ctx context.Context, rec, upd interface{}) error {
	return s.mutate(ctx, func(tx *gorm.DB) error {
		if err := s.createTx(tx, rec); err != nil {
			return err
		}
		return s.updateTx(tx, upd)
	})
}

// Delete removes the record with the given id from the given table,
// applying the registered policy to every dependent relationship. The
// delete and its whole cascade chain commit together or not at all.
func (s *Store) Delete(ctx context.Context, table, id string) error {
	return s.mutate(ctx, func(tx *gorm.DB) error {
		return s.deleteTx(tx, table, id)
	})
}

// DeleteComposite removes a join row addressed by its composite key.
// Join rows never have dependents of their own, so no policy applies.
func (s *Store) DeleteComposite(ctx context.Context, rec interface{}) error {
	return s.mutate(ctx, func(tx *gorm.DB) error {
		cond, err := primaryCond(rec)
		if err != nil {
			return err
		}
		var n int64
		if err := tx.Model(rec).Where(cond).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to look up %s: %w", tableOf(rec), err)
		}
		if n == 0 {
			return fmt.Errorf("%s %v: %w", tableOf(rec), cond, ErrNotFound)
		}
		return tx.Delete(rec).Error
	})
}

// Get loads the record with the given id into dest, which must be a
// pointer to a model struct.
func (s *Store) Get(ctx context.Context, dest interface{}, id string) error {
	err := s.db.WithContext(ctx).First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", tableOf(dest), id, ErrNotFound)
	}
	return err
}

// createTx runs the full pre-commit check chain and inserts one record.
func (s *Store) createTx(tx *gorm.DB, rec interface{}) error {
	if err := s.checkRecord(tx, rec, nil); err != nil {
		return err
	}
	return tx.Omit(clause.Associations).Create(rec).Error
}

// updateTx runs the full pre-commit check chain with self-exclusion and
// rewrites one existing row.
func (s *Store) updateTx(tx *gorm.DB, rec interface{}) error {
	cond, err := primaryCond(rec)
	if err != nil {
		return err
	}
	var n int64
	if err := tx.Model(rec).Where(cond).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to look up %s: %w", tableOf(rec), err)
	}
	if n == 0 {
		return fmt.Errorf("%s %v: %w", tableOf(rec), cond, ErrNotFound)
	}
	if err := s.checkRecord(tx, rec, cond); err != nil {
		return err
	}
	// created_at is set once at insert and never rewritten.
	return tx.Omit(clause.Associations, "created_at").Save(rec).Error
}

// checkRecord evaluates field checks, references and unique keys for a
// candidate record. exclude is the primary key condition of the record
// itself for updates, nil for creates.
func (s *Store) checkRecord(tx *gorm.DB, rec interface{}, exclude map[string]interface{}) error {
	if v, ok := rec.(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%v: %w", err, ErrConstraintViolation)
		}
	}

	keys, refs, err := schemaOf(rec)
	if err != nil {
		return err
	}

	for _, ref := range refs {
		if ref.value == "" {
			if ref.optional {
				continue
			}
			return fmt.Errorf("%s is required: %w", ref.column, ErrReferenceViolation)
		}
		var n int64
		if err := tx.Table(ref.parentTable).Where("id = ?", ref.value).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to resolve %s: %w", ref.column, err)
		}
		if n == 0 {
			return fmt.Errorf("%s %q does not resolve to a %s row: %w",
				ref.column, ref.value, ref.parentTable, ErrReferenceViolation)
		}
	}

	table := tableOf(rec)
	for _, key := range keys {
		if key.skip {
			continue
		}
		cond := make(map[string]interface{}, len(key.columns))
		for i, col := range key.columns {
			cond[col] = key.values[i]
		}
		q := tx.Table(table).Where(cond)
		if exclude != nil {
			q = q.Not(exclude)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check %s: %w", key.name, err)
		}
		if n > 0 {
			return fmt.Errorf("duplicate %s: %w", key.name, ErrUniquenessViolation)
		}
	}

	return nil
}

// deleteTx deletes one row and recursively applies delete policies to its
// dependents, all within the caller's transaction.
func (s *Store) deleteTx(tx *gorm.DB, table, id string) error {
	var n int64
	if err := tx.Table(table).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to look up %s %s: %w", table, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", table, id, ErrNotFound)
	}

	for _, rel := range s.registry.ChildrenOf(table) {
		switch rel.OnDelete {
		case Restrict:
			var dependents int64
			if err := tx.Table(rel.ChildTable).Where(rel.RefColumn+" = ?", id).Count(&dependents).Error; err != nil {
				return fmt.Errorf("failed to count %s dependents: %w", rel.ChildTable, err)
			}
			if dependents > 0 {
				return fmt.Errorf("cannot delete %s %s: %d %s row(s) still reference it: %w",
					table, id, dependents, rel.ChildTable, ErrReferenceViolation)
			}

		case ClearReference:
			if err := tx.Table(rel.ChildTable).
				Where(rel.RefColumn+" = ?", id).
				Update(rel.RefColumn, nil).Error; err != nil {
				return fmt.Errorf("failed to clear %s.%s: %w", rel.ChildTable, rel.RefColumn, err)
			}

		case Cascade:
			if s.registry.HasChildren(rel.ChildTable) {
				var ids []string
				if err := tx.Table(rel.ChildTable).Where(rel.RefColumn+" = ?", id).Pluck("id", &ids).Error; err != nil {
					return fmt.Errorf("failed to list %s dependents: %w", rel.ChildTable, err)
				}
				for _, childID := range ids {
					if err := s.deleteTx(tx, rel.ChildTable, childID); err != nil {
						return err
					}
				}
			} else {
				// Leaf table, delete dependents in one statement.
				if err := tx.Exec("DELETE FROM "+rel.ChildTable+" WHERE "+rel.RefColumn+" = ?", id).Error; err != nil {
					return fmt.Errorf("failed to cascade into %s: %w", rel.ChildTable, err)
				}
			}
		}
	}

	if err := tx.Exec("DELETE FROM "+table+" WHERE id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", table, id, err)
	}
	return nil
}

// mutate runs fn inside a transaction. Callers serialize mutations with
// the Redis write lock before reaching this point; the transaction keeps
// each mutation and its cascades atomic.
func (s *Store) mutate(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

func tableOf(rec interface{}) string {
	if t, ok := rec.(named); ok {
		return t.TableName()
	}
	return fmt.Sprintf("%T", rec)
}
