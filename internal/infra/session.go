package infra

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrConnect      = errors.New("connect to database")
	ErrBeginSession = errors.New("begin storage session")
)

// WithSession runs fn inside one transaction bound to ctx. The session is
// always released: committed when fn returns nil, rolled back when fn returns
// an error or panics (the panic is re-raised after the rollback).
func WithSession(ctx context.Context, db *gorm.DB, fn func(session *gorm.DB) error) (err error) {
	session, err := StartTransaction(ctx, db)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			session.Rollback()
			panic(r)
		}
	}()

	err = fn(session)
	return ReleaseTransaction(session, err)
}

func StartTransaction(ctx context.Context, db *gorm.DB) (*gorm.DB, error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrBeginSession, tx.Error)
	}
	return tx, nil
}

// ReleaseTransaction ends tx according to err and returns err, or the commit
// failure when committing is what went wrong.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rollbackErr))
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		return fmt.Errorf("commit: %w", commitErr)
	}
	return nil
}
