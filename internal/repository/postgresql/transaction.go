package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txKey struct{}

// ContextWithTx returns a context carrying tx. Repository calls made with it
// run inside that transaction.
func ContextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// WithTransaction executes fn inside a database transaction
func WithTransaction(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
	if tx, ok := txFromContext(ctx); ok {
		return fn(tx)
	}

	return db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() {
			if p := recover(); p != nil {
				if rbErr := tx.Rollback(ctx); rbErr != nil {
					slog.Error("rollback error during panic recovery", "error", rbErr)
				}
				panic(p)
			}
		}()

		if err := fn(tx); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
			}
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

// withQuerier runs fn against the transaction carried by ctx, or against a
// connection acquired for this call alone and released when fn returns.
func withQuerier(ctx context.Context, db *database.DB, fn func(q database.Querier) error) error {
	if tx, ok := txFromContext(ctx); ok {
		return fn(tx)
	}
	return db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		return fn(conn)
	})
}
