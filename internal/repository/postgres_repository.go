package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"closed-auction-metrics/internal/auctionerrors"
	model "closed-auction-metrics/internal/models"
)

// PostgresRepo stores one document per closed auction, keyed by item id, with
// the end time kept as a time-queryable column. Window filtering is pushed to
// SQL; ordering and limiting go through the shared resolver so the semantics
// match the in-memory backend exactly.
type PostgresRepo struct {
	pool         *pgxpool.Pool
	defaultLimit int
}

const schema = `
CREATE TABLE IF NOT EXISTS closed_auctions (
	item_id  TEXT PRIMARY KEY,
	end_time TIMESTAMPTZ NOT NULL,
	doc      JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS closed_auctions_end_time_idx ON closed_auctions (end_time);
`

// NewPostgresRepo creates a Postgres-backed repository and ensures its
// schema exists. A defaultLimit <= 0 falls back to DefaultQueryLimit.
func NewPostgresRepo(ctx context.Context, pool *pgxpool.Pool, defaultLimit int) (*PostgresRepo, error) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultQueryLimit
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("%w: ensure schema: %v", auctionerrors.ErrBackend, err)
	}
	return &PostgresRepo{pool: pool, defaultLimit: defaultLimit}, nil
}

// GetAuction returns the stored auction for itemID, or nil when absent.
func (r *PostgresRepo) GetAuction(ctx context.Context, itemID string) (*model.ClosedAuction, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT doc FROM closed_auctions WHERE item_id = $1`, itemID,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get auction %s: %v", auctionerrors.ErrBackend, itemID, err)
	}
	return decodeAuctionDoc(raw)
}

// GetAuctions fetches the candidate set for the window from SQL and resolves
// ordering and limiting through the shared query resolution.
func (r *PostgresRepo) GetAuctions(ctx context.Context, filter Filter) ([]*model.ClosedAuction, error) {
	query := `SELECT doc FROM closed_auctions`
	args := []any{}
	where := ""
	if filter.LeftBound != nil {
		args = append(args, *filter.LeftBound)
		where = fmt.Sprintf(" WHERE end_time >= $%d", len(args))
	}
	if filter.RightBound != nil {
		args = append(args, *filter.RightBound)
		if where == "" {
			where = fmt.Sprintf(" WHERE end_time <= $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND end_time <= $%d", len(args))
		}
	}

	rows, err := r.pool.Query(ctx, query+where, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: get auctions: %v", auctionerrors.ErrBackend, err)
	}
	defer rows.Close()

	var candidates []*model.ClosedAuction
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: scan auction row: %v", auctionerrors.ErrBackend, err)
		}
		auction, err := decodeAuctionDoc(raw)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, auction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: get auctions: %v", auctionerrors.ErrBackend, err)
	}

	return ResolveQuery(candidates, filter, r.defaultLimit), nil
}

// SaveAuction upserts the auction document, replacing any prior record for
// the same item id in a single atomic statement.
func (r *PostgresRepo) SaveAuction(ctx context.Context, auction *model.ClosedAuction) error {
	doc, err := json.Marshal(auction.Document())
	if err != nil {
		return fmt.Errorf("encode auction %s: %w", auction.ItemID, err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO closed_auctions (item_id, end_time, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id) DO UPDATE
		SET end_time = EXCLUDED.end_time,
		    doc      = EXCLUDED.doc`,
		auction.ItemID, auction.EndTime, doc,
	)
	if err != nil {
		return fmt.Errorf("%w: save auction %s: %v", auctionerrors.ErrBackend, auction.ItemID, err)
	}
	return nil
}

func decodeAuctionDoc(raw []byte) (*model.ClosedAuction, error) {
	var doc model.AuctionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode auction document: %v", auctionerrors.ErrBackend, err)
	}
	return model.AuctionFromDocument(doc), nil
}
