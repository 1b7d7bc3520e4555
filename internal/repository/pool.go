package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool parses dsn, optionally disables server certificate verification,
// connects and pings once.
func NewPool(ctx context.Context, dsn string, skipVerify bool) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if skipVerify {
		skipTLSVerify(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// skipTLSVerify keeps whatever sslmode asked for (TLS or not) but never
// verifies the server certificate.
func skipTLSVerify(cfg *pgxpool.Config) {
	if cfg.ConnConfig.TLSConfig != nil {
		tc := cfg.ConnConfig.TLSConfig.Clone()
		tc.InsecureSkipVerify = true
		tc.VerifyPeerCertificate = nil
		cfg.ConnConfig.TLSConfig = tc
	}
	for _, fb := range cfg.ConnConfig.Fallbacks {
		if fb.TLSConfig == nil {
			continue
		}
		tc := fb.TLSConfig.Clone()
		tc.InsecureSkipVerify = true
		tc.VerifyPeerCertificate = nil
		fb.TLSConfig = tc
	}
}
