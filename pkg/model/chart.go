package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SuperEffective is the damage factor the PokeAPI schema stores for 2x.
const SuperEffective = 200

// Chart reads type efficacies from a PokeAPI sqlite dump.
type Chart struct {
	db *sqlx.DB
}

func OpenChart(ctx context.Context, dbPath string) (*Chart, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to read from database: %w", err)
	}
	return &Chart{db: db}, nil
}

func (c *Chart) Close() error {
	return c.db.Close()
}

type efficacyRow struct {
	Defending string `db:"defending"`
	Attacking string `db:"attacking"`
}

var ErrEmptyChart = errors.New("type chart has no super effective entries")

// Weaknesses builds a table from every super effective pairing in the dump.
// Types outside the known set (e.g. "unknown", "shadow") are dropped.
func (c *Chart) Weaknesses(ctx context.Context) (WeaknessTable, error) {
	var rows []efficacyRow
	err := c.db.SelectContext(ctx, &rows,
		/* sql */ `
		SELECT d.name AS defending, a.name AS attacking
		FROM pokemon_v2_typeefficacy e
		JOIN pokemon_v2_type a
			ON e.damage_type_id = a.id
		JOIN pokemon_v2_type d
			ON e.target_type_id = d.id
		WHERE e.damage_factor = ?
		ORDER BY e.id ASC
	`, SuperEffective)
	if err != nil {
		return nil, fmt.Errorf("error while getting type efficacies: %w", err)
	}

	table := make(WeaknessTable)
	for _, row := range rows {
		defending, ok := ParseTypeName(row.Defending)
		if !ok {
			continue
		}
		attacking, ok := ParseTypeName(row.Attacking)
		if !ok {
			continue
		}
		table[defending] = append(table[defending], attacking)
	}

	if len(table) == 0 {
		return nil, ErrEmptyChart
	}

	return table, nil
}

// LoadWeaknesses returns the chart stored at dbPath, or the built-in chart
// when dbPath is empty.
func LoadWeaknesses(ctx context.Context, dbPath string) (WeaknessTable, error) {
	if dbPath == "" {
		return DefaultWeaknesses(), nil
	}

	chart, err := OpenChart(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error while opening type chart %q: %w", dbPath, err)
	}
	defer chart.Close()

	table, err := chart.Weaknesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while reading type chart %q: %w", dbPath, err)
	}

	return table, nil
}
