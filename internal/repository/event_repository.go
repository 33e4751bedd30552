package repository

import (
	"database/sql"

	"github.com/abhscancode/cluedin/internal/model"
)

// EventRepository reads and seeds the catalog kept in Postgres. It is only
// consulted at startup; the service serves from a StaticEventStore afterwards.
type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetEvents() ([]model.Event, error) {
	rows, err := r.db.Query(`
		SELECT id, title, description, event_date, category, COALESCE(source, '')
		FROM event
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var category string
		err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &category, &e.Source)
		if err != nil {
			return nil, err
		}
		e.Category = model.Category(category)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// SaveEvents inserts the catalog in order and returns how many rows were new.
func (r *EventRepository) SaveEvents(events []model.Event) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var inserted int
	for i, e := range events {
		res, err := tx.Exec(`
			INSERT INTO event(id, position, title, description, event_date, category, source)
			VALUES($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
			ON CONFLICT (id) DO NOTHING
		`, e.ID, i, e.Title, e.Description, e.Date, string(e.Category), e.Source)
		if err != nil {
			return 0, err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}

	return inserted, tx.Commit()
}
