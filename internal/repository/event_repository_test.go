package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/abhscancode/cluedin/internal/model"
	"github.com/go-playground/assert/v2"
)

func newTestEventRepository(t *testing.T) (*EventRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewEventRepository(db), mock
}

func TestEventRepository_GetEvents(t *testing.T) {
	repo, mock := newTestEventRepository(t)
	d1 := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "event_date", "category", "source"}).
		AddRow("1", "Summit", "D1", d1, "Governance", "WEF").
		AddRow("2", "Festival", "D2", d2, "Entertainment", "")
	mock.ExpectQuery(`FROM event\s+ORDER BY position ASC`).WillReturnRows(rows)

	events, err := repo.GetEvents()

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(events))
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, model.CategoryGovernance, events[0].Category)
	assert.Equal(t, "WEF", events[0].Source)
	assert.Equal(t, d1, events[0].Date)
	assert.Equal(t, "2", events[1].ID)
	assert.Equal(t, "", events[1].Source)
	assert.Equal(t, nil, mock.ExpectationsWereMet())
}

func TestEventRepository_GetEvents_QueryError(t *testing.T) {
	repo, mock := newTestEventRepository(t)
	mock.ExpectQuery(`FROM event`).WillReturnError(errors.New("connection reset"))

	events, err := repo.GetEvents()

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(events))
}

func TestEventRepository_SaveEvents_CountsNewRows(t *testing.T) {
	repo, mock := newTestEventRepository(t)
	events := MockEvents(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))[:3]

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO event`).
		WithArgs(events[0].ID, 0, events[0].Title, events[0].Description, sqlmock.AnyArg(), string(events[0].Category), events[0].Source).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Already seeded: ON CONFLICT DO NOTHING affects no rows.
	mock.ExpectExec(`INSERT INTO event`).
		WithArgs(events[1].ID, 1, events[1].Title, events[1].Description, sqlmock.AnyArg(), string(events[1].Category), events[1].Source).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO event`).
		WithArgs(events[2].ID, 2, events[2].Title, events[2].Description, sqlmock.AnyArg(), string(events[2].Category), events[2].Source).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	inserted, err := repo.SaveEvents(events)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, inserted)
	assert.Equal(t, nil, mock.ExpectationsWereMet())
}

func TestEventRepository_SaveEvents_RollsBackOnError(t *testing.T) {
	repo, mock := newTestEventRepository(t)
	events := MockEvents(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))[:2]

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO event`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO event`).WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	inserted, err := repo.SaveEvents(events)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, nil, mock.ExpectationsWereMet())
}
