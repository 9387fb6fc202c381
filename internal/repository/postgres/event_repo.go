package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, event_url, img_url, remote)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Title, e.Description, e.Date, e.EventURL, e.ImgURL, e.Remote).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, date, event_url, img_url, remote
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var descNull, urlNull, imgNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &descNull, &e.Date, &urlNull, &imgNull, &e.Remote,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError(err)
	}
	e.Description = descNull.String
	e.EventURL = urlNull.String
	e.ImgURL = imgNull.String
	return e, nil
}

const listingColumns = `
	e.id, e.title, e.description, e.date, e.event_url, e.img_url, e.remote,
	a.id, a.city, a.uf
`

const listingFrom = `
	FROM events e
	LEFT JOIN addresses a ON a.event_id = e.id
`

const upcomingWhere = `WHERE e.date >= $1`

// The city and uf predicates are skipped for the match-all pattern so events
// without an address still match when no location filter is given.
const filteredWhere = `
	WHERE e.title LIKE $1
	  AND ($2 = '%' OR a.city LIKE $2)
	  AND ($3 = '%' OR a.uf LIKE $3)
	  AND e.date >= $4 AND e.date <= $5
`

func (r *eventRepository) ListUpcoming(ctx context.Context, from time.Time, params domain.PaginationParams) ([]*domain.EventListing, int, error) {
	return r.list(ctx, upcomingWhere, params, from)
}

func (r *eventRepository) ListFiltered(ctx context.Context, q domain.EventQuery, params domain.PaginationParams) ([]*domain.EventListing, int, error) {
	return r.list(ctx, filteredWhere, params, q.TitlePattern, q.CityPattern, q.UFPattern, q.Start, q.End)
}

// list counts the rows matching where, then reads the requested page ordered
// by date and id so pages are stable.
func (r *eventRepository) list(ctx context.Context, where string, params domain.PaginationParams, args ...interface{}) ([]*domain.EventListing, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*)`+listingFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := `SELECT` + listingColumns + listingFrom + where +
		fmt.Sprintf(` ORDER BY e.date ASC, e.id ASC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, params.PageSize, params.Offset())
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	listings := make([]*domain.EventListing, 0)
	for rows.Next() {
		e := &domain.Event{}
		var descNull, urlNull, imgNull sql.NullString
		var addrID, city, uf sql.NullString
		if err := rows.Scan(
			&e.ID, &e.Title, &descNull, &e.Date, &urlNull, &imgNull, &e.Remote,
			&addrID, &city, &uf,
		); err != nil {
			return nil, 0, err
		}
		e.Description = descNull.String
		e.EventURL = urlNull.String
		e.ImgURL = imgNull.String
		l := &domain.EventListing{Event: e}
		if addrID.Valid {
			l.Address = &domain.Address{ID: addrID.String, EventID: e.ID, City: city.String, UF: uf.String}
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}
