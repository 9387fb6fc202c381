package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"eventhub/internal/domain"
)

// fakeEventRepo is an in-memory EventRepository for tests. It reads addresses
// from addrs so list queries can emulate the LEFT JOIN.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	addrs     *fakeAddressRepo
	nextID    int
	err       error // if set, Create returns this error
	getErr    error // if set, GetByID returns this error
	listErr   error
	lastFrom  time.Time
	lastQuery domain.EventQuery
	lastPage  domain.PaginationParams
}

func newFakeEventRepo(addrs *fakeAddressRepo) *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[string]*domain.Event),
		addrs:  addrs,
		nextID: 1,
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListUpcoming(ctx context.Context, from time.Time, params domain.PaginationParams) ([]*domain.EventListing, int, error) {
	f.lastFrom = from
	f.lastPage = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.page(func(e *domain.Event, _ *domain.Address) bool {
		return !e.Date.Before(from)
	}, params)
}

func (f *fakeEventRepo) ListFiltered(ctx context.Context, q domain.EventQuery, params domain.PaginationParams) ([]*domain.EventListing, int, error) {
	f.lastQuery = q
	f.lastPage = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.page(func(e *domain.Event, a *domain.Address) bool {
		if !likeMatch(e.Title, q.TitlePattern) {
			return false
		}
		if q.CityPattern != domain.MatchAll && (a == nil || !likeMatch(a.City, q.CityPattern)) {
			return false
		}
		if q.UFPattern != domain.MatchAll && (a == nil || !likeMatch(a.UF, q.UFPattern)) {
			return false
		}
		return !e.Date.Before(q.Start) && !e.Date.After(q.End)
	}, params)
}

func (f *fakeEventRepo) page(keep func(*domain.Event, *domain.Address) bool, params domain.PaginationParams) ([]*domain.EventListing, int, error) {
	var all []*domain.EventListing
	for _, e := range f.byID {
		a := f.addrs.byEvent[e.ID]
		if keep(e, a) {
			all = append(all, &domain.EventListing{Event: e, Address: a})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Event.Date.Equal(all[j].Event.Date) {
			return all[i].Event.ID < all[j].Event.ID
		}
		return all[i].Event.Date.Before(all[j].Event.Date)
	})
	total := len(all)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

// likeMatch understands the "%" and "%<escaped>%" patterns built by containsPattern.
func likeMatch(value, pattern string) bool {
	if pattern == domain.MatchAll {
		return true
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(pattern, "%"), "%")
	inner = strings.NewReplacer(`\%`, `%`, `\_`, `_`, `\\`, `\`).Replace(inner)
	return strings.Contains(value, inner)
}

// fakeAddressRepo is an in-memory AddressRepository for tests.
type fakeAddressRepo struct {
	byEvent   map[string]*domain.Address
	created   []*domain.Address
	nextID    int
	createErr error
	getErr    error
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{
		byEvent: make(map[string]*domain.Address),
		nextID:  1,
	}
}

func (f *fakeAddressRepo) Create(ctx context.Context, a *domain.Address) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = fmt.Sprintf("addr-%d", f.nextID)
	f.nextID++
	f.byEvent[a.EventID] = a
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAddressRepo) GetByEventID(ctx context.Context, eventID string) (*domain.Address, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if a, ok := f.byEvent[eventID]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

// fakeCouponRepo is an in-memory CouponRepository for tests.
type fakeCouponRepo struct {
	coupons   []*domain.Coupon
	extra     []*domain.Coupon // returned by ListValidAfter whatever the instant
	nextID    int
	createErr error
	listErr   error
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{nextID: 1}
}

func (f *fakeCouponRepo) Create(ctx context.Context, c *domain.Coupon) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = fmt.Sprintf("cp-%d", f.nextID)
	f.nextID++
	f.coupons = append(f.coupons, c)
	return nil
}

func (f *fakeCouponRepo) ListValidAfter(ctx context.Context, eventID string, instant time.Time) ([]*domain.Coupon, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Coupon
	for _, c := range f.coupons {
		if c.EventID == eventID && c.Valid.After(instant) {
			out = append(out, c)
		}
	}
	return append(out, f.extra...), nil
}

// fakeStorage records Put calls and returns url or err. With block set, Put
// waits for ctx to end and returns its error.
type fakeStorage struct {
	url         string
	err         error
	block       bool
	calls       int
	lastBucket  string
	lastKey     string
	lastData    []byte
	lastContent string
}

func (f *fakeStorage) Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	f.calls++
	f.lastBucket = bucket
	f.lastKey = key
	f.lastData = data
	f.lastContent = contentType
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if f.err != nil {
		return "", f.err
	}
	return f.url + "/" + key, nil
}
