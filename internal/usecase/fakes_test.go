package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/juju/clock/testclock"

	"airline-service/internal/domain/entity"
	"airline-service/internal/domain/repository"
	"airline-service/pkg/logger"
)

var errStorage = errors.New("connection refused")

// now is the fixed instant every service test runs at.
var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

// fakeAirportRepo is an in-memory AirportRepository.
type fakeAirportRepo struct {
	rows    map[uint]entity.Airport
	nextID  uint
	saves   int
	removes int
	err     error
}

var _ repository.AirportRepository = (*fakeAirportRepo)(nil)

func newFakeAirportRepo(airports ...entity.Airport) *fakeAirportRepo {
	r := &fakeAirportRepo{rows: map[uint]entity.Airport{}, nextID: 1}
	for _, a := range airports {
		r.rows[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *fakeAirportRepo) FindAll(context.Context) ([]entity.Airport, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.Airport, 0, len(r.rows))
	for _, a := range r.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAirportRepo) FindByID(_ context.Context, id uint) (*entity.Airport, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAirportRepo) FindByIDs(_ context.Context, ids []uint) ([]entity.Airport, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []entity.Airport{}
	for _, id := range ids {
		if a, ok := r.rows[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAirportRepo) Save(_ context.Context, a *entity.Airport) error {
	if r.err != nil {
		return r.err
	}
	if a.ID == 0 {
		a.ID = r.nextID
		r.nextID++
	}
	r.saves++
	r.rows[a.ID] = *a
	return nil
}

func (r *fakeAirportRepo) Remove(_ context.Context, a *entity.Airport) error {
	if r.err != nil {
		return r.err
	}
	r.removes++
	delete(r.rows, a.ID)
	return nil
}

// fakeAirlineRepo is an in-memory AirlineRepository.
type fakeAirlineRepo struct {
	rows    map[uint]entity.Airline
	nextID  uint
	saves   int
	removes int
	err     error
	saveErr error
}

var _ repository.AirlineRepository = (*fakeAirlineRepo)(nil)

func newFakeAirlineRepo(airlines ...entity.Airline) *fakeAirlineRepo {
	r := &fakeAirlineRepo{rows: map[uint]entity.Airline{}, nextID: 1}
	for _, a := range airlines {
		r.rows[a.ID] = cloneAirline(a)
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func cloneAirline(a entity.Airline) entity.Airline {
	a.Airports = append([]entity.Airport(nil), a.Airports...)
	return a
}

func (r *fakeAirlineRepo) FindAll(context.Context) ([]entity.Airline, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.Airline, 0, len(r.rows))
	for _, a := range r.rows {
		out = append(out, cloneAirline(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAirlineRepo) FindByID(_ context.Context, id uint) (*entity.Airline, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	a = cloneAirline(a)
	return &a, nil
}

func (r *fakeAirlineRepo) Save(_ context.Context, a *entity.Airline) error {
	if r.err != nil {
		return r.err
	}
	if r.saveErr != nil {
		return r.saveErr
	}
	if a.ID == 0 {
		a.ID = r.nextID
		r.nextID++
	}
	r.saves++
	r.rows[a.ID] = cloneAirline(*a)
	return nil
}

func (r *fakeAirlineRepo) Remove(_ context.Context, a *entity.Airline) error {
	if r.err != nil {
		return r.err
	}
	r.removes++
	delete(r.rows, a.ID)
	return nil
}

// fakeChangeLogRepo keeps recorded entries in memory.
type fakeChangeLogRepo struct {
	entries []*entity.ChangeLog
	err     error
}

var _ repository.ChangeLogRepository = (*fakeChangeLogRepo)(nil)

func (r *fakeChangeLogRepo) Record(_ context.Context, e *entity.ChangeLog) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeChangeLogRepo) FindByEntity(_ context.Context, kind string, id uint, limit int) ([]*entity.ChangeLog, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*entity.ChangeLog{}
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if e := r.entries[i]; e.Entity == kind && e.EntityID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeChangeLogRepo) actions() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Entity+"."+e.Action)
	}
	return out
}

func newTestRecorder(repo *fakeChangeLogRepo) *ChangeRecorder {
	return NewChangeRecorder(repo, testclock.NewClock(now), logger.NewNopLogger())
}
