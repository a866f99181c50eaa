package projections

import (
	"context"
	"time"

	"assosite/internal/domain/catalog"
	"assosite/internal/domain/event"
	"assosite/internal/domain/volunteer"
)

// GetHomeEventStore defines the event store interface for the home page.
type GetHomeEventStore interface {
	List(ctx context.Context) ([]event.Event, error)
}

// GetHomeVolunteerStore defines the volunteer store interface for the home page.
type GetHomeVolunteerStore interface {
	List(ctx context.Context) ([]volunteer.Volunteer, error)
}

// GetHomeCatalogStore defines the catalog store interface for the home page.
type GetHomeCatalogStore interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	ListCategories(ctx context.Context) ([]catalog.Category, error)
}

// GetHomeDeps holds dependencies for the home page projection.
type GetHomeDeps struct {
	EventStore     GetHomeEventStore
	VolunteerStore GetHomeVolunteerStore
	CatalogStore   GetHomeCatalogStore
}

// HomeData aggregates everything the public page renders.
type HomeData struct {
	UpcomingEvents []event.Event
	PastEvents     []event.Event
	Volunteers     []volunteer.Volunteer
	Products       []catalog.Product
	Categories     []catalog.Category
}

// QueryGetHome gathers events, volunteers and the product catalog for
// the public page. Events are split around today: upcoming ones keep
// their chronological order, past ones come most recent first.
// POST: Returns all sections or an error; never a partial page
func QueryGetHome(ctx context.Context, deps GetHomeDeps) (HomeData, error) {
	events, err := deps.EventStore.List(ctx)
	if err != nil {
		return HomeData{}, err
	}

	now := time.Now()
	var data HomeData
	for _, e := range events {
		if e.IsPast(now) {
			data.PastEvents = append(data.PastEvents, e)
		} else {
			data.UpcomingEvents = append(data.UpcomingEvents, e)
		}
	}
	// List returns date-ascending order; reverse the past slice so the
	// most recent event leads.
	for i, j := 0, len(data.PastEvents)-1; i < j; i, j = i+1, j-1 {
		data.PastEvents[i], data.PastEvents[j] = data.PastEvents[j], data.PastEvents[i]
	}

	data.Volunteers, err = deps.VolunteerStore.List(ctx)
	if err != nil {
		return HomeData{}, err
	}

	data.Products, err = deps.CatalogStore.ListProducts(ctx)
	if err != nil {
		return HomeData{}, err
	}
	data.Categories, err = deps.CatalogStore.ListCategories(ctx)
	if err != nil {
		return HomeData{}, err
	}

	return data, nil
}
