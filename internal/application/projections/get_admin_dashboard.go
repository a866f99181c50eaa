package projections

import (
	"context"

	registrationStorage "assosite/internal/adapters/storage/registration"
	"assosite/internal/domain/contact"
	"assosite/internal/domain/event"
	"assosite/internal/domain/order"
	"assosite/internal/domain/volunteer"
)

// GetAdminDashboardRegistrationStore defines the registration store
// interface for the dashboard.
type GetAdminDashboardRegistrationStore interface {
	ListWithEventTitle(ctx context.Context) ([]registrationStorage.WithEventTitle, error)
}

// GetAdminDashboardContactStore defines the contact store interface for
// the dashboard.
type GetAdminDashboardContactStore interface {
	List(ctx context.Context) ([]contact.Contact, error)
}

// GetAdminDashboardOrderStore defines the order store interface for the
// dashboard.
type GetAdminDashboardOrderStore interface {
	ListWithItemCounts(ctx context.Context) ([]order.WithItemCount, error)
}

// GetAdminDashboardDeps holds dependencies for the dashboard projection.
type GetAdminDashboardDeps struct {
	EventStore        GetHomeEventStore
	VolunteerStore    GetHomeVolunteerStore
	RegistrationStore GetAdminDashboardRegistrationStore
	ContactStore      GetAdminDashboardContactStore
	OrderStore        GetAdminDashboardOrderStore
}

// AdminDashboardData aggregates everything the dashboard renders.
type AdminDashboardData struct {
	Events        []event.Event
	Volunteers    []volunteer.Volunteer
	Registrations []registrationStorage.WithEventTitle
	Contacts      []contact.Contact
	Orders        []order.WithItemCount
}

// QueryGetAdminDashboard gathers every admin-facing listing in one
// pass. Fetches run sequentially; a single connection pool serves them
// and the lists are small.
// PRE: Caller has verified the admin session
// POST: Returns all sections or an error; never a partial dashboard
func QueryGetAdminDashboard(ctx context.Context, deps GetAdminDashboardDeps) (AdminDashboardData, error) {
	var data AdminDashboardData
	var err error

	data.Events, err = deps.EventStore.List(ctx)
	if err != nil {
		return AdminDashboardData{}, err
	}
	data.Volunteers, err = deps.VolunteerStore.List(ctx)
	if err != nil {
		return AdminDashboardData{}, err
	}
	data.Registrations, err = deps.RegistrationStore.ListWithEventTitle(ctx)
	if err != nil {
		return AdminDashboardData{}, err
	}
	data.Contacts, err = deps.ContactStore.List(ctx)
	if err != nil {
		return AdminDashboardData{}, err
	}
	data.Orders, err = deps.OrderStore.ListWithItemCounts(ctx)
	if err != nil {
		return AdminDashboardData{}, err
	}

	return data, nil
}
