package service

import (
	"context"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/notice"
	"cargo-portal/internal/core/validation"
	"cargo-portal/internal/features/catalog/domain"
	"cargo-portal/internal/features/catalog/ports"
	sessiondomain "cargo-portal/internal/features/session/domain"
)

const (
	usersView       = "users"
	invoicesView    = "invoices"
	marketplaceView = "marketplace"
	keysView        = "integration_keys"
)

var (
	emptyUsers       = listview.Empty{Message: "No users match these filters", Action: "clear_filters"}
	emptyInvoices    = listview.Empty{Message: "No invoices yet"}
	emptyMarketplace = listview.Empty{Message: "No listings yet", Action: "create_listing"}
	emptyKeys        = listview.Empty{Message: "No integration keys", Action: "create_key"}
)

// CatalogService serves the simpler admin and customer screens: users,
// invoices, marketplace, integration keys and reference data.
type CatalogService struct {
	repo  ports.Repository
	views *listview.Registry
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo ports.Repository, views *listview.Registry) *CatalogService {
	return &CatalogService{repo: repo, views: views}
}

func open[T any](
	s *CatalogService,
	sc *sessiondomain.Context,
	name string,
	empty listview.Empty,
	list func(ctx context.Context, token string, f listview.Filters) (backend.Page[T], error),
	decorate func(T) T,
) *listview.View[T] {
	return listview.Open(s.views, sc.ID, name, func() *listview.View[T] {
		return listview.New(name, func(ctx context.Context, f listview.Filters) (backend.Page[T], error) {
			page, err := list(ctx, sc.Token, f)
			for i := range page.Items {
				page.Items[i] = decorate(page.Items[i])
			}
			return page, err
		}, empty)
	})
}

func (s *CatalogService) users(sc *sessiondomain.Context) *listview.View[domain.Member] {
	return open(s, sc, usersView, emptyUsers, s.repo.ListUsers, domain.Member.Decorate)
}

func (s *CatalogService) invoices(sc *sessiondomain.Context) *listview.View[domain.Invoice] {
	return open(s, sc, invoicesView, emptyInvoices, s.repo.ListInvoices, domain.Invoice.Decorate)
}

func (s *CatalogService) listings(sc *sessiondomain.Context) *listview.View[domain.Listing] {
	return open(s, sc, marketplaceView, emptyMarketplace, s.repo.ListListings, domain.Listing.Decorate)
}

func (s *CatalogService) keys(sc *sessiondomain.Context) *listview.View[domain.APIKey] {
	return open(s, sc, keysView, emptyKeys, s.repo.ListKeys, domain.APIKey.Redact)
}

// ListUsers loads the user list.
func (s *CatalogService) ListUsers(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (listview.State[domain.Member], error) {
	return s.users(sc).Load(ctx, f)
}

// SetActive enables or disables an account and refreshes the list.
func (s *CatalogService) SetActive(ctx context.Context, sc *sessiondomain.Context, id string, a domain.Activation) (listview.State[domain.Member], error) {
	v := s.users(sc)
	if err := validation.Struct(a); err != nil {
		return v.Snapshot(notice.FromError(err)), err
	}

	msg := "Account disabled"
	if *a.Active {
		msg = "Account enabled"
	}
	return v.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.SetActive(ctx, sc.Token, id, *a.Active)
	}, msg)
}

// ListInvoices loads the invoice list.
func (s *CatalogService) ListInvoices(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (listview.State[domain.Invoice], error) {
	return s.invoices(sc).Load(ctx, f)
}

// PayInvoice creates a QPay payment for an invoice and refreshes the list.
func (s *CatalogService) PayInvoice(ctx context.Context, sc *sessiondomain.Context, id string) (*domain.Payment, listview.State[domain.Invoice], error) {
	var payment *domain.Payment
	state, err := s.invoices(sc).Mutate(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.repo.PayInvoice(ctx, sc.Token, id)
		return err
	}, "Payment created")
	return payment, state, err
}

// ListListings loads the marketplace board.
func (s *CatalogService) ListListings(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (listview.State[domain.Listing], error) {
	return s.listings(sc).Load(ctx, f)
}

// CreateListing posts to the marketplace and refreshes the board.
func (s *CatalogService) CreateListing(ctx context.Context, sc *sessiondomain.Context, l domain.NewListing) (listview.State[domain.Listing], error) {
	v := s.listings(sc)
	if err := l.Validate(); err != nil {
		return v.Snapshot(notice.FromError(err)), err
	}
	if l.Currency == "" {
		l.Currency = "MNT"
	}
	return v.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.repo.CreateListing(ctx, sc.Token, l)
		return err
	}, "Listing published")
}

// ListKeys loads the integration keys. Secrets are never listed.
func (s *CatalogService) ListKeys(ctx context.Context, sc *sessiondomain.Context, f listview.Filters) (listview.State[domain.APIKey], error) {
	return s.keys(sc).Load(ctx, f)
}

// CreateKey issues a key and refreshes the list. The returned key is the only
// place its secret appears.
func (s *CatalogService) CreateKey(ctx context.Context, sc *sessiondomain.Context, k domain.NewAPIKey) (*domain.APIKey, listview.State[domain.APIKey], error) {
	v := s.keys(sc)
	if err := validation.Struct(k); err != nil {
		return nil, v.Snapshot(notice.FromError(err)), err
	}

	var created *domain.APIKey
	state, err := v.Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.CreateKey(ctx, sc.Token, k)
		return err
	}, "Key created")
	return created, state, err
}

// RevokeKey deletes a key and refreshes the list.
func (s *CatalogService) RevokeKey(ctx context.Context, sc *sessiondomain.Context, id string) (listview.State[domain.APIKey], error) {
	return s.keys(sc).Mutate(ctx, func(ctx context.Context) error {
		return s.repo.RevokeKey(ctx, sc.Token, id)
	}, "Key revoked")
}

// JoinCompany sends a membership request. The backend's message is shown as is.
func (s *CatalogService) JoinCompany(ctx context.Context, sc *sessiondomain.Context, id string) (*notice.Notice, error) {
	msg, err := s.repo.JoinCompany(ctx, sc.Token, id)
	if err != nil {
		return notice.FromError(err), err
	}
	if msg == "" {
		msg = "Join request sent"
	}
	return notice.Success(msg), nil
}

// PaymentAccounts lists the bank accounts customers pay into.
func (s *CatalogService) PaymentAccounts(ctx context.Context, sc *sessiondomain.Context) ([]domain.PaymentAccount, error) {
	return s.repo.PaymentAccounts(ctx, sc.Token)
}

// DeliveryPoints lists the pickup locations.
func (s *CatalogService) DeliveryPoints(ctx context.Context, sc *sessiondomain.Context) ([]domain.DeliveryPoint, error) {
	return s.repo.DeliveryPoints(ctx, sc.Token)
}

// PublicSettings returns the tariffs shown before sign-in.
func (s *CatalogService) PublicSettings(ctx context.Context) (*domain.PublicSettings, error) {
	return s.repo.PublicSettings(ctx)
}
