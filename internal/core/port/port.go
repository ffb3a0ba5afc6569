package port

import (
	"context"

	"github.com/suncoast/diveshop/internal/core/domain"
)

// Inbound ports, implemented by the core services and consumed by
// the HTTP adapter.

type CatalogProvider interface {
	ListProducts(context.Context, domain.CatalogFilter) ([]domain.Product, error)
	GetProduct(context.Context, int64) (domain.Product, error)
	RelatedProducts(ctx context.Context, productID int64, limit int) ([]domain.Product, error)
	Facets(context.Context) (domain.CatalogFacets, error)
}

type CartManager interface {
	CreateCart(context.Context) (domain.Cart, error)
	GetCart(context.Context, string) (domain.Cart, error)
	AddItem(ctx context.Context, cartID string, item domain.CartItem) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, cartID string, productID int64, variantID string, quantity int) (domain.Cart, error)
	RemoveItem(ctx context.Context, cartID string, productID int64, variantID string) (domain.Cart, error)
	ClearCart(context.Context, string) (domain.Cart, error)
}

type PromotionManager interface {
	GetPromotion(ctx context.Context, location string) (domain.Promotion, error)
	UpdatePromotion(context.Context, domain.Promotion) (domain.Promotion, error)
}

type BlogProvider interface {
	LatestPosts(ctx context.Context, limit int) ([]domain.BlogPost, error)
	GetPost(ctx context.Context, slug string) (domain.BlogPost, error)
}

type ServicesManager interface {
	ListCategories(context.Context) ([]domain.ServiceCategory, error)
	CreateCategory(context.Context, domain.ServiceCategory) (domain.ServiceCategory, error)
	UpdateCategory(context.Context, domain.ServiceCategory) (domain.ServiceCategory, error)
	DeleteCategory(context.Context, int64) error

	ListServices(ctx context.Context, categoryID int64) ([]domain.DiveService, error)
	GetService(context.Context, int64) (domain.DiveService, error)
	CreateService(context.Context, domain.DiveService) (domain.DiveService, error)
	UpdateService(context.Context, domain.DiveService) (domain.DiveService, error)
	DeleteService(context.Context, int64) error
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// Outbound ports, implemented by the storage, cartstore and kafka
// adapters.

type CatalogRepository interface {
	ListEntries(context.Context) ([]domain.ProductEntry, error)
	EntriesByProduct(context.Context, int64) ([]domain.ProductEntry, error)
	SearchEntries(ctx context.Context, query string, limit int) ([]domain.ProductEntry, error)
	ImageOverrides(context.Context) (map[int64]string, error)
}

// CartSnapshots persists full cart snapshots. Load reports false
// when no usable snapshot exists for the ID.
type CartSnapshots interface {
	Load(ctx context.Context, cartID string) (domain.Cart, bool, error)
	Save(context.Context, domain.Cart) error
	Delete(ctx context.Context, cartID string) error
}

type PromotionsRepository interface {
	GetActive(ctx context.Context, location string) (domain.Promotion, error)
	Update(context.Context, domain.Promotion) (domain.Promotion, error)
}

type BlogRepository interface {
	LatestPublished(ctx context.Context, limit int) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (domain.BlogPost, error)
	SearchPublished(ctx context.Context, query string, limit int) ([]domain.BlogPost, error)
}

type ServicesRepository interface {
	ListCategories(context.Context) ([]domain.ServiceCategory, error)
	CreateCategory(context.Context, domain.ServiceCategory) (domain.ServiceCategory, error)
	UpdateCategory(context.Context, domain.ServiceCategory) (domain.ServiceCategory, error)
	DeleteCategory(context.Context, int64) error
	SearchActiveCategories(ctx context.Context, query string, limit int) ([]domain.ServiceCategory, error)

	ListServices(ctx context.Context, categoryID int64) ([]domain.DiveService, error)
	GetService(context.Context, int64) (domain.DiveService, error)
	CreateService(context.Context, domain.DiveService) (domain.DiveService, error)
	UpdateService(context.Context, domain.DiveService) (domain.DiveService, error)
	DeleteService(context.Context, int64) error
}

type EventsProducer interface {
	ProduceEvent(context.Context, domain.ClientEvent) error
}
