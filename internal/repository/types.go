package repository

// ProductListFilter narrows the catalog list query.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategorySlug string
	OnlyActive   bool
	WithCategory bool
}

// OrderListFilter narrows the admin order list query.
type OrderListFilter struct {
	Page     int
	PageSize int
	Status   string // exact status; empty or "all" means no status filter
	Search   string // substring over order number and customer name
}
