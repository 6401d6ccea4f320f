package wms

// Stock statuses derived from quantity and thresholds.
const (
	StatusOutOfStock = "out_of_stock"
	StatusLowStock   = "low_stock"
	StatusOverstock  = "overstock"
	StatusNormal     = "normal"
)

// Product is an inventory item.
type Product struct {
	ID           int     `json:"id"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	CategoryID   *int    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Quantity     int     `json:"quantity"`
	MinStock     int     `json:"min_stock"`
	MaxStock     int     `json:"max_stock"`
	UnitPrice    float64 `json:"unit_price"`
	CostPrice    float64 `json:"cost_price"`
	LocationID   *int    `json:"location_id"`
	LocationName string  `json:"location_name"`
	Unit         string  `json:"unit"`
	Weight       float64 `json:"weight"`
	Status       string  `json:"stock_status"`
	Value        float64 `json:"stock_value"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// StockStatus is the backend's stock_status when present, otherwise it is
// derived from quantity and thresholds.
func (p Product) StockStatus() string {
	if p.Status != "" {
		return p.Status
	}
	switch {
	case p.Quantity <= 0:
		return StatusOutOfStock
	case p.Quantity <= p.MinStock:
		return StatusLowStock
	case p.Quantity >= p.MaxStock:
		return StatusOverstock
	}
	return StatusNormal
}

// StockValue is the backend's stock_value when present, otherwise quantity
// times unit price.
func (p Product) StockValue() float64 {
	if p.Value != 0 {
		return p.Value
	}
	return float64(p.Quantity) * p.UnitPrice
}

// ProductInput creates or updates a product. Nil fields are left to the
// backend's defaults on create and unchanged on update.
type ProductInput struct {
	SKU              string   `json:"sku,omitempty"`
	Name             string   `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	CategoryID       *int     `json:"category_id,omitempty"`
	Quantity         *int     `json:"quantity,omitempty"`
	MinStock         *int     `json:"min_stock,omitempty"`
	MaxStock         *int     `json:"max_stock,omitempty"`
	UnitPrice        *float64 `json:"unit_price,omitempty"`
	CostPrice        *float64 `json:"cost_price,omitempty"`
	LocationID       *int     `json:"location_id,omitempty"`
	Unit             string   `json:"unit,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	AdjustmentReason string   `json:"adjustment_reason,omitempty"`
}

// Adjustment types.
const (
	AdjustAdd    = "add"
	AdjustRemove = "remove"
)

// Adjustment changes a product's stock by Quantity.
type Adjustment struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Category groups products.
type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	ProductCount int    `json:"product_count"`
}

// ListOptions filters and sorts ListProducts.
type ListOptions struct {
	Search     string
	CategoryID int
	Status     string
	SortBy     string
	Desc       bool
}

// Message is the backend's acknowledgement body.
type Message struct {
	Message string `json:"message"`
}
