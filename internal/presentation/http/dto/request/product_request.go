package request

// CreateProductRequest represents a product creation request. Prices are
// decimal currency amounts on the wire.
type CreateProductRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=255"`
	ReferenceCode  string  `json:"reference_code" binding:"omitempty,max=100"`
	PurchasePrice  float64 `json:"purchase_price" binding:"min=0"`
	WholesalePrice float64 `json:"wholesale_price" binding:"min=0"`
	SellingPrice   float64 `json:"selling_price" binding:"min=0"`
	InitialStock   int     `json:"initial_stock" binding:"min=0"`
	MinStockAlert  int     `json:"min_stock_alert" binding:"min=0"`
}

// UpdateProductRequest represents a product update request. The edit form
// always submits the complete record; stock is never edited here, it only
// moves through stock entries and sales.
type UpdateProductRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=255"`
	ReferenceCode  string  `json:"reference_code" binding:"omitempty,max=100"`
	PurchasePrice  float64 `json:"purchase_price" binding:"min=0"`
	WholesalePrice float64 `json:"wholesale_price" binding:"min=0"`
	SellingPrice   float64 `json:"selling_price" binding:"min=0"`
	MinStockAlert  int     `json:"min_stock_alert" binding:"min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
