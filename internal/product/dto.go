package product

type SearchProductsRequest struct {
	ProductIDs []int `json:"productIds"`
}

type SearchProductsResponse struct {
	Products []ProductDTO `json:"products"`
	NotFound []int        `json:"notFound"`
}

type ListProductsResponse struct {
	Products   []ProductDTO `json:"products"`
	Total      int          `json:"total"`
	NextCursor int          `json:"nextCursor"`
	HasMore    bool         `json:"hasMore"`
}

type ProductDTO struct {
	ID                int     `json:"id"`
	Title             string  `json:"title"`
	Provider          string  `json:"provider"`
	ProviderVerified  bool    `json:"providerVerified"`
	ProviderCountry   string  `json:"providerCountry"`
	PriceProvider     int     `json:"priceProvider"`
	PriceSuggested    int     `json:"priceSuggested"`
	Rating            float64 `json:"rating"`
	Reviews           int     `json:"reviews"`
	Droppers          int     `json:"droppers"`
	HighProfitability bool    `json:"highProfitability"`
}
