package models

// CartItem is one product line in a visitor's cart. JSON tags follow the
// backend's document ids, which the storefront displays as-is.
type CartItem struct {
	ProductID  string  `json:"_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image,omitempty"`
	THCContent string  `json:"thcContent,omitempty"`
	CBDContent string  `json:"cbdContent,omitempty"`
}

// Profile is the authenticated member as returned by the backend.
type Profile struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	MembershipLevel string `json:"membershipLevel"`
	MemberSince     string `json:"memberSince"`
	MembershipID    string `json:"membershipId"`
	NextRenewal     string `json:"nextRenewal"`
	IsAdmin         bool   `json:"isAdmin"`
}

type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"`
	THCContent  string  `json:"thcContent,omitempty"`
	CBDContent  string  `json:"cbdContent,omitempty"`
}

type Event struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

type User struct {
	ID              string `json:"_id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	MembershipLevel string `json:"membershipLevel"`
	IsAdmin         bool   `json:"isAdmin"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID        string      `json:"_id,omitempty"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status,omitempty"`
	CreatedAt string      `json:"createdAt,omitempty"`
}

// DashboardStats mirrors the backend's aggregated admin statistics. The
// storefront renders it untouched, so the shapes stay loose on purpose.
type DashboardStats struct {
	UserStats struct {
		TotalUsers        int `json:"totalUsers"`
		NewUsersThisMonth int `json:"newUsersThisMonth"`
		BasicMembers      int `json:"basicMembers"`
		PremiumMembers    int `json:"premiumMembers"`
		FounderMembers    int `json:"founderMembers"`
	} `json:"userStats"`
	ProductStats struct {
		TotalProducts      int            `json:"totalProducts"`
		OutOfStockProducts int            `json:"outOfStockProducts"`
		ByCategory         map[string]int `json:"byCategory"`
	} `json:"productStats"`
	OrderStats struct {
		OrdersThisMonth int     `json:"ordersThisMonth"`
		TotalRevenue    float64 `json:"totalRevenue"`
	} `json:"orderStats"`
}
