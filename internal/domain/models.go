// internal/domain/models.go
package domain

import (
	"strings"
	"time"
)

// Supplier is the authenticated principal of a device session.
type Supplier struct {
	ID        int64  `json:"id"`
	Phone     string `json:"phone_no"`
	Name      string `json:"name"`
	BrandName string `json:"brand_name,omitempty"`
	FCMToken  string `json:"fcm_token,omitempty"`
}

// Complete reports whether the identity can be persisted and used for requests.
func (s *Supplier) Complete() bool {
	return s != nil && s.ID > 0
}

// Refresh overlays the non-empty fields of fresh onto s. Both must carry the same id.
func (s *Supplier) Refresh(fresh Supplier) bool {
	if fresh.ID != s.ID {
		return false
	}
	if fresh.Phone != "" {
		s.Phone = fresh.Phone
	}
	if fresh.Name != "" {
		s.Name = fresh.Name
	}
	if fresh.BrandName != "" {
		s.BrandName = fresh.BrandName
	}
	if fresh.FCMToken != "" {
		s.FCMToken = fresh.FCMToken
	}
	return true
}

type BillingType string

const (
	BillingUnknown   BillingType = ""
	BillingDaily     BillingType = "daily"
	BillingAlternate BillingType = "alternate_day"
	BillingWeekly    BillingType = "weekly"
	BillingMonthly   BillingType = "monthly"
	BillingOnDemand  BillingType = "on_demand"
)

// ParseBillingType accepts the spellings seen across backend versions.
func ParseBillingType(s string) BillingType {
	switch strings.ToLower(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(s))) {
	case "daily":
		return BillingDaily
	case "alternate_day", "alternate", "alternate_days":
		return BillingAlternate
	case "weekly":
		return BillingWeekly
	case "monthly":
		return BillingMonthly
	case "on_demand", "ondemand", "per_order":
		return BillingOnDemand
	default:
		return BillingUnknown
	}
}

// Customer is one service location of a customer account. LocationID is the
// key the UI addresses records by; one CustomerID may own several locations.
type Customer struct {
	LocationID      int64       `json:"location_id"`
	CustomerID      int64       `json:"customer_id"`
	Name            string      `json:"customer_name"`
	Phone           string      `json:"customer_phone"`
	Address         string      `json:"customer_address"`
	Area            string      `json:"customer_area"`
	Landmark        string      `json:"landmark"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	Pincode         string      `json:"pincode"`
	PerCanAmount    float64     `json:"per_can_amount"`
	RefillFrequency int64       `json:"refill_frequency"`
	BillingType     BillingType `json:"billing_type"`
	CreditAmount    float64     `json:"credit_amount"`
	DueAmount       float64     `json:"due_amount"`
	ProfileStatus   bool        `json:"profile_status"`
}

// DashboardMetrics are the supplier's summary counters. Payment figures are
// amounts, not counts.
type DashboardMetrics struct {
	TotalCustomers    int64   `json:"totalCustomers"`
	ActiveOrders      int64   `json:"activeOrders"`
	PendingPayments   float64 `json:"pendingPayments"`
	CompletedPayments float64 `json:"completedPayments"`
}

type Bucket string

const (
	BucketPending   Bucket = "pending"
	BucketAccepted  Bucket = "accepted"
	BucketCompleted Bucket = "completed"
)

// Buckets lists the order buckets in display order.
var Buckets = []Bucket{BucketPending, BucketAccepted, BucketCompleted}

// BucketForStatus maps a backend order status onto the bucket that shows it.
func BucketForStatus(status string) (Bucket, bool) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pending", "new", "placed":
		return BucketPending, true
	case "accepted", "active", "confirmed", "out_for_delivery":
		return BucketAccepted, true
	case "completed", "delivered":
		return BucketCompleted, true
	default:
		return "", false
	}
}

type OrderAction string

const (
	ActionAccept   OrderAction = "accept"
	ActionComplete OrderAction = "complete"
)

// Transition returns the source and destination buckets of an action.
func (a OrderAction) Transition() (from, to Bucket, ok bool) {
	switch a {
	case ActionAccept:
		return BucketPending, BucketAccepted, true
	case ActionComplete:
		return BucketAccepted, BucketCompleted, true
	default:
		return "", "", false
	}
}

// TenantRef identifies the backend partition a request is routed to.
type TenantRef struct {
	ID   int64
	Code string
}

func (r TenantRef) Empty() bool {
	return r.ID == 0 && r.Code == ""
}

type Order struct {
	ID                 int64       `json:"order_id"`
	SupplierID         int64       `json:"supplier_id"`
	SupplierCode       string      `json:"supplier_code"`
	CustomerName       string      `json:"customer_name"`
	CustomerPhone      string      `json:"customer_phone"`
	CustomerAddress    string      `json:"customer_address"`
	Quantity           int64       `json:"quantity"`
	PerCanAmount       float64     `json:"per_can_amount"`
	TotalPrice         float64     `json:"total_price"`
	BillingType        BillingType `json:"billing_type"`
	PaymentMode        string      `json:"payment_mode"`
	BillStatus         string      `json:"bill_status"`
	Status             string      `json:"order_status"`
	DeliveryPersonID   int64       `json:"delivery_person_id,omitempty"`
	DeliveryPersonName string      `json:"delivery_person_name,omitempty"`
}

// Tenant returns the partition the order itself carries, possibly empty.
func (o Order) Tenant() TenantRef {
	return TenantRef{ID: o.SupplierID, Code: o.SupplierCode}
}

type Payment struct {
	ID            int64     `json:"payment_id"`
	OrderID       int64     `json:"order_id,omitempty"`
	CustomerID    int64     `json:"customer_id"`
	Amount        float64   `json:"amount"`
	PaymentMode   string    `json:"payment_mode"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type Notification struct {
	ID        int64     `json:"notification_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
