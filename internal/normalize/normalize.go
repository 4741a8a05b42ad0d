// internal/normalize/normalize.go

// Package normalize maps the payload shapes served by the different backend
// versions onto the canonical domain records. Every function here is pure.
package normalize

import (
	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
)

var supplierFields = Table{
	"id":         {"id", "supplier_id", "supplierId", "supplier.id", "supplier.supplier_id", "data.id", "data.supplier_id", "data.supplier.id"},
	"phone":      {"phone_no", "phoneNumber", "phone_number", "phone", "supplier.phone_no", "supplier.phoneNumber", "data.phone_no", "data.supplier.phone_no"},
	"name":       {"name", "supplier_name", "supplierName", "supplier.name", "supplier.supplier_name", "supplier.supplierName", "data.name", "data.supplier.name"},
	"brand_name": {"brand_name", "brandName", "supplier.brand_name", "supplier.brandName", "data.brand_name", "data.supplier.brand_name"},
	"fcm_token":  {"fcm_token", "fcmToken", "supplier.fcm_token", "supplier.fcmToken", "data.supplier.fcm_token"},
}

var customerFields = Table{
	"location_id":      {"location_id", "locationId", "location.location_id", "location.id"},
	"customer_id":      {"customer_id", "customerId", "customer.customer_id", "customer.id"},
	"name":             {"customer_name", "customerName", "name", "customer.customer_name", "customer.name"},
	"phone":            {"customer_phone", "customerPhone", "phone", "phoneNumber", "customer.customer_phone", "customer.phone"},
	"address":          {"customer_address", "customerAddress", "address", "location.customer_address", "location.address", "customer.customer_address"},
	"area":             {"customer_area", "customerArea", "area", "location.customer_area", "location.area"},
	"landmark":         {"landmark", "location.landmark"},
	"city":             {"city", "location.city"},
	"state":            {"state", "location.state"},
	"pincode":          {"pincode", "pin_code", "location.pincode", "location.pin_code"},
	"per_can_amount":   {"per_can_amount", "perCanAmount", "price", "location.per_can_amount", "pricing.per_can_amount"},
	"refill_frequency": {"refill_frequency", "refillFrequency", "location.refill_frequency", "pricing.refill_frequency"},
	"billing_type":     {"billing_type", "billingType", "location.billing_type", "pricing.billing_type"},
	"credit_amount":    {"credit_amount", "creditAmount", "balance.credit_amount", "customer.credit_amount"},
	"due_amount":       {"due_amount", "dueAmount", "balance.due_amount", "customer.due_amount"},
	"profile_status":   {"profile_status", "profileStatus", "isOnboarded", "customer.profile_status"},
}

var orderFields = Table{
	"id":                   {"order_id", "orderId", "id", "order_details.order_id", "order_details.id"},
	"supplier_id":          {"supplier_id", "supplierId", "order_details.supplier_id", "supplier.id"},
	"supplier_code":        {"supplier_code", "supplierCode", "order_details.supplier_code", "supplier.code"},
	"customer_name":        {"customer_name", "customerName", "customer.customer_name", "customer.name"},
	"customer_phone":       {"customer_phone", "customerPhone", "customer.customer_phone", "customer.phone"},
	"customer_address":     {"customer_address", "customerAddress", "customer.customer_address", "location.customer_address", "customer.address"},
	"quantity":             {"quantity", "can_quantity", "canQuantity", "order_details.quantity", "order_details.can_quantity"},
	"per_can_amount":       {"per_can_amount", "unit_price", "perCanAmount", "order_details.per_can_amount", "order_details.unit_price"},
	"total_price":          {"total_price", "totalPrice", "totalAmount", "order_details.total_price"},
	"billing_type":         {"billing_type", "billingType", "order_details.billing_type", "customer.billing_type"},
	"payment_mode":         {"payment_mode", "paymentMode", "order_details.payment_mode"},
	"bill_status":          {"bill_status", "billStatus", "payment_status", "order_details.bill_status", "order_details.payment_status"},
	"status":               {"order_status", "orderStatus", "status", "order_details.order_status", "order_details.status"},
	"delivery_person_id":   {"delivery_person_id", "deliveryPersonId", "delivery_person.id", "order_details.delivery_person_id"},
	"delivery_person_name": {"delivery_person_name", "deliveryPersonName", "delivery_person.name", "order_details.delivery_person_name"},
}

var dashboardFields = Table{
	"total_customers":    {"totalCustomers", "total_customers", "data.totalCustomers", "data.total_customers", "metrics.totalCustomers"},
	"active_orders":      {"activeOrders", "active_orders", "data.activeOrders", "data.active_orders", "metrics.activeOrders"},
	"pending_payments":   {"pendingPayments", "pending_payments", "data.pendingPayments", "data.pending_payments", "metrics.pendingPayments"},
	"completed_payments": {"completedPayments", "completed_payments", "data.completedPayments", "data.completed_payments", "metrics.completedPayments"},
}

var paymentFields = Table{
	"id":             {"payment_id", "paymentId", "id"},
	"order_id":       {"order_id", "orderId", "order.id"},
	"customer_id":    {"customer_id", "customerId", "customer.id"},
	"amount":         {"amount", "paid_amount", "payment_details.amount"},
	"payment_mode":   {"payment_mode", "paymentMode", "payment_details.payment_mode"},
	"transaction_id": {"transaction_id", "transactionId", "payment_details.transaction_id"},
	"status":         {"status", "payment_status", "payment_details.status"},
	"created_at":     {"created_at", "createdAt", "payment_details.created_at"},
}

var notificationFields = Table{
	"id":         {"notification_id", "notificationId", "id"},
	"title":      {"title", "notification.title"},
	"message":    {"message", "body", "notification.message", "notification.body"},
	"type":       {"type", "notification_type", "notification.type"},
	"is_read":    {"is_read", "isRead", "read"},
	"created_at": {"created_at", "createdAt"},
}

func object(payload any) (map[string]any, bool) {
	m, ok := payload.(map[string]any)
	return m, ok && m != nil
}

// Supplier returns ok=false when the payload carries no supplier id; such a
// record can never become a session.
func Supplier(payload any) (domain.Supplier, bool) {
	obj, ok := object(payload)
	if !ok {
		return domain.Supplier{}, false
	}
	r := reader{obj: obj, table: supplierFields}
	s := domain.Supplier{
		ID:        r.int("id"),
		Phone:     r.str("phone"),
		Name:      r.str("name"),
		BrandName: r.str("brand_name"),
		FCMToken:  r.str("fcm_token"),
	}
	return s, s.ID > 0
}

// Customer returns ok=false only for absent or non-object payloads.
func Customer(payload any) (domain.Customer, bool) {
	obj, ok := object(payload)
	if !ok {
		return domain.Customer{}, false
	}
	r := reader{obj: obj, table: customerFields}
	return domain.Customer{
		LocationID:      r.int("location_id"),
		CustomerID:      r.int("customer_id"),
		Name:            r.str("name"),
		Phone:           r.str("phone"),
		Address:         r.str("address"),
		Area:            r.str("area"),
		Landmark:        r.str("landmark"),
		City:            r.str("city"),
		State:           r.str("state"),
		Pincode:         r.str("pincode"),
		PerCanAmount:    r.float("per_can_amount"),
		RefillFrequency: r.int("refill_frequency"),
		BillingType:     domain.ParseBillingType(r.str("billing_type")),
		CreditAmount:    r.float("credit_amount"),
		DueAmount:       r.float("due_amount"),
		ProfileStatus:   r.bool("profile_status"),
	}, true
}

// CustomerDetails reads a single customer, served bare or under "data".
// ok is false when the payload identifies no customer.
func CustomerDetails(payload any) (domain.Customer, bool) {
	obj, ok := object(payload)
	if !ok {
		return domain.Customer{}, false
	}
	if inner, ok := object(obj["data"]); ok {
		obj = inner
	}
	c, _ := Customer(obj)
	return c, c.LocationID > 0 || c.CustomerID > 0
}

func Order(payload any) (domain.Order, bool) {
	obj, ok := object(payload)
	if !ok {
		return domain.Order{}, false
	}
	r := reader{obj: obj, table: orderFields}
	o := domain.Order{
		ID:                 r.int("id"),
		SupplierID:         r.int("supplier_id"),
		SupplierCode:       r.str("supplier_code"),
		CustomerName:       r.str("customer_name"),
		CustomerPhone:      r.str("customer_phone"),
		CustomerAddress:    r.str("customer_address"),
		Quantity:           r.int("quantity"),
		PerCanAmount:       r.float("per_can_amount"),
		TotalPrice:         r.float("total_price"),
		BillingType:        domain.ParseBillingType(r.str("billing_type")),
		PaymentMode:        r.str("payment_mode"),
		BillStatus:         r.str("bill_status"),
		Status:             r.str("status"),
		DeliveryPersonID:   r.int("delivery_person_id"),
		DeliveryPersonName: r.str("delivery_person_name"),
	}
	return o, true
}

func Payment(payload any) (domain.Payment, bool) {
	obj, ok := object(payload)
	if !ok {
		return domain.Payment{}, false
	}
	r := reader{obj: obj, table: paymentFields}
	return domain.Payment{
		ID:            r.int("id"),
		OrderID:       r.int("order_id"),
		CustomerID:    r.int("customer_id"),
		Amount:        r.float("amount"),
		PaymentMode:   r.str("payment_mode"),
		TransactionID: r.str("transaction_id"),
		Status:        r.str("status"),
		CreatedAt:     r.time("created_at"),
	}, true
}

func Notification(payload any) (domain.Notification, bool) {
	obj, ok := object(payload)
	if !ok {
		return domain.Notification{}, false
	}
	r := reader{obj: obj, table: notificationFields}
	return domain.Notification{
		ID:        r.int("id"),
		Title:     r.str("title"),
		Message:   r.str("message"),
		Type:      r.str("type"),
		IsRead:    r.bool("is_read"),
		CreatedAt: r.time("created_at"),
	}, true
}

// Dashboard reads the supplier's summary counters; absent counters are zero.
func Dashboard(payload any) domain.DashboardMetrics {
	obj, ok := object(payload)
	if !ok {
		return domain.DashboardMetrics{}
	}
	r := reader{obj: obj, table: dashboardFields}
	return domain.DashboardMetrics{
		TotalCustomers:    r.int("total_customers"),
		ActiveOrders:      r.int("active_orders"),
		PendingPayments:   r.float("pending_payments"),
		CompletedPayments: r.float("completed_payments"),
	}
}

// OrderShape reports whether an order payload is flat or nests its details.
func OrderShape(payload any) Shape {
	obj, ok := object(payload)
	if !ok {
		return ShapeUnknown
	}
	return DetectShape(obj, "total_price", "order_details")
}

// CustomerShape reports whether a customer payload is flat or nests the customer.
func CustomerShape(payload any) Shape {
	obj, ok := object(payload)
	if !ok {
		return ShapeUnknown
	}
	return DetectShape(obj, "customer_name", "customer")
}

var authFields = Table{
	"token":  {"token", "access_token", "accessToken", "data.token", "data.access_token", "data.accessToken"},
	"tenant": {"temp_supplier_id", "tempSupplierId", "supplier_id", "supplierId", "data.temp_supplier_id", "data.tempSupplierId", "data.supplier_id", "data.supplierId"},
}

// Token extracts the bearer token from an auth response, or "".
func Token(payload any) string {
	obj, ok := object(payload)
	if !ok {
		return ""
	}
	return reader{obj: obj, table: authFields}.str("token")
}

// TenantID extracts a bare tenant id, as issued by the send-code step.
func TenantID(payload any) int64 {
	obj, ok := object(payload)
	if !ok {
		return 0
	}
	return reader{obj: obj, table: authFields}.int("tenant")
}
