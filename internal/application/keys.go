// internal/application/keys.go
package application

// Durable store keys, one per concern.
const (
	KeySession           = "session"
	KeyCustomersSnapshot = "customersSnapshot"
	KeyAuthToken         = "authToken"
	KeyPINHash           = "pinHash"
)
