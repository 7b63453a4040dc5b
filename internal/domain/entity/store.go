// Package entity contains the core business objects of the project.
package entity

// Slice names: the top-level fields of the per-store owner document. Each is
// an independently bindable unit of state.
const (
	SliceSalesData    = "salesData"
	SliceProducts     = "products"
	SliceStaff        = "staff"
	SliceReservations = "reservations"
	SliceCustomers    = "customers"
	SliceSchedules    = "schedules"
)

// FieldProfile is the owner-document field holding the store profile. Unlike
// the slices it is written once at provisioning and read whole.
const FieldProfile = "profile"

// StoreProfile is the per-store profile consumed from the authentication
// collaborator. The core treats it as opaque input and never manages it.
type StoreProfile struct {
	StoreName      string       `json:"storeName" mapstructure:"storeName"`
	OwnerName      string       `json:"ownerName" mapstructure:"ownerName"`
	Phone          string       `json:"phone" mapstructure:"phone"`
	Address        string       `json:"address" mapstructure:"address"`
	BusinessNumber string       `json:"businessNumber" mapstructure:"businessNumber"`
	BusinessType   BusinessType `json:"businessType" mapstructure:"businessType"`
}
