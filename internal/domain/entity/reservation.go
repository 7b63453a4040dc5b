package entity

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation represents one record of the reservations slice. Date is an ISO
// day string and Time is "HH:MM" on the store's local clock.
type Reservation struct {
	ID        string `json:"id" mapstructure:"id"`
	Name      string `json:"name" mapstructure:"name"`
	Phone     string `json:"phone" mapstructure:"phone"`
	Date      string `json:"date" mapstructure:"date"`
	Time      string `json:"time" mapstructure:"time"`
	People    int    `json:"people" mapstructure:"people"`
	Status    string `json:"status" mapstructure:"status"`
	Note      string `json:"note" mapstructure:"note"`
	CreatedAt string `json:"createdAt,omitempty" mapstructure:"createdAt"`
}
