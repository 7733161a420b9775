package entity

type OrderStatus string

const (
	StatusReceived         OrderStatus = "received"
	StatusConfirmed        OrderStatus = "confirmed"
	StatusPreparing        OrderStatus = "preparing"
	StatusReadyForPickup   OrderStatus = "ready_for_pickup"
	StatusReadyForDelivery OrderStatus = "ready_for_delivery"
	StatusPickedUp         OrderStatus = "picked_up"
	StatusDelivered        OrderStatus = "delivered"
	StatusCompleted        OrderStatus = "completed"
	StatusCancelled        OrderStatus = "cancelled"
)

// Terminal statuses drop the order out of the active queue. picked_up and
// delivered still allow the bookkeeping move to completed, but they count as
// terminal for queueing and cancellation.
var terminalStatuses = map[OrderStatus]bool{
	StatusCompleted: true,
	StatusCancelled: true,
	StatusPickedUp:  true,
	StatusDelivered: true,
}

func (s OrderStatus) IsTerminal() bool {
	return terminalStatuses[s]
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusConfirmed, StatusPreparing,
		StatusReadyForPickup, StatusReadyForDelivery,
		StatusPickedUp, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// TerminalStatusNames is handy for NOT IN queries over the active queue.
func TerminalStatusNames() []string {
	return []string{
		string(StatusCompleted), string(StatusCancelled),
		string(StatusPickedUp), string(StatusDelivered),
	}
}
