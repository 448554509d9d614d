package domain

type OrderStatus string

const (
	OrderStatusCreated       OrderStatus = "CREATED"
	OrderStatusInPreparation OrderStatus = "IN_PREPARATION"
	OrderStatusReady         OrderStatus = "READY"
	OrderStatusCompleted     OrderStatus = "COMPLETED"
	OrderStatusCancelled     OrderStatus = "CANCELLED"
)

var statusLabels = map[OrderStatus]string{
	OrderStatusCreated:       "Created",
	OrderStatusInPreparation: "In preparation",
	OrderStatusReady:         "Ready",
	OrderStatusCompleted:     "Completed",
	OrderStatusCancelled:     "Cancelled",
}

// Known reports whether s is a recognized status value.
func (s OrderStatus) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human-readable status name used in read views and
// user-facing messages.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// statusTransitions is the transition policy table. Re-asserting the current
// status is always rejected; any other recognized target is accepted. A
// stricter workflow only needs to shrink the rows here, callers go through
// TransitionAllowed.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:       {OrderStatusInPreparation, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusInPreparation: {OrderStatusCreated, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusReady:         {OrderStatusCreated, OrderStatusInPreparation, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:     {OrderStatusCreated, OrderStatusInPreparation, OrderStatusReady, OrderStatusCancelled},
	OrderStatusCancelled:     {OrderStatusCreated, OrderStatusInPreparation, OrderStatusReady, OrderStatusCompleted},
}

// TransitionAllowed reports whether an order may move from one status to
// another under the current policy.
func TransitionAllowed(from, to OrderStatus) bool {
	for _, t := range statusTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
