package domain

// Notification is a single validation failure message collected during a
// validation pass.
type Notification struct {
	Message string
}

// Notifiable is embedded by entities that report validation failures through
// a ledger instead of failing on the first broken rule. The ledger is rebuilt
// on every validation pass: Validate implementations call reset first, then
// append one notification per failing rule.
type Notifiable struct {
	notifications []Notification
}

// AddNotification appends a failure message. Duplicate messages are kept —
// two independently failing rules produce two entries.
func (n *Notifiable) AddNotification(message string) {
	n.notifications = append(n.notifications, Notification{Message: message})
}

// IsValid reports whether the last validation pass found no failures.
func (n *Notifiable) IsValid() bool {
	return len(n.notifications) == 0
}

// Notifications returns the failure messages in the order they were added.
func (n *Notifiable) Notifications() []Notification {
	return n.notifications
}

func (n *Notifiable) reset() {
	n.notifications = n.notifications[:0]
}

// Validatable is the capability shared by self-validating entities.
type Validatable interface {
	Validate()
	IsValid() bool
	Notifications() []Notification
}
