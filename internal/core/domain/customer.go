package domain

// CustomFields holds a platform resource's custom type reference and values.
type CustomFields struct {
	Type   *ResourceReference `json:"type,omitempty"`
	Fields map[string]any     `json:"fields,omitempty"`
}

// ResourceReference points at another platform resource.
type ResourceReference struct {
	TypeID string `json:"typeId"`
	ID     string `json:"id,omitempty"`
	Key    string `json:"key,omitempty"`
}

// Customer is the subset of a platform customer the jobs read and update.
type Customer struct {
	ID             string        `json:"id"`
	Version        int64         `json:"version"`
	CustomerNumber string        `json:"customerNumber,omitempty"`
	Email          string        `json:"email,omitempty"`
	FirstName      string        `json:"firstName,omitempty"`
	LastName       string        `json:"lastName,omitempty"`
	Custom         *CustomFields `json:"custom,omitempty"`
	CreatedAt      string        `json:"createdAt,omitempty"`
	LastModifiedAt string        `json:"lastModifiedAt,omitempty"`
}

// CustomerPage is one page of a platform customer query.
type CustomerPage struct {
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
	Count   int        `json:"count"`
	Total   int        `json:"total"`
	Results []Customer `json:"results"`
}

// CustomerQuery describes a paged customer query.
type CustomerQuery struct {
	Sort  []string
	Limit int
}

// CustomerUpdateAction is a single update action sent to the platform.
type CustomerUpdateAction struct {
	Action string `json:"action"`
	Name   string `json:"name,omitempty"`
	Value  any    `json:"value,omitempty"`
}

// CustomerUpdate is an optimistic-concurrency update request body.
type CustomerUpdate struct {
	Version int64                  `json:"version"`
	Actions []CustomerUpdateAction `json:"actions"`
}

// SetCustomFieldAction builds a setCustomField update action.
func SetCustomFieldAction(name string, value any) CustomerUpdateAction {
	return CustomerUpdateAction{Action: "setCustomField", Name: name, Value: value}
}
