package entities

type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleSystem Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleStaff, RoleSystem:
		return true
	}
	return false
}

// Actor identifies who performs an operation. Authentication happens upstream;
// the engine only authorizes.
type Actor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	CompanyID string `json:"company_id,omitempty"`
}

// SystemActor is used for transitions driven by the payment processor.
var SystemActor = Actor{ID: "system", Name: "system", Role: RoleSystem}

// DisplayName is the label written to audit entries and chat messages.
func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
