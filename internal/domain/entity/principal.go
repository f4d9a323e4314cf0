package entity

// Role identifies which side of the application a principal belongs to.
// A principal's role is immutable after creation.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleAdmin  Role = "admin"
)

// Principal is the currently authenticated actor. At most one principal is
// current at any time. Profile is non-nil exactly when Role is RoleFarmer.
type Principal struct {
	Role     Role           `json:"role"`
	Username string         `json:"username"`
	Profile  *FarmerProfile `json:"profile,omitempty"`
}

// IsFarmer reports whether the principal is a farmer with a profile attached.
func (p *Principal) IsFarmer() bool {
	return p != nil && p.Role == RoleFarmer && p.Profile != nil
}
