package enums

// APIRole gates access to operator-facing routing endpoints.
type APIRole string

const (
	APIRoleAdmin    APIRole = "admin"
	APIRoleOperator APIRole = "operator"
)

func (r APIRole) IsValid() bool {
	return r == APIRoleAdmin || r == APIRoleOperator
}

func (r APIRole) String() string {
	return string(r)
}

// CanConfigure reports whether the role may change routing configuration.
func (r APIRole) CanConfigure() bool {
	return r == APIRoleAdmin
}
