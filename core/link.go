package core

// Link is a fixed-length stick between two points
// Endpoints are stored as ids and resolved by the owning State, so copies never alias
type Link struct {
	ID         ID
	A, B       ID
	RestLength float64
}

// Touches reports whether id is one of the endpoints
func (l Link) Touches(id ID) bool {
	return l.A == id || l.B == id
}

// Joins reports whether the link connects a and b, in either order
func (l Link) Joins(a, b ID) bool {
	return (l.A == a && l.B == b) || (l.A == b && l.B == a)
}

// Other returns the endpoint opposite id; ok is false if id is not an endpoint
func (l Link) Other(id ID) (ID, bool) {
	switch id {
	case l.A:
		return l.B, true
	case l.B:
		return l.A, true
	}
	return 0, false
}
