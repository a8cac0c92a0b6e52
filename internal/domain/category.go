// Package domain contains core domain types for the examwatch proctoring pipeline.
package domain

// Category identifies a proctoring rule breach observed in a video frame.
type Category string

// The set of violation categories is closed: adding one requires updating the
// classifier, the aggregate and the stored record schema together.
const (
	NoFace           Category = "noFace"
	MultipleFace     Category = "multipleFace"
	CellPhone        Category = "cellPhone"
	ProhibitedObject Category = "prohibitedObject"
)

// Categories returns all violation categories in stable order.
func Categories() []Category {
	return []Category{NoFace, MultipleFace, CellPhone, ProhibitedObject}
}

// Valid reports whether c is one of the known violation categories.
func (c Category) Valid() bool {
	switch c {
	case NoFace, MultipleFace, CellPhone, ProhibitedObject:
		return true
	}
	return false
}
