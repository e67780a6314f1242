package vector

// Kind tells how an element is written out.
type Kind uint8

const (
	// Shape is the first occurrence of a signature, written in full.
	Shape Kind = iota
	// Reference points at an earlier definition by id.
	Reference
)

func (k Kind) String() string {
	switch k {
	case Shape:
		return "shape"
	case Reference:
		return "reference"
	}
	return "unknown"
}

// Element is one positioned entry of the output document.
type Element struct {
	Kind  Kind
	ID    int
	X     int
	Y     int
	Width int
	Color Color
}

// Geometry controls the size of emitted rectangles. Overlap is added to each
// run width so neighbouring rectangles do not leave seams when rendered, and
// Height is the drawn thickness of one scanline.
type Geometry struct {
	Overlap float64
	Height  float64
}

// DefaultGeometry returns the standard overlap and row height.
func DefaultGeometry() Geometry {
	return Geometry{Overlap: 0.2, Height: 1.1}
}

func NewEmitter(cache *Cache) *Emitter {
	return &Emitter{cache: cache}
}

// Emitter turns runs into document elements, registering new shapes in its
// cache as it goes.
type Emitter struct {
	cache    *Cache
	elements []Element
}

// Emit appends the element for r and returns it.
func (e *Emitter) Emit(r Run) Element {
	id, created := e.cache.LookupOrCreate(r.Signature())

	el := Element{Kind: Reference, ID: id, X: r.X, Y: r.Y}
	if created {
		el.Kind = Shape
		el.Width = r.Width
		el.Color = r.Color
	}

	e.elements = append(e.elements, el)
	return el
}

// Elements returns every emitted element in emission order.
func (e *Emitter) Elements() []Element {
	return e.elements
}
