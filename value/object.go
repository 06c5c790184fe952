package value

// ObjectData is a refcounted property table plus the subscript-protocol
// hooks (offsetGet/offsetSet/offsetIsset/offsetUnset, the object-as-array
// overload spec.md §4.7 describes) and the collection carve-out. Grounded
// on the teacher's WaifValue property map (types/waif.go), generalized from
// copy-on-write-by-value to refcounted-by-pointer since object identity —
// not value equality — is what member ops over objects depend on. Property
// slots are stored as *Cell (not Cell) so Prop/SetProp/IncDecProp can hand
// back a stable address for in-place mutation, same role types.WaifValue's
// map plays but addressable.
type ObjectData struct {
	Class string
	props map[string]*Cell
	order []string // insertion order, for deterministic iteration/printing
	refs  int32

	// IsCollection marks this object as one of the typed collection kinds
	// (Vector/Map) backed by package collection; member ops route element
	// access through Collection instead of the generic property+subscript
	// path when this is set.
	IsCollection bool
	Collection   CollectionHandle

	// ArrayAdapter marks an ArrayObject-style carve-out (SUPPLEMENTED
	// FEATURES: generalizes ElemDObject's hardcoded "m_storage" special
	// case): ElemD routes into the named Storage property with warn=false
	// instead of going through the general offsetGet override.
	ArrayAdapter bool
	Storage      string

	// Overload, when non-nil, marks this object as implementing the
	// ArrayAccess subscript protocol (ElemObject/ElemDObject's
	// "instanceof ArrayAccess" branch): element ops route through it
	// instead of the plain-array/dynamic-property fallback.
	Overload CollectionHandle

	// Magic, when non-nil, marks this object as implementing the magic
	// property protocol (__get/__set/__isset/__unset): Prop/SetProp/
	// IssetEmptyProp route through it for names with no declared or
	// dynamic slot, instead of falling through to
	// "Attempt to access property on non-object"-style handling.
	Magic MagicProps
}

// MagicProps is the narrow interface Prop/SetProp/UnsetProp/
// IssetEmptyProp dispatch to for an object that overrides
// __get/__set/__isset/__unset, mirroring propObj's fallback to the
// object's magic-method table in the original.
type MagicProps interface {
	Get(name string) (Cell, bool)
	Set(name string, val Cell)
	Isset(name string) bool
	Unset(name string) bool
}

// CollectionHandle is the narrow interface member/elem_object.go uses to
// dispatch element ops to package collection without an import cycle
// (collection imports value for Cell; value cannot import collection back).
type CollectionHandle interface {
	At(k Cell) (Cell, bool)
	AtLval(k Cell) *Cell
	Set(k Cell, v Cell)
	Append(v Cell)
	Isset(k Cell) bool
	Unset(k Cell) bool
	CanAppend() bool
	CanUnset() bool
}

func NewObject(class string) *ObjectData {
	return &ObjectData{Class: class, props: make(map[string]*Cell), refs: 1}
}

// NewStdclass builds the empty generic object auto-vivification targets
// (spec.md §4.6's "Creating default object from empty value"), mirroring
// propPreStdclass.
func NewStdclass() *ObjectData {
	return NewObject("stdClass")
}

func (o *ObjectData) IncRef() {
	if o == nil {
		return
	}
	o.refs++
}

func (o *ObjectData) DecRef() {
	if o == nil {
		return
	}
	o.refs--
}

func (o *ObjectData) HasMultipleRefs() bool {
	if o == nil {
		return false
	}
	return o.refs > 1
}

func (o *ObjectData) HasProp(name string) bool {
	_, ok := o.props[name]
	return ok
}

func (o *ObjectData) GetProp(name string) (Cell, bool) {
	c, ok := o.props[name]
	if !ok {
		return Uninit(), false
	}
	return *c, true
}

// LvalProp returns a pointer to the named property slot, declaring it as
// Null if absent — the dynamic-property path every Prop* function falls
// back to when the object has no such slot yet.
func (o *ObjectData) LvalProp(name string) *Cell {
	if c, ok := o.props[name]; ok {
		return c
	}
	c := new(Cell)
	*c = Null()
	o.props[name] = c
	o.order = append(o.order, name)
	return c
}

func (o *ObjectData) SetProp(name string, v Cell) {
	if c, ok := o.props[name]; ok {
		Release(*c)
		*c = v
		return
	}
	c := new(Cell)
	*c = v
	o.props[name] = c
	o.order = append(o.order, name)
}

func (o *ObjectData) UnsetProp(name string) {
	c, ok := o.props[name]
	if !ok {
		return
	}
	Release(*c)
	delete(o.props, name)
	for i, n := range o.order {
		if n == name {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

func (o *ObjectData) PropNames() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}
