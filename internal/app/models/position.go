package models

// Position represents a job title an employee holds
type Position struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

// PositionPatch carries the position fields supplied on update.
type PositionPatch struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

// IsEmpty reports whether the patch changes nothing.
func (p PositionPatch) IsEmpty() bool {
	return p.Name == nil
}

// Apply overwrites the fields present in the patch.
func (p PositionPatch) Apply(pos *Position) {
	if p.Name != nil {
		pos.Name = *p.Name
	}
}
