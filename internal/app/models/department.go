package models

// Department represents an organisational unit employees belong to
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

// DepartmentPatch carries the department fields supplied on update.
// A nil field is left unchanged.
type DepartmentPatch struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

// IsEmpty reports whether the patch changes nothing.
func (p DepartmentPatch) IsEmpty() bool {
	return p.Name == nil
}

// Apply overwrites the fields present in the patch.
func (p DepartmentPatch) Apply(d *Department) {
	if p.Name != nil {
		d.Name = *p.Name
	}
}
