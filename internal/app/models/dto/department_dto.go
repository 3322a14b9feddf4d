package dto

import "github.com/yigit/personnel/internal/app/models"

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PositionResponse represents basic position information
type PositionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromDepartment converts a department model to its response
func FromDepartment(d *models.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}

// FromDepartments converts a department list, never returning nil
func FromDepartments(list []*models.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDepartment(d))
	}
	return out
}

// FromPosition converts a position model to its response
func FromPosition(p *models.Position) PositionResponse {
	return PositionResponse{ID: p.ID, Name: p.Name}
}

// FromPositions converts a position list, never returning nil
func FromPositions(list []*models.Position) []PositionResponse {
	out := make([]PositionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPosition(p))
	}
	return out
}
