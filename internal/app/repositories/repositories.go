package repositories

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	PositionRepository   *PositionRepository
	EmployeeRepository   *EmployeeRepository
}

// NewRepositories initializes all repositories over the same store handle
func NewRepositories(db Database, opts ...Option) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db, opts...),
		PositionRepository:   NewPositionRepository(db, opts...),
		EmployeeRepository:   NewEmployeeRepository(db, opts...),
	}
}
