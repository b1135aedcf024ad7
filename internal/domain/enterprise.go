package domain

// Enterprise holds the departments of the current session. It mirrors a
// subset of the store and is only synchronised when a caller persists it.
type Enterprise struct {
	departments []*Department
}

func NewEnterprise() *Enterprise {
	return &Enterprise{}
}

func (e *Enterprise) AddDepartment(d *Department) {
	e.departments = append(e.departments, d)
}

// RemoveDepartment removes d (compared by pointer) and reports whether it
// was present.
func (e *Enterprise) RemoveDepartment(d *Department) bool {
	for i, cur := range e.departments {
		if cur == d {
			e.departments = append(e.departments[:i], e.departments[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Enterprise) Departments() []*Department {
	return e.departments
}

// Reset drops every department from the session.
func (e *Enterprise) Reset() {
	e.departments = nil
}

func (e *Enterprise) FindDepartmentByName(name string) *Department {
	for _, d := range e.departments {
		if d.Name == name {
			return d
		}
	}
	return nil
}

func (e *Enterprise) FindDepartmentByID(id int64) *Department {
	for _, d := range e.departments {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// DepartmentOf returns the first department holding the employee, or nil.
func (e *Enterprise) DepartmentOf(employeeID int64) *Department {
	for _, d := range e.departments {
		if d.HasEmployee(employeeID) {
			return d
		}
	}
	return nil
}
