package staff

import "io"

// Manager is an Employee with a position title.
type Manager struct {
	Employee
	title string
}

func NewManager(name string, pfNumber, id int, salary float64, title string) *Manager {
	return &Manager{
		Employee: Employee{name: name, pfNumber: pfNumber, id: id, salary: salary},
		title:    title,
	}
}

func (m *Manager) Title() string {
	return m.title
}

func (m *Manager) SetTitle(title string) {
	m.title = title
}

// DisplayManagerInfo writes the employee lines and then the position.
func (m *Manager) DisplayManagerInfo(w io.Writer) error {
	return m.displayWith(w, "Position", m.title)
}
