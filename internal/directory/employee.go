// Package directory renders employee entries through the Displayer
// interface. Manager overrides Employee's rendering, and the override is
// what runs when a Manager is held as a Displayer.
package directory

import (
	"fmt"
	"io"
)

// Displayer writes an entry's summary.
type Displayer interface {
	DisplayInformation(w io.Writer) error
}

type Employee struct {
	name string
	id   int
}

func NewEmployee(name string, id int) *Employee {
	return &Employee{name: name, id: id}
}

func (e *Employee) Name() string {
	return e.name
}

func (e *Employee) SetName(name string) {
	e.name = name
}

func (e *Employee) ID() int {
	return e.id
}

func (e *Employee) SetID(id int) {
	e.id = id
}

func (e *Employee) DisplayInformation(w io.Writer) error {
	_, err := fmt.Fprintf(w, "--- Employee System ---\nEmployee Name: %s\nEmployee ID: %d\n", e.name, e.id)
	return err
}

// Manager is an Employee with a bonus note.
type Manager struct {
	Employee
	bonus string
}

func NewManager(name string, id int, bonus string) *Manager {
	return &Manager{Employee: Employee{name: name, id: id}, bonus: bonus}
}

func (m *Manager) Bonus() string {
	return m.bonus
}

func (m *Manager) SetBonus(bonus string) {
	m.bonus = bonus
}

// DisplayInformation wraps the employee summary with a header and the bonus.
func (m *Manager) DisplayInformation(w io.Writer) error {
	if _, err := io.WriteString(w, "Manager Information\n"); err != nil {
		return err
	}
	if err := m.Employee.DisplayInformation(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Bonus: %s\n", m.bonus)
	return err
}
