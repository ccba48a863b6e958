// Package staff models an employee record that Manager and Developer extend
// by embedding. The extended display operations have their own names, so
// they are only reachable through the concrete type.
//
// Salaries render as the shortest exact decimal (467000.97, not the
// six-significant-digit 467001 a C++ stream would print).
package staff

import (
	"fmt"
	"io"
	"strconv"
)

// Record is the capability shared by Employee, Manager and Developer.
type Record interface {
	Name() string
	PFNumber() int
	ID() int
	Salary() float64
	DisplayInfo(w io.Writer) error
}

var (
	_ Record = (*Employee)(nil)
	_ Record = (*Manager)(nil)
	_ Record = (*Developer)(nil)
)

// Employee is the base record. The PF number is an auxiliary identifier
// with no relationship to ID.
type Employee struct {
	name     string
	pfNumber int
	id       int
	salary   float64
}

func NewEmployee(name string, pfNumber, id int, salary float64) *Employee {
	return &Employee{name: name, pfNumber: pfNumber, id: id, salary: salary}
}

func (e *Employee) Name() string {
	return e.name
}

func (e *Employee) SetName(name string) {
	e.name = name
}

func (e *Employee) PFNumber() int {
	return e.pfNumber
}

func (e *Employee) SetPFNumber(pf int) {
	e.pfNumber = pf
}

func (e *Employee) ID() int {
	return e.id
}

func (e *Employee) SetID(id int) {
	e.id = id
}

func (e *Employee) Salary() float64 {
	return e.salary
}

func (e *Employee) SetSalary(s float64) {
	e.salary = s
}

// DisplayInfo writes the base employee lines to w.
func (e *Employee) DisplayInfo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Employee Name : %s\nEmployee ID: %d\nEmployee PF No: %d\nEmployee Salary: %s\n",
		e.name, e.id, e.pfNumber, strconv.FormatFloat(e.salary, 'f', -1, 64))
	return err
}

// displayWith writes the base lines, a blank line, then one labelled extra line.
func (e *Employee) displayWith(w io.Writer, label, value string) error {
	if err := e.DisplayInfo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s: %s\n", label, value)
	return err
}
