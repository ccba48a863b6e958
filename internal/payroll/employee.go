// Package payroll holds an employee record whose fields are only reachable
// through accessor methods. Salaries render as the shortest decimal that
// reads back to the same float64, so 467000.97 prints in full rather than
// rounded to six significant digits.
package payroll

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Employee is an employee's identity and compensation. Values are taken as
// given: an empty name or a negative salary is stored unchanged.
type Employee struct {
	name   string
	id     int
	salary float64
}

// NewEmployee creates an Employee from all of its fields.
func NewEmployee(name string, id int, salary float64) *Employee {
	return &Employee{name: name, id: id, salary: salary}
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

func (e *Employee) Salary() float64 {
	return e.salary
}

func (e *Employee) SetSalary(salary float64) {
	e.salary = salary
}

// Display writes the record summary to w, one field per line, with the
// salary suffixed by the currency sign.
func (e *Employee) Display(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Employee ID: %d\nName: %s\nEmploye Salary: %s $\n",
		e.id, e.name, strconv.FormatFloat(e.salary, 'f', -1, 64))
	return err
}

func (e *Employee) String() string {
	var sb strings.Builder
	_ = e.Display(&sb)
	return sb.String()
}
