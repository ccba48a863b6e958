// Package samples contains the fixed sample programs: each builds literal
// records and writes their display output.
package samples

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/locvowork/employee_management_sample/samples/internal/directory"
	"github.com/locvowork/employee_management_sample/samples/internal/logger"
	"github.com/locvowork/employee_management_sample/samples/internal/payroll"
	"github.com/locvowork/employee_management_sample/samples/internal/staff"
)

var separator = strings.Repeat("-", 46)

// Sample is one runnable sample program.
type Sample struct {
	Name  string
	Short string
	Run   func(ctx context.Context, w io.Writer) error
}

// Registry lists the samples in the order All runs them.
var Registry = []Sample{
	{Name: "encapsulation", Short: "Employee record behind accessor methods", Run: Encapsulation},
	{Name: "inheritance", Short: "Manager and Developer extending Employee", Run: Inheritance},
	{Name: "polymorphism", Short: "Manager display resolved through an interface", Run: Polymorphism},
}

// Encapsulation displays a single payroll record.
func Encapsulation(ctx context.Context, w io.Writer) error {
	emp := payroll.NewEmployee("Ibrahim John", 23456789, 2345.65)
	logger.DebugLog(ctx, "Displaying employee %d", emp.ID())
	return emp.Display(w)
}

// Inheritance displays a manager and a developer, each followed by a separator.
func Inheritance(ctx context.Context, w io.Writer) error {
	mng := staff.NewManager("Ibrahim Mseti", 347, 987654321, 467000.97, "manager")
	dev := staff.NewDeveloper("Ibrahim Mseti", 347, 987654321, 467000.97, "C++, Js,React, C, Kotlin")

	logger.DebugLog(ctx, "Displaying manager %d", mng.ID())
	if err := mng.DisplayManagerInfo(w); err != nil {
		return err
	}
	if err := writeSeparator(w); err != nil {
		return err
	}

	logger.DebugLog(ctx, "Displaying developer %d", dev.ID())
	if err := dev.DisplayDeveloperInfo(w); err != nil {
		return err
	}
	return writeSeparator(w)
}

// Polymorphism displays a manager held as a directory.Displayer.
func Polymorphism(ctx context.Context, w io.Writer) error {
	var emp directory.Displayer = directory.NewManager("Ibrahim Mseti", 1234, "Manager")
	logger.DebugLog(ctx, "Displaying %T through Displayer", emp)
	if err := emp.DisplayInformation(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// All runs every registered sample in order, stopping at the first error.
func All(ctx context.Context, w io.Writer) error {
	for _, s := range Registry {
		sctx := logger.WithLogger(ctx, map[string]interface{}{"sample": s.Name})
		if err := s.Run(sctx, w); err != nil {
			return fmt.Errorf("sample %s: %w", s.Name, err)
		}
	}
	return nil
}

func writeSeparator(w io.Writer) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	// color decides from stdout alone; other writers always get plain text.
	c := color.New(color.Faint)
	if w != os.Stdout {
		c.DisableColor()
	}
	_, err := c.Fprintln(w, separator)
	return err
}
