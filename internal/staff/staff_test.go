package staff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseLines = "Employee Name : Ibrahim Mseti\n" +
	"Employee ID: 987654321\n" +
	"Employee PF No: 347\n" +
	"Employee Salary: 467000.97\n"

func TestEmployeeAccessors(t *testing.T) {
	e := NewEmployee("Ibrahim Mseti", 347, 987654321, 467000.97)
	assert.Equal(t, "Ibrahim Mseti", e.Name())
	assert.Equal(t, 347, e.PFNumber())
	assert.Equal(t, 987654321, e.ID())
	assert.Equal(t, 467000.97, e.Salary())

	e.SetName("Amani")
	e.SetPFNumber(0)
	e.SetID(-7)
	e.SetSalary(-10.25)
	assert.Equal(t, "Amani", e.Name())
	assert.Equal(t, 0, e.PFNumber())
	assert.Equal(t, -7, e.ID())
	assert.Equal(t, -10.25, e.Salary())
}

func TestEmployeeDisplayInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEmployee("Ibrahim Mseti", 347, 987654321, 467000.97).DisplayInfo(&buf))
	assert.Equal(t, baseLines, buf.String())
}

func TestManager(t *testing.T) {
	m := NewManager("Ibrahim Mseti", 347, 987654321, 467000.97, "manager")

	t.Run("Promoted accessors", func(t *testing.T) {
		assert.Equal(t, "Ibrahim Mseti", m.Name())
		assert.Equal(t, 347, m.PFNumber())
		assert.Equal(t, 987654321, m.ID())
		assert.Equal(t, 467000.97, m.Salary())
		assert.Equal(t, "manager", m.Title())
	})

	t.Run("Extended display", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, m.DisplayManagerInfo(&buf))
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, baseLines))
		assert.Equal(t, baseLines+"\nPosition: manager\n", out)
	})

	t.Run("Title round trip", func(t *testing.T) {
		mm := NewManager("Ibrahim Mseti", 347, 987654321, 467000.97, "manager")
		mm.SetTitle("director")
		assert.Equal(t, "director", mm.Title())
	})
}

func TestDeveloper(t *testing.T) {
	d := NewDeveloper("Ibrahim Mseti", 347, 987654321, 467000.97, "C++, Js,React, C, Kotlin")
	assert.Equal(t, "C++, Js,React, C, Kotlin", d.Language())

	var buf bytes.Buffer
	require.NoError(t, d.DisplayDeveloperInfo(&buf))
	assert.Equal(t, baseLines+"\nLanguage: C++, Js,React, C, Kotlin\n", buf.String())

	d.SetLanguage("Go")
	assert.Equal(t, "Go", d.Language())
}

func TestExtendedDisplayBlankLine(t *testing.T) {
	m := NewManager("Ibrahim Mseti", 347, 987654321, 467000.97, "manager")

	var buf bytes.Buffer
	require.NoError(t, m.DisplayManagerInfo(&buf))
	assert.Contains(t, buf.String(), "Employee Salary: 467000.97\n\nPosition: manager\n")
}

func TestRecordHasNoOverride(t *testing.T) {
	// DisplayInfo through the shared interface stays the base rendering.
	var r Record = NewManager("Ibrahim Mseti", 347, 987654321, 467000.97, "manager")

	var buf bytes.Buffer
	require.NoError(t, r.DisplayInfo(&buf))
	assert.Equal(t, baseLines, buf.String())
	assert.NotContains(t, buf.String(), "Position")
}

func TestDisplayIsIdempotent(t *testing.T) {
	d := NewDeveloper("Ibrahim Mseti", 347, 987654321, 467000.97, "Go")

	var first, second bytes.Buffer
	require.NoError(t, d.DisplayDeveloperInfo(&first))
	require.NoError(t, d.DisplayDeveloperInfo(&second))
	assert.Equal(t, first.String(), second.String())
}
