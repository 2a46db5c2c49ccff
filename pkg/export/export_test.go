package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterTable() Table {
	return Table{
		Title:   "Seeded credentials",
		Headers: []string{"role", "register_no", "email"},
		Rows: [][]string{
			{"HOD", "HOD-CSE-001", "hod.cse@college.edu"},
			{"Student", "2024CSE001", "2024cse001@student.college.edu"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(rosterTable())
	require.NoError(t, err)
	assert.Equal(t, "role,register_no,email\nHOD,HOD-CSE-001,hod.cse@college.edu\nStudent,2024CSE001,2024cse001@student.college.edu\n", string(out))
}

func TestExportersRejectRaggedRows(t *testing.T) {
	table := rosterTable()
	table.Rows = append(table.Rows, []string{"Faculty"})

	_, err := NewCSVExporter().Render(table)
	require.Error(t, err)
	_, err = NewPDFExporter().Render(table)
	require.Error(t, err)

	_, err = NewCSVExporter().Render(Table{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(rosterTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
