package catalog

import (
	"github.com/iancoleman/strcase"
)

type ValueKind int64

const (
	String ValueKind = iota
	Integer
	Decimal
	Boolean
)

func (k ValueKind) String() string {
	switch k {
	case String:
		return "Text"
	case Integer:
		return "Whole number"
	case Decimal:
		return "Decimal number"
	case Boolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Column is one cell position in the export.
type Column struct {
	Header string
	// Key is the course object key the cell is read from.
	Key   string
	Kind  ValueKind
	value func(Course) any
}

// Cell renders the column for course.
func (c Column) Cell(course Course) string {
	return formatCell(c.value(course))
}

// keyOverrides holds the course keys that don't follow from their header.
var keyOverrides = map[string]string{
	"ID":               "id",
	"Term Description": "termDesc",
}

func sourceKey(header string) string {
	if k, ok := keyOverrides[header]; ok {
		return k
	}
	return strcase.ToLowerCamel(header)
}

func column(header string, kind ValueKind, value func(Course) any) Column {
	return Column{Header: header, Key: sourceKey(header), Kind: kind, value: value}
}

// Columns is the export layout. Its set and order never depend on which
// fields a given response carries.
var Columns = []Column{
	column("ID", Integer, func(c Course) any { return c.ID }),
	column("Term", String, func(c Course) any { return c.Term }),
	column("Term Description", String, func(c Course) any { return c.TermDesc }),
	column("Course Reference Number", String, func(c Course) any { return c.CourseReferenceNumber }),
	column("Part of Term", String, func(c Course) any { return c.PartOfTerm }),
	column("Course Number", String, func(c Course) any { return c.CourseNumber }),
	column("Subject", String, func(c Course) any { return c.Subject }),
	column("Subject Description", String, func(c Course) any { return c.SubjectDescription }),
	column("Sequence Number", String, func(c Course) any { return c.SequenceNumber }),
	column("Campus Description", String, func(c Course) any { return c.CampusDescription }),
	column("Schedule Type Description", String, func(c Course) any { return c.ScheduleTypeDescription }),
	column("Course Title", String, func(c Course) any { return c.CourseTitle }),
	column("Credit Hours", Decimal, func(c Course) any { return c.CreditHours }),
	column("Maximum Enrollment", Integer, func(c Course) any { return c.MaximumEnrollment }),
	column("Enrollment", Integer, func(c Course) any { return c.Enrollment }),
	column("Seats Available", Integer, func(c Course) any { return c.SeatsAvailable }),
	column("Wait Capacity", Integer, func(c Course) any { return c.WaitCapacity }),
	column("Wait Count", Integer, func(c Course) any { return c.WaitCount }),
	column("Wait Available", Integer, func(c Course) any { return c.WaitAvailable }),
	column("Cross List", String, func(c Course) any { return c.CrossList }),
	column("Cross List Capacity", Integer, func(c Course) any { return c.CrossListCapacity }),
	column("Cross List Count", Integer, func(c Course) any { return c.CrossListCount }),
	column("Cross List Available", Integer, func(c Course) any { return c.CrossListAvailable }),
	column("Credit Hour High", Decimal, func(c Course) any { return c.CreditHourHigh }),
	column("Credit Hour Low", Decimal, func(c Course) any { return c.CreditHourLow }),
	column("Credit Hour Indicator", String, func(c Course) any { return c.CreditHourIndicator }),
	column("Open Section", Boolean, func(c Course) any { return c.OpenSection }),
	column("Link Identifier", String, func(c Course) any { return c.LinkIdentifier }),
	column("Is Section Linked", Boolean, func(c Course) any { return c.IsSectionLinked }),
	column("Subject Course", String, func(c Course) any { return c.SubjectCourse }),
	column("Instructional Method", String, func(c Course) any { return c.InstructionalMethod }),
	column("Instructional Method Description", String, func(c Course) any { return c.InstructionalMethodDescription }),
}

// Headers returns the header row.
func Headers() []string {
	result := make([]string, len(Columns))
	for i, c := range Columns {
		result[i] = c.Header
	}
	return result
}

// Row projects a course onto Columns. Absent fields become empty cells.
func Row(course Course) []string {
	result := make([]string, len(Columns))
	for i, c := range Columns {
		result[i] = c.Cell(course)
	}
	return result
}
