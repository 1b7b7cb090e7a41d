package notes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validEntry() Entry {
	return Entry{
		FirstName: "John",
		LastName:  "Doe",
		Project:   "Alpha",
		Origin:    "2024-01-01",
		Term:      9,
		Principal: "1000",
		Rate:      "0.07",
	}
}

func TestEntryRecord(t *testing.T) {
	e := validEntry()
	e.FirstName = "  John "
	e.Origin = "01/01/2024"
	yes := true
	e.AutoRollover = &yes

	r, err := e.Record()
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	var cells []string
	for _, c := range Schema {
		cells = append(cells, r.Cell(c))
	}
	want := []string{"John", "Doe", "Alpha", "2024-01-01", "9", "2024-09-27", "1000", "0.07", "1052.5", "true", ""}
	if diff := cmp.Diff(want, cells); diff != "" {
		t.Errorf("Record() mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(e *Entry)
		columns []Column
	}{
		{"valid", func(e *Entry) {}, nil},
		{"missing names", func(e *Entry) { e.FirstName, e.LastName = "", " " }, []Column{ColFirstName, ColLastName}},
		{"missing project", func(e *Entry) { e.Project = "" }, []Column{ColProject}},
		{"bad origin", func(e *Entry) { e.Origin = "2024-13-45" }, []Column{ColOrigin}},
		{"term too short", func(e *Entry) { e.Term = 0 }, []Column{ColTerm}},
		{"term too long", func(e *Entry) { e.Term = MaxTerm + 1 }, []Column{ColTerm}},
		{"longest term", func(e *Entry) { e.Term = MaxTerm }, nil},
		{"negative principal", func(e *Entry) { e.Principal = "-1" }, []Column{ColPrincipal}},
		{"zero principal", func(e *Entry) { e.Principal = "0" }, nil},
		{"bad rate", func(e *Entry) { e.Rate = "7%" }, []Column{ColRate}},
		{"everything wrong", func(e *Entry) { *e = Entry{} }, []Column{ColFirstName, ColLastName, ColProject, ColOrigin, ColTerm, ColPrincipal, ColRate}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := validEntry()
			test.edit(&e)
			err := e.Validate()

			var got []Column
			for _, err := range unjoinErrors(err) {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("Validate() error %v is not a *ParseError", err)
				}
				got = append(got, pe.Column)
			}
			if diff := cmp.Diff(test.columns, got); diff != "" {
				t.Errorf("Validate() columns mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEntryRequired(t *testing.T) {
	e := validEntry()
	e.Project = ""
	if err := e.Validate(); !errors.Is(err, ErrRequired) {
		t.Errorf("Validate() error = %v, want ErrRequired", err)
	}
	if _, err := e.Record(); err == nil {
		t.Error("Record() accepted an invalid entry")
	}
}

func TestEntryOf(t *testing.T) {
	no := false
	e := validEntry()
	e.AutoRollover = &no
	r, err := e.Record()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(e, EntryOf(r)); diff != "" {
		t.Errorf("EntryOf() mismatch (-want +got):\n%s", diff)
	}
}

func unjoinErrors(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func TestNewValidatorTags(t *testing.T) {
	v := newValidator()
	tests := []struct {
		value, tag string
		ok         bool
	}{
		{"2024-01-01", "notedate", true},
		{"someday", "notedate", false},
		{"0.07", "decimal", true},
		{"high", "decimal", false},
		{"1000", "amount", true},
		{"-5", "amount", false},
	}
	for _, test := range tests {
		if err := v.Var(test.value, test.tag); (err == nil) != test.ok {
			t.Errorf("Var(%q, %q) error = %v, want ok %v", test.value, test.tag, err, test.ok)
		}
	}
}
