package notes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/notes/date"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxTerm is the longest note term, in months.
const MaxTerm = 60

// Entry is the user input for a new or edited record, as typed in a form.
type Entry struct {
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	Project      string `validate:"required"`
	Origin       string `validate:"required,notedate"`
	Term         int    `validate:"min=1,max=60"`
	Principal    string `validate:"required,amount"`
	Rate         string `validate:"required,decimal"`
	AutoRollover *bool
}

// entryColumns maps Entry fields to the column they fill.
var entryColumns = map[string]Column{
	"FirstName": ColFirstName,
	"LastName":  ColLastName,
	"Project":   ColProject,
	"Origin":    ColOrigin,
	"Term":      ColTerm,
	"Principal": ColPrincipal,
	"Rate":      ColRate,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range map[string]validator.Func{
		"notedate": func(fl validator.FieldLevel) bool {
			_, err := date.Parse(fl.Field().String())
			return err == nil
		},
		"decimal": func(fl validator.FieldLevel) bool {
			_, err := decimal.NewFromString(fl.Field().String())
			return err == nil
		},
		"amount": func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			return err == nil && !d.IsNegative()
		},
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registering validation %q: %v", tag, err))
		}
	}
	return v
}

// EntryOf returns the entry that reproduces r, the starting point of an edit.
func EntryOf(r Record) Entry {
	e := Entry{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Project:   r.Project,
		Origin:    r.Cell(ColOrigin),
		Term:      r.Term,
		Principal: r.Cell(ColPrincipal),
		Rate:      r.Cell(ColRate),
	}
	if r.AutoRollover != nil {
		b := *r.AutoRollover
		e.AutoRollover = &b
	}
	return e
}

func (e Entry) trimmed() Entry {
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.Project = strings.TrimSpace(e.Project)
	e.Origin = strings.TrimSpace(e.Origin)
	e.Principal = strings.TrimSpace(e.Principal)
	e.Rate = strings.TrimSpace(e.Rate)
	return e
}

// Validate checks every field and returns all failures joined, each as a
// *ParseError.
func (e Entry) Validate() error {
	err := validate.Struct(e.trimmed())
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		pe := &ParseError{Column: entryColumns[fe.StructField()], Value: fmt.Sprint(fe.Value())}
		switch fe.Tag() {
		case "required":
			pe.Err = ErrRequired
		case "min", "max":
			pe.Err = fmt.Errorf("must be between 1 and %d months", MaxTerm)
		case "amount":
			pe.Err = errors.New("not a non-negative number")
		case "notedate":
			pe.Err = errors.New("want 2006-01-02 or 01/02/2006")
		default:
			pe.Err = errors.New("not a number")
		}
		errs = append(errs, pe)
	}
	return errors.Join(errs...)
}

// Record validates e and returns the record it describes, with derived
// fields computed. The record has no ID.
func (e Entry) Record() (Record, error) {
	if err := e.Validate(); err != nil {
		return Record{}, err
	}
	e = e.trimmed()
	r := Record{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Project:   e.Project,
		Term:      e.Term,
	}
	// errors were ruled out by Validate
	r.Origin, _ = date.Parse(e.Origin)
	p, _ := decimal.NewFromString(e.Principal)
	rate, _ := decimal.NewFromString(e.Rate)
	r.Principal = decimal.NewNullDecimal(p)
	r.Rate = decimal.NewNullDecimal(rate)
	if e.AutoRollover != nil {
		b := *e.AutoRollover
		r.AutoRollover = &b
	}
	r.Compute()
	return r, nil
}
