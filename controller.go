package notes

import (
	"errors"
	"fmt"

	"github.com/etnz/notes/date"
	"go.uber.org/zap"
)

// Store loads and persists a whole Book.
type Store interface {
	// Load returns the persisted book, creating an empty store on first use.
	Load() (*Book, error)
	// Save overwrites the persisted book with b.
	Save(b *Book) error
}

// Exporter renders records into documents and returns the written paths.
type Exporter interface {
	Export(records []Record) ([]string, error)
}

// Controller mediates every change to a Book. Front ends (the CLI, tests)
// go through it and never mutate the Book directly.
//
// Changes stay in memory until Save is called.
type Controller struct {
	// FirstMatch resolves an ambiguous key to its first match in scan order
	// instead of failing. The ambiguity is still logged.
	FirstMatch bool

	store Store
	book  *Book
	log   *zap.SugaredLogger
	dirty bool
}

// Open loads the book from store.
//
// Note IDs given to records that had none are saved at once, so that they
// stay valid across runs even when the caller never saves.
func Open(store Store, log *zap.SugaredLogger) (*Controller, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	book, err := store.Load()
	if err != nil {
		return nil, err
	}
	log.Debugw("book loaded", "records", book.Len())
	if n := book.NewIDs(); n > 0 {
		if err := store.Save(book); err != nil {
			return nil, fmt.Errorf("saving new note IDs: %w", err)
		}
		log.Infow("note IDs assigned", "records", n)
	}
	return &Controller{store: store, book: book, log: log}, nil
}

// Dirty reports whether there are unsaved changes.
func (c *Controller) Dirty() bool { return c.dirty }

// Save persists the whole book.
func (c *Controller) Save() error {
	if err := c.store.Save(c.book); err != nil {
		return fmt.Errorf("saving records: %w", err)
	}
	c.dirty = false
	c.log.Infow("book saved", "records", c.book.Len())
	return nil
}

// Records returns every record in order.
func (c *Controller) Records() []Record { return c.book.Records() }

// Columns returns the columns of the underlying book.
func (c *Controller) Columns() []Column { return c.book.Columns() }

// Get returns the record with the given ID.
func (c *Controller) Get(id string) (Record, error) {
	i, err := c.book.Index(id)
	if err != nil {
		return Record{}, err
	}
	return c.book.At(i), nil
}

// Find returns the record matching key.
func (c *Controller) Find(key Key) (Record, error) {
	i, err := c.resolve(key)
	if err != nil {
		return Record{}, err
	}
	return c.book.At(i), nil
}

// resolve applies the FirstMatch policy to Book.Find.
func (c *Controller) resolve(key Key) (int, error) {
	i, err := c.book.Find(key)
	var amb *AmbiguousMatchError
	if errors.As(err, &amb) {
		c.log.Warnw("ambiguous record key", "key", key.String(), "rows", amb.Indexes, "firstMatch", c.FirstMatch)
		if c.FirstMatch {
			return i, nil
		}
	}
	return i, err
}

// Add validates e and appends the record it describes with a new ID.
func (c *Controller) Add(e Entry) (Record, error) {
	r, err := e.Record()
	if err != nil {
		return Record{}, err
	}
	r.ID = newID()
	c.book.Append(r)
	c.dirty = true
	c.log.Infow("record added", "id", r.ID, "name", r.Name(), "project", r.Project)
	return r, nil
}

// Edit replaces the record matching old with e.
func (c *Controller) Edit(old Key, e Entry) (Record, error) {
	i, err := c.resolve(old)
	if err != nil {
		return Record{}, err
	}
	return c.edit(i, e)
}

// EditID replaces the record with the given ID with e.
func (c *Controller) EditID(id string, e Entry) (Record, error) {
	i, err := c.book.Index(id)
	if err != nil {
		return Record{}, err
	}
	return c.edit(i, e)
}

func (c *Controller) edit(i int, e Entry) (Record, error) {
	r, err := e.Record()
	if err != nil {
		return Record{}, err
	}
	old := c.book.At(i)
	r.ID = old.ID
	// keep cells of columns this version does not know
	for col, v := range old.Verbatim {
		if !col.Known() {
			r.SetCell(col, v)
		}
	}
	c.book.Set(i, r)
	c.dirty = true
	c.log.Infow("record edited", "id", r.ID, "name", r.Name())
	return r, nil
}

// Delete removes the record matching key and returns it.
func (c *Controller) Delete(key Key) (Record, error) {
	i, err := c.resolve(key)
	if err != nil {
		return Record{}, err
	}
	return c.delete(i), nil
}

// DeleteID removes the record with the given ID and returns it.
func (c *Controller) DeleteID(id string) (Record, error) {
	i, err := c.book.Index(id)
	if err != nil {
		return Record{}, err
	}
	return c.delete(i), nil
}

func (c *Controller) delete(i int) Record {
	r := c.book.At(i)
	c.book.Remove(i)
	c.dirty = true
	c.log.Infow("record deleted", "id", r.ID, "name", r.Name())
	return r
}

// Search returns the records whose project name contains query.
func (c *Controller) Search(query string) []Record { return c.book.Search(query) }

// FindMatured returns the records matured strictly before asOf.
func (c *Controller) FindMatured(asOf date.Date) []Record { return c.book.Matured(asOf) }

// DueSoon returns the records maturing within days of asOf or already past due.
func (c *Controller) DueSoon(asOf date.Date, days int) []Record {
	return c.book.DueWithin(asOf, days)
}

// Rollover renews the given matured records. See Book.Rollover.
func (c *Controller) Rollover(records []Record) ([]Rollover, error) {
	done, err := c.book.Rollover(records)
	if len(done) > 0 {
		c.dirty = true
	}
	for _, ro := range done {
		c.log.Infow("note rolled over", "id", ro.After.ID, "name", ro.After.Name(),
			"origin", ro.After.Origin.String(), "principal", ro.After.Cell(ColPrincipal))
	}
	if err != nil {
		c.log.Warnw("rollover incomplete", "rolled", len(done), "requested", len(records), "error", err)
	}
	return done, err
}

// Export renders records with exp.
func (c *Controller) Export(exp Exporter, records []Record) ([]string, error) {
	paths, err := exp.Export(records)
	c.log.Infow("records exported", "files", len(paths))
	return paths, err
}

// ExportMatured rolls over every note matured before asOf, exports the notes
// as they were before the rollover, and saves the book.
//
// Renewals are saved even when some records failed to roll over or to
// export; the errors are returned joined.
func (c *Controller) ExportMatured(exp Exporter, asOf date.Date) ([]Rollover, []string, error) {
	matured := c.FindMatured(asOf)
	if len(matured) == 0 {
		return nil, nil, nil
	}
	done, rollErr := c.Rollover(matured)
	before := make([]Record, len(done))
	for i, ro := range done {
		before[i] = ro.Before
	}
	var (
		paths  []string
		expErr error
	)
	if len(before) > 0 {
		paths, expErr = c.Export(exp, before)
	}
	var saveErr error
	if c.dirty {
		saveErr = c.Save()
	}
	return done, paths, errors.Join(rollErr, expErr, saveErr)
}
