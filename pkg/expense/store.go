package expense

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Row is one persisted record as raw text, before validation.
type Row struct {
	Line   int
	Fields []string
}

// Store persists expenses. Write replaces whatever the store held before.
type Store interface {
	Write(ctx context.Context, expenses []Expense) error
	Read(ctx context.Context) ([]Row, error)
}

// SaveTo writes every expense to s, ordered by date.
func (l *Ledger) SaveTo(ctx context.Context, s Store) error {
	return s.Write(ctx, l.SortedByDate())
}

// LoadFrom appends the records held by s to the ledger, validating each one
// like Add. Malformed rows are skipped and reported through a *LoadError;
// the remaining rows are still added. It returns the number of expenses added.
// If s cannot be read the ledger is left unchanged.
func (l *Ledger) LoadFrom(ctx context.Context, s Store) (int, error) {
	rows, err := s.Read(ctx)
	if err != nil {
		return 0, err
	}

	added := 0
	var skipped []*LineError
	for _, row := range rows {
		if err := l.addRow(row); err != nil {
			skipped = append(skipped, &LineError{Line: row.Line, Err: err})
			continue
		}
		added++
	}

	if len(skipped) > 0 {
		return added, &LoadError{Lines: skipped}
	}
	return added, nil
}

func (l *Ledger) addRow(row Row) error {
	if len(row.Fields) < 4 {
		return &ValidationError{Field: "line", Value: strings.Join(row.Fields, ","), Err: ErrMalformedLine}
	}

	amount, err := ParseAmount(row.Fields[1])
	if err != nil {
		return err
	}
	// Files written before descriptions were quoted split on every comma.
	description := strings.Join(row.Fields[3:], ",")

	_, err = l.Add(row.Fields[0], amount, row.Fields[2], description)
	return err
}

// Save writes the ledger to a CSV file at path, replacing it.
func (l *Ledger) Save(path string) error {
	return l.SaveTo(context.Background(), NewFileStore(path))
}

// Load appends the expenses stored in the CSV file at path.
func (l *Ledger) Load(path string) (int, error) {
	return l.LoadFrom(context.Background(), NewFileStore(path))
}

// FileStore keeps expenses in a headerless CSV file, one expense per line:
//
//	category,amount,MM/DD/YYYY,description
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Write replaces the file. The records go to a temporary file in the same
// directory first, so a failed write leaves the previous file untouched.
func (s *FileStore) Write(_ context.Context, expenses []Expense) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	for _, e := range expenses {
		if err = w.Write(e.Fields()); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	if err = tmp.Chmod(s.mode()); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.Path, err)
	}
	return nil
}

// mode returns the permissions of the existing file, or 0644 for a new one.
func (s *FileStore) mode() fs.FileMode {
	if fi, err := os.Stat(s.Path); err == nil {
		return fi.Mode().Perm()
	}
	return 0o644
}

// Read returns every non-blank line of the file as a Row. A record never
// spans lines: a line that is not valid CSV on its own is treated as an
// unquoted legacy line and split on commas.
func (s *FileStore) Read(_ context.Context) ([]Row, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	var rows []Row
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, Row{Line: n, Fields: splitLine(line)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading csv file: %w", err)
	}
	return rows, nil
}

func splitLine(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	if fields, err := r.Read(); err == nil {
		return fields
	}
	return strings.Split(line, ",")
}
