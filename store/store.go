// Package store manages the durable collection of completed work
// session records.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/session"
)

// ErrCorruptStorage is reported when the record file exists but its
// content cannot be parsed. The file is left untouched so that no data
// is lost.
var ErrCorruptStorage = errors.New("the record file could not be parsed")

// Client reads and writes the record file. The file holds a single
// JSON array of records; every mutation rewrites the array in full.
type Client struct {
	path string
}

// NewClient returns a store backed by the record file at the given
// path. The file is created lazily on the first save.
func NewClient(path string) *Client {
	return &Client{path: path}
}

// Path reports the location of the record file.
func (c *Client) Path() string {
	return c.path
}

// Load reads all records from the record file in their stored order.
// A missing file yields an empty list.
func (c *Client) Load() ([]session.Record, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []session.Record{}, nil
		}

		return nil, err
	}

	var records []session.Record

	err = json.Unmarshal(b, &records)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStorage, c.path, err)
	}

	return records, nil
}

// Save replaces the record file with the given sequence. The new
// content is written to a temporary file first and moved into place so
// an interrupted write cannot truncate existing data.
func (c *Client) Save(records []session.Record) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.path)

	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return err
	}

	_, err = tmp.Write(b)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return err
	}

	err = tmp.Close()
	if err != nil {
		_ = os.Remove(tmp.Name())

		return err
	}

	return os.Rename(tmp.Name(), c.path)
}

// Append adds a record to the end of the stored sequence without
// reordering or mutating existing entries.
func (c *Client) Append(rec session.Record) error {
	records, err := c.Load()
	if err != nil {
		return err
	}

	return c.Save(append(records, rec))
}

// DeleteAt removes the record at the given position in the stored
// sequence. Positions are relative to the latest load, so callers must
// reload before deleting to avoid addressing stale entries. Nothing is
// written when the position is out of range.
func (c *Client) DeleteAt(index int) error {
	records, err := c.Load()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(records) {
		return session.ErrIndexOutOfRange
	}

	records = append(records[:index], records[index+1:]...)

	return c.Save(records)
}
