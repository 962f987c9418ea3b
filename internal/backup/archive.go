package backup

import (
	"archive/zip"
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const metadataEntryName = "metadata.json"

// Sentinel errors surfaced while opening and verifying archives.
var (
	ErrInvalidArchive    = errors.New("invalid backup archive")
	ErrSignatureMismatch = errors.New("backup signature mismatch")
)

// Metadata is the final archive entry carrying the tamper-evidence record.
// The signature is the hex HMAC-SHA512 of the timestamp under the backup
// secret; it is the sole authenticity check on restore.
type Metadata struct {
	BackupTimeUTC string `json:"backup_time_utc"`
	Signature     string `json:"signature"`
}

// Sign computes the hex HMAC-SHA512 of the timestamp.
func Sign(secret []byte, timestamp string) string {
	mac := hmac.New(sha512.New, secret)
	mac.Write([]byte(timestamp))
	return hex.EncodeToString(mac.Sum(nil))
}

// Writer produces a backup archive: one <table>.json entry per table plus a
// final metadata.json entry.
type Writer struct {
	buf *bytes.Buffer
	zw  *zip.Writer
}

// NewWriter starts an in-memory archive.
func NewWriter() *Writer {
	buf := &bytes.Buffer{}
	return &Writer{buf: buf, zw: zip.NewWriter(buf)}
}

// AddTable writes one table entry. rows must be a JSON array of row objects.
func (w *Writer) AddTable(table string, rows []byte) error {
	entry, err := w.zw.Create(table + ".json")
	if err != nil {
		return fmt.Errorf("create archive entry for %s: %w", table, err)
	}
	if _, err := entry.Write(rows); err != nil {
		return fmt.Errorf("write archive entry for %s: %w", table, err)
	}
	return nil
}

// Finalize signs the timestamp, writes the metadata entry and closes the
// archive, returning the complete container bytes.
func (w *Writer) Finalize(secret []byte, timestamp string) ([]byte, error) {
	meta := Metadata{BackupTimeUTC: timestamp, Signature: Sign(secret, timestamp)}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}

	entry, err := w.zw.Create(metadataEntryName)
	if err != nil {
		return nil, fmt.Errorf("create metadata entry: %w", err)
	}
	if _, err := entry.Write(raw); err != nil {
		return nil, fmt.Errorf("write metadata entry: %w", err)
	}
	if err := w.zw.Close(); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

// Archive is an opened backup container with parsed metadata.
type Archive struct {
	reader *zip.Reader
	meta   Metadata
}

// Open parses the container and its metadata entry. Any structural problem
// is reported as ErrInvalidArchive with the cause attached.
func Open(data []byte) (*Archive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	var metaFile *zip.File
	for _, f := range reader.File {
		if f.Name == metadataEntryName {
			metaFile = f
			break
		}
	}
	if metaFile == nil {
		return nil, fmt.Errorf("%w: metadata missing", ErrInvalidArchive)
	}

	rc, err := metaFile.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}
	defer rc.Close()

	var meta Metadata
	if err := json.NewDecoder(rc).Decode(&meta); err != nil {
		return nil, fmt.Errorf("%w: malformed metadata: %v", ErrInvalidArchive, err)
	}
	if meta.BackupTimeUTC == "" || meta.Signature == "" {
		return nil, fmt.Errorf("%w: incomplete metadata", ErrInvalidArchive)
	}

	return &Archive{reader: reader, meta: meta}, nil
}

// Metadata returns the parsed metadata record.
func (a *Archive) Metadata() Metadata {
	return a.meta
}

// Verify recomputes the HMAC over the declared timestamp with the current
// secret and compares it to the stored signature in constant time.
func (a *Archive) Verify(secret []byte) error {
	expected := Sign(secret, a.meta.BackupTimeUTC)
	if !hmac.Equal([]byte(expected), []byte(a.meta.Signature)) {
		return ErrSignatureMismatch
	}
	return nil
}

// TableNames lists the table entries in archive order, metadata excluded.
func (a *Archive) TableNames() []string {
	names := make([]string, 0, len(a.reader.File))
	for _, f := range a.reader.File {
		if f.Name == metadataEntryName || !strings.HasSuffix(f.Name, ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(f.Name, ".json"))
	}
	return names
}

// ReadTable decodes one table entry into row maps. Numbers are kept as
// json.Number so large integer columns survive the round trip unchanged.
func (a *Archive) ReadTable(table string) ([]map[string]any, error) {
	name := table + ".json"
	for _, f := range a.reader.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
		}
		defer rc.Close()

		dec := json.NewDecoder(rc)
		dec.UseNumber()
		var rows []map[string]any
		if err := dec.Decode(&rows); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: malformed table entry %s: %v", ErrInvalidArchive, table, err)
		}
		return rows, nil
	}
	return nil, fmt.Errorf("%w: table entry %s missing", ErrInvalidArchive, table)
}
