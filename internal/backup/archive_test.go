package backup

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("backup-test-secret")

func buildArchive(t *testing.T, timestamp string) []byte {
	t.Helper()

	w := NewWriter()
	require.NoError(t, w.AddTable("customers", []byte(`[{"id":"c1","first_name":"Sara"},{"id":"c2","first_name":"Omid"}]`)))
	require.NoError(t, w.AddTable("vehicles", []byte(`[{"id":"v1","daily_rate":1250000}]`)))

	data, err := w.Finalize(testSecret, timestamp)
	require.NoError(t, err)
	return data
}

func TestArchiveRoundTrip(t *testing.T) {
	timestamp := "2024-05-10T08:30:00Z"
	data := buildArchive(t, timestamp)

	archive, err := Open(data)
	require.NoError(t, err)
	require.NoError(t, archive.Verify(testSecret))

	assert.Equal(t, timestamp, archive.Metadata().BackupTimeUTC)
	assert.Equal(t, []string{"customers", "vehicles"}, archive.TableNames())

	rows, err := archive.ReadTable("customers")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Sara", rows[0]["first_name"])

	rows, err = archive.ReadTable("vehicles")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, json.Number("1250000"), rows[0]["daily_rate"])
}

func TestArchiveVerifyWrongSecret(t *testing.T) {
	data := buildArchive(t, "2024-05-10T08:30:00Z")

	archive, err := Open(data)
	require.NoError(t, err)
	assert.ErrorIs(t, archive.Verify([]byte("another-secret")), ErrSignatureMismatch)
}

func TestArchiveVerifyTamperedTimestamp(t *testing.T) {
	data := buildArchive(t, "2024-05-10T08:30:00Z")

	archive, err := Open(data)
	require.NoError(t, err)

	// Re-pack with the original signature but a shifted timestamp.
	var forged bytes.Buffer
	zw := zip.NewWriter(&forged)
	meta := archive.Metadata()
	meta.BackupTimeUTC = "2024-05-11T08:30:00Z"
	raw, err := json.Marshal(meta)
	require.NoError(t, err)
	entry, err := zw.Create(metadataEntryName)
	require.NoError(t, err)
	_, err = entry.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	tampered, err := Open(forged.Bytes())
	require.NoError(t, err)
	assert.ErrorIs(t, tampered.Verify(testSecret), ErrSignatureMismatch)
}

func TestArchiveOpenNotAZip(t *testing.T) {
	_, err := Open([]byte("definitely not a zip container"))
	assert.ErrorIs(t, err, ErrInvalidArchive)
}

func TestArchiveOpenMissingMetadata(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("customers.json")
	require.NoError(t, err)
	_, err = entry.Write([]byte(`[]`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Open(buf.Bytes())
	assert.ErrorIs(t, err, ErrInvalidArchive)
}

func TestArchiveOpenIncompleteMetadata(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create(metadataEntryName)
	require.NoError(t, err)
	_, err = entry.Write([]byte(`{"backup_time_utc":"2024-05-10T08:30:00Z"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Open(buf.Bytes())
	assert.ErrorIs(t, err, ErrInvalidArchive)
}

func TestArchiveReadTableMissing(t *testing.T) {
	data := buildArchive(t, "2024-05-10T08:30:00Z")

	archive, err := Open(data)
	require.NoError(t, err)

	_, err = archive.ReadTable("rentals")
	assert.ErrorIs(t, err, ErrInvalidArchive)
}
