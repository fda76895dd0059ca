// Package history persists a local journal of executed searches.
//
// The journal is an append-only file of length-prefixed msgpack frames:
// a 4-byte big-endian payload length followed by one encoded Entry. A
// crash mid-append leaves a truncated tail; readers stop cleanly at the
// first partial frame so the surviving prefix stays readable.
package history

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/open-cli-collective/prospector/iox"
)

// DefaultPath is the journal file used when the config file names none.
const DefaultPath = "prospector_history.bin"

// MaxFrameSize caps a single journal frame (1 MiB). An entry is a few
// hundred bytes; anything larger indicates a corrupt length prefix.
const MaxFrameSize = 1 << 20

// lengthPrefixSize is the size of the frame length prefix in bytes.
const lengthPrefixSize = 4

// ErrFrameTooLarge indicates a frame length prefix exceeding MaxFrameSize.
var ErrFrameTooLarge = errors.New("history frame too large")

// Entry records one executed search.
type Entry struct {
	At       time.Time `msgpack:"at"`
	OrgAlias string    `msgpack:"org_alias"`
	Object   string    `msgpack:"object"`
	Keyword  string    `msgpack:"keyword"`
	Query    string    `msgpack:"query"`
	Records  int       `msgpack:"records"`
}

// Journal is an append-only search history file.
type Journal struct {
	path string
}

// NewJournal creates a journal backed by the file at path.
// An empty path falls back to DefaultPath.
func NewJournal(path string) *Journal {
	if path == "" {
		path = DefaultPath
	}
	return &Journal{path: path}
}

// Append writes one entry to the end of the journal, creating the file on
// first use.
func (j *Journal) Append(entry Entry) error {
	payload, err := msgpack.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}
	if len(payload) > MaxFrameSize-lengthPrefixSize {
		return ErrFrameTooLarge
	}

	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening history journal: %w", err)
	}
	defer iox.DiscardClose(f)

	var frame [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(frame[:], uint32(len(payload)))
	if _, err := f.Write(frame[:]); err != nil {
		return fmt.Errorf("writing history frame: %w", err)
	}
	if _, err := f.Write(payload); err != nil {
		return fmt.Errorf("writing history frame: %w", err)
	}
	return nil
}

// ReadAll returns every complete entry in the journal, oldest first.
// A missing file yields an empty history. A truncated tail or an entry
// that fails to decode ends the read without error; everything before it
// is returned.
func (j *Journal) ReadAll() ([]Entry, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("opening history journal: %w", err)
	}
	defer iox.DiscardClose(f)

	var entries []Entry
	for {
		var prefix [lengthPrefixSize]byte
		if _, err := io.ReadFull(f, prefix[:]); err != nil {
			// EOF: clean end. ErrUnexpectedEOF: truncated tail.
			return entries, nil
		}

		payloadSize := binary.BigEndian.Uint32(prefix[:])
		if payloadSize > MaxFrameSize-lengthPrefixSize {
			// Corrupt prefix; nothing after it is trustworthy.
			return entries, nil
		}

		payload := make([]byte, payloadSize)
		if _, err := io.ReadFull(f, payload); err != nil {
			return entries, nil
		}

		var entry Entry
		if err := msgpack.Unmarshal(payload, &entry); err != nil {
			return entries, nil
		}
		entries = append(entries, entry)
	}
}
