package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"datachat/models"
)

type DB struct {
	badgerDB *badger.DB
}

func New(dbPath string) (*DB, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Disable badger logging for cleaner output

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{badgerDB: badgerDB}, nil
}

func (d *DB) Close() error {
	return d.badgerDB.Close()
}

// StoreChatHistory appends one exchange to the session's history. Keys
// embed nanosecond timestamps so iteration order is chronological.
func (d *DB) StoreChatHistory(sessionID string, message string, response string) error {
	return d.badgerDB.Update(func(txn *badger.Txn) error {
		now := time.Now()
		key := []byte(fmt.Sprintf("chat:%s:%d", sessionID, now.UnixNano()))

		history := models.ChatHistory{
			Message:   message,
			Response:  response,
			Timestamp: now.Format(time.RFC3339),
		}

		data, err := json.Marshal(history)
		if err != nil {
			return err
		}

		return txn.Set(key, data)
	})
}

// GetChatHistory returns the session's exchanges oldest first. A
// positive limit keeps only the most recent entries.
func (d *DB) GetChatHistory(sessionID string, limit int) ([]models.ChatHistory, error) {
	var entries []models.ChatHistory

	err := d.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(fmt.Sprintf("chat:%s:", sessionID))
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var entry models.ChatHistory
				if err := json.Unmarshal(val, &entry); err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// ClearChatHistory removes every exchange stored for the session.
func (d *DB) ClearChatHistory(sessionID string) error {
	prefix := []byte(fmt.Sprintf("chat:%s:", sessionID))

	var keys [][]byte
	err := d.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return err
	}

	return d.badgerDB.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
