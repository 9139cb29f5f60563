package operations

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"go.uber.org/zap"

	"github.com/voiceinvoice/landing/contactform"
	"github.com/voiceinvoice/landing/inits"
)

// Session binds a visitor cookie to the contact form controller serving it.
// Rows are never mutated after insert; Controller guards its own state.
type Session struct {
	ID         string
	Expiry     int64
	Controller *contactform.Controller
}

func (s *Session) Expired(now time.Time) bool {
	return s.Expiry <= now.Unix()
}

// Sessions hands out one contact form controller per visitor.
type Sessions struct {
	db     *memdb.MemDB
	ttl    time.Duration
	newCtl func() *contactform.Controller
	now    func() time.Time
	log    *zap.Logger
}

func NewSessions(db *memdb.MemDB, ttl time.Duration, newCtl func() *contactform.Controller, log *zap.Logger) *Sessions {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sessions{db: db, ttl: ttl, newCtl: newCtl, now: time.Now, log: log.Named("sessions")}
}

// Acquire returns the live session for id, extending its expiry, or starts a new
// one when id is unknown or expired.
func (s *Sessions) Acquire(id string) (*Session, error) {
	now := s.now()

	txn := s.db.Txn(true)
	defer txn.Abort()

	var ctl *contactform.Controller
	if id != "" {
		raw, err := txn.First(inits.SessionTable, "id", id)
		if err != nil {
			return nil, fmt.Errorf("lookup session: %w", err)
		}
		if existing, ok := raw.(*Session); ok && !existing.Expired(now) {
			ctl = existing.Controller
		}
	}
	if ctl == nil {
		id = uuid.NewString()
		ctl = s.newCtl()
		s.log.Debug("session started", zap.String("id", id))
	}

	sess := &Session{ID: id, Expiry: now.Add(s.ttl).Unix(), Controller: ctl}
	if err := txn.Insert(inits.SessionTable, sess); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	txn.Commit()
	return sess, nil
}

func (s *Sessions) Get(id string) (*Session, error) {
	txn := s.db.Txn(false)
	raw, err := txn.First(inits.SessionTable, "id", id)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	return raw.(*Session), nil
}

// DeleteExpired removes every session whose expiry is not after now.
func (s *Sessions) DeleteExpired(now time.Time) (int, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	it, err := txn.ReverseLowerBound(inits.SessionTable, "expiry", now.Unix())
	if err != nil {
		return 0, fmt.Errorf("scan sessions: %w", err)
	}
	var expired []*Session
	for obj := it.Next(); obj != nil; obj = it.Next() {
		expired = append(expired, obj.(*Session))
	}
	for _, sess := range expired {
		if err := txn.Delete(inits.SessionTable, sess); err != nil {
			return 0, fmt.Errorf("delete session: %w", err)
		}
		s.log.Info("deleted expired session", zap.String("id", sess.ID))
	}
	txn.Commit()
	return len(expired), nil
}

func (s *Sessions) Count() (int, error) {
	txn := s.db.Txn(false)
	it, err := txn.Get(inits.SessionTable, "id")
	if err != nil {
		return 0, err
	}
	n := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}
