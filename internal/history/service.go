package history

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"contractreview/internal/conversation"
	"contractreview/internal/prompt"
	"contractreview/internal/review"
)

// Store persists the full record list. Implementations live in the
// historystore package.
type Store interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}

// Service is the single owner of the record list. All reads and writes
// serialize through its mutex; persistence failures are logged and
// swallowed, in-memory state stays authoritative for the running session.
type Service struct {
	store Store
	log   *log.Logger

	mu      sync.Mutex
	records []Record
}

func NewService(store Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, log: logger}
}

// Load replaces in-memory state with the stored records. A load failure
// leaves the service empty but usable.
func (s *Service) Load(ctx context.Context) {
	records, err := s.store.Load(ctx)
	if err != nil {
		s.log.Printf("history: load failed: %v", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = sortRecords(records)
}

// CreateDraft inserts a new draft record at the front and persists.
func (s *Service) CreateDraft(ctx context.Context, title string) Record {
	record := NewDraft(title)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]Record{record}, s.records...)
	s.records = sortRecords(s.records)
	s.persistLocked(ctx)
	return record
}

// UpdateTitle renames a record. Unknown ids and blank titles are no-ops.
func (s *Service) UpdateTitle(ctx context.Context, id uuid.UUID, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return
	}
	s.records[idx].Title = title
	s.records[idx].Touch()
	s.records = sortRecords(s.records)
	s.persistLocked(ctx)
}

// ApplyReviewResult completes a record: attaches the result and the raw
// contract text, seeds one conversation session when the result carries
// none, and sets the title to the document name unless titleOverride is
// non-empty. Unknown ids are silent no-ops so a record deleted mid-review
// never corrupts the in-flight operation.
func (s *Service) ApplyReviewResult(ctx context.Context, id uuid.UUID,
	result review.Result, contractText, titleOverride string, lang prompt.Language) {

	if len(result.Conversations.Sessions) == 0 {
		seed := "对话1"
		if prompt.Normalize(lang) == prompt.English {
			seed = "Conversation 1"
		}
		result.Conversations = conversation.Collection{
			Sessions: []conversation.Session{conversation.NewSession(seed)},
		}
	}
	title := strings.TrimSpace(titleOverride)
	if title == "" {
		title = result.DocumentName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return
	}
	s.records[idx].attachResult(result, contractText, title)
	s.records = sortRecords(s.records)
	s.persistLocked(ctx)
}

// UpdateReviewResult locates the record whose attached result's id matches
// resultID and applies mutate to it in place. This is how conversation
// edits are persisted without knowing the record id. No-op when no record
// carries that result.
func (s *Service) UpdateReviewResult(ctx context.Context, resultID uuid.UUID,
	mutate func(*review.Result)) {

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].Result == nil || s.records[i].Result.ID != resultID {
			continue
		}
		mutate(s.records[i].Result)
		s.records[i].Touch()
		s.records = sortRecords(s.records)
		s.persistLocked(ctx)
		return
	}
}

// Delete removes a record unconditionally and persists.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
	s.persistLocked(ctx)
}

// List returns the records in descending updatedAt order.
func (s *Service) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Record returns one record by id.
func (s *Service) Record(id uuid.UUID) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return Record{}, false
	}
	return s.records[idx].Clone(), true
}

func (s *Service) indexLocked(id uuid.UUID) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) persistLocked(ctx context.Context) {
	snapshot := make([]Record, len(s.records))
	copy(snapshot, s.records)
	if err := s.store.Save(ctx, snapshot); err != nil {
		s.log.Printf("history: save failed: %v", err)
	}
}

// sortRecords orders by updatedAt descending. Ties keep storage order.
func sortRecords(records []Record) []Record {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
	return records
}
