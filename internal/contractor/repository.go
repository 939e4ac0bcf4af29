package contractor

import (
	"encoding/json"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// Roller yields uniform values in [0, 1).
type Roller interface {
	Float64() float64
}

// NewRoller returns a PCG-backed Roller. A zero seed is replaced by the
// current time.
func NewRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Repository holds the user-submitted reports and persists them on every
// change. Safe for concurrent use.
type Repository struct {
	mu   sync.Mutex
	kv   KV
	log  *zap.Logger
	user []Report

	now   func() time.Time
	newID func() string
}

// Open loads the persisted reports from kv, migrating legacy data.
func Open(kv KV, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{
		kv:    kv,
		log:   log,
		user:  load(kv, log),
		now:   time.Now,
		newID: newID,
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Create validates d and prepends a new pending report.
func (r *Repository) Create(d Draft) (Report, error) {
	if err := d.validate(); err != nil {
		return Report{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rep := Report{
		ID:              r.newID(),
		ProjectName:     strings.TrimSpace(d.ProjectName),
		Period:          strings.TrimSpace(d.Period),
		ProgressPercent: ClampProgress(d.Progress),
		Summary:         strings.TrimSpace(d.Summary),
		CreatedAt:       r.now(),
		Status:          StatusPending,
	}
	r.user = append([]Report{rep}, r.user...)
	r.persist()
	return rep, nil
}

// Delete removes the user report with the given ID. Mock reports cannot be
// deleted. It reports whether a row was removed.
func (r *Repository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rep := range r.user {
		if rep.ID == id {
			r.user = append(r.user[:i:i], r.user[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

// Reset removes every user report.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user = nil
	r.persist()
}

// RefreshStatuses simulates a municipality decision for each pending user
// report and returns how many changed.
func (r *Repository) RefreshStatuses(roll Roller) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for i := range r.user {
		if r.user[i].Status != StatusPending {
			continue
		}
		switch u := roll.Float64(); {
		case u < 0.2:
			r.user[i].Status = StatusRejected
		case u < 0.6:
			r.user[i].Status = StatusApproved
		default:
			continue
		}
		changed++
	}
	if changed > 0 {
		r.persist()
	}
	return changed
}

// User returns a copy of the user reports, newest first.
func (r *Repository) User() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.user...)
}

// All returns the user and mock reports, newest first.
func (r *Repository) All() []Report {
	r.mu.Lock()
	all := append([]Report(nil), r.user...)
	now := r.now()
	r.mu.Unlock()

	all = append(all, mockReports(now)...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}

// Summary aggregates contractor reports for the dashboard.
type Summary struct {
	Count          int
	Pending        int
	MeanProgress   float64
	MedianProgress float64
}

// Summarize computes a Summary over reports.
func Summarize(reports []Report) Summary {
	s := Summary{Count: len(reports)}
	progress := make(stats.Float64Data, 0, len(reports))
	for _, rep := range reports {
		if rep.Status == StatusPending {
			s.Pending++
		}
		progress = append(progress, float64(rep.ProgressPercent))
	}
	if len(progress) == 0 {
		return s
	}
	s.MeanProgress, _ = stats.Mean(progress)
	s.MedianProgress, _ = stats.Median(progress)
	return s
}

// persist writes the user reports. Failures are logged and dropped.
// Callers hold r.mu.
func (r *Repository) persist() {
	rows := r.user
	if rows == nil {
		rows = []Report{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		r.log.Warn("encode contractor reports", zap.Error(err))
		return
	}
	if err := r.kv.SetSetting(KeyUser, string(data)); err != nil {
		r.log.Warn("persist contractor reports", zap.String("key", KeyUser), zap.Error(err))
	}
}
