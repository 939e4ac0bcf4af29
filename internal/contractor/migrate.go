package contractor

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Storage keys. KeyLegacy held mock and user rows together; KeyUser holds
// user rows only.
const (
	KeyUser   = "contractor-reports-user"
	KeyLegacy = "contractor-reports"
)

// KV is the key-value store the repository persists to.
type KV interface {
	LookupSetting(key string) (string, bool, error)
	SetSetting(key, value string) error
	DeleteSetting(key string) error
}

// load reads the user reports, migrating the legacy key first if it is
// still present. It never fails: missing, unreadable or malformed data
// yields an empty collection.
func load(kv KV, log *zap.Logger) []Report {
	if user, ok := migrateLegacy(kv, log); ok {
		return user
	}

	raw, ok, err := kv.LookupSetting(KeyUser)
	if err != nil {
		log.Warn("read contractor reports", zap.String("key", KeyUser), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	reports, err := decode(raw)
	if err != nil {
		log.Warn("discarding malformed contractor reports", zap.String("key", KeyUser), zap.Error(err))
		return nil
	}
	return reports
}

// migrateLegacy moves the user rows stored under KeyLegacy to KeyUser and
// removes the legacy key. Mock rows are dropped. ok reports whether the
// legacy key was present.
func migrateLegacy(kv KV, log *zap.Logger) (user []Report, ok bool) {
	raw, ok, err := kv.LookupSetting(KeyLegacy)
	if err != nil {
		log.Warn("read legacy contractor reports", zap.Error(err))
		return nil, true
	}
	// An empty legacy value counts as absent.
	if !ok || raw == "" {
		return nil, false
	}

	legacy, err := decode(raw)
	if err != nil {
		log.Warn("discarding malformed legacy contractor reports", zap.Error(err))
		return nil, true
	}

	user = make([]Report, 0, len(legacy))
	for _, r := range legacy {
		if !r.IsMock {
			user = append(user, r)
		}
	}

	data, err := json.Marshal(user)
	if err != nil {
		log.Warn("encode migrated contractor reports", zap.Error(err))
		return user, true
	}
	if err := kv.SetSetting(KeyUser, string(data)); err != nil {
		log.Warn("write migrated contractor reports", zap.Error(err))
		return user, true
	}
	if err := kv.DeleteSetting(KeyLegacy); err != nil {
		log.Warn("delete legacy contractor reports", zap.Error(err))
	}

	log.Info("migrated contractor reports",
		zap.Int("kept", len(user)),
		zap.Int("dropped", len(legacy)-len(user)))
	return user, true
}

func decode(raw string) ([]Report, error) {
	var reports []Report
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		return nil, err
	}
	for i := range reports {
		switch reports[i].Status {
		case StatusPending, StatusApproved, StatusRejected:
		default:
			reports[i].Status = StatusPending
		}
	}
	return reports, nil
}
