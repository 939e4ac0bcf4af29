package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sadopc/rased/internal/config"
	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/logging"
	"github.com/sadopc/rased/internal/store"
)

// envFile is read from the working directory for RASED_* overrides.
const envFile = ".env"

// env is what every command runs against.
type env struct {
	cfg     *config.Config
	cfgPath string
	log     *zap.Logger
	store   *store.Store
	lang    *i18n.Context

	unsubscribe func()
	stopWatch   context.CancelFunc
	watchers    sync.WaitGroup
}

func openEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfgPath = p
	}

	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, envFile); err != nil {
		return nil, err
	}

	logPath := cfg.Logging.File
	if logPath == "" {
		if logPath, err = logging.DefaultPath(); err != nil {
			return nil, err
		}
	}
	log, err := logging.New(cfg.Logging.Level, logPath)
	if err != nil {
		return nil, err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.Storage.DBPath
	}
	if dbPath == "" {
		if dbPath, err = store.DefaultDBPath(); err != nil {
			return nil, err
		}
	}
	st, err := store.New(dbPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}

	e := &env{
		cfg:     cfg,
		cfgPath: cfgPath,
		log:     log,
		store:   st,
		lang:    i18n.NewContext(resolveLanguage(st, cfg, log)),
	}
	e.unsubscribe = e.lang.Subscribe(e.persistLanguage)

	log.Debug("environment ready",
		zap.String("config", cfgPath),
		zap.String("db", dbPath),
		zap.String("lang", string(e.lang.Lang())))
	return e, nil
}

// Close stops the config watcher and waits for it before closing the store.
func (e *env) Close() {
	if e.stopWatch != nil {
		e.stopWatch()
	}
	e.watchers.Wait()
	e.unsubscribe()
	e.store.Close()
	e.log.Sync()
}

// resolveLanguage picks the stored choice, then the configured language.
func resolveLanguage(st *store.Store, cfg *config.Config, log *zap.Logger) i18n.Lang {
	v, ok, err := st.LookupSetting(store.KeyLanguage)
	if err != nil {
		log.Warn("read language setting", zap.Error(err))
	}
	if ok && i18n.Valid(v) {
		return i18n.Lang(v)
	}
	return cfg.Language()
}

func (e *env) persistLanguage(lang i18n.Lang) {
	if err := e.store.SetSetting(store.KeyLanguage, string(lang)); err != nil {
		e.log.Warn("persist language", zap.String("lang", string(lang)), zap.Error(err))
	}
}

// watchLanguage applies ui.language edits from the config file until ctx is
// done or the env is closed. Other config changes are ignored.
func (e *env) watchLanguage(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	updates, err := config.Watch(ctx, e.cfgPath)
	if err != nil {
		cancel()
		return err
	}
	e.stopWatch = cancel

	last := e.cfg.UI.Language
	e.watchers.Add(1)
	go func() {
		defer e.watchers.Done()
		for cfg := range updates {
			if cfg.UI.Language == last {
				continue
			}
			last = cfg.UI.Language
			e.log.Info("config language changed", zap.String("lang", last))
			e.lang.Set(cfg.Language())
		}
	}()
	return nil
}
