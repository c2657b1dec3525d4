package migration

import (
	"cocoa/internal/exposure"
	"cocoa/internal/ports"
	"cocoa/internal/state"
	"cocoa/internal/types"
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

// Migrator moves state older app versions left in the flat user data document and the
// application properties into the current stores. It holds no state of its own.
type Migrator struct {
	state   *state.Store
	records *exposure.RecordStore
	props   ports.PropertyStore
}

func NewMigrator(st *state.Store, records *exposure.RecordStore, props ports.PropertyStore) *Migrator {
	return &Migrator{state: st, records: records, props: props}
}

// MigrateFromUserData runs every migration step against userData, clearing each legacy source
// once it has been copied. The caller persists userData afterwards. Steps run independently:
// a failing step does not stop the others, and the failures are returned joined.
// Running it again after success changes nothing. A nil userData skips only the steps that
// read it; the legacy configuration property is still migrated.
func (m *Migrator) MigrateFromUserData(ctx context.Context, userData *types.UserData) error {
	return errors.Join(
		m.migrateLastProcessTekTimestamp(ctx, userData),
		m.migrateConfiguration(ctx),
		m.migrateExposure(ctx, userData),
	)
}

func (m *Migrator) migrateLastProcessTekTimestamp(ctx context.Context, userData *types.UserData) error {
	if userData == nil || len(userData.LastProcessTekTimestamp) == 0 {
		return nil
	}
	if err := m.state.ImportLastProcessTekTimestamps(ctx, userData.LastProcessTekTimestamp); err != nil {
		log.WithError(err).Error("migrating last processed timestamps failed")
		return err
	}
	count := len(userData.LastProcessTekTimestamp)
	userData.LastProcessTekTimestamp = map[string]int64{}
	log.WithField("count", count).Info("migrated last processed timestamps")
	return nil
}

func (m *Migrator) migrateConfiguration(ctx context.Context) error {
	key := types.LegacyConfigurationPropertyKey
	ok, err := m.props.ContainsKey(ctx, key)
	if err != nil {
		return types.Err(types.ErrDataStoreAccess, err, "check property %s", key)
	}
	if !ok {
		return nil
	}
	v, err := m.props.GetProperty(ctx, key)
	if err != nil {
		return types.Err(types.ErrDataStoreAccess, err, "read property %s", key)
	}
	if doc, isString := v.(string); isString && doc != "" {
		if err := m.state.SetConfiguration(ctx, doc); err != nil {
			log.WithError(err).Error("migrating exposure configuration failed")
			return err
		}
	} else {
		log.WithField("key", key).Warn("legacy configuration property is not a document, dropping it")
	}
	if err := m.props.RemoveProperty(ctx, key); err != nil {
		return types.Err(types.ErrDataStoreAccess, err, "remove property %s", key)
	}
	log.Info("migrated exposure configuration")
	return nil
}

func (m *Migrator) migrateExposure(ctx context.Context, userData *types.UserData) error {
	if userData == nil || !userData.HasExposure() {
		return nil
	}
	if err := m.records.SetExposure(ctx, userData.ExposureSummary, userData.ExposureInformation); err != nil {
		log.WithError(err).Error("migrating exposure record failed")
		return err
	}
	count := len(userData.ExposureInformation)
	userData.ExposureSummary = nil
	userData.ExposureInformation = nil
	log.WithField("count", count).Info("migrated exposure record")
	return nil
}
