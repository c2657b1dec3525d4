package commands

import (
	"cocoa/internal/backends/memory"
	"cocoa/internal/migration"
	"cocoa/internal/types"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// MigrateCmd implements the 'migrate' command.
type MigrateCmd struct {
	Snapshot string `arg:"" type:"existingfile" help:"Legacy snapshot JSON file; rewritten with the migrated sources cleared"`
}

func (m *MigrateCmd) Run(g *Global) error {
	return RunMigrate(context.Background(), g, m.Snapshot)
}

func RunMigrate(ctx context.Context, g *Global, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var snap types.LegacySnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return types.Err(types.ErrMalformed, err, "parse snapshot %s", path)
	}

	records, err := g.Records()
	if err != nil {
		return err
	}
	props := memory.NewPropertyStore(snap.Properties)
	migrateErr := migration.NewMigrator(g.State, records, props).MigrateFromUserData(ctx, snap.UserData)
	snap.Properties = props.Snapshot()

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Join(migrateErr, err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return errors.Join(migrateErr, err)
	}
	if migrateErr != nil {
		return migrateErr
	}
	_, err = fmt.Fprintln(g.Out, "migrated")
	return err
}
