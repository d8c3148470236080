package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terraincognita07/remedywhisper/internal/api"
	"github.com/terraincognita07/remedywhisper/internal/db"
	"github.com/terraincognita07/remedywhisper/internal/security"
	"github.com/terraincognita07/remedywhisper/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunExportProfileCommand writes the stored state of profileID to out in the
// same document shape the API download uses.
func RunExportProfileCommand(dbPath string, profileID string, out io.Writer, now time.Time) error {
	return withStoredProfile(dbPath, profileID, func(store *services.ProfileStore) error {
		serialized, err := api.BuildProfileExport(store.State(), now)
		if err != nil {
			return fmt.Errorf("build export: %w", err)
		}
		if _, err := out.Write(append(serialized, '\n')); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		return nil
	})
}

// RunResetProfileCommand removes everything stored for profileID.
func RunResetProfileCommand(dbPath string, profileID string, out io.Writer) error {
	return withStoredProfile(dbPath, profileID, func(store *services.ProfileStore) error {
		if _, err := store.ClearAllData(); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		fmt.Fprintf(out, "Profile %s reset.\n", strings.TrimSpace(profileID))
		return nil
	})
}

func withStoredProfile(dbPath string, profileID string, run func(store *services.ProfileStore) error) error {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return errors.New("profile id is required")
	}
	if !security.IsProfileID(profileID) {
		return fmt.Errorf("invalid profile id %q", profileID)
	}

	database, err := db.OpenSQLite(dbPath, zap.NewNop())
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	directory := services.NewProfileDirectory(db.NewStateRepository(database), nil)
	ids, err := directory.ListProfileIDs()
	if err != nil {
		return err
	}
	if !containsID(ids, profileID) {
		return fmt.Errorf("profile %s not found", profileID)
	}

	store, err := directory.Open(profileID)
	if err != nil {
		return err
	}
	return run(store)
}

func containsID(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

func closeDatabase(database *gorm.DB) {
	_ = db.Close(database)
}
