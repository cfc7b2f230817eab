// internal/services/settings_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsUpsertRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	err := svc.UpdateSettings(map[string]string{
		"site_name":    "Annuaire IA",
		"contact_email": "contact@annuaire-ia.fr",
	})
	require.NoError(t, err)

	settings, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "Annuaire IA", settings["site_name"])
	assert.Equal(t, "contact@annuaire-ia.fr", settings["contact_email"])

	// Second write on the same key overwrites, it never duplicates.
	err = svc.UpdateSettings(map[string]string{"site_name": "Annuaire IA (beta)"})
	require.NoError(t, err)

	settings, err = svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "Annuaire IA (beta)", settings["site_name"])
	assert.Equal(t, "contact@annuaire-ia.fr", settings["contact_email"])
}

func TestUpdateSettingsEmptyMap(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	before, err := svc.GetSettings()
	require.NoError(t, err)

	require.NoError(t, svc.UpdateSettings(map[string]string{}))

	after, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
