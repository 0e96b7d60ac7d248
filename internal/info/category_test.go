package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIsClosedAndComplete(t *testing.T) {
	categories := AllCategories()
	assert.Len(t, categories, 39)

	seen := map[Category]bool{}
	for _, category := range categories {
		assert.True(t, category.Valid())
		assert.False(t, seen[category], "category %s appears twice", category)
		seen[category] = true

		d := lookup(category)
		require.NotNil(t, d)
		assert.NotEmpty(t, d.resultKey)
		assert.NotNil(t, d.fetch, "category %s has no fetch operation", category)
	}

	assert.False(t, Category("something_else").Valid())
}

func TestRegistryResultKeysAreUnique(t *testing.T) {
	keys := map[string]Category{}
	for _, d := range registry {
		previous, dup := keys[d.resultKey]
		assert.False(t, dup, "result key %q shared by %s and %s", d.resultKey, previous, d.id)
		keys[d.resultKey] = d.id
	}
}

func TestRegistryIrregularResultKeys(t *testing.T) {
	// These keys are historical and must never be "fixed" to regular casing.
	irregular := map[Category]string{
		CategorySynciqTargetClusterCertificates: "SynciqTargetClusterCertificate",
		CategoryS3Buckets:                       "s3Buckets",
		CategoryNtpServers:                      "NTPServers",
		CategorySmbFiles:                        "SmbOpenFiles",
		CategoryStoragepoolTiers:                "StoragePoolTiers",
		CategoryLdap:                            "LdapProviders",
		CategoryRoles:                           "roles",
		CategorySupportAssistSettings:           "support_assist_settings",
	}
	for category, want := range irregular {
		d := lookup(category)
		require.NotNil(t, d)
		assert.Equal(t, want, d.resultKey)
	}
}

func TestRegistryDefaults(t *testing.T) {
	listDefaults := []Category{
		CategoryAttributes, CategorySmbShares, CategoryNfsExports,
		CategoryUserMappingRules, CategoryServerCertificate,
	}
	for _, category := range listDefaults {
		d := lookup(category)
		require.NotNil(t, d)
		assert.Equal(t, []any{}, d.defaultValue(), "category %s", category)
	}

	mapDefaults := []Category{
		CategoryNfsZoneSettings, CategorySnmpSettings, CategoryRoles,
		CategorySupportAssistSettings, CategoryS3Buckets,
	}
	for _, category := range mapDefaults {
		d := lookup(category)
		require.NotNil(t, d)
		assert.Equal(t, map[string]any{}, d.defaultValue(), "category %s", category)
	}
}

func TestDefaultValuesAreFreshPerReport(t *testing.T) {
	first := newReport()
	second := newReport()

	firstValue, ok := first["NfsZoneSettings"].(map[string]any)
	require.True(t, ok)
	firstValue["tampered"] = true

	assert.Equal(t, map[string]any{}, second["NfsZoneSettings"])
}
