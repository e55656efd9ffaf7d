package prefabs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTablesEmbedded(t *testing.T) {
	SetDiskRoot("")
	defer SetDiskRoot("prefabs")

	tables, err := LoadTables()
	require.NoError(t, err)

	sniper, err := tables.Weapon("sniper")
	require.NoError(t, err)
	assert.Equal(t, 30, sniper.Ammo)
	assert.Equal(t, 30, sniper.MagazineSize)
	assert.Equal(t, "Reload Snipper", sniper.ReloadSection)
	assert.InDelta(t, 0.7, sniper.ThrowTime, 1e-9)

	assert.Equal(t, 2, tables.Player.InventoryCapacity)
	assert.Equal(t, 100, tables.Player.StartingAmmo["9mm"])
	assert.Equal(t, 100, tables.Player.StartingAmmo["ar"])
	assert.InDelta(t, 0.1, tables.Player.AutomaticFireRate, 1e-9)

	grux, err := tables.Enemy("grux")
	require.NoError(t, err)
	assert.Len(t, grux.AttackSections, 7)
	assert.Equal(t, "head", grux.HeadBone)

	sec, ok := tables.Section("reload", "Reload Snipper")
	require.True(t, ok)
	assert.NotEmpty(t, sec.Notifies)

	rare := tables.Rarities["rare"]
	assert.Equal(t, 4, rare.Stars)
	assert.Equal(t, uint8(0x4f), rare.LightColor.RGBA8().R)
}

func TestUnknownRows(t *testing.T) {
	tables := &Tables{}
	_, err := tables.Weapon("missing")
	assert.ErrorIs(t, err, ErrUnknownRow)
	_, err = tables.Enemy("missing")
	assert.ErrorIs(t, err, ErrUnknownRow)
}

func TestValidateReportsBrokenReferences(t *testing.T) {
	tables := &Tables{
		Weapons: map[string]WeaponSpec{
			"bad": {Rarity: "mythic", Ammo: 40, MagazineSize: 30, ZCurve: "nope"},
		},
		Player: PlayerSpec{StartingWeapon: "gone", InventoryCapacity: 0},
	}
	err := tables.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRow)
	assert.Contains(t, err.Error(), "mythic")
	assert.Contains(t, err.Error(), "outside [0, 30]")
	assert.Contains(t, err.Error(), "inventory capacity")
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CurvesFile), []byte("flat:\n  - {t: 0, v: 2}\n"), 0o644))
	SetDiskRoot(dir)
	defer SetDiskRoot("prefabs")

	curves, err := LoadSpec[map[string][]KeyframeSpec](CurvesFile)
	require.NoError(t, err)
	assert.Equal(t, []KeyframeSpec{{T: 0, V: 2}}, curves["flat"])
}

func TestLoadScript(t *testing.T) {
	SetDiskRoot("")
	defer SetDiskRoot("prefabs")

	for _, name := range []string{"grux_attack.tengo", "scripts/grux_attack.tengo", "prefabs/scripts/grux_attack.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "choose")
	}
}
