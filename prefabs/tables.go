package prefabs

import (
	"errors"
	"fmt"
	"sort"
)

const (
	WeaponsFile  = "weapons.yaml"
	RarityFile   = "rarity.yaml"
	PlayerFile   = "player.yaml"
	EnemiesFile  = "enemies.yaml"
	PropsFile    = "props.yaml"
	MontagesFile = "montages.yaml"
	CurvesFile   = "curves.yaml"
)

var ErrUnknownRow = errors.New("prefabs: unknown table row")

// Tables is every data table, loaded once and handed to builders and
// systems. Treat it as read-only; Reload builds a fresh value.
type Tables struct {
	Weapons  map[string]WeaponSpec
	Rarities map[string]RaritySpec
	Player   PlayerSpec
	Enemies  map[string]EnemySpec
	Props    map[string]PropSpec
	Montages map[string]MontageSpec
	Curves   map[string][]KeyframeSpec
}

// LoadTables reads every table from disk overrides or the embedded copies
// and cross-checks the references between them.
func LoadTables() (*Tables, error) {
	var (
		t   Tables
		err error
	)
	if t.Weapons, err = LoadSpec[map[string]WeaponSpec](WeaponsFile); err != nil {
		return nil, err
	}
	if t.Rarities, err = LoadSpec[map[string]RaritySpec](RarityFile); err != nil {
		return nil, err
	}
	if t.Player, err = LoadSpec[PlayerSpec](PlayerFile); err != nil {
		return nil, err
	}
	if t.Enemies, err = LoadSpec[map[string]EnemySpec](EnemiesFile); err != nil {
		return nil, err
	}
	if t.Props, err = LoadSpec[map[string]PropSpec](PropsFile); err != nil {
		return nil, err
	}
	if t.Montages, err = LoadSpec[map[string]MontageSpec](MontagesFile); err != nil {
		return nil, err
	}
	if t.Curves, err = LoadSpec[map[string][]KeyframeSpec](CurvesFile); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every cross-table reference resolves.
func (t *Tables) Validate() error {
	var errs []error
	for _, key := range sortedKeys(t.Weapons) {
		w := t.Weapons[key]
		if _, ok := t.Rarities[w.Rarity]; !ok {
			errs = append(errs, fmt.Errorf("weapon %q: rarity %q: %w", key, w.Rarity, ErrUnknownRow))
		}
		if w.ZCurve != "" {
			if _, ok := t.Curves[w.ZCurve]; !ok {
				errs = append(errs, fmt.Errorf("weapon %q: z curve %q: %w", key, w.ZCurve, ErrUnknownRow))
			}
		}
		if w.ScaleCurve != "" {
			if _, ok := t.Curves[w.ScaleCurve]; !ok {
				errs = append(errs, fmt.Errorf("weapon %q: scale curve %q: %w", key, w.ScaleCurve, ErrUnknownRow))
			}
		}
		if w.Ammo < 0 || w.Ammo > w.MagazineSize {
			errs = append(errs, fmt.Errorf("weapon %q: ammo %d outside [0, %d]", key, w.Ammo, w.MagazineSize))
		}
	}
	if t.Player.StartingWeapon != "" {
		if _, ok := t.Weapons[t.Player.StartingWeapon]; !ok {
			errs = append(errs, fmt.Errorf("player: starting weapon %q: %w", t.Player.StartingWeapon, ErrUnknownRow))
		}
	}
	if t.Player.InventoryCapacity <= 0 {
		errs = append(errs, fmt.Errorf("player: inventory capacity must be positive, got %d", t.Player.InventoryCapacity))
	}
	if len(errs) > 0 {
		return fmt.Errorf("prefabs: validate: %w", errors.Join(errs...))
	}
	return nil
}

func (t *Tables) Weapon(key string) (WeaponSpec, error) {
	spec, ok := t.Weapons[key]
	if !ok {
		return WeaponSpec{}, fmt.Errorf("weapon %q: %w", key, ErrUnknownRow)
	}
	return spec, nil
}

func (t *Tables) Enemy(key string) (EnemySpec, error) {
	spec, ok := t.Enemies[key]
	if !ok {
		return EnemySpec{}, fmt.Errorf("enemy %q: %w", key, ErrUnknownRow)
	}
	return spec, nil
}

func (t *Tables) Prop(key string) (PropSpec, error) {
	spec, ok := t.Props[key]
	if !ok {
		return PropSpec{}, fmt.Errorf("prop %q: %w", key, ErrUnknownRow)
	}
	return spec, nil
}

// Section returns the length and notifies of a montage section.
func (t *Tables) Section(montage, section string) (SectionSpec, bool) {
	m, ok := t.Montages[montage]
	if !ok {
		return SectionSpec{}, false
	}
	s, ok := m.Sections[section]
	return s, ok
}

// EnemyKeys returns enemy row names in stable order.
func (t *Tables) EnemyKeys() []string {
	return sortedKeys(t.Enemies)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
