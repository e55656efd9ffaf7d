package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type KeyframeSpec struct {
	T float64 `yaml:"t"`
	V float64 `yaml:"v"`
}

type WeaponSpec struct {
	Name           string  `yaml:"name"`
	Type           string  `yaml:"type"`
	AmmoType       string  `yaml:"ammo_type"`
	Ammo           int     `yaml:"ammo"`
	MagazineSize   int     `yaml:"magazine_size"`
	ReloadSection  string  `yaml:"reload_section"`
	ClipBone       string  `yaml:"clip_bone"`
	Damage         float64 `yaml:"damage"`
	HeadShotDamage float64 `yaml:"head_shot_damage"`
	ThrowTime      float64 `yaml:"throw_time"`
	ThrowImpulse   float64 `yaml:"throw_impulse"`
	Rarity         string  `yaml:"rarity"`
	Icon           string  `yaml:"icon"`
	AmmoIcon       string  `yaml:"ammo_icon"`
	PickupSound    string  `yaml:"pickup_sound"`
	EquipSound     string  `yaml:"equip_sound"`
	AreaRadius     float64 `yaml:"area_radius"`
	TraceRadius    float64 `yaml:"trace_radius"`
	ZCurve         string  `yaml:"z_curve"`
	ScaleCurve     string  `yaml:"scale_curve"`
	InterpTime     float64 `yaml:"interp_time"`
}

type RaritySpec struct {
	Stars          int       `yaml:"stars"`
	LightColor     YAMLColor `yaml:"light_color"`
	DarkColor      YAMLColor `yaml:"dark_color"`
	IconBackground string    `yaml:"icon_background"`
}

type PlayerSpec struct {
	Health                float64        `yaml:"health"`
	StunChance            float64        `yaml:"stun_chance"`
	AutomaticFireRate     float64        `yaml:"automatic_fire_rate"`
	ShootTimeDuration     float64        `yaml:"shoot_time_duration"`
	CameraInterpDistance  float64        `yaml:"camera_interp_distance"`
	CameraInterpElevation float64        `yaml:"camera_interp_elevation"`
	CameraBoomLength      float64        `yaml:"camera_boom_length"`
	DefaultFOV            float64        `yaml:"default_fov"`
	ZoomedFOV             float64        `yaml:"zoomed_fov"`
	ZoomInterpSpeed       float64        `yaml:"zoom_interp_speed"`
	TraceDistance         float64        `yaml:"trace_distance"`
	InventoryCapacity     int            `yaml:"inventory_capacity"`
	StartingWeapon        string         `yaml:"starting_weapon"`
	StartingAmmo          map[string]int `yaml:"starting_ammo"`
	MuzzleOffset          Vec3Spec       `yaml:"muzzle_offset"`
	ColliderRadius        float64        `yaml:"collider_radius"`
	ColliderHalfHeight    float64        `yaml:"collider_half_height"`
	FireSound             string         `yaml:"fire_sound"`
	BeamParticles         string         `yaml:"beam_particles"`
	ImpactParticles       string         `yaml:"impact_particles"`
	Bones                 []BoneSpec     `yaml:"bones"`
}

type BoneSpec struct {
	Name   string   `yaml:"name"`
	Offset Vec3Spec `yaml:"offset"`
	Radius float64  `yaml:"radius"`
}

type VolumeSpec struct {
	Name    string   `yaml:"name"`
	Radius  float64  `yaml:"radius"`
	Offset  Vec3Spec `yaml:"offset"`
	Enabled bool     `yaml:"enabled"`
}

type EnemySpec struct {
	Name                 string       `yaml:"name"`
	Health               float64      `yaml:"health"`
	StunChance           float64      `yaml:"stun_chance"`
	HitReactMin          float64      `yaml:"hit_react_min"`
	HitReactMax          float64      `yaml:"hit_react_max"`
	HealthBarDisplayTime float64      `yaml:"health_bar_display_time"`
	DeathTime            float64      `yaml:"death_time"`
	BaseDamage           float64      `yaml:"base_damage"`
	AttackWaitTime       float64      `yaml:"attack_wait_time"`
	HitNumberLifetime    float64      `yaml:"hit_number_lifetime"`
	HeadBone             string       `yaml:"head_bone"`
	AttackSections       []string     `yaml:"attack_sections"`
	AttackScript         string       `yaml:"attack_script"`
	ImpactSound          string       `yaml:"impact_sound"`
	ImpactParticles      string       `yaml:"impact_particles"`
	BloodParticles       string       `yaml:"blood_particles"`
	ColliderRadius       float64      `yaml:"collider_radius"`
	ColliderHalfHeight   float64      `yaml:"collider_half_height"`
	Bones                []BoneSpec   `yaml:"bones"`
	Volumes              []VolumeSpec `yaml:"volumes"`
	PatrolPoint          Vec3Spec     `yaml:"patrol_point"`
	PatrolPoint2         Vec3Spec     `yaml:"patrol_point_2"`
}

type PropSpec struct {
	Name              string     `yaml:"name"`
	TeleportSound     string     `yaml:"teleport_sound"`
	TeleportParticles string     `yaml:"teleport_particles"`
	Bones             []BoneSpec `yaml:"bones"`
}

type NotifySpec struct {
	At   float64 `yaml:"at"`
	Name string  `yaml:"name"`
}

type SectionSpec struct {
	Length   float64      `yaml:"length"`
	Notifies []NotifySpec `yaml:"notifies"`
}

type MontageSpec struct {
	Sections map[string]SectionSpec `yaml:"sections"`
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as 8-bit RGBA, white when unset.
func (c YAMLColor) RGBA8() color.RGBA {
	if c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

type SpawnSpec struct {
	Key string   `yaml:"key"`
	At  Vec3Spec `yaml:"at"`
	Yaw float64  `yaml:"yaw"`
}

// ArenaSpec places the player and everything around it.
type ArenaSpec struct {
	Name    string      `yaml:"name"`
	Player  Vec3Spec    `yaml:"player"`
	Weapons []SpawnSpec `yaml:"weapons"`
	Enemies []SpawnSpec `yaml:"enemies"`
	Props   []SpawnSpec `yaml:"props"`
}
