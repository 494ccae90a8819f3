package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrUnknownCharacter = errors.New("prefabs: unknown character")

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

// CombatSpec holds every tuning value the combat core reads.
type CombatSpec struct {
	Physics      PhysicsSpec     `yaml:"physics"`
	Stomp        StompSpec       `yaml:"stomp"`
	Damage       DamageSpec      `yaml:"damage"`
	Prop         PropSpec        `yaml:"prop"`
	Collectibles CollectibleSpec `yaml:"collectibles"`
	Defeat       DefeatSpec      `yaml:"defeat"`
	Termination  TerminationSpec `yaml:"termination"`
	Hint         HintSpec        `yaml:"hint"`
	Sounds       SoundKeys       `yaml:"sounds"`
}

type PhysicsSpec struct {
	Gravity    float64       `yaml:"gravity"`
	Step       time.Duration `yaml:"step"`
	Iterations int           `yaml:"iterations"`
}

// StompSpec tunes the stomp-versus-side-hit split.
type StompSpec struct {
	MinFallSpeed float64 `yaml:"min_fall_speed"`
	// Tolerance bands are checked in order; the first band whose
	// AboveSpeed is exceeded by |vx| wins, else BaseTolerance applies.
	BaseTolerance      float64         `yaml:"base_tolerance"`
	Tolerance          []ToleranceBand `yaml:"tolerance"`
	DominanceRatio     float64         `yaml:"dominance_ratio"`
	Rebound            float64         `yaml:"rebound"`
	ContactSuppression time.Duration   `yaml:"contact_suppression"`
	Score              int             `yaml:"score"`
}

type ToleranceBand struct {
	AboveSpeed float64 `yaml:"above_speed"`
	Pixels     float64 `yaml:"pixels"`
}

// ToleranceFor returns the vertical tolerance band for horizontal speed vx.
func (s StompSpec) ToleranceFor(vx float64) float64 {
	if vx < 0 {
		vx = -vx
	}
	for _, band := range s.Tolerance {
		if vx > band.AboveSpeed {
			return band.Pixels
		}
	}
	return s.BaseTolerance
}

type DamageSpec struct {
	HitStun       time.Duration `yaml:"hit_stun"`
	Invincibility time.Duration `yaml:"invincibility"`
	Tint          YAMLColor     `yaml:"tint"`
	Alpha         float64       `yaml:"alpha"`
}

type PropSpec struct {
	MinImpactSpeed float64        `yaml:"min_impact_speed"`
	ThrowX         float64        `yaml:"throw_x"`
	ThrowY         float64        `yaml:"throw_y"`
	PickupCooldown time.Duration  `yaml:"pickup_cooldown"`
	HitFlash       time.Duration  `yaml:"hit_flash"`
	FlashTint      YAMLColor      `yaml:"flash_tint"`
	HoldOffsetX    float64        `yaml:"hold_offset_x"`
	HoldOffsetY    float64        `yaml:"hold_offset_y"`
	KillScore      int            `yaml:"kill_score"`
	Durability     map[string]int `yaml:"durability"`
	Width          float64        `yaml:"width"`
	Height         float64        `yaml:"height"`
}

// DurabilityFor returns the hit budget for a brick colour, defaulting to 1.
func (p PropSpec) DurabilityFor(colorName string) int {
	if n, ok := p.Durability[colorName]; ok && n > 0 {
		return n
	}
	return 1
}

type CollectibleSpec struct {
	CoinValue int `yaml:"coin_value"`
	StarValue int `yaml:"star_value"`
}

type DefeatSpec struct {
	SquashDelay time.Duration `yaml:"squash_delay"`
}

type TerminationSpec struct {
	Death DeathSpec `yaml:"death"`
	Clear ClearSpec `yaml:"clear"`
}

type DeathSpec struct {
	HopHeight   float64       `yaml:"hop_height"`
	HopDuration time.Duration `yaml:"hop_duration"`
	FallSpeed   float64       `yaml:"fall_speed"`
	SpinAngle   float64       `yaml:"spin_angle"`
	SpinTime    time.Duration `yaml:"spin_duration"`
	FadeDelay   time.Duration `yaml:"fade_delay"`
	FadeTime    time.Duration `yaml:"fade_duration"`
	Delay       time.Duration `yaml:"delay"`
}

type ClearSpec struct {
	FloatHeight   float64       `yaml:"float_height"`
	FloatDuration time.Duration `yaml:"float_duration"`
	FadeDelay     time.Duration `yaml:"fade_delay"`
	FadeTime      time.Duration `yaml:"fade_duration"`
	Delay         time.Duration `yaml:"delay"`
	Scene         string        `yaml:"scene"`
}

type HintSpec struct {
	Pickup   string        `yaml:"pickup"`
	Duration time.Duration `yaml:"duration"`
}

// SoundKeys maps gameplay cues to audio keys.
type SoundKeys struct {
	Defeat string            `yaml:"defeat"`
	Hit    string            `yaml:"hit"`
	Coin   string            `yaml:"coin"`
	Star   string            `yaml:"star"`
	Clear  string            `yaml:"clear"`
	Music  string            `yaml:"music"`
	Files  map[string]string `yaml:"files"`
}

func LoadCombatSpec() (*CombatSpec, error) {
	spec, err := LoadSpec[CombatSpec]("combat.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CharacterSpec is one selectable character preset.
type CharacterSpec struct {
	Name         string    `yaml:"name"`
	Hearts       int       `yaml:"hearts"`
	MoveSpeed    float64   `yaml:"move_speed"`
	JumpSpeed    float64   `yaml:"jump_speed"`
	GravityScale float64   `yaml:"gravity_scale"`
	StompBoost   float64   `yaml:"stomp_boost"`
	ThrowBoost   float64   `yaml:"throw_boost"`
	Width        float64   `yaml:"width"`
	Height       float64   `yaml:"height"`
	Color        YAMLColor `yaml:"color"`
}

type CharacterRoster struct {
	Default    string                   `yaml:"default"`
	Characters map[string]CharacterSpec `yaml:"characters"`
}

// Character returns the named preset, or the default one when name is empty.
func (r CharacterRoster) Character(name string) (CharacterSpec, error) {
	if name == "" {
		name = r.Default
	}
	spec, ok := r.Characters[name]
	if !ok {
		return CharacterSpec{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
	}
	if spec.Name == "" {
		spec.Name = name
	}
	return spec, nil
}

func LoadCharacterRoster() (*CharacterRoster, error) {
	roster, err := LoadSpec[CharacterRoster]("characters.yaml")
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

// EnemySpec describes one hostile variant.
type EnemySpec struct {
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Script string    `yaml:"script"`
	Speed  float64   `yaml:"speed"`
	Range  float64   `yaml:"range"`
	Flying bool      `yaml:"flying"`
	Squash bool      `yaml:"squash"`
	Color  YAMLColor `yaml:"color"`
}

type EnemyRoster struct {
	Enemies map[string]EnemySpec `yaml:"enemies"`
}

func LoadEnemyRoster() (*EnemyRoster, error) {
	roster, err := LoadSpec[EnemyRoster]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

// ParseHexColor accepts #rrggbb or #rrggbbaa.
func ParseHexColor(raw string) (color.NRGBA, error) {
	s := strings.TrimPrefix(raw, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", raw)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", raw)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
