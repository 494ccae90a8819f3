package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCombatSpecDefaults(t *testing.T) {
	spec, err := LoadCombatSpec()
	require.NoError(t, err)

	assert.Equal(t, 50.0, spec.Stomp.MinFallSpeed)
	assert.Equal(t, 120*time.Millisecond, spec.Stomp.ContactSuppression)
	assert.Equal(t, 250*time.Millisecond, spec.Damage.HitStun)
	assert.Equal(t, time.Second, spec.Damage.Invincibility)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}, spec.Damage.Tint.NRGBA)
	assert.Equal(t, 200, spec.Prop.KillScore)
	assert.Equal(t, 2, spec.Prop.DurabilityFor("grey"))
	assert.Equal(t, 1, spec.Prop.DurabilityFor("pink"))
	assert.Equal(t, 1500*time.Millisecond, spec.Termination.Death.Delay)
	assert.Equal(t, 1400*time.Millisecond, spec.Termination.Clear.Delay)
	assert.Equal(t, "victory", spec.Termination.Clear.Scene)
	assert.Equal(t, 16666*time.Microsecond, spec.Physics.Step)
}

func TestStompToleranceBands(t *testing.T) {
	spec, err := LoadCombatSpec()
	require.NoError(t, err)

	cases := []struct {
		vx   float64
		want float64
	}{
		{0, 6},
		{150, 6},
		{151, 10},
		{-200, 10},
		{250, 10},
		{260, 15},
		{-400, 15},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, spec.Stomp.ToleranceFor(c.vx), "vx=%v", c.vx)
	}
}

func TestCharacterRoster(t *testing.T) {
	roster, err := LoadCharacterRoster()
	require.NoError(t, err)

	def, err := roster.Character("")
	require.NoError(t, err)
	assert.Equal(t, "Astro", def.Name)
	assert.Equal(t, 3, def.Hearts)
	assert.InDelta(t, 1.1, def.StompBoost, 1e-9)

	purple, err := roster.Character("purple")
	require.NoError(t, err)
	assert.InDelta(t, 1.4, purple.ThrowBoost, 1e-9)

	_, err = roster.Character("orange")
	assert.True(t, errors.Is(err, ErrUnknownCharacter))
}

func TestEnemyRosterScriptsExist(t *testing.T) {
	roster, err := LoadEnemyRoster()
	require.NoError(t, err)
	require.Contains(t, roster.Enemies, "blob")
	assert.True(t, roster.Enemies["blob"].Squash)

	for name, e := range roster.Enemies {
		_, err := LoadScript(e.Script)
		assert.NoError(t, err, "enemy %s script %s", name, e.Script)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#11223344")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, c)

	_, err = ParseHexColor("#123")
	assert.Error(t, err)
}

func TestDecodeComponentSpec(t *testing.T) {
	type props struct {
		Color string  `yaml:"color"`
		Range float64 `yaml:"range"`
	}
	out, err := DecodeComponentSpec[props](map[string]any{"color": "grey", "range": 64})
	require.NoError(t, err)
	assert.Equal(t, props{Color: "grey", Range: 64}, out)
}

func withDiskDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
	return dir
}

func TestDiskOverrideAndReload(t *testing.T) {
	dir := withDiskDir(t)

	tuning, err := NewTuning()
	require.NoError(t, err)
	assert.Equal(t, 200, tuning.Combat().Prop.KillScore)

	override := []byte("prop:\n  kill_score: 500\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "combat.yaml"), override, 0o644))
	require.NoError(t, tuning.Reload())
	assert.Equal(t, 500, tuning.Combat().Prop.KillScore)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "combat.yaml"), []byte("prop: [\n"), 0o644))
	assert.Error(t, tuning.Reload())
	assert.Equal(t, 500, tuning.Combat().Prop.KillScore, "failed reload keeps previous spec")
}

func TestTuningWatchReloadsOnWrite(t *testing.T) {
	dir := withDiskDir(t)

	tuning, err := NewTuning()
	require.NoError(t, err)
	require.NoError(t, tuning.Watch(dir))
	defer tuning.Close()

	// Rename a complete file in so the watcher never sees a partial write.
	staged := filepath.Join(t.TempDir(), "combat.yaml")
	require.NoError(t, os.WriteFile(staged, []byte("stomp:\n  score: 7\n"), 0o644))
	require.NoError(t, os.Rename(staged, filepath.Join(dir, "combat.yaml")))
	require.Eventually(t, func() bool {
		return tuning.Combat().Stomp.Score == 7
	}, 2*time.Second, 20*time.Millisecond)
}
