package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewThemeStore_FallsBackToLight(t *testing.T) {
	require.Equal(t, ThemeLight, NewThemeStore("solarized").Current())
	require.Equal(t, ThemeDark, NewThemeStore(ThemeDark).Current())
}

func TestSet_RejectsUnknownTheme(t *testing.T) {
	s := NewThemeStore(ThemeLight)
	require.Error(t, s.Set(Theme("sepia")))
	require.Equal(t, ThemeLight, s.Current())
}

func TestSet_FiresEffectOnEveryChange(t *testing.T) {
	s := NewThemeStore(ThemeLight)

	var seen []Theme
	s.OnChange(func(v Theme) { seen = append(seen, v) })

	require.NoError(t, s.Set(ThemeDark))
	require.NoError(t, s.Set(ThemeLight))
	require.NoError(t, s.Set(ThemeLight)) // unconditional overwrite still fires

	require.Equal(t, []Theme{ThemeDark, ThemeLight, ThemeLight}, seen)
	require.Equal(t, ThemeLight, s.Current())
}
