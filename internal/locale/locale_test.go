package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator(t *testing.T) {
	bundle, err := NewBundle("en-GB")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"en-GB", "fr"}, bundle.Languages())

	for name, tc := range map[string]struct {
		langs []string
		key   string
		want  string
	}{
		"English":        {[]string{"en-GB"}, "recommendedList.notYetOpen", "Not yet open"},
		"French":         {[]string{"fr"}, "recommendedList.notYetOpen", "Pas encore ouverte"},
		"AcceptLanguage": {[]string{"fr-FR,fr;q=0.9,en;q=0.8"}, "toolbar.switchRoom", "Changer de salle"},
		"Unsupported":    {[]string{"de"}, "welcomepage.info", "Info"},
		"NoPreference":   {nil, "welcomepage.recentListDelete", "Delete"},
		"UnknownKey":     {[]string{"fr"}, "Monday 18:00", "Monday 18:00"},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, bundle.Translator(tc.langs...)(tc.key))
		})
	}
}

func TestNewBundleInvalidDefault(t *testing.T) {
	_, err := NewBundle("not a language tag!")
	assert.Error(t, err)
}
