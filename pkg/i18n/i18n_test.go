package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultsToRussian(t *testing.T) {
	for _, segment := range []string{"", "xx", "de", "RU", "ru-RU"} {
		b := Resolve(segment)
		require.NotNil(t, b, "segment %q", segment)
		assert.Equal(t, "ru", b.Code, "segment %q", segment)
	}
	assert.Equal(t, "ru", Resolve("ru").Code)
}

func TestResolveEnglish(t *testing.T) {
	b := Resolve("en")
	assert.Equal(t, "en", b.Code)
	assert.Equal(t, "Experience", b.T("section.experience"))
}

func TestRussianBundleStrings(t *testing.T) {
	b := Resolve("ru")
	assert.Equal(t, "Опыт работы", b.T("section.experience"))
	assert.Equal(t, "Образование", b.T("section.education"))
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", Resolve("ru").T("no.such.key"))
}
