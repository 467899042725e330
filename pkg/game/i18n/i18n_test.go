package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "This type of door cannot be kicked.", T("KICK_CANNOT"))
	assert.Equal(t, "Gained 25 Strength XP for kicking this door!", T("KICK_XP_GAINED", 25))
}

func TestT_UnknownKeyIsReturned(t *testing.T) {
	assert.Equal(t, "NOT_A_KEY", T("NOT_A_KEY"))
}

func TestT_UsesCatalogue(t *testing.T) {
	orig := dynamicGet
	t.Cleanup(func() { dynamicGet = orig })
	dynamicGet = func(str string, vars ...interface{}) string {
		if str == "KICK_FAILURE" {
			return "Die Tür hält stand!"
		}
		return str
	}

	assert.Equal(t, "Die Tür hält stand!", T("KICK_FAILURE"))
	assert.Equal(t, "You successfully kicked open the door!", T("KICK_SUCCESS"))
}
