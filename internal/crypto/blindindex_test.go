package crypto

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestBlindIndex_Deterministic(t *testing.T) {
	assert.Equal(t, BlindIndex("ada_l"), BlindIndex("ada_l"))
	assert.Equal(t, BlindIndex("+905551234567"), BlindIndex("+905551234567"))
}

func TestBlindIndex_LowercaseNormalization(t *testing.T) {
	assert.Equal(t, BlindIndex("Ada_L"), BlindIndex("ada_l"))
	assert.Equal(t, BlindIndex("ADA_L"), BlindIndex("aDa_L"))
}

func TestBlindIndex_Distinct(t *testing.T) {
	assert.NotEqual(t, BlindIndex("ada_l"), BlindIndex("ada_m"))
	assert.NotEqual(t, BlindIndex("+905551234567"), BlindIndex("+905551234568"))
}

func TestBlindIndex_EmptyPassthrough(t *testing.T) {
	assert.Equal(t, "", BlindIndex(""))
}

func TestBlindIndex_Format(t *testing.T) {
	assert.Regexp(t, hexDigest, BlindIndex("ada_l"))
	assert.Regexp(t, hexDigest, BlindIndex("x"))
}
